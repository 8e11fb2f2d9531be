// Package analog finds the historical impact or earthquake most comparable
// to a computed impact scenario.
//
// Matching is a weighted nearest-neighbour search followed by a separate
// diversification pass: when the best match is not decisively close, a
// slightly worse candidate from a different energy decade (or magnitude band)
// is preferred so the same few records are not cited for every scenario.
package analog

import (
	"math"
	"sort"

	"github.com/pthm-cable/impact/impact"
)

// Scoring weights.
const (
	impactEnergyWeight = 0.7
	impactCraterWeight = 0.3

	quakeMagnitudeWeight = 0.6
	quakeEnergyWeight    = 0.4

	// energyDecadeSpan is the decade distance at which two energies count as
	// entirely different.
	energyDecadeSpan = 4.0
	minEnergy        = 1e-9
)

// Earthquake pre-filter thresholds.
const (
	significantCasualties = 100
	significantMagnitude  = 7.5
)

// DiversityRule controls the second matching pass.
type DiversityRule struct {
	FastPath   float64 // return the best match outright below this score
	Window     int     // number of runners-up considered
	LooseBound float64 // runners-up must score below this
}

var (
	impactRule     = DiversityRule{FastPath: 0.1, Window: 5, LooseBound: 0.5}
	earthquakeRule = DiversityRule{FastPath: 0.15, Window: 8, LooseBound: 0.4}
)

// Candidate is a record with its match score (lower is better).
type Candidate[T any] struct {
	Record T
	Score  float64
}

// FindClosestImpact returns the historical impact most comparable to m.
// ok is false when the catalog is empty.
func FindClosestImpact(m impact.ImpactMetrics, catalog []ImpactRecord) (rec ImpactRecord, ok bool) {
	if len(catalog) == 0 {
		return ImpactRecord{}, false
	}
	ranked := Rank(catalog, func(r ImpactRecord) float64 { return ImpactScore(m, r) })
	return Diversify(ranked, impactRule, func(r ImpactRecord) int { return energyDecade(r.EnergyMegatons) }), true
}

// FindClosestEarthquake returns the historical earthquake most comparable to
// m. Records with more than 100 casualties or magnitude 7.5 and above are
// preferred; the full catalog is used when none qualify. ok is false when the
// catalog is empty.
func FindClosestEarthquake(m impact.ImpactMetrics, catalog []EarthquakeRecord) (rec EarthquakeRecord, ok bool) {
	if len(catalog) == 0 {
		return EarthquakeRecord{}, false
	}

	pool := make([]EarthquakeRecord, 0, len(catalog))
	for _, r := range catalog {
		if r.Casualties > significantCasualties || r.Magnitude >= significantMagnitude {
			pool = append(pool, r)
		}
	}
	if len(pool) == 0 {
		pool = catalog
	}

	ranked := Rank(pool, func(r EarthquakeRecord) float64 { return EarthquakeScore(m, r) })
	return Diversify(ranked, earthquakeRule, func(r EarthquakeRecord) int { return int(math.Floor(r.Magnitude)) }), true
}

// ImpactScore weighs energy and crater-size differences between m and r.
func ImpactScore(m impact.ImpactMetrics, r ImpactRecord) float64 {
	return impactEnergyWeight*energyDifference(m.TNTMegatons, r.EnergyMegatons) +
		impactCraterWeight*relativeDifference(m.CraterDiameterKm, r.CraterKm)
}

// EarthquakeScore weighs magnitude and energy differences between m and r.
func EarthquakeScore(m impact.ImpactMetrics, r EarthquakeRecord) float64 {
	return quakeMagnitudeWeight*relativeDifference(m.SeismicEquivalentMagnitude, r.Magnitude) +
		quakeEnergyWeight*energyDifference(m.TNTMegatons, r.EnergyMegatons)
}

// Rank scores every record and sorts ascending by score. Ties keep catalog order.
func Rank[T any](records []T, score func(T) float64) []Candidate[T] {
	ranked := make([]Candidate[T], len(records))
	for i, r := range records {
		ranked[i] = Candidate[T]{Record: r, Score: score(r)}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score < ranked[j].Score
	})
	return ranked
}

// Diversify picks from a non-empty ranked list. The top candidate wins if its
// score is below rule.FastPath; otherwise the first runner-up within
// rule.Window whose band differs from the top candidate's and whose score is
// below rule.LooseBound is chosen. Falls back to the top candidate.
func Diversify[T any](ranked []Candidate[T], rule DiversityRule, band func(T) int) T {
	top := ranked[0]
	if top.Score < rule.FastPath {
		return top.Record
	}

	topBand := band(top.Record)
	end := min(len(ranked), 1+rule.Window)
	for _, c := range ranked[1:end] {
		if c.Score < rule.LooseBound && band(c.Record) != topBand {
			return c.Record
		}
	}
	return top.Record
}

// energyDifference is the decade distance between two energies, scaled to [0, 1].
func energyDifference(a, b float64) float64 {
	d := math.Abs(math.Log10(math.Max(a, minEnergy)) - math.Log10(math.Max(b, minEnergy)))
	return math.Min(d/energyDecadeSpan, 1)
}

// relativeDifference is |a-b| / max(|a|, |b|), 0 when both are zero.
func relativeDifference(a, b float64) float64 {
	denom := math.Max(math.Abs(a), math.Abs(b))
	if denom == 0 {
		return 0
	}
	return math.Abs(a-b) / denom
}

func energyDecade(megatons float64) int {
	return int(math.Floor(math.Log10(math.Max(megatons, minEnergy))))
}
