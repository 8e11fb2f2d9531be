package telemetry

import (
	"log/slog"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/pthm-cable/impact/scenario"
)

// SweepStats holds aggregated statistics over a set of assessments.
type SweepStats struct {
	Count int `csv:"count"`

	// Energy distribution in megatons
	MegatonsMean float64 `csv:"megatons_mean"`
	MegatonsP10  float64 `csv:"megatons_p10"`
	MegatonsP50  float64 `csv:"megatons_p50"`
	MegatonsP90  float64 `csv:"megatons_p90"`

	CraterMeanKm float64 `csv:"crater_mean_km"`

	// Defense
	SuccessRate    float64 `csv:"defense_success_rate"`
	ConfidenceMean float64 `csv:"defense_confidence_mean"`
	ConfidenceStd  float64 `csv:"defense_confidence_std"`

	// Largest diameter the interceptor still handles (0 = none)
	MaxDeflectableM float64 `csv:"max_deflectable_m"`
}

// Percentile calculates the p-th percentile of a sorted slice, interpolating
// between closest ranks. p should be in [0, 1]. Returns 0 if slice is empty.
func Percentile(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 0 {
		return 0
	}
	if p <= 0 {
		return sorted[0]
	}
	if p >= 1 {
		return sorted[n-1]
	}

	// Linear interpolation
	idx := p * float64(n-1)
	lo := int(idx)
	hi := lo + 1
	if hi >= n {
		return sorted[n-1]
	}

	frac := idx - float64(lo)
	return sorted[lo]*(1-frac) + sorted[hi]*frac
}

// ComputeEnergyStats calculates mean and percentiles from energy values.
func ComputeEnergyStats(values []float64) (mean, p10, p50, p90 float64) {
	if len(values) == 0 {
		return 0, 0, 0, 0
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	mean = stat.Mean(sorted, nil)
	p10 = Percentile(sorted, 0.10)
	p50 = Percentile(sorted, 0.50)
	p90 = Percentile(sorted, 0.90)

	return mean, p10, p50, p90
}

// ComputeSweepStats summarises a sweep.
func ComputeSweepStats(as []scenario.Assessment) SweepStats {
	s := SweepStats{Count: len(as)}
	if len(as) == 0 {
		return s
	}

	megatons := make([]float64, len(as))
	craters := make([]float64, len(as))
	confidence := make([]float64, len(as))
	successes := 0
	for i, a := range as {
		megatons[i] = a.Metrics.TNTMegatons
		craters[i] = a.Metrics.CraterDiameterKm
		confidence[i] = float64(a.Defense.ConfidencePercent)
		if a.Defense.Success {
			successes++
			s.MaxDeflectableM = max(s.MaxDeflectableM, a.Request.Asteroid.DiameterMeters)
		}
	}

	s.MegatonsMean, s.MegatonsP10, s.MegatonsP50, s.MegatonsP90 = ComputeEnergyStats(megatons)
	s.CraterMeanKm = stat.Mean(craters, nil)
	s.SuccessRate = float64(successes) / float64(len(as))
	s.ConfidenceMean, s.ConfidenceStd = stat.PopMeanStdDev(confidence, nil)

	return s
}

// LogStats logs the sweep stats using slog.
func (s SweepStats) LogStats() {
	slog.Info("sweep stats",
		"count", s.Count,
		"megatons_mean", s.MegatonsMean,
		"megatons_p10", s.MegatonsP10,
		"megatons_p50", s.MegatonsP50,
		"megatons_p90", s.MegatonsP90,
		"crater_mean_km", s.CraterMeanKm,
		"defense_success_rate", s.SuccessRate,
		"defense_confidence_mean", s.ConfidenceMean,
		"defense_confidence_std", s.ConfidenceStd,
		"max_deflectable_m", s.MaxDeflectableM,
	)
}
