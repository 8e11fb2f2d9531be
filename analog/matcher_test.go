package analog

import (
	"math"
	"testing"

	"github.com/pthm-cable/impact/impact"
)

func TestCatalogsLoad(t *testing.T) {
	impacts := Impacts()
	if len(impacts) != 17 {
		t.Errorf("impact catalog has %d records, want 17", len(impacts))
	}
	if impacts[0].Name != "Chelyabinsk" || impacts[0].Year != 2013 {
		t.Errorf("first impact = %+v", impacts[0])
	}

	quakes := Earthquakes()
	if len(quakes) != 15 {
		t.Errorf("earthquake catalog has %d records, want 15", len(quakes))
	}
	for _, q := range quakes {
		if q.Magnitude <= 0 || q.EnergyMegatons <= 0 {
			t.Errorf("bad earthquake record %+v", q)
		}
	}
}

func TestFindClosestImpactEmptyCatalog(t *testing.T) {
	if _, ok := FindClosestImpact(impact.ImpactMetrics{TNTMegatons: 10}, nil); ok {
		t.Error("expected no match for empty catalog")
	}
	if _, ok := FindClosestEarthquake(impact.ImpactMetrics{TNTMegatons: 10}, nil); ok {
		t.Error("expected no match for empty catalog")
	}
}

func TestFindClosestImpactExact(t *testing.T) {
	rec, ok := FindClosestImpact(impact.ImpactMetrics{TNTMegatons: 12, CraterDiameterKm: 0}, Impacts())
	if !ok || rec.Name != "Tunguska" {
		t.Errorf("got %q, want Tunguska", rec.Name)
	}
}

func TestFindClosestImpactDiversity(t *testing.T) {
	m := impact.ImpactMetrics{TNTMegatons: 1000, CraterDiameterKm: 10}

	tests := []struct {
		name    string
		catalog []ImpactRecord
		want    string
	}{
		{
			// A scores 0.015: decisively close, returned directly.
			name: "fast path",
			catalog: []ImpactRecord{
				{Name: "A", EnergyMegatons: 1000, CraterKm: 9.5},
				{Name: "B", EnergyMegatons: 500, CraterKm: 7},
			},
			want: "A",
		},
		{
			// A scores 0.12 (decade 3), B scores 0.143 (decade 2).
			name: "prefers other decade",
			catalog: []ImpactRecord{
				{Name: "A", EnergyMegatons: 1000, CraterKm: 6},
				{Name: "B", EnergyMegatons: 500, CraterKm: 7},
				{Name: "C", EnergyMegatons: 1e6, CraterKm: 100},
			},
			want: "B",
		},
		{
			// Only runner-up in another decade scores 0.795, above the loose bound.
			name: "diverse candidate too far",
			catalog: []ImpactRecord{
				{Name: "A", EnergyMegatons: 1000, CraterKm: 6},
				{Name: "E", EnergyMegatons: 1500, CraterKm: 6},
				{Name: "F", EnergyMegatons: 1e6, CraterKm: 100},
			},
			want: "A",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, ok := FindClosestImpact(m, tt.catalog)
			if !ok {
				t.Fatal("expected a match")
			}
			if rec.Name != tt.want {
				t.Errorf("got %q, want %q", rec.Name, tt.want)
			}
		})
	}
}

func TestFindClosestImpactWindow(t *testing.T) {
	m := impact.ImpactMetrics{TNTMegatons: 1000, CraterDiameterKm: 10}

	build := func(fillers int) []ImpactRecord {
		catalog := []ImpactRecord{{Name: "top", EnergyMegatons: 1000, CraterKm: 6}}
		for i := 0; i < fillers; i++ {
			catalog = append(catalog, ImpactRecord{Name: "same-decade", EnergyMegatons: 1000, CraterKm: 5.5})
		}
		return append(catalog, ImpactRecord{Name: "diverse", EnergyMegatons: 500, CraterKm: 6})
	}

	if rec, _ := FindClosestImpact(m, build(4)); rec.Name != "diverse" {
		t.Errorf("4 fillers: got %q, want diverse", rec.Name)
	}
	if rec, _ := FindClosestImpact(m, build(5)); rec.Name != "top" {
		t.Errorf("5 fillers: got %q, want top (diverse outside window)", rec.Name)
	}
}

func TestFindClosestEarthquake(t *testing.T) {
	rec, ok := FindClosestEarthquake(impact.ImpactMetrics{TNTMegatons: 477, SeismicEquivalentMagnitude: 9.0}, Earthquakes())
	if !ok || rec.Name != "Tohoku" {
		t.Errorf("got %q, want Tohoku", rec.Name)
	}
}

func TestFindClosestEarthquakePrefilter(t *testing.T) {
	m := impact.ImpactMetrics{TNTMegatons: 0.0168, SeismicEquivalentMagnitude: 6.0}

	small := EarthquakeRecord{Name: "small", Magnitude: 6.0, EnergyMegatons: 0.0168, Casualties: 5}
	big := EarthquakeRecord{Name: "big", Magnitude: 7.6, EnergyMegatons: 3.79, Casualties: 1000}
	deadly := EarthquakeRecord{Name: "deadly", Magnitude: 6.5, EnergyMegatons: 0.08, Casualties: 500}
	quiet := EarthquakeRecord{Name: "quiet", Magnitude: 5.0, EnergyMegatons: 0.0005}

	if rec, _ := FindClosestEarthquake(m, []EarthquakeRecord{small, big}); rec.Name != "big" {
		t.Errorf("got %q, want big (small is filtered out)", rec.Name)
	}
	if rec, _ := FindClosestEarthquake(m, []EarthquakeRecord{small, big, deadly}); rec.Name != "deadly" {
		t.Errorf("got %q, want deadly", rec.Name)
	}
	if rec, _ := FindClosestEarthquake(m, []EarthquakeRecord{quiet, small}); rec.Name != "small" {
		t.Errorf("got %q, want small (fallback to unfiltered)", rec.Name)
	}
}

func TestFindClosestEarthquakeDiversity(t *testing.T) {
	m := impact.ImpactMetrics{TNTMegatons: 30, SeismicEquivalentMagnitude: 8.0}

	// Q scores 0.161 (band 8), R scores 0.178 (band 7).
	catalog := []EarthquakeRecord{
		{Name: "Q", Magnitude: 8.9, EnergyMegatons: 300, Casualties: 1000},
		{Name: "R", Magnitude: 7.6, EnergyMegatons: 1, Casualties: 1000},
	}
	if rec, _ := FindClosestEarthquake(m, catalog); rec.Name != "R" {
		t.Errorf("got %q, want R", rec.Name)
	}
}

func TestScores(t *testing.T) {
	m := impact.ImpactMetrics{TNTMegatons: 1000, CraterDiameterKm: 10, SeismicEquivalentMagnitude: 8}

	tests := []struct {
		name string
		got  float64
		want float64
	}{
		{"identical impact", ImpactScore(m, ImpactRecord{EnergyMegatons: 1000, CraterKm: 10}), 0},
		{"impact one decade", ImpactScore(m, ImpactRecord{EnergyMegatons: 100, CraterKm: 10}), 0.7 * 0.25},
		{"impact capped", ImpactScore(m, ImpactRecord{EnergyMegatons: 1e-3, CraterKm: 0}), 0.7 + 0.3},
		{"quake magnitude only", EarthquakeScore(m, EarthquakeRecord{Magnitude: 4, EnergyMegatons: 1000}), 0.6 * 0.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if math.Abs(tt.got-tt.want) > 1e-9 {
				t.Errorf("score = %v, want %v", tt.got, tt.want)
			}
		})
	}
}

func TestRankStable(t *testing.T) {
	ranked := Rank([]string{"a", "bb", "c", "dd"}, func(s string) float64 { return float64(len(s)) })
	want := []string{"a", "c", "bb", "dd"}
	for i, c := range ranked {
		if c.Record != want[i] {
			t.Errorf("ranked[%d] = %q, want %q", i, c.Record, want[i])
		}
	}
}
