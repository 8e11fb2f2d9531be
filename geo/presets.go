package geo

import (
	"math"
	"sort"
	"strings"
)

// Target is a named impact location with an approximate population.
type Target struct {
	Name       string   `yaml:"name" json:"name"`
	Point      GeoPoint `yaml:"point" json:"point"`
	Population int64    `yaml:"population" json:"population"`
}

// Presets is the built-in set of impact targets.
var Presets = []Target{
	{"New York", GeoPoint{40.7128, -74.0060}, 8_300_000},
	{"London", GeoPoint{51.5074, -0.1278}, 8_900_000},
	{"Tokyo", GeoPoint{35.6762, 139.6503}, 14_000_000},
	{"Mumbai", GeoPoint{19.0760, 72.8777}, 12_500_000},
	{"Sao Paulo", GeoPoint{-23.5505, -46.6333}, 12_300_000},
	{"Cairo", GeoPoint{30.0444, 31.2357}, 10_000_000},
	{"Sydney", GeoPoint{-33.8688, 151.2093}, 5_300_000},
	{"Pacific Ocean", GeoPoint{0, -160}, 0},
	{"Sahara", GeoPoint{23.4162, 25.6628}, 0},
	{"Siberia", GeoPoint{60.8860, 101.8940}, 0},
}

// LookupTarget finds a preset by case-insensitive name.
func LookupTarget(name string) (Target, bool) {
	for _, t := range Presets {
		if strings.EqualFold(t.Name, name) {
			return t, true
		}
	}
	return Target{}, false
}

// NearestTarget returns the preset closest to p and its distance in km.
func NearestTarget(p GeoPoint) (Target, float64) {
	best := -1
	bestDist := math.Inf(1)
	for i, t := range Presets {
		if d := GreatCircleDistanceKm(p, t.Point); d < bestDist {
			best, bestDist = i, d
		}
	}
	if best < 0 {
		return Target{}, bestDist
	}
	return Presets[best], bestDist
}

// TargetNames returns the preset names in sorted order.
func TargetNames() []string {
	names := make([]string, len(Presets))
	for i, t := range Presets {
		names[i] = t.Name
	}
	sort.Strings(names)
	return names
}
