package analog

import (
	"embed"
	"fmt"
	"sync"

	"github.com/gocarina/gocsv"
)

//go:embed data/*.csv
var dataFS embed.FS

// ImpactRecord is a historical impact event or structure.
type ImpactRecord struct {
	Name           string  `csv:"name" json:"name"`
	EnergyMegatons float64 `csv:"energy_mt" json:"energy_mt"`
	CraterKm       float64 `csv:"crater_km" json:"crater_km"` // 0 for airbursts
	Year           int     `csv:"year" json:"year"`           // negative = years BCE
	Casualties     int64   `csv:"casualties" json:"casualties"`
	Description    string  `csv:"description" json:"description"`
}

// EarthquakeRecord is a historical earthquake.
type EarthquakeRecord struct {
	Name           string  `csv:"name" json:"name"`
	Magnitude      float64 `csv:"magnitude" json:"magnitude"`
	EnergyMegatons float64 `csv:"energy_mt" json:"energy_mt"`
	Year           int     `csv:"year" json:"year"`
	Casualties     int64   `csv:"casualties" json:"casualties"`
	Description    string  `csv:"description" json:"description"`
}

var (
	loadImpacts = sync.OnceValues(func() ([]ImpactRecord, error) {
		var records []ImpactRecord
		err := readCSV("data/impacts.csv", &records)
		return records, err
	})
	loadEarthquakes = sync.OnceValues(func() ([]EarthquakeRecord, error) {
		var records []EarthquakeRecord
		err := readCSV("data/earthquakes.csv", &records)
		return records, err
	})
)

// Impacts returns the built-in historical impact catalog. The slice is shared
// and must not be modified.
func Impacts() []ImpactRecord {
	records, err := loadImpacts()
	if err != nil {
		panic(err)
	}
	return records
}

// Earthquakes returns the built-in historical earthquake catalog. The slice is
// shared and must not be modified.
func Earthquakes() []EarthquakeRecord {
	records, err := loadEarthquakes()
	if err != nil {
		panic(err)
	}
	return records
}

func readCSV(name string, out any) error {
	data, err := dataFS.ReadFile(name)
	if err != nil {
		return fmt.Errorf("reading %s: %w", name, err)
	}
	if err := gocsv.UnmarshalBytes(data, out); err != nil {
		return fmt.Errorf("parsing %s: %w", name, err)
	}
	return nil
}
