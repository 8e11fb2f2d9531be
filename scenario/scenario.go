// Package scenario assembles a full impact assessment: target location,
// impact metrics, a kinetic-impactor defense outcome and historical analogs.
package scenario

import (
	"fmt"
	"math"

	"github.com/pthm-cable/impact/analog"
	"github.com/pthm-cable/impact/config"
	"github.com/pthm-cable/impact/deflection"
	"github.com/pthm-cable/impact/geo"
	"github.com/pthm-cable/impact/impact"
)

// Request holds the inputs for one assessment.
type Request struct {
	Name          string                    `json:"name,omitempty"`
	Asteroid      impact.AsteroidParameters `json:"asteroid"`
	Target        geo.GeoPoint              `json:"target"`
	Population    *int64                    `json:"population,omitempty"`
	LeadTimeYears float64                   `json:"lead_time_years"`
	Interceptor   deflection.Interceptor    `json:"interceptor"`
}

// NewRequest returns a request populated with configured defaults for
// density, lead time and interceptor.
func NewRequest(cfg *config.Config, diameterMeters, velocityKmPerSecond float64) Request {
	return Request{
		Asteroid: impact.AsteroidParameters{
			DiameterMeters:      diameterMeters,
			VelocityKmPerSecond: velocityKmPerSecond,
			DensityKgPerM3:      cfg.Asteroid.DensityKgPerM3,
		},
		LeadTimeYears: cfg.Defense.LeadTimeYears,
		Interceptor:   cfg.Defense.Interceptor,
	}
}

// Assessment is the combined result of a Request.
type Assessment struct {
	Request         Request              `json:"request"`
	TargetPoint     geo.SpacePoint       `json:"target_point"`
	NearestPreset   string               `json:"nearest_preset"`
	NearestPresetKm float64              `json:"nearest_preset_km"`
	Metrics         impact.ImpactMetrics `json:"metrics"`
	Severity        impact.Severity      `json:"severity"`
	Defense         deflection.Outcome   `json:"defense"`

	// MinimumLeadTime is nil when the interceptor delivers no momentum.
	MinimumLeadTime *float64 `json:"minimum_lead_time_years"`

	// Analogs are nil when the corresponding catalog is empty.
	ImpactAnalog     *analog.ImpactRecord     `json:"impact_analog"`
	EarthquakeAnalog *analog.EarthquakeRecord `json:"earthquake_analog"`
}

// Catalogs are the reference datasets used for analog matching.
type Catalogs struct {
	Impacts     []analog.ImpactRecord
	Earthquakes []analog.EarthquakeRecord
}

// DefaultCatalogs returns the built-in reference datasets.
func DefaultCatalogs() Catalogs {
	return Catalogs{
		Impacts:     analog.Impacts(),
		Earthquakes: analog.Earthquakes(),
	}
}

// Assess evaluates req against the given catalogs. globeRadius is the sphere
// the target point is projected onto.
func Assess(req Request, cat Catalogs, globeRadius float64) (Assessment, error) {
	metrics, err := impact.ComputeMetrics(req.Asteroid, req.Population)
	if err != nil {
		return Assessment{}, fmt.Errorf("computing impact metrics: %w", err)
	}

	defense, err := deflection.Compute(req.Asteroid, req.LeadTimeYears, req.Interceptor)
	if err != nil {
		return Assessment{}, fmt.Errorf("computing deflection: %w", err)
	}

	minLead, err := deflection.MinimumLeadTimeYears(req.Asteroid, req.Interceptor)
	if err != nil {
		return Assessment{}, fmt.Errorf("computing minimum lead time: %w", err)
	}

	preset, presetKm := geo.NearestTarget(req.Target)

	a := Assessment{
		Request:         req,
		TargetPoint:     geo.ToSpacePoint(req.Target.LatitudeDeg, req.Target.LongitudeDeg, globeRadius),
		NearestPreset:   preset.Name,
		NearestPresetKm: presetKm,
		Metrics:         metrics,
		Severity:        metrics.Severity(),
		Defense:         defense,
	}
	if !math.IsInf(minLead, 1) {
		a.MinimumLeadTime = &minLead
	}

	if rec, ok := analog.FindClosestImpact(metrics, cat.Impacts); ok {
		a.ImpactAnalog = &rec
	}
	if rec, ok := analog.FindClosestEarthquake(metrics, cat.Earthquakes); ok {
		a.EarthquakeAnalog = &rec
	}

	return a, nil
}
