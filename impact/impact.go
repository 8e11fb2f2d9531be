// Package impact converts asteroid physical parameters into impact
// consequence estimates: energy, crater size, destruction radius, casualties
// and a seismic-equivalent magnitude.
//
// The scaling laws are empirical approximations and are reproduced as-is.
package impact

import (
	"math"
)

// Physical constants.
const (
	DefaultDensityKgPerM3 = 3000.0
	JoulesPerMegaton      = 4.184e15

	craterCoefficient     = 1.8
	craterDiameterExp     = 0.78
	craterDensityExp      = 0.33
	destructionMultiplier = 1.5
	lethalityFraction     = 0.5
	populationAreaScaleKm = 100.0 // population is spread over this many km²
)

// AsteroidParameters describes the impacting body.
type AsteroidParameters struct {
	DiameterMeters      float64 `json:"diameter_m" yaml:"diameter_m"`
	VelocityKmPerSecond float64 `json:"velocity_km_s" yaml:"velocity_km_s"`
	DensityKgPerM3      float64 `json:"density_kg_m3" yaml:"density_kg_m3"`
}

// NewAsteroid returns parameters with the default stony density.
func NewAsteroid(diameterMeters, velocityKmPerSecond float64) AsteroidParameters {
	return AsteroidParameters{
		DiameterMeters:      diameterMeters,
		VelocityKmPerSecond: velocityKmPerSecond,
		DensityKgPerM3:      DefaultDensityKgPerM3,
	}
}

// Validate returns a *DomainError for the first non-positive field.
func (p AsteroidParameters) Validate() error {
	if err := mustBePositive("diameter_m", p.DiameterMeters); err != nil {
		return err
	}
	if err := mustBePositive("velocity_km_s", p.VelocityKmPerSecond); err != nil {
		return err
	}
	return mustBePositive("density_kg_m3", p.DensityKgPerM3)
}

// Mass returns the mass of a homogeneous sphere in kilograms.
func (p AsteroidParameters) Mass() float64 {
	r := p.DiameterMeters / 2
	volume := 4.0 / 3.0 * math.Pi * r * r * r
	return volume * p.DensityKgPerM3
}

// ImpactMetrics is the derived consequence estimate for one impact.
type ImpactMetrics struct {
	KineticEnergyJoules        float64 `json:"kinetic_energy_j"`
	TNTMegatons                float64 `json:"tnt_megatons"`
	CraterDiameterKm           float64 `json:"crater_diameter_km"`
	DestructionRadiusKm        float64 `json:"destruction_radius_km"`
	ApproxCasualties           *int64  `json:"approx_casualties"` // nil = unknown
	SeismicEquivalentMagnitude float64 `json:"seismic_magnitude"`
}

// ComputeMetrics derives impact metrics from p. targetPopulation is optional;
// when nil, ApproxCasualties is nil rather than zero.
func ComputeMetrics(p AsteroidParameters, targetPopulation *int64) (ImpactMetrics, error) {
	if err := p.Validate(); err != nil {
		return ImpactMetrics{}, err
	}
	if targetPopulation != nil && *targetPopulation < 0 {
		return ImpactMetrics{}, &DomainError{
			Field:  "target_population",
			Value:  float64(*targetPopulation),
			Reason: "must not be negative",
		}
	}

	v := p.VelocityKmPerSecond * 1000
	energy := 0.5 * p.Mass() * v * v

	crater := craterCoefficient *
		math.Pow(p.DiameterMeters/1000, craterDiameterExp) *
		math.Pow(p.DensityKgPerM3/DefaultDensityKgPerM3, craterDensityExp)
	radius := crater * destructionMultiplier

	m := ImpactMetrics{
		KineticEnergyJoules:        round(energy, 2),
		TNTMegatons:                round(energy/JoulesPerMegaton, 2),
		CraterDiameterKm:           round(crater, 2),
		DestructionRadiusKm:        round(radius, 2),
		SeismicEquivalentMagnitude: round(SeismicMagnitude(energy), 1),
	}

	if targetPopulation != nil {
		area := math.Pi * radius * radius
		casualties := int64(math.Floor(float64(*targetPopulation) * area / populationAreaScaleKm * lethalityFraction))
		m.ApproxCasualties = &casualties
	}

	return m, nil
}

// SeismicMagnitude maps an energy in joules onto a rough Richter-equivalent magnitude.
func SeismicMagnitude(energyJoules float64) float64 {
	return 2.0/3.0*math.Log10(energyJoules) - 2.9
}

func round(v float64, places int) float64 {
	scale := math.Pow(10, float64(places))
	return math.Round(v*scale) / scale
}
