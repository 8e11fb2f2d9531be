// Package deflection estimates the outcome of a kinetic-impactor mission
// against an asteroid given a warning lead time.
//
// The model is a linear, constant-velocity-change approximation: the velocity
// change imparted at intercept accumulates into a position shift over the
// lead time. No orbital mechanics are involved.
package deflection

import (
	"math"

	"github.com/pthm-cable/impact/impact"
)

// Geometry constants.
const (
	EarthRadiusKm  = 6371.0
	SafetyMarginKm = 10000.0
	SecondsPerYear = 365.25 * 24 * 3600
)

// SafeMissDistanceKm is the miss distance a deflection must exceed.
const SafeMissDistanceKm = EarthRadiusKm + SafetyMarginKm

// Diameter tiers in meters.
const (
	tooLargeDiameter = 1000.0
	largeDiameter    = 500.0
	mediumDiameter   = 100.0

	largeMinLeadTime  = 10.0
	mediumMinLeadTime = 2.0
)

// Interceptor describes the impacting spacecraft.
type Interceptor struct {
	MassKg                    float64 `yaml:"mass_kg" json:"mass_kg"`
	VelocityKmPerSecond       float64 `yaml:"velocity_km_s" json:"velocity_km_s"`
	MomentumEnhancementFactor float64 `yaml:"beta" json:"beta"`
}

// DART returns the reference interceptor parameters.
func DART() Interceptor {
	return Interceptor{
		MassKg:                    570,
		VelocityKmPerSecond:       6.6,
		MomentumEnhancementFactor: 3.6,
	}
}

// Momentum returns the momentum delivered to the target in kg·m/s.
func (in Interceptor) Momentum() float64 {
	return in.MomentumEnhancementFactor * in.MassKg * in.VelocityKmPerSecond * 1000
}

// Outcome is the classified result of a deflection attempt.
type Outcome struct {
	Success                       bool    `json:"success"`
	VelocityChangeMetersPerSecond float64 `json:"velocity_change_m_s"`
	DeflectionDistanceKm          float64 `json:"deflection_distance_km"`
	MissDistanceKm                float64 `json:"miss_distance_km"`
	ConfidencePercent             int     `json:"confidence_percent"`
	Reason                        Reason  `json:"reason"`
}

// Compute estimates whether the interceptor can deflect the asteroid with the
// given lead time.
func Compute(p impact.AsteroidParameters, leadTimeYears float64, in Interceptor) (Outcome, error) {
	if err := p.Validate(); err != nil {
		return Outcome{}, err
	}
	if leadTimeYears < 0 {
		return Outcome{}, &impact.DomainError{
			Field:  "lead_time_years",
			Value:  leadTimeYears,
			Reason: "must not be negative",
		}
	}

	dv := in.Momentum() / p.Mass()
	distanceKm := dv * leadTimeYears * SecondsPerYear / 1000
	miss := distanceKm

	out := classify(p.DiameterMeters, leadTimeYears, miss)
	out.VelocityChangeMetersPerSecond = dv
	out.DeflectionDistanceKm = math.Round(distanceKm*100) / 100
	out.MissDistanceKm = math.Round(miss*100) / 100
	return out, nil
}

// classify applies the diameter tiers. The medium tier reports a marginal
// success when the miss distance falls short but the lead time is at least
// two years; the small tier always succeeds.
func classify(diameter, leadTimeYears, missKm float64) Outcome {
	clears := missKm > SafeMissDistanceKm

	switch {
	case diameter > tooLargeDiameter:
		return Outcome{Success: false, ConfidencePercent: 5, Reason: ReasonTooLarge}

	case diameter > largeDiameter:
		if leadTimeYears >= largeMinLeadTime && clears {
			return Outcome{Success: true, ConfidencePercent: 60, Reason: ReasonLargeDeflected}
		}
		return Outcome{Success: false, ConfidencePercent: 30, Reason: ReasonLargeInsufficient}

	case diameter > mediumDiameter:
		if clears {
			return Outcome{Success: true, ConfidencePercent: 85, Reason: ReasonMediumDeflected}
		}
		if leadTimeYears < mediumMinLeadTime {
			return Outcome{Success: false, ConfidencePercent: 40, Reason: ReasonMediumTooLate}
		}
		return Outcome{Success: true, ConfidencePercent: 70, Reason: ReasonMediumMarginal}

	default:
		if missKm > 2*SafeMissDistanceKm {
			return Outcome{Success: true, ConfidencePercent: 95, Reason: ReasonSmallDeflected}
		}
		return Outcome{Success: true, ConfidencePercent: 80, Reason: ReasonSmallNudged}
	}
}

// MinimumLeadTimeYears returns the lead time at which the linear miss distance
// first exceeds the safety margin. Returns +Inf when the interceptor delivers
// no momentum.
func MinimumLeadTimeYears(p impact.AsteroidParameters, in Interceptor) (float64, error) {
	if err := p.Validate(); err != nil {
		return 0, err
	}
	dv := in.Momentum() / p.Mass()
	if dv <= 0 {
		return math.Inf(1), nil
	}
	return SafeMissDistanceKm * 1000 / dv / SecondsPerYear, nil
}
