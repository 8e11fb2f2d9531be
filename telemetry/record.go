package telemetry

import (
	"log/slog"
	"strconv"

	"github.com/pthm-cable/impact/scenario"
)

// AssessmentRecord is the flat CSV row for one assessment.
type AssessmentRecord struct {
	Name       string  `csv:"name"`
	Diameter   float64 `csv:"diameter_m"`
	Velocity   float64 `csv:"velocity_km_s"`
	Density    float64 `csv:"density_kg_m3"`
	Lat        float64 `csv:"lat"`
	Lon        float64 `csv:"lon"`
	Population string  `csv:"population"` // empty = unknown

	EnergyJ     float64 `csv:"energy_j"`
	Megatons    float64 `csv:"megatons"`
	CraterKm    float64 `csv:"crater_km"`
	RadiusKm    float64 `csv:"destruction_radius_km"`
	Casualties  string  `csv:"casualties"` // empty = unknown
	Magnitude   float64 `csv:"magnitude"`
	Severity    string  `csv:"severity"`
	LeadTime    float64 `csv:"lead_time_years"`
	Success     bool    `csv:"defense_success"`
	Confidence  int     `csv:"defense_confidence"`
	MissKm      float64 `csv:"miss_distance_km"`
	DeltaV      float64 `csv:"delta_v_m_s"`
	Reason      string  `csv:"defense_reason"`
	ImpactMatch string  `csv:"impact_analog"`
	QuakeMatch  string  `csv:"earthquake_analog"`
}

// NewAssessmentRecord flattens an assessment.
func NewAssessmentRecord(a scenario.Assessment) AssessmentRecord {
	r := AssessmentRecord{
		Name:       a.Request.Name,
		Diameter:   a.Request.Asteroid.DiameterMeters,
		Velocity:   a.Request.Asteroid.VelocityKmPerSecond,
		Density:    a.Request.Asteroid.DensityKgPerM3,
		Lat:        a.Request.Target.LatitudeDeg,
		Lon:        a.Request.Target.LongitudeDeg,
		Population: optionalInt(a.Request.Population),
		EnergyJ:    a.Metrics.KineticEnergyJoules,
		Megatons:   a.Metrics.TNTMegatons,
		CraterKm:   a.Metrics.CraterDiameterKm,
		RadiusKm:   a.Metrics.DestructionRadiusKm,
		Casualties: optionalInt(a.Metrics.ApproxCasualties),
		Magnitude:  a.Metrics.SeismicEquivalentMagnitude,
		Severity:   string(a.Severity),
		LeadTime:   a.Request.LeadTimeYears,
		Success:    a.Defense.Success,
		Confidence: a.Defense.ConfidencePercent,
		MissKm:     a.Defense.MissDistanceKm,
		DeltaV:     a.Defense.VelocityChangeMetersPerSecond,
		Reason:     string(a.Defense.Reason),
	}
	if a.ImpactAnalog != nil {
		r.ImpactMatch = a.ImpactAnalog.Name
	}
	if a.EarthquakeAnalog != nil {
		r.QuakeMatch = a.EarthquakeAnalog.Name
	}
	return r
}

// LogValue implements slog.LogValuer for structured logging.
func (r AssessmentRecord) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("name", r.Name),
		slog.Float64("diameter_m", r.Diameter),
		slog.Float64("velocity_km_s", r.Velocity),
		slog.Float64("megatons", r.Megatons),
		slog.Float64("crater_km", r.CraterKm),
		slog.Float64("destruction_radius_km", r.RadiusKm),
		slog.String("casualties", r.Casualties),
		slog.Float64("magnitude", r.Magnitude),
		slog.String("severity", r.Severity),
		slog.Bool("defense_success", r.Success),
		slog.Int("defense_confidence", r.Confidence),
		slog.String("impact_analog", r.ImpactMatch),
		slog.String("earthquake_analog", r.QuakeMatch),
	)
}

func optionalInt(v *int64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatInt(*v, 10)
}
