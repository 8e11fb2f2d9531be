package impact

// Severity is a coarse label for the reach of an impact.
type Severity string

const (
	SeverityAirburst    Severity = "airburst"
	SeverityLocal       Severity = "local"
	SeverityRegional    Severity = "regional"
	SeverityContinental Severity = "continental"
	SeverityGlobal      Severity = "global"
)

// Severity thresholds in megatons TNT.
var severityBands = []struct {
	minMegatons float64
	severity    Severity
}{
	{1e5, SeverityGlobal},
	{1e3, SeverityContinental},
	{10, SeverityRegional},
	{1, SeverityLocal},
}

// Severity classifies the metrics by energy band.
func (m ImpactMetrics) Severity() Severity {
	for _, b := range severityBands {
		if m.TNTMegatons >= b.minMegatons {
			return b.severity
		}
	}
	return SeverityAirburst
}
