package deflection

// Reason explains an Outcome classification.
type Reason string

const (
	ReasonTooLarge          Reason = "too large for a single kinetic-impactor mission"
	ReasonLargeDeflected    Reason = "large body deflected with a decade of warning"
	ReasonLargeInsufficient Reason = "large body needs at least 10 years of warning and a safe miss distance"
	ReasonMediumDeflected   Reason = "deflected beyond the safety margin"
	ReasonMediumTooLate     Reason = "insufficient warning time to deflect"
	ReasonMediumMarginal    Reason = "marginal success, miss distance below the safety margin"
	ReasonSmallDeflected    Reason = "small body deflected well clear of Earth"
	ReasonSmallNudged       Reason = "small body deflected"
)
