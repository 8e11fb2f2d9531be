package impact

import (
	"errors"
	"fmt"
)

// DomainError reports an input that violates a documented precondition.
// Callers must treat it as a validation failure; no metric can be recovered.
type DomainError struct {
	Field  string
	Value  float64
	Reason string
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("%s = %g: %s", e.Field, e.Value, e.Reason)
}

// IsDomainError reports whether err (or anything it wraps) is a DomainError.
func IsDomainError(err error) bool {
	var de *DomainError
	return errors.As(err, &de)
}

func mustBePositive(field string, v float64) error {
	if v > 0 {
		return nil
	}
	return &DomainError{Field: field, Value: v, Reason: "must be positive"}
}
