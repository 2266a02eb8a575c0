package domain

import (
	"errors"
	"fmt"
	"strconv"
)

var (
	// ErrInvalidParameter is returned when a parameter lies outside its valid domain
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrDegenerateDomain marks an empty or zero-length sample domain.
	// Computations over such a domain yield an empty series instead of failing.
	ErrDegenerateDomain = errors.New("degenerate sample domain")

	// ErrNonFiniteOutput is returned if a computed value is NaN or infinite
	ErrNonFiniteOutput = errors.New("non-finite curve output")

	// ErrUnknownField is returned when a parameter name does not exist for a family
	ErrUnknownField = errors.New("unknown parameter field")
)

// ParameterError describes a single invalid parameter value
// It wraps ErrInvalidParameter so callers can match with errors.Is
type ParameterError struct {
	Family CurveFamily
	Field  string
	Value  float64
	Reason string
}

func (e *ParameterError) Error() string {
	return fmt.Sprintf("invalid %s parameter %s=%s: %s",
		e.Family, e.Field, strconv.FormatFloat(e.Value, 'g', -1, 64), e.Reason)
}

func (e *ParameterError) Unwrap() error {
	return ErrInvalidParameter
}
