package errors

import "math"

// RequirePositive validates that a length input is strictly greater than zero.
// The field name is embedded in the error message so the CLI and HTTP facade
// can point the user at the offending input.
func RequirePositive(field string, v float64) error {
	if err := requireFinite(field, v); err != nil {
		return err
	}
	if v <= 0 {
		return New(ErrCodeInvalidInput, "%s must be greater than 0, got %g", field, v)
	}
	return nil
}

// RequireNonNegative validates that a thickness or kerf input is zero or greater.
func RequireNonNegative(field string, v float64) error {
	if err := requireFinite(field, v); err != nil {
		return err
	}
	if v < 0 {
		return New(ErrCodeInvalidInput, "%s must not be negative, got %g", field, v)
	}
	return nil
}

// RequireMinInt validates that an integer input is at least min.
func RequireMinInt(field string, v, min int) error {
	if v < min {
		return New(ErrCodeInvalidInput, "%s must be at least %d, got %d", field, min, v)
	}
	return nil
}

// requireFinite rejects NaN and infinite values before any range check.
// A NaN would otherwise slip through < and <= comparisons.
func requireFinite(field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return New(ErrCodeInvalidInput, "%s must be a finite number", field)
	}
	return nil
}
