// Package validation provides loan input and output format validation.
package validation

import (
	"errors"
	"fmt"

	"github.com/loancalc/loancalc/pkg/constants"
)

// Sentinel causes for rejected loan inputs. Callers distinguish them with
// errors.Is.
var (
	ErrInvalidPrincipal = errors.New("invalid principal")
	ErrInvalidRate      = errors.New("invalid rate")
	ErrInvalidTerm      = errors.New("invalid term")
)

// ValidationError reports a rejected loan input with a human-readable message.
type ValidationError struct {
	cause error
	msg   string
}

func (e *ValidationError) Error() string {
	return e.msg
}

func (e *ValidationError) Unwrap() error {
	return e.cause
}

func newValidationError(cause error, format string, args ...interface{}) *ValidationError {
	return &ValidationError{cause: cause, msg: fmt.Sprintf(format, args...)}
}

// ValidateLoanTerms checks loan inputs before any calculation. It is a pure
// predicate check with no side effects.
func ValidateLoanTerms(principal, annualRate float64, termYears int) error {
	if principal <= 0 {
		return newValidationError(ErrInvalidPrincipal,
			"principal must be positive, got %.2f", principal)
	}
	if annualRate <= 0 || annualRate >= constants.PercentageMultiplier {
		return newValidationError(ErrInvalidRate,
			"rate must be between 0.01%% and 99.99%%, got %.2f", annualRate)
	}
	if termYears <= 0 {
		return newValidationError(ErrInvalidTerm,
			"term must be at least 1 year, got %d", termYears)
	}
	return nil
}
