package domain

import (
	"errors"

	"github.com/shopspring/decimal"
)

// Fatal error kinds. A DistributionError always wraps exactly one of these,
// so callers can branch with errors.Is.
var (
	ErrInvalidParameter = errors.New("invalid parameter")
	ErrBudgetExceeded   = errors.New("share budget exceeded")
	ErrNoParticipants   = errors.New("no participants")
	ErrBoundsInfeasible = errors.New("profit bounds infeasible")
	ErrParse            = errors.New("parse error")
)

// DistributionError represents an expected business failure of a calculation
type DistributionError struct {
	Operation string
	Kind      error
	Message   string
	// Excess is the overshoot in percentage points for ErrBudgetExceeded
	Excess decimal.Decimal
	Cause  error
}

// NewDistributionError builds a DistributionError of the given kind
func NewDistributionError(operation string, kind error, message string) *DistributionError {
	return &DistributionError{
		Operation: operation,
		Kind:      kind,
		Message:   message,
	}
}

func (e *DistributionError) Error() string {
	if e.Cause != nil {
		return e.Operation + ": " + e.Message + ": " + e.Cause.Error()
	}
	return e.Operation + ": " + e.Message
}

func (e *DistributionError) Unwrap() []error {
	errs := make([]error, 0, 2)
	if e.Kind != nil {
		errs = append(errs, e.Kind)
	}
	if e.Cause != nil {
		errs = append(errs, e.Cause)
	}
	return errs
}

// UserMessage returns the message without the operation prefix, for banners
func (e *DistributionError) UserMessage() string {
	return e.Message
}

// BannerMessage extracts a display message from any error
func BannerMessage(err error) string {
	var de *DistributionError
	if errors.As(err, &de) {
		return de.UserMessage()
	}
	return err.Error()
}
