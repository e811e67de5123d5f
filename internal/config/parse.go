package config

import (
	"fmt"
	"strings"

	"github.com/rgehrsitz/sharesplit/internal/domain"
	"github.com/shopspring/decimal"
)

// parseDecimal converts user text into a decimal; blank text is zero
func parseDecimal(field, raw string) (decimal.Decimal, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, parseError(field, raw, err)
	}
	return d, nil
}

// parseOptionalDecimal returns nil for blank text
func parseOptionalDecimal(field, raw string) (*decimal.Decimal, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}
	d, err := parseDecimal(field, raw)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func parseError(field, raw string, cause error) *domain.DistributionError {
	err := domain.NewDistributionError("parse_input", domain.ErrParse,
		fmt.Sprintf("%s: %q is not a valid number", field, raw))
	err.Cause = cause
	return err
}
