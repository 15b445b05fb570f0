// Package currencyutils provides exact decimal parsing and rendering for
// monetary amounts.
package currencyutils

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ParseAmount parses a decimal amount string. An empty or blank string
// parses to zero; anything else must be a valid decimal number. The
// source feed is machine-generated, so no symbol or separator scrubbing
// is done here.
func ParseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid decimal amount '%s': %w", s, err)
	}
	return d, nil
}

// FormatAmount renders the absolute value of an amount with exactly two
// decimal places, rounding half away from zero.
func FormatAmount(d decimal.Decimal) string {
	return d.Abs().StringFixed(2)
}
