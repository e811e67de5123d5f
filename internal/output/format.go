package output

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var amountPrinter = message.NewPrinter(language.English)

// FormatCurrency renders an amount in euros with thousands separators
func FormatCurrency(amount decimal.Decimal) string {
	_, frac, _ := strings.Cut(amount.Abs().StringFixed(2), ".")
	whole := amountPrinter.Sprintf("%d", amount.Abs().Round(2).Truncate(0).IntPart())

	sign := ""
	if amount.IsNegative() && !amount.Round(2).IsZero() {
		sign = "-"
	}
	return sign + "€" + whole + "." + frac
}

// FormatPercentage renders a percentage with two decimals
func FormatPercentage(pct decimal.Decimal) string {
	return pct.StringFixed(2) + "%"
}

// boundLabel formats an optional percentage bound, falling back to def
func boundLabel(p *decimal.Decimal, def string) string {
	if p == nil {
		return def
	}
	return FormatPercentage(*p)
}
