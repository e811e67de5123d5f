package compare

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// TableFormatter formats comparison results as a console table
type TableFormatter struct{}

// Format generates a table of every participant under both models
func (tf *TableFormatter) Format(compSet *ComparisonSet) string {
	var sb strings.Builder

	sb.WriteString("ALLOCATION MODEL COMPARISON\n")
	sb.WriteString(strings.Repeat("=", 96) + "\n")
	sb.WriteString(fmt.Sprintf("Scenario: %s\n", compSet.ScenarioName))
	if compSet.ConfigPath != "" {
		sb.WriteString(fmt.Sprintf("Configuration: %s\n", compSet.ConfigPath))
	}
	sb.WriteString("\n")

	for _, outcome := range []ModelOutcome{compSet.Negotiated, compSet.ValueWeighted} {
		if outcome.Error != "" {
			sb.WriteString(fmt.Sprintf("%s: ERROR %s\n", modelName(outcome), outcome.Error))
		}
	}

	nameWidth := 20
	roleWidth := 15
	numWidth := 11

	sb.WriteString(fmt.Sprintf("%-*s %-*s %*s %*s %*s %*s %*s %*s\n",
		nameWidth, "Participant",
		roleWidth, "Role",
		numWidth, "Equity A",
		numWidth, "Equity B",
		numWidth, "Δ Equity",
		numWidth, "Profit A",
		numWidth, "Profit B",
		numWidth, "Δ Value"))
	sb.WriteString(strings.Repeat("-", 96) + "\n")

	for _, row := range compSet.Participants {
		sb.WriteString(fmt.Sprintf("%-*s %-*s %*s %*s %*s %*s %*s %*s\n",
			nameWidth, tf.truncate(row.Name, nameWidth),
			roleWidth, row.Role.String(),
			numWidth, tf.pct(row.NegotiatedEquityPct, row.InNegotiated),
			numWidth, tf.pct(row.WeightedEquityPct, row.InValueWeighted),
			numWidth, tf.deltaSymbol(row.EquityDiffPct)+row.EquityDiffPct.StringFixed(2),
			numWidth, tf.pct(row.NegotiatedProfitPct, row.InNegotiated),
			numWidth, tf.pct(row.WeightedProfitPct, row.InValueWeighted),
			numWidth, tf.deltaSymbol(row.FinalValueDiff)+tf.formatDecimal(row.FinalValueDiff)))
	}
	sb.WriteString(strings.Repeat("=", 96) + "\n")

	if len(compSet.Recommendations) > 0 {
		sb.WriteString("\nRECOMMENDATIONS\n")
		sb.WriteString(strings.Repeat("-", 96) + "\n")
		for _, rec := range compSet.Recommendations {
			sb.WriteString(fmt.Sprintf("• %s\n", rec))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// FormatCompact creates a single-line summary of the equity shifts
func (tf *TableFormatter) FormatCompact(compSet *ComparisonSet) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%s | ", compSet.ScenarioName))
	for i, row := range compSet.Participants {
		if i > 0 {
			sb.WriteString(" | ")
		}
		change := "="
		if !row.EquityDiffPct.IsZero() {
			change = tf.deltaSymbol(row.EquityDiffPct) + row.EquityDiffPct.StringFixed(2) + "pts"
		}
		sb.WriteString(fmt.Sprintf("%s: %s", row.Name, change))
	}
	return sb.String()
}

func (tf *TableFormatter) pct(d decimal.Decimal, present bool) string {
	if !present {
		return "-"
	}
	return d.StringFixed(2) + "%"
}

// formatDecimal formats money for display (in thousands)
func (tf *TableFormatter) formatDecimal(d decimal.Decimal) string {
	if d.Abs().GreaterThanOrEqual(decimal.NewFromInt(1000000)) {
		return d.Div(decimal.NewFromInt(1000000)).StringFixed(2) + "M"
	} else if d.Abs().GreaterThanOrEqual(decimal.NewFromInt(1000)) {
		return d.Div(decimal.NewFromInt(1000)).StringFixed(1) + "K"
	}
	return d.StringFixed(0)
}

// deltaSymbol returns "+" for positive deltas; negative values carry their own sign
func (tf *TableFormatter) deltaSymbol(delta decimal.Decimal) string {
	if delta.IsPositive() {
		return "+"
	}
	return ""
}

func (tf *TableFormatter) truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}

func modelName(outcome ModelOutcome) string {
	if outcome.Model == "" {
		return "Unknown model"
	}
	return fmt.Sprintf("Model %s", outcome.Model.Letter())
}
