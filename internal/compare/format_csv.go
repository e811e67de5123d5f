package compare

import (
	"encoding/csv"
	"strings"
)

// CSVFormatter formats comparison results as CSV
type CSVFormatter struct{}

// Format generates one CSV row per participant
func (cf *CSVFormatter) Format(compSet *ComparisonSet) (string, error) {
	var sb strings.Builder
	writer := csv.NewWriter(&sb)

	header := []string{
		"Participant",
		"Role",
		"Negotiated Equity %",
		"Value-Weighted Equity %",
		"Equity Diff",
		"Negotiated Profit %",
		"Value-Weighted Profit %",
		"Profit Diff",
		"Negotiated Final Value",
		"Value-Weighted Final Value",
		"Final Value Diff",
		"Negotiated Profit Value",
		"Value-Weighted Profit Value",
		"Profit Value Diff",
	}
	if err := writer.Write(header); err != nil {
		return "", err
	}

	for _, row := range compSet.Participants {
		if err := writer.Write(cf.formatRow(row)); err != nil {
			return "", err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", err
	}
	return sb.String(), nil
}

func (cf *CSVFormatter) formatRow(row ParticipantComparison) []string {
	return []string{
		row.Name,
		row.Role.String(),
		row.NegotiatedEquityPct.StringFixed(2),
		row.WeightedEquityPct.StringFixed(2),
		row.EquityDiffPct.StringFixed(2),
		row.NegotiatedProfitPct.StringFixed(2),
		row.WeightedProfitPct.StringFixed(2),
		row.ProfitDiffPct.StringFixed(2),
		row.NegotiatedFinalValue.StringFixed(2),
		row.WeightedFinalValue.StringFixed(2),
		row.FinalValueDiff.StringFixed(2),
		row.NegotiatedProfitValue.StringFixed(2),
		row.WeightedProfitValue.StringFixed(2),
		row.ProfitValueDiff.StringFixed(2),
	}
}
