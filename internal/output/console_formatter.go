package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rgehrsitz/sharesplit/internal/domain"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true)
	headingStyle = lipgloss.NewStyle().Bold(true).Underline(true)
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	errorStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

const rule = "================================================================================================================="

// ConsoleFormatter prints the compact summary table
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console-lite" }

func (c ConsoleFormatter) Format(r *Report) ([]byte, error) {
	var buf bytes.Buffer

	fmt.Fprintln(&buf, titleStyle.Render("PROJECT SHARE DISTRIBUTION"))
	fmt.Fprintf(&buf, "Scenario: %s  |  Model: %s (%s)\n", r.ScenarioName, modelLabel(r.Model), r.Model.Letter())
	writeBanners(&buf, r)

	if r.Failed() {
		return buf.Bytes(), nil
	}
	fmt.Fprintln(&buf)
	writeResultTable(&buf, r.Distribution)
	return buf.Bytes(), nil
}

// ConsoleVerboseFormatter prints the detailed report with assumptions, pools and per-head bonuses
type ConsoleVerboseFormatter struct{}

func (c ConsoleVerboseFormatter) Name() string { return "console" }

func (c ConsoleVerboseFormatter) Format(r *Report) ([]byte, error) {
	var buf bytes.Buffer

	fmt.Fprintln(&buf, rule)
	fmt.Fprintln(&buf, titleStyle.Render("DETAILED PROJECT SHARE ANALYSIS"))
	fmt.Fprintln(&buf, rule)
	fmt.Fprintf(&buf, "Scenario: %s\n", r.ScenarioName)
	if r.Description != "" {
		fmt.Fprintf(&buf, "%s\n", mutedStyle.Render(r.Description))
	}
	if r.CalculationID != "" {
		fmt.Fprintf(&buf, "Calculation ID: %s\n", r.CalculationID)
	}
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, headingStyle.Render("KEY ASSUMPTIONS"))
	for _, a := range DefaultAssumptions {
		fmt.Fprintf(&buf, "• %s\n", a)
	}
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, headingStyle.Render("PROJECT"))
	fmt.Fprintf(&buf, "Project Cost:     %s\n", FormatCurrency(r.Project.Cost))
	fmt.Fprintf(&buf, "Sale Price:       %s\n", FormatCurrency(r.Project.SalePrice))
	fmt.Fprintf(&buf, "Profit:           %s\n", FormatCurrency(r.Project.Profit()))
	if r.Project.PropertyOwner != "" || r.Project.PropertyValue.IsPositive() {
		fmt.Fprintf(&buf, "Property:         %s contributed by %s\n", FormatCurrency(r.Project.PropertyValue), ownerLabel(r.Project.PropertyOwner))
	}
	fmt.Fprintf(&buf, "Allocation Model: %s (%s)\n", modelLabel(r.Model), r.Model.Letter())
	fmt.Fprintln(&buf)

	writeBanners(&buf, r)

	fmt.Fprintln(&buf, headingStyle.Render("ROLE BONUSES"))
	for _, role := range []domain.Role{domain.RoleDeveloper, domain.RoleConstructor, domain.RoleInvestor} {
		heads := r.RoleCounts.Of(role)
		fmt.Fprintf(&buf, "%-12s pool %8s  %d %s  %8s each\n",
			role.String()+":",
			FormatPercentage(r.Bonuses.ForRole(role)),
			heads, plural(heads, "person", "people"),
			FormatPercentage(r.PerHead.For(role)))
	}
	fmt.Fprintln(&buf)

	if r.Failed() {
		return buf.Bytes(), nil
	}

	meta := r.Distribution.Meta
	fmt.Fprintln(&buf, headingStyle.Render("POOLS"))
	fmt.Fprintf(&buf, "Base Pool:        %s of %s cash\n", FormatPercentage(meta.BasePool), FormatCurrency(meta.EffectiveCashTotal))
	fmt.Fprintf(&buf, "Role Pool:        %s\n", FormatPercentage(meta.RolePool))
	if meta.Model == domain.ModelNegotiated {
		fmt.Fprintf(&buf, "Property Pool:    %s (base %s + profit %s)\n",
			FormatPercentage(meta.PropertyPool), FormatPercentage(meta.PropertyBaseShare), FormatPercentage(meta.PropertyProfitEffective))
	} else {
		if meta.PropertyWeight != nil {
			fmt.Fprintf(&buf, "Property Weight:  %s×\n", meta.PropertyWeight.StringFixed(2))
		}
		if meta.PropertyProfitMinPct != nil || meta.PropertyProfitMaxPct != nil {
			fmt.Fprintf(&buf, "Owner Profit:     %s to %s\n", boundLabel(meta.PropertyProfitMinPct, "0.00%"), boundLabel(meta.PropertyProfitMaxPct, "100.00%"))
		}
	}
	fmt.Fprintf(&buf, "Cash Total:       %s\n", FormatCurrency(meta.CashTotal))
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, headingStyle.Render("DISTRIBUTION"))
	writeResultTable(&buf, r.Distribution)
	return buf.Bytes(), nil
}

func writeBanners(buf *bytes.Buffer, r *Report) {
	for _, e := range r.Errors {
		fmt.Fprintln(buf, errorStyle.Render("ERROR: "+e))
	}
	for _, w := range r.Warnings {
		fmt.Fprintln(buf, warningStyle.Render("WARNING: "+w))
	}
	if len(r.Errors)+len(r.Warnings) > 0 {
		fmt.Fprintln(buf)
	}
}

func writeResultTable(buf *bytes.Buffer, dist *domain.Distribution) {
	header := fmt.Sprintf("%-20s %-15s %14s %9s %9s %9s %9s %9s %16s %16s",
		"Name", "Role", "Paid", "Base", "Role", "Property", "Equity", "Profit", "Final Value", "Profit Value")
	fmt.Fprintln(buf, titleStyle.Render(header))
	fmt.Fprintln(buf, strings.Repeat("-", len(header)))

	for _, res := range dist.Results {
		fmt.Fprintf(buf, "%-20s %-15s %14s %9s %9s %9s %9s %9s %16s %16s\n",
			truncate(res.Name, 20),
			res.Role.String(),
			FormatCurrency(res.Payment),
			FormatPercentage(res.BasePct),
			FormatPercentage(res.RolePct),
			FormatPercentage(res.PropertyPct),
			FormatPercentage(res.EquityPct),
			FormatPercentage(res.ProfitPct),
			FormatCurrency(res.FinalValue),
			FormatCurrency(res.ProfitValue))
	}

	meta := dist.Meta
	fmt.Fprintln(buf, strings.Repeat("-", len(header)))
	fmt.Fprintf(buf, "%-20s %-15s %14s %9s %9s %9s %9s %9s\n",
		"TOTAL", "",
		FormatCurrency(meta.CashTotal),
		FormatPercentage(meta.TotalBasePct),
		FormatPercentage(meta.TotalRolePct),
		FormatPercentage(meta.TotalPropertyPct),
		FormatPercentage(meta.TotalEquityPct),
		FormatPercentage(meta.TotalProfitPct))
}

func modelLabel(m domain.AllocationModel) string {
	if m == domain.ModelValueWeighted {
		return "Value-weighted"
	}
	return "Negotiated"
}

func ownerLabel(name string) string {
	if name == "" {
		return "(unnamed owner)"
	}
	return name
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
