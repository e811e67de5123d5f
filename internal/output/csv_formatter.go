package output

import (
	"bytes"
	"encoding/csv"
)

// CSVFormatter writes one row per participant followed by a totals row
type CSVFormatter struct{}

func (c CSVFormatter) Name() string { return "csv" }

func (c CSVFormatter) Format(r *Report) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Name", "Role", "Payment", "BasePct", "RolePct", "PropertyPct", "EquityPct", "ProfitPct", "FinalValue", "ProfitValue"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, res := range r.Results() {
		row := []string{
			res.Name,
			res.Role.String(),
			res.Payment.StringFixed(2),
			res.BasePct.StringFixed(2),
			res.RolePct.StringFixed(2),
			res.PropertyPct.StringFixed(2),
			res.EquityPct.StringFixed(2),
			res.ProfitPct.StringFixed(2),
			res.FinalValue.StringFixed(2),
			res.ProfitValue.StringFixed(2),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	if !r.Failed() {
		meta := r.Distribution.Meta
		total := []string{
			"TOTAL", "",
			meta.CashTotal.StringFixed(2),
			meta.TotalBasePct.StringFixed(2),
			meta.TotalRolePct.StringFixed(2),
			meta.TotalPropertyPct.StringFixed(2),
			meta.TotalEquityPct.StringFixed(2),
			meta.TotalProfitPct.StringFixed(2),
			meta.SalePrice.StringFixed(2),
			meta.ProjectProfit.StringFixed(2),
		}
		if err := w.Write(total); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
