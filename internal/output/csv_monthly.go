package output

import (
	"bytes"
	"encoding/csv"

	"github.com/rigledger/haul-calculator/internal/domain"
)

// MonthlyCSVFormatter exports the monthly profit-and-loss rows (one row per
// calendar month present in the ledger).
type MonthlyCSVFormatter struct{}

func (c MonthlyCSVFormatter) Name() string { return "csv" }

func (c MonthlyCSVFormatter) Format(snapshot *domain.AnalysisSnapshot) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Month", "Revenue", "Miles", "FuelExpenses", "OtherExpenses", "ReserveAccrual", "TrueProfit", "EstimatedTax", "AfterTaxProfit"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, row := range snapshot.Monthly {
		record := []string{
			row.Month,
			row.Revenue.StringFixed(2),
			row.Miles.StringFixed(1),
			row.FuelExpenses.StringFixed(2),
			row.OtherExpenses.StringFixed(2),
			row.ReserveAccrual.StringFixed(2),
			row.TrueProfit.StringFixed(2),
			row.EstimatedTax.StringFixed(2),
			row.AfterTaxProfit.StringFixed(2),
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
