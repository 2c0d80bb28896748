package calculation

import (
	"testing"
	"time"

	"github.com/rigledger/haul-calculator/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func testMonthlyBuilder() *MonthlyReportBuilder {
	ra := NewReserveAccountant(decimal.NewFromFloat(0.25), decimal.NewFromFloat(0.15))
	te := NewTaxEstimator(domain.TaxConfig{
		SelfEmploymentRate: decimal.NewFromFloat(0.153),
		IncomeTaxRate:      decimal.NewFromFloat(0.12),
	})
	return NewMonthlyReportBuilder(ra, te)
}

func TestMonthlyReportBuilder_Build(t *testing.T) {
	mb := testMonthlyBuilder()
	asOf := date(2025, time.August, 15)

	rows := mb.Build(testLedger(), asOf)

	// July and August only: the September trip is still pending.
	assert.Len(t, rows, 2)
	assert.Equal(t, "2025-07", rows[0].Month)
	assert.Equal(t, "2025-08", rows[1].Month)

	july := rows[0]
	assert.Equal(t, "2625.00", july.Revenue.StringFixed(2))
	assert.Equal(t, "1050.00", july.Miles.StringFixed(2))
	assert.Equal(t, "498.10", july.FuelExpenses.StringFixed(2))
	assert.Equal(t, "1180.00", july.OtherExpenses.StringFixed(2))
	assert.Equal(t, "420.00", july.ReserveAccrual.StringFixed(2)) // 1050 * 0.40
	assert.Equal(t, "526.90", july.TrueProfit.StringFixed(2))

	august := rows[1]
	assert.Equal(t, "1840.00", august.Revenue.StringFixed(2))
	assert.True(t, august.FuelExpenses.IsZero())
}

func TestMonthlyReportBuilder_RowsSumToAggregate(t *testing.T) {
	mb := testMonthlyBuilder()
	la := NewLedgerAggregator()
	ledger := testLedger()
	asOf := date(2025, time.August, 15)

	rows := mb.Build(ledger, asOf)
	totals := la.Aggregate(ledger, asOf)

	revenue, miles, expenses := decimal.Zero, decimal.Zero, decimal.Zero
	for _, row := range rows {
		revenue = revenue.Add(row.Revenue)
		miles = miles.Add(row.Miles)
		expenses = expenses.Add(row.FuelExpenses).Add(row.OtherExpenses)
	}

	// Monthly buckets exclude exactly what the aggregate excludes, so the
	// partition is complete.
	assert.True(t, revenue.Equal(totals.RealizedRevenue))
	assert.True(t, miles.Equal(totals.RealizedMiles))
	assert.True(t, expenses.Equal(totals.RealizedExpenses))
}

func TestMonthlyReportBuilder_EmptyMonthsProduceNoRows(t *testing.T) {
	mb := testMonthlyBuilder()

	ledger := &domain.Ledger{
		Trips: []domain.Trip{
			{ID: "t1", Date: date(2025, time.March, 5), LoadedMiles: decimal.NewFromInt(400), Payout: decimal.NewFromInt(900)},
			{ID: "t2", Date: date(2025, time.June, 20), LoadedMiles: decimal.NewFromInt(500), Payout: decimal.NewFromInt(1100)},
		},
	}

	rows := mb.Build(ledger, date(2025, time.July, 1))

	// April and May saw no activity and get no rows at all.
	assert.Len(t, rows, 2)
	assert.Equal(t, "2025-03", rows[0].Month)
	assert.Equal(t, "2025-06", rows[1].Month)
}

func TestMonthlyReportBuilder_NegativeMonthTax(t *testing.T) {
	mb := testMonthlyBuilder()

	ledger := &domain.Ledger{
		Trips: []domain.Trip{
			{ID: "t1", Date: date(2025, time.May, 10), LoadedMiles: decimal.NewFromInt(1000), Payout: decimal.NewFromInt(200)},
		},
	}

	rows := mb.Build(ledger, date(2025, time.June, 1))

	// 200 revenue against 400 of reserves: a losing month owes nothing.
	assert.Equal(t, "-200.00", rows[0].TrueProfit.StringFixed(2))
	assert.True(t, rows[0].EstimatedTax.IsZero())
	assert.Equal(t, "-200.00", rows[0].AfterTaxProfit.StringFixed(2))
}
