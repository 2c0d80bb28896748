package calculation

import (
	"sort"
	"time"

	"github.com/rigledger/haul-calculator/internal/domain"
	"github.com/rigledger/haul-calculator/pkg/dateutil"
	"github.com/shopspring/decimal"
)

// MonthlyReportBuilder partitions the ledger into calendar-month buckets and
// re-runs the profitability and tax pipeline per bucket. Buckets come only
// from the year-months actually present in the data; an empty month produces
// no row. Pending trips (and their derived expenses) are excluded so the
// rows sum exactly to the aggregate realized totals.
type MonthlyReportBuilder struct {
	reserves *ReserveAccountant
	taxes    *TaxEstimator
}

// NewMonthlyReportBuilder creates a builder over the reserve and tax models.
func NewMonthlyReportBuilder(reserves *ReserveAccountant, taxes *TaxEstimator) *MonthlyReportBuilder {
	return &MonthlyReportBuilder{
		reserves: reserves,
		taxes:    taxes,
	}
}

type monthBucket struct {
	revenue decimal.Decimal
	miles   decimal.Decimal
	fuel    decimal.Decimal
	other   decimal.Decimal
}

// Build produces the month-by-month profit-and-loss rows, sorted by month.
func (mb *MonthlyReportBuilder) Build(ledger *domain.Ledger, asOf time.Time) []domain.MonthlyRow {
	buckets := make(map[string]*monthBucket)
	bucket := func(date time.Time) *monthBucket {
		key := dateutil.MonthKey(date)
		b, ok := buckets[key]
		if !ok {
			b = &monthBucket{}
			buckets[key] = b
		}
		return b
	}

	pending := make(map[string]bool)
	for i := range ledger.Trips {
		trip := &ledger.Trips[i]
		if trip.IsPending(asOf) {
			pending[trip.ID] = true
			continue
		}
		b := bucket(trip.Date)
		b.revenue = b.revenue.Add(trip.Payout)
		b.miles = b.miles.Add(trip.LoadedMiles)
	}

	for i := range ledger.Expenses {
		exp := &ledger.Expenses[i]
		if tripID, ok := exp.TripRef(); ok && pending[tripID] {
			continue
		}
		b := bucket(exp.Date)
		if exp.Category == domain.CategoryFuel {
			b.fuel = b.fuel.Add(exp.Amount)
		} else {
			b.other = b.other.Add(exp.Amount)
		}
	}

	keys := make([]string, 0, len(buckets))
	for key := range buckets {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	rows := make([]domain.MonthlyRow, 0, len(keys))
	for _, key := range keys {
		b := buckets[key]
		reserve := mb.reserves.Depreciation(b.miles).Add(mb.reserves.MaintenanceReserve(b.miles))
		trueProfit := b.revenue.Sub(b.fuel).Sub(b.other).Sub(reserve)
		tax := mb.taxes.Estimate(trueProfit)

		rows = append(rows, domain.MonthlyRow{
			Month:          key,
			Revenue:        b.revenue,
			Miles:          b.miles,
			FuelExpenses:   b.fuel,
			OtherExpenses:  b.other,
			ReserveAccrual: reserve,
			TrueProfit:     trueProfit,
			EstimatedTax:   tax.EstimatedTax,
			AfterTaxProfit: tax.AfterTaxProfit,
		})
	}
	return rows
}
