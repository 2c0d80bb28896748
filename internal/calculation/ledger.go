package calculation

import (
	"time"

	"github.com/rigledger/haul-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

// LedgerAggregator reduces the raw trip and expense collections to summary
// totals at an evaluation date. Aggregation is a plain sum: record order
// never changes the result.
type LedgerAggregator struct{}

// NewLedgerAggregator creates a new aggregator.
func NewLedgerAggregator() *LedgerAggregator {
	return &LedgerAggregator{}
}

// Aggregate produces realized and pending totals for the ledger. A trip
// dated strictly after asOf is pending: its payout counts as forecast
// revenue, and any expense derived from it (by the trip-ID convention) is
// excluded so a forecast trip stays revenue-neutral.
func (la *LedgerAggregator) Aggregate(ledger *domain.Ledger, asOf time.Time) domain.LedgerTotals {
	totals := domain.LedgerTotals{
		ByCategory: make(map[domain.ExpenseCategory]decimal.Decimal),
	}

	pending := make(map[string]bool)
	for i := range ledger.Trips {
		trip := &ledger.Trips[i]
		if trip.IsPending(asOf) {
			pending[trip.ID] = true
			totals.PendingRevenue = totals.PendingRevenue.Add(trip.Payout)
			totals.PendingTripCount++
			continue
		}
		totals.RealizedRevenue = totals.RealizedRevenue.Add(trip.Payout)
		totals.RealizedMiles = totals.RealizedMiles.Add(trip.LoadedMiles)
		totals.DeadheadMiles = totals.DeadheadMiles.Add(trip.DeadheadMiles)
		totals.TripCount++
	}

	for i := range ledger.Expenses {
		exp := &ledger.Expenses[i]
		if tripID, ok := exp.TripRef(); ok && pending[tripID] {
			continue
		}
		totals.RealizedExpenses = totals.RealizedExpenses.Add(exp.Amount)
		totals.ByCategory[exp.Category] = totals.ByCategory[exp.Category].Add(exp.Amount)
	}

	return totals
}
