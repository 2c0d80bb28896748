package calculation

import (
	"testing"
	"time"

	"github.com/rigledger/haul-calculator/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func testLedger() *domain.Ledger {
	return &domain.Ledger{
		Trips: []domain.Trip{
			{
				ID:          "trip-1",
				Date:        date(2025, time.July, 14),
				LoadedMiles: decimal.NewFromInt(1050),
				Payout:      decimal.NewFromInt(2625),
			},
			{
				ID:            "trip-2",
				Date:          date(2025, time.August, 2),
				LoadedMiles:   decimal.NewFromInt(800),
				Payout:        decimal.NewFromInt(1840),
				DeadheadMiles: decimal.NewFromInt(120),
			},
			{
				ID:          "trip-3",
				Date:        date(2025, time.September, 30),
				LoadedMiles: decimal.NewFromInt(900),
				Payout:      decimal.NewFromInt(2250),
			},
		},
		Expenses: []domain.Expense{
			{
				ID:       domain.FuelExpenseID("trip-1"),
				Date:     date(2025, time.July, 14),
				Category: domain.CategoryFuel,
				Amount:   decimal.NewFromFloat(498.10),
			},
			{
				ID:       domain.FuelExpenseID("trip-3"),
				Date:     date(2025, time.September, 30),
				Category: domain.CategoryFuel,
				Amount:   decimal.NewFromFloat(430.00),
			},
			{
				ID:       "exp-insurance",
				Date:     date(2025, time.July, 1),
				Category: domain.CategoryInsurance,
				Amount:   decimal.NewFromInt(1180),
			},
		},
	}
}

func TestLedgerAggregator_PendingExclusion(t *testing.T) {
	la := NewLedgerAggregator()
	asOf := date(2025, time.August, 15)

	totals := la.Aggregate(testLedger(), asOf)

	// trip-3 is dated after the evaluation date: forecast only.
	assert.Equal(t, 2, totals.TripCount)
	assert.Equal(t, 1, totals.PendingTripCount)
	assert.Equal(t, "4465.00", totals.RealizedRevenue.StringFixed(2))
	assert.Equal(t, "2250.00", totals.PendingRevenue.StringFixed(2))
	assert.Equal(t, "1850.00", totals.RealizedMiles.StringFixed(2))
	assert.Equal(t, "120.00", totals.DeadheadMiles.StringFixed(2))

	// The pending trip's derived fuel expense stays out too, so a booked
	// load is revenue-neutral until it runs.
	assert.Equal(t, "1678.10", totals.RealizedExpenses.StringFixed(2))
	assert.Equal(t, "498.10", totals.ByCategory[domain.CategoryFuel].StringFixed(2))
	assert.Equal(t, "1180.00", totals.ByCategory[domain.CategoryInsurance].StringFixed(2))
}

func TestLedgerAggregator_EvaluationDateAdvances(t *testing.T) {
	la := NewLedgerAggregator()
	ledger := testLedger()

	before := la.Aggregate(ledger, date(2025, time.August, 15))
	after := la.Aggregate(ledger, date(2025, time.October, 1))

	// Once the date passes the booked trip, it and its fuel expense both
	// move into the realized totals.
	assert.Equal(t, 3, after.TripCount)
	assert.Equal(t, 0, after.PendingTripCount)
	assert.Equal(t, "6715.00", after.RealizedRevenue.StringFixed(2))
	assert.Equal(t, "0.00", after.PendingRevenue.StringFixed(2))
	assert.Equal(t, "2108.10", after.RealizedExpenses.StringFixed(2))

	combined := before.RealizedRevenue.Add(before.PendingRevenue)
	assert.True(t, combined.Equal(after.RealizedRevenue),
		"total booked revenue is conserved across the evaluation date")
}

func TestLedgerAggregator_OrderIndependence(t *testing.T) {
	la := NewLedgerAggregator()
	asOf := date(2025, time.August, 15)

	forward := la.Aggregate(testLedger(), asOf)

	reversed := testLedger()
	for i, j := 0, len(reversed.Trips)-1; i < j; i, j = i+1, j-1 {
		reversed.Trips[i], reversed.Trips[j] = reversed.Trips[j], reversed.Trips[i]
	}
	for i, j := 0, len(reversed.Expenses)-1; i < j; i, j = i+1, j-1 {
		reversed.Expenses[i], reversed.Expenses[j] = reversed.Expenses[j], reversed.Expenses[i]
	}
	backward := la.Aggregate(reversed, asOf)

	assert.True(t, forward.RealizedRevenue.Equal(backward.RealizedRevenue))
	assert.True(t, forward.RealizedExpenses.Equal(backward.RealizedExpenses))
	assert.True(t, forward.RealizedMiles.Equal(backward.RealizedMiles))
	assert.Equal(t, forward.TripCount, backward.TripCount)
}

func TestLedgerAggregator_EmptyLedger(t *testing.T) {
	la := NewLedgerAggregator()

	totals := la.Aggregate(&domain.Ledger{}, date(2025, time.August, 15))

	assert.Equal(t, 0, totals.TripCount)
	assert.Equal(t, 0, totals.PendingTripCount)
	assert.True(t, totals.RealizedRevenue.IsZero())
	assert.True(t, totals.RealizedExpenses.IsZero())
	assert.Empty(t, totals.ByCategory)
}
