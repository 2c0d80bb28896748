package calculation

import (
	"testing"

	"github.com/rigledger/haul-calculator/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func testBreakEvenSolver() *BreakEvenSolver {
	ra := NewReserveAccountant(decimal.NewFromFloat(0.25), decimal.NewFromFloat(0.15))
	return NewBreakEvenSolver(domain.BreakEvenConfig{
		FixedExpenseCategories: []domain.ExpenseCategory{
			domain.CategoryInsurance, domain.CategoryPermits, domain.CategoryParking,
		},
		DefaultRatePerMile: decimal.NewFromFloat(2.00),
		AverageTripMiles:   decimal.NewFromInt(850),
	}, ra)
}

func TestBreakEvenSolver_Shortfall(t *testing.T) {
	s := testBreakEvenSolver()

	report := s.Solve(BreakEvenInputs{
		RealizedRevenue:    decimal.NewFromInt(4000),
		RealizedMiles:      decimal.NewFromInt(2000),
		FuelExpenses:       decimal.NewFromInt(600),
		FixedCosts:         decimal.NewFromInt(1100),
		PersonalObligation: decimal.NewFromInt(4500),
		DebtService:        decimal.NewFromInt(900),
		TripCount:          4,
	})

	assert.Equal(t, "2.00", report.RatePerMile.StringFixed(2))
	assert.Equal(t, "0.70", report.VariableCostPerMile.StringFixed(2)) // fuel 0.30 + dep 0.25 + maint 0.15
	assert.Equal(t, "1.30", report.MarginalProfitPerMile.StringFixed(2))
	assert.Equal(t, "2600.00", report.GrossMargin.StringFixed(2))
	assert.True(t, report.FixedCostsCovered)
	assert.Equal(t, "1500.00", report.AfterFixed.StringFixed(2))
	assert.Equal(t, "3000.00", report.Shortfall.StringFixed(2))
	assert.False(t, report.Unprofitable)

	// ceil(3000 / 1.30) miles, converted via the ledger's own 500-mile
	// average trip, not the configured fallback.
	assert.Equal(t, int64(2308), report.MilesNeeded)
	assert.Equal(t, int64(5), report.TripsNeeded)
	assert.Equal(t, "33.33", report.PercentCovered.StringFixed(2))
}

func TestBreakEvenSolver_FullyCovered(t *testing.T) {
	s := testBreakEvenSolver()

	report := s.Solve(BreakEvenInputs{
		RealizedRevenue:    decimal.NewFromInt(10000),
		RealizedMiles:      decimal.NewFromInt(4000),
		FuelExpenses:       decimal.NewFromInt(1200),
		FixedCosts:         decimal.NewFromInt(1100),
		PersonalObligation: decimal.NewFromInt(4500),
		TripCount:          5,
	})

	assert.True(t, report.Shortfall.IsZero())
	assert.Equal(t, int64(0), report.MilesNeeded)
	assert.Equal(t, int64(0), report.TripsNeeded)
	assert.False(t, report.Unprofitable)
	assert.Equal(t, "100.00", report.PercentCovered.StringFixed(2))
}

func TestBreakEvenSolver_Unprofitable(t *testing.T) {
	s := testBreakEvenSolver()

	// Fuel alone costs as much per mile as the loads pay.
	report := s.Solve(BreakEvenInputs{
		RealizedRevenue:    decimal.NewFromInt(4000),
		RealizedMiles:      decimal.NewFromInt(2000),
		FuelExpenses:       decimal.NewFromInt(4000),
		FixedCosts:         decimal.NewFromInt(500),
		PersonalObligation: decimal.NewFromInt(3000),
		TripCount:          4,
	})

	assert.True(t, report.Unprofitable, "driving more cannot close the gap")
	assert.True(t, report.MarginalProfitPerMile.LessThanOrEqual(decimal.Zero))
	assert.Equal(t, int64(0), report.MilesNeeded)
	assert.Equal(t, int64(0), report.TripsNeeded)
}

func TestBreakEvenSolver_NoRealizedMiles(t *testing.T) {
	s := testBreakEvenSolver()

	report := s.Solve(BreakEvenInputs{
		PersonalObligation: decimal.NewFromInt(3200),
	})

	// With no history the configured defaults carry the projection.
	assert.Equal(t, "2.00", report.RatePerMile.StringFixed(2))
	assert.Equal(t, "0.40", report.VariableCostPerMile.StringFixed(2))
	assert.Equal(t, "1.60", report.MarginalProfitPerMile.StringFixed(2))
	assert.Equal(t, int64(2000), report.MilesNeeded) // ceil(3200 / 1.60)
	assert.Equal(t, int64(3), report.TripsNeeded)    // ceil(2000 / 850)
	assert.Equal(t, "0.00", report.PercentCovered.StringFixed(2))
}

func TestBreakEvenSolver_Idempotent(t *testing.T) {
	s := testBreakEvenSolver()
	in := BreakEvenInputs{
		RealizedRevenue:    decimal.NewFromInt(4000),
		RealizedMiles:      decimal.NewFromInt(2000),
		FuelExpenses:       decimal.NewFromInt(600),
		FixedCosts:         decimal.NewFromInt(1100),
		PersonalObligation: decimal.NewFromInt(4500),
		TripCount:          4,
	}

	first := s.Solve(in)
	second := s.Solve(in)

	assert.Equal(t, first.MilesNeeded, second.MilesNeeded)
	assert.True(t, first.Shortfall.Equal(second.Shortfall))
	assert.True(t, first.MarginalProfitPerMile.Equal(second.MarginalProfitPerMile))
}

func TestPercentCovered_Clamping(t *testing.T) {
	tests := []struct {
		name      string
		available decimal.Decimal
		need      decimal.Decimal
		expected  string
	}{
		{"Zero need counts as covered", decimal.Zero, decimal.Zero, "100.00"},
		{"Partial coverage", decimal.NewFromInt(25), decimal.NewFromInt(100), "25.00"},
		{"Surplus clamps to 100", decimal.NewFromInt(250), decimal.NewFromInt(100), "100.00"},
		{"Negative availability clamps to 0", decimal.NewFromInt(-50), decimal.NewFromInt(100), "0.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, percentCovered(tt.available, tt.need).StringFixed(2))
		})
	}
}
