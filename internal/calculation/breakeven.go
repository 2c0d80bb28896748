package calculation

import (
	"github.com/rigledger/haul-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

// BreakEvenSolver answers "how many more miles until everything is paid".
// It is a single-pass closed-form evaluation, not an iterative solver: it
// assumes the marginal economics stay constant over the additional miles.
// Obligations are funded in a fixed order: fixed monthly costs, then
// personal costs (debt service included), then tax, then surplus.
type BreakEvenSolver struct {
	config   domain.BreakEvenConfig
	reserves *ReserveAccountant
}

// BreakEvenInputs carries the realized figures the solver works from.
type BreakEvenInputs struct {
	RealizedRevenue    decimal.Decimal
	RealizedMiles      decimal.Decimal
	FuelExpenses       decimal.Decimal
	FixedCosts         decimal.Decimal
	PersonalObligation decimal.Decimal // inclusive of debt service
	DebtService        decimal.Decimal
	TripCount          int
}

// NewBreakEvenSolver creates a solver over the break-even configuration and
// the reserve rates that feed the variable cost per mile.
func NewBreakEvenSolver(config domain.BreakEvenConfig, reserves *ReserveAccountant) *BreakEvenSolver {
	return &BreakEvenSolver{
		config:   config,
		reserves: reserves,
	}
}

// Solve evaluates the break-even position. With non-positive marginal profit
// per mile the business is structurally unprofitable at current rates: the
// report flags that state explicitly and leaves miles/trips needed at zero
// rather than returning a negative or unbounded count.
func (s *BreakEvenSolver) Solve(in BreakEvenInputs) domain.BreakEvenReport {
	ratePerMile := s.config.DefaultRatePerMile
	fuelPerMile := decimal.Zero
	if in.RealizedMiles.GreaterThan(decimal.Zero) {
		ratePerMile = in.RealizedRevenue.Div(in.RealizedMiles)
		fuelPerMile = in.FuelExpenses.Div(in.RealizedMiles)
	}

	variablePerMile := fuelPerMile.
		Add(s.reserves.DepreciationRate()).
		Add(s.reserves.MaintenanceRate())
	marginalPerMile := ratePerMile.Sub(variablePerMile)

	grossMargin := in.RealizedRevenue.Sub(in.RealizedMiles.Mul(variablePerMile))
	afterFixed := grossMargin.Sub(in.FixedCosts)

	takeHomeNeed := in.PersonalObligation
	available := decimal.Max(decimal.Zero, afterFixed)
	shortfall := decimal.Max(decimal.Zero, takeHomeNeed.Sub(available))

	report := domain.BreakEvenReport{
		RatePerMile:           ratePerMile,
		VariableCostPerMile:   variablePerMile,
		MarginalProfitPerMile: marginalPerMile,
		GrossMargin:           grossMargin,
		FixedCosts:            in.FixedCosts,
		FixedCostsCovered:     grossMargin.GreaterThanOrEqual(in.FixedCosts),
		AfterFixed:            afterFixed,
		TakeHomeNeed:          takeHomeNeed,
		DebtService:           in.DebtService,
		Shortfall:             shortfall,
		PercentCovered:        percentCovered(available, takeHomeNeed),
	}

	if shortfall.IsZero() {
		return report
	}
	if marginalPerMile.LessThanOrEqual(decimal.Zero) {
		report.Unprofitable = true
		return report
	}

	report.MilesNeeded = shortfall.Div(marginalPerMile).Ceil().IntPart()
	report.TripsNeeded = s.tripsNeeded(report.MilesNeeded, in)
	return report
}

// tripsNeeded converts additional miles into whole trips using the ledger's
// own average loaded length, falling back to the configured average when the
// ledger has no trips yet.
func (s *BreakEvenSolver) tripsNeeded(milesNeeded int64, in BreakEvenInputs) int64 {
	avg := s.config.AverageTripMiles
	if in.TripCount > 0 && in.RealizedMiles.GreaterThan(decimal.Zero) {
		avg = in.RealizedMiles.Div(decimal.NewFromInt(int64(in.TripCount)))
	}
	if avg.LessThanOrEqual(decimal.Zero) {
		return 0
	}
	return decimal.NewFromInt(milesNeeded).Div(avg).Ceil().IntPart()
}

// percentCovered clamps coverage of the take-home need to [0, 100], with a
// zero need counting as fully covered.
func percentCovered(available, need decimal.Decimal) decimal.Decimal {
	hundred := decimal.NewFromInt(100)
	if need.LessThanOrEqual(decimal.Zero) {
		return hundred
	}
	pct := available.Div(need).Mul(hundred)
	return decimal.Min(hundred, decimal.Max(decimal.Zero, pct))
}
