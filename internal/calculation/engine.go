package calculation

import (
	"context"
	"fmt"
	"time"

	"github.com/rigledger/haul-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

// AnalysisEngine orchestrates the full analysis pipeline. It holds only
// configuration-derived models, never ledger state: every Analyze call is an
// isolated recomputation over the snapshot it is given, so concurrent calls
// with different snapshots are safe without locking.
type AnalysisEngine struct {
	FuelModel   *RegionalFuelModel
	Reserves    *ReserveAccountant
	Aggregator  *LedgerAggregator
	Profit      *ProfitabilityAnalyzer
	Taxes       *TaxEstimator
	BreakEven   *BreakEvenSolver
	Debts       *DebtScheduler
	Monthly     *MonthlyReportBuilder
	Logger      Logger
	assumptions domain.Assumptions
}

// NewAnalysisEngine wires the component models from a configuration bundle.
func NewAnalysisEngine(assumptions domain.Assumptions) *AnalysisEngine {
	reserves := NewReserveAccountant(
		assumptions.DepreciationRatePerMile(),
		assumptions.MaintenanceReserveRatePerMile,
	)
	taxes := NewTaxEstimator(assumptions.Tax)

	return &AnalysisEngine{
		FuelModel:   NewRegionalFuelModel(assumptions.FuelPricing),
		Reserves:    reserves,
		Aggregator:  NewLedgerAggregator(),
		Profit:      NewProfitabilityAnalyzer(reserves, assumptions.FixedWageRatePerMile),
		Taxes:       taxes,
		BreakEven:   NewBreakEvenSolver(assumptions.BreakEven, reserves),
		Debts:       NewDebtScheduler(),
		Monthly:     NewMonthlyReportBuilder(reserves, taxes),
		Logger:      NopLogger{},
		assumptions: assumptions,
	}
}

// SetLogger sets the logger for the engine. If nil is provided, a no-op
// logger is used.
func (e *AnalysisEngine) SetLogger(l Logger) {
	if l == nil {
		e.Logger = NopLogger{}
		return
	}
	e.Logger = l
}

// Analyze recomputes the complete analysis snapshot for a ledger at the
// given evaluation date. The ledger is read, never mutated; there is no
// derived state to invalidate between calls.
func (e *AnalysisEngine) Analyze(ctx context.Context, ledger *domain.Ledger, asOf time.Time) (*domain.AnalysisSnapshot, error) {
	if ledger == nil {
		return nil, fmt.Errorf("nil ledger")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if asOf.IsZero() {
		asOf = time.Now()
	}

	totals := e.Aggregator.Aggregate(ledger, asOf)
	profit := e.Profit.Analyze(totals)
	tax := e.Taxes.Estimate(profit.TrueProfit)

	personal := ledger.TotalPersonalMonthly()
	debtService := ledger.DebtServiceMonthly()
	breakEven := e.BreakEven.Solve(BreakEvenInputs{
		RealizedRevenue:    totals.RealizedRevenue,
		RealizedMiles:      totals.RealizedMiles,
		FuelExpenses:       totals.ByCategory[domain.CategoryFuel],
		FixedCosts:         e.fixedCosts(totals),
		PersonalObligation: personal,
		DebtService:        debtService,
		TripCount:          totals.TripCount,
	})
	if breakEven.Unprofitable {
		e.Logger.Warnf("marginal profit per mile is %s: break-even is unreachable at current rates",
			breakEven.MarginalProfitPerMile.StringFixed(4))
	}

	snapshot := &domain.AnalysisSnapshot{
		AsOf:        asOf,
		Totals:      totals,
		Profit:      profit,
		Tax:         tax,
		BreakEven:   breakEven,
		Monthly:     e.Monthly.Build(ledger, asOf),
		DebtPlan:    e.Debts.Schedule(ledger.Debts, debtService, asOf),
		Assumptions: e.assumptions.GenerateAssumptions(),
	}

	e.Logger.Debugf("analyzed %d trips (%d pending): cash profit $%s, true profit $%s",
		totals.TripCount+totals.PendingTripCount, totals.PendingTripCount,
		profit.CashProfit.StringFixed(2), profit.TrueProfit.StringFixed(2))

	return snapshot, nil
}

// fixedCosts sums the realized expenses in the categories configured as
// fixed monthly costs.
func (e *AnalysisEngine) fixedCosts(totals domain.LedgerTotals) decimal.Decimal {
	fixed := decimal.Zero
	for _, category := range e.assumptions.BreakEven.FixedExpenseCategories {
		fixed = fixed.Add(totals.ByCategory[category])
	}
	return fixed
}
