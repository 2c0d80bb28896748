package calculation

import (
	"github.com/rigledger/haul-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

// ProfitabilityAnalyzer combines ledger totals with reserve accruals to
// derive cash profit, true profit and the company-driver wage comparison.
// It is a pure function of its inputs: every call recomputes from scratch.
type ProfitabilityAnalyzer struct {
	reserves *ReserveAccountant
	wageRate decimal.Decimal
}

// NewProfitabilityAnalyzer creates an analyzer over a reserve accountant and
// the configured fixed per-mile wage rate.
func NewProfitabilityAnalyzer(reserves *ReserveAccountant, wageRate decimal.Decimal) *ProfitabilityAnalyzer {
	return &ProfitabilityAnalyzer{
		reserves: reserves,
		wageRate: wageRate,
	}
}

// Analyze produces the profitability summary for aggregated totals.
// Cash profit ignores accruals; true profit subtracts the depreciation and
// maintenance reserves hiding behind every realized mile.
func (pa *ProfitabilityAnalyzer) Analyze(totals domain.LedgerTotals) domain.ProfitSummary {
	cashProfit := totals.RealizedRevenue.Sub(totals.RealizedExpenses)
	depreciation := pa.reserves.Depreciation(totals.RealizedMiles)
	maintenance := pa.reserves.MaintenanceReserve(totals.RealizedMiles)
	trueProfit := cashProfit.Sub(depreciation).Sub(maintenance)
	wageEquivalent := totals.RealizedMiles.Mul(pa.wageRate)

	return domain.ProfitSummary{
		CashProfit:          cashProfit,
		Depreciation:        depreciation,
		MaintenanceReserve:  maintenance,
		TrueProfit:          trueProfit,
		WageEquivalent:      wageEquivalent,
		BeatsWageEquivalent: trueProfit.GreaterThan(wageEquivalent),
	}
}
