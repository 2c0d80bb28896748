package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// LedgerTotals is the aggregated view of a ledger at an evaluation date.
// "Realized" figures cover non-pending trips only; pending trips are carried
// separately as forecast revenue.
type LedgerTotals struct {
	RealizedRevenue  decimal.Decimal                     `json:"realized_revenue"`
	PendingRevenue   decimal.Decimal                     `json:"pending_revenue"`
	RealizedMiles    decimal.Decimal                     `json:"realized_miles"`
	DeadheadMiles    decimal.Decimal                     `json:"deadhead_miles"`
	RealizedExpenses decimal.Decimal                     `json:"realized_expenses"`
	ByCategory       map[ExpenseCategory]decimal.Decimal `json:"by_category"`
	TripCount        int                                 `json:"trip_count"`
	PendingTripCount int                                 `json:"pending_trip_count"`
}

// ProfitSummary is the profitability picture over realized activity.
type ProfitSummary struct {
	CashProfit          decimal.Decimal `json:"cash_profit"`
	Depreciation        decimal.Decimal `json:"depreciation"`
	MaintenanceReserve  decimal.Decimal `json:"maintenance_reserve"`
	TrueProfit          decimal.Decimal `json:"true_profit"`
	WageEquivalent      decimal.Decimal `json:"wage_equivalent"`
	BeatsWageEquivalent bool            `json:"beats_wage_equivalent"`
}

// TaxEstimate is the flat-rate liability approximation. Tax never goes
// negative; after-tax profit may.
type TaxEstimate struct {
	SelfEmploymentRate decimal.Decimal `json:"self_employment_rate"`
	IncomeTaxRate      decimal.Decimal `json:"income_tax_rate"`
	CombinedRate       decimal.Decimal `json:"combined_rate"`
	EstimatedTax       decimal.Decimal `json:"estimated_tax"`
	AfterTaxProfit     decimal.Decimal `json:"after_tax_profit"`
}

// BreakEvenReport is the single-pass break-even evaluation. When the marginal
// profit per mile is not positive, Unprofitable is set and MilesNeeded /
// TripsNeeded are zero: no number of additional miles closes the gap.
type BreakEvenReport struct {
	RatePerMile           decimal.Decimal `json:"rate_per_mile"`
	VariableCostPerMile   decimal.Decimal `json:"variable_cost_per_mile"`
	MarginalProfitPerMile decimal.Decimal `json:"marginal_profit_per_mile"`
	GrossMargin           decimal.Decimal `json:"gross_margin"`
	FixedCosts            decimal.Decimal `json:"fixed_costs"`
	FixedCostsCovered     bool            `json:"fixed_costs_covered"`
	AfterFixed            decimal.Decimal `json:"after_fixed"`
	TakeHomeNeed          decimal.Decimal `json:"take_home_need"`
	DebtService           decimal.Decimal `json:"debt_service"`
	Shortfall             decimal.Decimal `json:"shortfall"`
	MilesNeeded           int64           `json:"miles_needed"`
	TripsNeeded           int64           `json:"trips_needed"`
	Unprofitable          bool            `json:"unprofitable"`
	PercentCovered        decimal.Decimal `json:"percent_covered"`
}

// DebtPayoffEntry is one debt's position in the sequential payoff plan.
type DebtPayoffEntry struct {
	DebtID        string          `json:"debt_id"`
	Creditor      string          `json:"creditor"`
	Amount        decimal.Decimal `json:"amount"`
	HighInterest  bool            `json:"high_interest"`
	Overdue       bool            `json:"overdue"`
	MonthsToClear int             `json:"months_to_clear"`
	Completion    time.Time       `json:"completion"`
}

// DebtPayoffPlan is the ordered schedule produced by the debt scheduler.
// Unfunded is set when the monthly budget is not positive, in which case the
// plan is empty and there is no debt-free date.
type DebtPayoffPlan struct {
	MonthlyBudget decimal.Decimal   `json:"monthly_budget"`
	Entries       []DebtPayoffEntry `json:"entries"`
	TotalDebt     decimal.Decimal   `json:"total_debt"`
	TotalMonths   int               `json:"total_months"`
	DebtFreeDate  *time.Time        `json:"debt_free_date,omitempty"`
	Unfunded      bool              `json:"unfunded"`
}

// MonthlyRow is one calendar month's profit-and-loss line.
type MonthlyRow struct {
	Month          string          `json:"month"` // "2025-07"
	Revenue        decimal.Decimal `json:"revenue"`
	Miles          decimal.Decimal `json:"miles"`
	FuelExpenses   decimal.Decimal `json:"fuel_expenses"`
	OtherExpenses  decimal.Decimal `json:"other_expenses"`
	ReserveAccrual decimal.Decimal `json:"reserve_accrual"`
	TrueProfit     decimal.Decimal `json:"true_profit"`
	EstimatedTax   decimal.Decimal `json:"estimated_tax"`
	AfterTaxProfit decimal.Decimal `json:"after_tax_profit"`
}

// AnalysisSnapshot is the complete read-only view handed to renderers. It is
// recomputed in full from the ledger on every query; feeding a mutated copy
// back into the engine is not supported.
type AnalysisSnapshot struct {
	AsOf        time.Time       `json:"as_of"`
	Totals      LedgerTotals    `json:"totals"`
	Profit      ProfitSummary   `json:"profit"`
	Tax         TaxEstimate     `json:"tax"`
	BreakEven   BreakEvenReport `json:"break_even"`
	Monthly     []MonthlyRow    `json:"monthly"`
	DebtPlan    DebtPayoffPlan  `json:"debt_plan"`
	Assumptions []string        `json:"assumptions"`
}
