package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Assumptions is the configuration bundle of constants injected into the
// analysis engine. Every lookup table lives here, not in the code, so tests
// can run against synthetic values.
type Assumptions struct {
	// Hypothetical flat per-mile wage used for the company-driver comparison.
	FixedWageRatePerMile decimal.Decimal `yaml:"fixed_wage_rate_per_mile" json:"fixed_wage_rate_per_mile"`

	// Depreciation is derived: vehicle value spread over its expected life.
	VehicleValue         decimal.Decimal `yaml:"vehicle_value" json:"vehicle_value"`
	VehicleLifetimeMiles decimal.Decimal `yaml:"vehicle_lifetime_miles" json:"vehicle_lifetime_miles"`

	// Accrual rate for tires and scheduled maintenance.
	MaintenanceReserveRatePerMile decimal.Decimal `yaml:"maintenance_reserve_rate_per_mile" json:"maintenance_reserve_rate_per_mile"`

	FuelPricing FuelPricingConfig `yaml:"fuel_pricing" json:"fuel_pricing"`
	Tax         TaxConfig         `yaml:"tax" json:"tax"`
	BreakEven   BreakEvenConfig   `yaml:"break_even" json:"break_even"`
}

// DepreciationRatePerMile derives the per-mile depreciation accrual from the
// vehicle value and lifetime. Zero lifetime miles yields zero rather than a
// division error.
func (a *Assumptions) DepreciationRatePerMile() decimal.Decimal {
	if a.VehicleLifetimeMiles.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	return a.VehicleValue.Div(a.VehicleLifetimeMiles)
}

// FuelPricingConfig holds the regional price table and routing constants.
type FuelPricingConfig struct {
	MilesPerGallon decimal.Decimal `yaml:"miles_per_gallon" json:"miles_per_gallon"`

	// Region code whose price stands in for any unknown or missing region.
	NationalAverageRegion string `yaml:"national_average_region" json:"national_average_region"`

	// Region code -> price per gallon.
	Prices map[string]decimal.Decimal `yaml:"prices" json:"prices"`

	// "ORIGIN-DEST" -> midpoint region code for cross-region routes.
	RouteMidpoints map[string]string `yaml:"route_midpoints" json:"route_midpoints"`
}

// MidpointKey builds the lookup key for a (origin, destination) route pair.
func MidpointKey(origin, dest string) string {
	return fmt.Sprintf("%s-%s", origin, dest)
}

// TaxConfig holds the two flat sub-rates. They are reported separately but
// always applied as one joint rate.
type TaxConfig struct {
	SelfEmploymentRate decimal.Decimal `yaml:"self_employment_rate" json:"self_employment_rate"`
	IncomeTaxRate      decimal.Decimal `yaml:"income_tax_rate" json:"income_tax_rate"`
}

// CombinedRate returns the joint flat rate applied to positive true profit.
func (t *TaxConfig) CombinedRate() decimal.Decimal {
	return t.SelfEmploymentRate.Add(t.IncomeTaxRate)
}

// BreakEvenConfig holds the solver's fixed-cost definition and fallbacks.
type BreakEvenConfig struct {
	// Expense categories that count as fixed monthly costs (insurance,
	// permits, parking by default) rather than per-mile variable costs.
	FixedExpenseCategories []ExpenseCategory `yaml:"fixed_expense_categories" json:"fixed_expense_categories"`

	// Rate assumed when the ledger has no realized miles yet.
	DefaultRatePerMile decimal.Decimal `yaml:"default_rate_per_mile" json:"default_rate_per_mile"`

	// Average loaded miles per trip, used to convert miles-needed into
	// trips-needed when the ledger itself has no trips to average.
	AverageTripMiles decimal.Decimal `yaml:"average_trip_miles" json:"average_trip_miles"`
}

// IsFixedCategory reports whether a category counts toward fixed monthly
// costs for break-even purposes.
func (b *BreakEvenConfig) IsFixedCategory(c ExpenseCategory) bool {
	for _, fc := range b.FixedExpenseCategories {
		if fc == c {
			return true
		}
	}
	return false
}

// Configuration is the complete input file: the ledger snapshot plus the
// assumption constants.
type Configuration struct {
	Ledger      Ledger      `yaml:"ledger" json:"ledger"`
	Assumptions Assumptions `yaml:"assumptions" json:"assumptions"`
}

// GenerateAssumptions creates a display list from the actual config values.
func (a *Assumptions) GenerateAssumptions() []string {
	return []string{
		fmt.Sprintf("Fuel efficiency: %s mpg", a.FuelPricing.MilesPerGallon.StringFixed(1)),
		fmt.Sprintf("Depreciation accrual: $%s/mile ($%s over %s miles)",
			a.DepreciationRatePerMile().StringFixed(4),
			a.VehicleValue.StringFixed(0), a.VehicleLifetimeMiles.StringFixed(0)),
		fmt.Sprintf("Maintenance & tire reserve: $%s/mile", a.MaintenanceReserveRatePerMile.StringFixed(4)),
		fmt.Sprintf("Flat tax estimate: %s%% SE + %s%% income, applied jointly",
			a.Tax.SelfEmploymentRate.Mul(decimal.NewFromInt(100)).StringFixed(1),
			a.Tax.IncomeTaxRate.Mul(decimal.NewFromInt(100)).StringFixed(1)),
		fmt.Sprintf("Company-driver wage comparison: $%s/mile", a.FixedWageRatePerMile.StringFixed(2)),
		"Debt payoff months use a fixed 30-day month, one debt at a time",
	}
}
