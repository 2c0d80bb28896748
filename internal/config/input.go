package config

import (
	"fmt"
	"os"
	"time"

	"github.com/rigledger/haul-calculator/internal/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// InputParser handles parsing of input configuration files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a ledger-plus-assumptions configuration from a YAML file
func (ip *InputParser) LoadFromFile(filename string) (*domain.Configuration, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var config domain.Configuration
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateConfiguration(&config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &config, nil
}

// ValidateConfiguration validates the loaded configuration
func (ip *InputParser) ValidateConfiguration(config *domain.Configuration) error {
	for i := range config.Ledger.Trips {
		if err := ip.validateTrip(&config.Ledger.Trips[i]); err != nil {
			return fmt.Errorf("trip %d validation failed: %w", i, err)
		}
	}
	for i := range config.Ledger.Expenses {
		if err := ip.validateExpense(&config.Ledger.Expenses[i]); err != nil {
			return fmt.Errorf("expense %d validation failed: %w", i, err)
		}
	}
	for i, p := range config.Ledger.PersonalExpenses {
		if p.Monthly.IsNegative() {
			return fmt.Errorf("personal expense %d validation failed: monthly amount cannot be negative", i)
		}
	}
	for i := range config.Ledger.Debts {
		if err := ip.validateDebt(&config.Ledger.Debts[i]); err != nil {
			return fmt.Errorf("debt %d validation failed: %w", i, err)
		}
	}

	if err := ip.validateAssumptions(&config.Assumptions); err != nil {
		return fmt.Errorf("assumptions validation failed: %w", err)
	}

	return nil
}

// validateTrip validates a single trip record
func (ip *InputParser) validateTrip(trip *domain.Trip) error {
	if trip.ID == "" {
		return fmt.Errorf("trip ID is required")
	}
	if trip.Date.IsZero() {
		return fmt.Errorf("trip date is required")
	}
	if trip.LoadedMiles.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("loaded miles must be positive")
	}
	if trip.Payout.IsNegative() {
		return fmt.Errorf("payout cannot be negative")
	}
	if trip.DeadheadMiles.IsNegative() {
		return fmt.Errorf("deadhead miles cannot be negative")
	}
	return nil
}

// validateExpense validates a single expense record
func (ip *InputParser) validateExpense(exp *domain.Expense) error {
	if exp.ID == "" {
		return fmt.Errorf("expense ID is required")
	}
	if exp.Amount.IsNegative() {
		return fmt.Errorf("amount cannot be negative")
	}
	for _, c := range domain.AllExpenseCategories {
		if exp.Category == c {
			return nil
		}
	}
	return fmt.Errorf("unknown expense category %q", exp.Category)
}

// validateDebt validates a single debt record
func (ip *InputParser) validateDebt(debt *domain.Debt) error {
	if debt.ID == "" {
		return fmt.Errorf("debt ID is required")
	}
	if debt.Amount.IsNegative() {
		return fmt.Errorf("outstanding amount cannot be negative")
	}
	if debt.DueDate != nil && debt.Incurred.After(*debt.DueDate) {
		return fmt.Errorf("due date cannot be before the incurred date")
	}
	return nil
}

// validateAssumptions validates the configuration constants
func (ip *InputParser) validateAssumptions(a *domain.Assumptions) error {
	if a.FuelPricing.MilesPerGallon.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("miles per gallon must be positive")
	}
	if a.VehicleLifetimeMiles.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("vehicle lifetime miles must be positive")
	}
	if a.VehicleValue.IsNegative() {
		return fmt.Errorf("vehicle value cannot be negative")
	}
	if a.MaintenanceReserveRatePerMile.IsNegative() {
		return fmt.Errorf("maintenance reserve rate cannot be negative")
	}
	if a.FixedWageRatePerMile.IsNegative() {
		return fmt.Errorf("fixed wage rate cannot be negative")
	}

	one := decimal.NewFromInt(1)
	if a.Tax.SelfEmploymentRate.IsNegative() || a.Tax.SelfEmploymentRate.GreaterThanOrEqual(one) {
		return fmt.Errorf("self-employment rate must be between 0 and 1")
	}
	if a.Tax.IncomeTaxRate.IsNegative() || a.Tax.IncomeTaxRate.GreaterThanOrEqual(one) {
		return fmt.Errorf("income tax rate must be between 0 and 1")
	}
	if a.Tax.CombinedRate().GreaterThanOrEqual(one) {
		return fmt.Errorf("combined tax rate must be below 100%%")
	}

	if a.FuelPricing.NationalAverageRegion == "" {
		return fmt.Errorf("national average fuel region is required")
	}
	if _, ok := a.FuelPricing.Prices[a.FuelPricing.NationalAverageRegion]; !ok {
		return fmt.Errorf("fuel price table must contain the national average region %q", a.FuelPricing.NationalAverageRegion)
	}
	for region, price := range a.FuelPricing.Prices {
		if price.LessThanOrEqual(decimal.Zero) {
			return fmt.Errorf("fuel price for region %q must be positive", region)
		}
	}

	for _, c := range a.BreakEven.FixedExpenseCategories {
		known := false
		for _, kc := range domain.AllExpenseCategories {
			if c == kc {
				known = true
				break
			}
		}
		if !known {
			return fmt.Errorf("unknown fixed expense category %q", c)
		}
	}
	if a.BreakEven.DefaultRatePerMile.IsNegative() {
		return fmt.Errorf("default rate per mile cannot be negative")
	}

	return nil
}

// CreateExampleConfiguration creates an example configuration file
func (ip *InputParser) CreateExampleConfiguration() *domain.Configuration {
	tripDate, _ := time.Parse("2006-01-02", "2025-07-14")
	pendingDate, _ := time.Parse("2006-01-02", "2025-09-30")
	incurred, _ := time.Parse("2006-01-02", "2025-01-05")
	due, _ := time.Parse("2006-01-02", "2025-06-01")

	return &domain.Configuration{
		Ledger: domain.Ledger{
			Trips: []domain.Trip{
				{
					ID:            "trip-20250714-1",
					Date:          tripDate,
					Route:         "Dallas - Columbus",
					Broker:        "Lonestar Freight",
					LoadedMiles:   decimal.NewFromInt(1050),
					Payout:        decimal.NewFromFloat(2625.00),
					Origin:        "Dallas, TX",
					Destination:   "Columbus, OH",
					OriginRegion:  "TX",
					DestRegion:    "OH",
					DeadheadMiles: decimal.NewFromInt(85),
					DeadheadFrom:  "Fort Worth, TX",
				},
				{
					ID:          "trip-20250930-1",
					Date:        pendingDate,
					Route:       "Columbus - Atlanta",
					Broker:      "Buckeye Logistics",
					LoadedMiles: decimal.NewFromInt(560),
					Payout:      decimal.NewFromFloat(1450.00),
				},
			},
			Expenses: []domain.Expense{
				{
					ID:          domain.FuelExpenseID("trip-20250714-1"),
					Date:        tripDate,
					Category:    domain.CategoryFuel,
					Description: "Fuel for Dallas - Columbus",
					Amount:      decimal.NewFromFloat(498.10),
				},
				{
					ID:          "exp-ins-2025-07",
					Date:        tripDate,
					Category:    domain.CategoryInsurance,
					Description: "Monthly liability & cargo premium",
					Amount:      decimal.NewFromFloat(1180.00),
				},
			},
			PersonalExpenses: []domain.PersonalExpense{
				{ID: "p-rent", Category: "Housing", Description: "Rent", Monthly: decimal.NewFromInt(1600)},
				{ID: "p-groceries", Category: "Food", Description: "Groceries", Monthly: decimal.NewFromInt(550)},
				{ID: "p-debt", Category: domain.PersonalCategoryDebt, Description: "Card + truck note service", Monthly: decimal.NewFromInt(900)},
			},
			Debts: []domain.Debt{
				{
					ID:           "debt-card",
					Creditor:     "Fuel card",
					Amount:       decimal.NewFromFloat(2400.00),
					Incurred:     incurred,
					HighInterest: true,
				},
				{
					ID:       "debt-shop",
					Creditor: "Repair shop invoice",
					Amount:   decimal.NewFromFloat(3100.00),
					Incurred: incurred,
					DueDate:  &due,
				},
			},
		},
		Assumptions: ExampleAssumptions(),
	}
}

// ExampleAssumptions returns realistic default constants for the engine.
func ExampleAssumptions() domain.Assumptions {
	return domain.Assumptions{
		FixedWageRatePerMile:          decimal.NewFromFloat(0.65),
		VehicleValue:                  decimal.NewFromInt(85000),
		VehicleLifetimeMiles:          decimal.NewFromInt(360000),
		MaintenanceReserveRatePerMile: decimal.NewFromFloat(0.15),
		FuelPricing: domain.FuelPricingConfig{
			MilesPerGallon:        decimal.NewFromFloat(7.0),
			NationalAverageRegion: "US",
			Prices: map[string]decimal.Decimal{
				"US": decimal.NewFromFloat(3.50),
				"TX": decimal.NewFromFloat(3.40),
				"OH": decimal.NewFromFloat(3.60),
				"TN": decimal.NewFromFloat(3.45),
				"CA": decimal.NewFromFloat(4.80),
				"GA": decimal.NewFromFloat(3.35),
			},
			RouteMidpoints: map[string]string{
				"TX-OH": "TN",
				"OH-TX": "TN",
				"TX-GA": "TN",
				"GA-TX": "TN",
			},
		},
		Tax: domain.TaxConfig{
			SelfEmploymentRate: decimal.NewFromFloat(0.153),
			IncomeTaxRate:      decimal.NewFromFloat(0.12),
		},
		BreakEven: domain.BreakEvenConfig{
			FixedExpenseCategories: []domain.ExpenseCategory{
				domain.CategoryInsurance,
				domain.CategoryPermits,
				domain.CategoryParking,
			},
			DefaultRatePerMile: decimal.NewFromFloat(2.00),
			AverageTripMiles:   decimal.NewFromInt(850),
		},
	}
}
