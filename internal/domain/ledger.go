package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// ExpenseCategory classifies an operating expense.
type ExpenseCategory string

const (
	CategoryFuel        ExpenseCategory = "fuel"
	CategoryDeadhead    ExpenseCategory = "deadhead"
	CategoryMaintenance ExpenseCategory = "maintenance"
	CategoryInsurance   ExpenseCategory = "insurance"
	CategoryTolls       ExpenseCategory = "tolls"
	CategoryPermits     ExpenseCategory = "permits"
	CategoryParking     ExpenseCategory = "parking"
	CategoryOther       ExpenseCategory = "other"
)

// AllExpenseCategories lists every recognized category, used for validation.
var AllExpenseCategories = []ExpenseCategory{
	CategoryFuel, CategoryDeadhead, CategoryMaintenance, CategoryInsurance,
	CategoryTolls, CategoryPermits, CategoryParking, CategoryOther,
}

// PersonalCategoryDebt is the one personal-expense category treated as
// recurring debt service by the break-even solver and the debt scheduler.
const PersonalCategoryDebt = "Debt"

// Trip is a single completed (or booked) haul. Payout and LoadedMiles are the
// source of truth; the rate per mile is always derived, never stored.
type Trip struct {
	ID            string          `yaml:"id" json:"id"`
	Date          time.Time       `yaml:"date" json:"date"`
	Route         string          `yaml:"route" json:"route"`
	Broker        string          `yaml:"broker" json:"broker"`
	LoadedMiles   decimal.Decimal `yaml:"loaded_miles" json:"loaded_miles"`
	Payout        decimal.Decimal `yaml:"payout" json:"payout"`
	Origin        string          `yaml:"origin,omitempty" json:"origin,omitempty"`
	Destination   string          `yaml:"destination,omitempty" json:"destination,omitempty"`
	OriginLat     float64         `yaml:"origin_lat,omitempty" json:"origin_lat,omitempty"`
	OriginLon     float64         `yaml:"origin_lon,omitempty" json:"origin_lon,omitempty"`
	DestLat       float64         `yaml:"dest_lat,omitempty" json:"dest_lat,omitempty"`
	DestLon       float64         `yaml:"dest_lon,omitempty" json:"dest_lon,omitempty"`
	OriginRegion  string          `yaml:"origin_region,omitempty" json:"origin_region,omitempty"`
	DestRegion    string          `yaml:"dest_region,omitempty" json:"dest_region,omitempty"`
	DeadheadMiles decimal.Decimal `yaml:"deadhead_miles,omitempty" json:"deadhead_miles,omitempty"`
	DeadheadFrom  string          `yaml:"deadhead_from,omitempty" json:"deadhead_from,omitempty"`
	Departure     *time.Time      `yaml:"departure,omitempty" json:"departure,omitempty"`
	Arrival       *time.Time      `yaml:"arrival,omitempty" json:"arrival,omitempty"`
}

// RatePerMile returns payout divided by loaded miles, recomputed on every
// call so edits to either field are always reflected. Zero-mile trips return
// zero rather than dividing by zero.
func (t *Trip) RatePerMile() decimal.Decimal {
	if t.LoadedMiles.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	return t.Payout.Div(t.LoadedMiles)
}

// IsPending reports whether the trip is dated strictly after the evaluation
// date. Pending trips are forecast revenue, not realized revenue.
func (t *Trip) IsPending(asOf time.Time) bool {
	return t.Date.After(asOf)
}

// TotalMiles returns loaded plus deadhead miles.
func (t *Trip) TotalMiles() decimal.Decimal {
	return t.LoadedMiles.Add(t.DeadheadMiles)
}

// Expense is a tracked operating cost.
type Expense struct {
	ID          string          `yaml:"id" json:"id"`
	Date        time.Time       `yaml:"date" json:"date"`
	Category    ExpenseCategory `yaml:"category" json:"category"`
	Description string          `yaml:"description" json:"description"`
	Amount      decimal.Decimal `yaml:"amount" json:"amount"`
}

// tripExpenseSep separates a trip ID from its derived-expense suffix.
const tripExpenseSep = ":"

// FuelExpenseID returns the conventional ID for a trip's derived fuel expense.
func FuelExpenseID(tripID string) string {
	return tripID + tripExpenseSep + string(CategoryFuel)
}

// DeadheadExpenseID returns the conventional ID for a trip's derived deadhead
// expense.
func DeadheadExpenseID(tripID string) string {
	return tripID + tripExpenseSep + string(CategoryDeadhead)
}

// TripRef recovers the originating trip ID from a derived expense, if any.
// Expenses entered by hand carry no trip reference.
func (e *Expense) TripRef() (string, bool) {
	i := strings.LastIndex(e.ID, tripExpenseSep)
	if i <= 0 {
		return "", false
	}
	suffix := e.ID[i+1:]
	if suffix != string(CategoryFuel) && suffix != string(CategoryDeadhead) {
		return "", false
	}
	return e.ID[:i], true
}

// PersonalExpense is a fixed monthly household obligation.
type PersonalExpense struct {
	ID          string          `yaml:"id" json:"id"`
	Category    string          `yaml:"category" json:"category"`
	Description string          `yaml:"description" json:"description"`
	Monthly     decimal.Decimal `yaml:"monthly" json:"monthly"`
}

// Debt is an outstanding obligation. Amount only ever decreases, via
// ApplyPayment; a cleared debt is removed from the ledger.
type Debt struct {
	ID           string          `yaml:"id" json:"id"`
	Creditor     string          `yaml:"creditor" json:"creditor"`
	Amount       decimal.Decimal `yaml:"amount" json:"amount"`
	Incurred     time.Time       `yaml:"incurred" json:"incurred"`
	DueDate      *time.Time      `yaml:"due_date,omitempty" json:"due_date,omitempty"`
	Note         string          `yaml:"note,omitempty" json:"note,omitempty"`
	HighInterest bool            `yaml:"high_interest,omitempty" json:"high_interest,omitempty"`
}

// IsOverdue reports whether the debt has a due date that has already passed.
func (d *Debt) IsOverdue(asOf time.Time) bool {
	return d.DueDate != nil && d.DueDate.Before(asOf)
}

// ApplyPayment reduces the outstanding amount, flooring at zero, and reports
// whether the debt is now cleared. Payments larger than the balance are
// treated as paying it off exactly.
func (d *Debt) ApplyPayment(amount decimal.Decimal) bool {
	if amount.LessThanOrEqual(decimal.Zero) {
		return d.Amount.IsZero()
	}
	d.Amount = d.Amount.Sub(amount)
	if d.Amount.LessThanOrEqual(decimal.Zero) {
		d.Amount = decimal.Zero
		return true
	}
	return false
}

// Ledger is the full in-memory record snapshot the engine analyzes. The
// engine treats it as read-only; mutation belongs to the data-entry layer.
type Ledger struct {
	Trips            []Trip            `yaml:"trips" json:"trips"`
	Expenses         []Expense         `yaml:"expenses" json:"expenses"`
	PersonalExpenses []PersonalExpense `yaml:"personal_expenses" json:"personal_expenses"`
	Debts            []Debt            `yaml:"debts" json:"debts"`
}

// TotalPersonalMonthly sums every personal obligation, debt service included.
func (l *Ledger) TotalPersonalMonthly() decimal.Decimal {
	total := decimal.Zero
	for _, p := range l.PersonalExpenses {
		total = total.Add(p.Monthly)
	}
	return total
}

// DebtServiceMonthly returns the monthly amount of the one personal-expense
// category designated as debt service. Missing category means zero.
func (l *Ledger) DebtServiceMonthly() decimal.Decimal {
	total := decimal.Zero
	for _, p := range l.PersonalExpenses {
		if p.Category == PersonalCategoryDebt {
			total = total.Add(p.Monthly)
		}
	}
	return total
}

// ApplyDebtPayment applies a payment to the identified debt and removes the
// record when it clears. Returns false if the debt does not exist.
func (l *Ledger) ApplyDebtPayment(debtID string, amount decimal.Decimal) bool {
	for i := range l.Debts {
		if l.Debts[i].ID != debtID {
			continue
		}
		if cleared := l.Debts[i].ApplyPayment(amount); cleared {
			l.Debts = append(l.Debts[:i], l.Debts[i+1:]...)
		}
		return true
	}
	return false
}
