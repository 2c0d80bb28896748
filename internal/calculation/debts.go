package calculation

import (
	"sort"
	"time"

	"github.com/rigledger/haul-calculator/internal/domain"
	"github.com/rigledger/haul-calculator/pkg/dateutil"
	"github.com/shopspring/decimal"
)

// DebtScheduler produces the ordered payoff plan. The ordering rule is a
// fixed avalanche heuristic: high-interest debts first, then overdue debts,
// then ascending balance. The monthly budget retires one debt at a time; it
// is never split across debts.
type DebtScheduler struct{}

// NewDebtScheduler creates a new scheduler.
func NewDebtScheduler() *DebtScheduler {
	return &DebtScheduler{}
}

// Schedule builds the payoff timeline for a fixed monthly budget. A budget
// that is not positive cannot fund any payoff: the plan comes back empty and
// flagged unfunded. Completion dates use the fixed 30-day month.
func (ds *DebtScheduler) Schedule(debts []domain.Debt, monthlyBudget decimal.Decimal, asOf time.Time) domain.DebtPayoffPlan {
	plan := domain.DebtPayoffPlan{MonthlyBudget: monthlyBudget}
	for i := range debts {
		plan.TotalDebt = plan.TotalDebt.Add(debts[i].Amount)
	}
	if len(debts) == 0 {
		return plan
	}
	if monthlyBudget.LessThanOrEqual(decimal.Zero) {
		plan.Unfunded = true
		return plan
	}

	ordered := append([]domain.Debt(nil), debts...)
	sort.SliceStable(ordered, func(i, j int) bool {
		a, b := &ordered[i], &ordered[j]
		if a.HighInterest != b.HighInterest {
			return a.HighInterest
		}
		ao, bo := a.IsOverdue(asOf), b.IsOverdue(asOf)
		if ao != bo {
			return ao
		}
		return a.Amount.LessThan(b.Amount)
	})

	cumulative := 0
	for i := range ordered {
		d := &ordered[i]
		months := int(d.Amount.Div(monthlyBudget).Ceil().IntPart())
		cumulative += months
		plan.Entries = append(plan.Entries, domain.DebtPayoffEntry{
			DebtID:        d.ID,
			Creditor:      d.Creditor,
			Amount:        d.Amount,
			HighInterest:  d.HighInterest,
			Overdue:       d.IsOverdue(asOf),
			MonthsToClear: months,
			Completion:    dateutil.AddApproxMonths(asOf, cumulative),
		})
	}

	plan.TotalMonths = cumulative
	free := dateutil.AddApproxMonths(asOf, cumulative)
	plan.DebtFreeDate = &free
	return plan
}
