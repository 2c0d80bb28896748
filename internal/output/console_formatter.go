package output

import (
	"bytes"
	"fmt"

	"github.com/rigledger/haul-calculator/internal/domain"
)

// ConsoleFormatter provides a concise text summary via the formatter interface.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(snapshot *domain.AnalysisSnapshot) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintln(&buf, "HAUL LEDGER ANALYSIS")
	fmt.Fprintln(&buf, "================================")
	fmt.Fprintf(&buf, "As of: %s\n", snapshot.AsOf.Format("2006-01-02"))
	fmt.Fprintln(&buf)

	t := snapshot.Totals
	fmt.Fprintf(&buf, "Realized revenue:   %s over %s (%d trips)\n",
		FormatCurrency(t.RealizedRevenue), FormatMiles(t.RealizedMiles), t.TripCount)
	if t.PendingTripCount > 0 {
		fmt.Fprintf(&buf, "Forecast revenue:   %s (%d booked trips)\n",
			FormatCurrency(t.PendingRevenue), t.PendingTripCount)
	}
	fmt.Fprintf(&buf, "Deadhead miles:     %s\n", FormatMiles(t.DeadheadMiles))
	fmt.Fprintf(&buf, "Tracked expenses:   %s\n", FormatCurrency(t.RealizedExpenses))
	fmt.Fprintln(&buf)

	p := snapshot.Profit
	fmt.Fprintf(&buf, "Cash profit:        %s\n", FormatCurrency(p.CashProfit))
	fmt.Fprintf(&buf, "Reserve accruals:   %s depreciation + %s maintenance\n",
		FormatCurrency(p.Depreciation), FormatCurrency(p.MaintenanceReserve))
	fmt.Fprintf(&buf, "True profit:        %s\n", FormatCurrency(p.TrueProfit))
	verdict := "behind"
	if p.BeatsWageEquivalent {
		verdict = "ahead of"
	}
	fmt.Fprintf(&buf, "Wage comparison:    %s %s the %s company-driver equivalent\n",
		FormatCurrency(p.TrueProfit), verdict, FormatCurrency(p.WageEquivalent))

	tax := snapshot.Tax
	fmt.Fprintf(&buf, "Estimated tax:      %s (%s joint rate), after-tax %s\n",
		FormatCurrency(tax.EstimatedTax),
		FormatPercentage(tax.CombinedRate.Mul(hundred)),
		FormatCurrency(tax.AfterTaxProfit))
	fmt.Fprintln(&buf)

	be := snapshot.BreakEven
	fmt.Fprintf(&buf, "Rate per mile:      %s against %s variable cost (margin %s)\n",
		FormatCurrency(be.RatePerMile), FormatCurrency(be.VariableCostPerMile),
		FormatCurrency(be.MarginalProfitPerMile))
	switch {
	case be.Unprofitable:
		fmt.Fprintln(&buf, "Break-even:         unreachable at current rates (no positive margin per mile)")
	case be.MilesNeeded == 0:
		fmt.Fprintln(&buf, "Break-even:         fully covered")
	default:
		fmt.Fprintf(&buf, "Break-even:         %d more miles (~%d trips) to cover %s of obligations\n",
			be.MilesNeeded, be.TripsNeeded, FormatCurrency(be.Shortfall))
	}
	fmt.Fprintf(&buf, "Obligations:        %s covered\n", FormatPercentage(be.PercentCovered))

	plan := snapshot.DebtPlan
	if len(plan.Entries) > 0 || plan.Unfunded {
		fmt.Fprintln(&buf)
		fmt.Fprintf(&buf, "DEBT PAYOFF (budget %s/month)\n", FormatCurrency(plan.MonthlyBudget))
		if plan.Unfunded {
			fmt.Fprintln(&buf, "  no monthly budget allocated; plan unavailable")
		}
		for i, e := range plan.Entries {
			fmt.Fprintf(&buf, "  %d. %-24s %s in %d month(s), done %s\n",
				i+1, e.Creditor, FormatCurrency(e.Amount), e.MonthsToClear,
				e.Completion.Format("2006-01-02"))
		}
		if plan.DebtFreeDate != nil {
			fmt.Fprintf(&buf, "  debt-free: %s\n", plan.DebtFreeDate.Format("2006-01-02"))
		}
	}

	if len(snapshot.Monthly) > 0 {
		fmt.Fprintln(&buf)
		fmt.Fprintln(&buf, "MONTHLY P&L")
		for _, row := range snapshot.Monthly {
			fmt.Fprintf(&buf, "  %s  revenue %s, true profit %s, after tax %s\n",
				row.Month, FormatCurrency(row.Revenue),
				FormatCurrency(row.TrueProfit), FormatCurrency(row.AfterTaxProfit))
		}
	}

	return buf.Bytes(), nil
}
