package calculation

import (
	"github.com/rigledger/haul-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

// TAX ESTIMATION ASSUMPTIONS:
//
// 1. Flat-rate approximation only: a self-employment sub-rate plus an
//    income-bracket sub-rate, summed and applied jointly to true profit.
//    No bracket progressivity, no quarterly-payment carryover.
// 2. Tax is never a rebate: negative true profit yields zero estimated tax,
//    and after-tax profit then equals true profit unchanged.

// TaxEstimator applies the configured flat rate to true profit.
type TaxEstimator struct {
	config domain.TaxConfig
}

// NewTaxEstimator creates an estimator from the tax sub-rates.
func NewTaxEstimator(config domain.TaxConfig) *TaxEstimator {
	return &TaxEstimator{config: config}
}

// Estimate computes the liability and after-tax profit for a true profit
// figure. The sub-rates are surfaced separately for display but the tax is
// always their joint product.
func (te *TaxEstimator) Estimate(trueProfit decimal.Decimal) domain.TaxEstimate {
	taxable := decimal.Max(decimal.Zero, trueProfit)
	combined := te.config.CombinedRate()
	tax := taxable.Mul(combined)

	return domain.TaxEstimate{
		SelfEmploymentRate: te.config.SelfEmploymentRate,
		IncomeTaxRate:      te.config.IncomeTaxRate,
		CombinedRate:       combined,
		EstimatedTax:       tax,
		AfterTaxProfit:     trueProfit.Sub(tax),
	}
}
