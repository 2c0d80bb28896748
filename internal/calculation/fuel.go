package calculation

import (
	"github.com/rigledger/haul-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

// RegionalFuelModel prices a trip's fuel from the regional price table.
// Unknown regions are not an error: they fall back to the configured
// national-average entry.
type RegionalFuelModel struct {
	config domain.FuelPricingConfig
}

// NewRegionalFuelModel creates a fuel model over a pricing configuration.
func NewRegionalFuelModel(config domain.FuelPricingConfig) *RegionalFuelModel {
	return &RegionalFuelModel{config: config}
}

// PricePerGallon looks up a region's price, falling back to the national
// average for unknown or empty codes.
func (fm *RegionalFuelModel) PricePerGallon(region string) decimal.Decimal {
	if price, ok := fm.config.Prices[region]; ok {
		return price
	}
	if price, ok := fm.config.Prices[fm.config.NationalAverageRegion]; ok {
		return price
	}
	return decimal.Zero
}

// midpointRegion resolves the fixed route midpoint for a region pair,
// defaulting to the national-average region when the pair is untabulated.
func (fm *RegionalFuelModel) midpointRegion(origin, dest string) string {
	if mid, ok := fm.config.RouteMidpoints[domain.MidpointKey(origin, dest)]; ok {
		return mid
	}
	return fm.config.NationalAverageRegion
}

// FuelCost estimates the fuel cost of driving the given miles. With no
// destination region (or one equal to the origin) the origin price applies.
// A cross-region route averages origin, midpoint and destination prices.
func (fm *RegionalFuelModel) FuelCost(miles decimal.Decimal, originRegion, destRegion string) decimal.Decimal {
	if fm.config.MilesPerGallon.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	gallons := miles.Div(fm.config.MilesPerGallon)

	if destRegion == "" || destRegion == originRegion {
		return gallons.Mul(fm.PricePerGallon(originRegion))
	}

	originPrice := fm.PricePerGallon(originRegion)
	midPrice := fm.PricePerGallon(fm.midpointRegion(originRegion, destRegion))
	destPrice := fm.PricePerGallon(destRegion)
	avgPrice := originPrice.Add(midPrice).Add(destPrice).Div(decimal.NewFromInt(3))

	return gallons.Mul(avgPrice)
}
