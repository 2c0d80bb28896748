package calculation

import (
	"github.com/shopspring/decimal"
)

// ReserveAccountant converts accumulated distance into accrued depreciation
// and maintenance reserves. These are amounts that should be set aside, not
// cash that has left the business; they are additive to tracked expenses.
type ReserveAccountant struct {
	depreciationRate decimal.Decimal
	maintenanceRate  decimal.Decimal
}

// NewReserveAccountant creates an accountant with fixed per-mile rates.
func NewReserveAccountant(depreciationRate, maintenanceRate decimal.Decimal) *ReserveAccountant {
	return &ReserveAccountant{
		depreciationRate: depreciationRate,
		maintenanceRate:  maintenanceRate,
	}
}

// Depreciation returns the depreciation accrued over the given miles.
func (ra *ReserveAccountant) Depreciation(miles decimal.Decimal) decimal.Decimal {
	return miles.Mul(ra.depreciationRate)
}

// MaintenanceReserve returns the maintenance and tire reserve accrued over
// the given miles.
func (ra *ReserveAccountant) MaintenanceReserve(miles decimal.Decimal) decimal.Decimal {
	return miles.Mul(ra.maintenanceRate)
}

// DepreciationRate returns the per-mile depreciation rate.
func (ra *ReserveAccountant) DepreciationRate() decimal.Decimal {
	return ra.depreciationRate
}

// MaintenanceRate returns the per-mile maintenance reserve rate.
func (ra *ReserveAccountant) MaintenanceRate() decimal.Decimal {
	return ra.maintenanceRate
}
