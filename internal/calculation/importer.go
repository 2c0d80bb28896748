package calculation

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rigledger/haul-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

// ManifestImporter converts rows from an external manifest/CSV collaborator
// into Trip records plus one derived fuel expense per trip. Rows missing a
// distance or payout are skipped, never partially imported; the skip count
// is surfaced so the caller can report it.
type ManifestImporter struct {
	fuelModel *RegionalFuelModel
	logger    Logger
}

// ImportResult carries the imported records and the number of rows skipped.
type ImportResult struct {
	Trips       []domain.Trip
	Expenses    []domain.Expense
	SkippedRows int
}

// manifest column order: date, origin, destination, distance, payout, counterparty
const manifestColumns = 6

// NewManifestImporter creates an importer pricing fuel with the given model.
func NewManifestImporter(fuelModel *RegionalFuelModel, logger Logger) *ManifestImporter {
	if logger == nil {
		logger = NopLogger{}
	}
	return &ManifestImporter{
		fuelModel: fuelModel,
		logger:    logger,
	}
}

// ImportCSV reads manifest rows and produces trips with derived fuel
// expenses. Fuel is priced with the national-average region, since manifest
// rows carry no region codes. A header row is detected and skipped without
// counting against SkippedRows.
func (mi *ManifestImporter) ImportCSV(r io.Reader) (*ImportResult, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	result := &ImportResult{}
	line := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read manifest: %w", err)
		}
		line++

		if line == 1 && looksLikeHeader(record) {
			continue
		}

		trip, ok := mi.parseRow(record, len(result.Trips)+1)
		if !ok {
			result.SkippedRows++
			mi.logger.Debugf("skipped manifest line %d: %q", line, strings.Join(record, ","))
			continue
		}

		result.Trips = append(result.Trips, trip)
		result.Expenses = append(result.Expenses, domain.Expense{
			ID:          domain.FuelExpenseID(trip.ID),
			Date:        trip.Date,
			Category:    domain.CategoryFuel,
			Description: fmt.Sprintf("Fuel for %s", trip.Route),
			Amount:      mi.fuelModel.FuelCost(trip.LoadedMiles, "", ""),
		})
	}

	if result.SkippedRows > 0 {
		mi.logger.Warnf("manifest import skipped %d malformed row(s)", result.SkippedRows)
	}
	return result, nil
}

// parseRow validates one manifest row into a Trip. Incomplete or
// non-positive distance and negative payout rows are rejected whole.
func (mi *ManifestImporter) parseRow(record []string, seq int) (domain.Trip, bool) {
	if len(record) < manifestColumns {
		return domain.Trip{}, false
	}

	date, err := time.Parse("2006-01-02", strings.TrimSpace(record[0]))
	if err != nil {
		return domain.Trip{}, false
	}
	origin := strings.TrimSpace(record[1])
	dest := strings.TrimSpace(record[2])
	if origin == "" || dest == "" {
		return domain.Trip{}, false
	}

	miles, err := decimal.NewFromString(strings.TrimSpace(record[3]))
	if err != nil || miles.LessThanOrEqual(decimal.Zero) {
		return domain.Trip{}, false
	}
	payout, err := decimal.NewFromString(strings.TrimSpace(record[4]))
	if err != nil || payout.IsNegative() {
		return domain.Trip{}, false
	}

	return domain.Trip{
		ID:          fmt.Sprintf("trip-%s-%d", date.Format("20060102"), seq),
		Date:        date,
		Route:       fmt.Sprintf("%s - %s", origin, dest),
		Broker:      strings.TrimSpace(record[5]),
		LoadedMiles: miles,
		Payout:      payout,
		Origin:      origin,
		Destination: dest,
	}, true
}

// looksLikeHeader reports whether a first row is column labels rather than
// data: its date column does not parse as a date.
func looksLikeHeader(record []string) bool {
	if len(record) == 0 {
		return false
	}
	_, err := time.Parse("2006-01-02", strings.TrimSpace(record[0]))
	return err != nil
}
