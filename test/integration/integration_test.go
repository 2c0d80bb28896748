package integration

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rigledger/haul-calculator/internal/calculation"
	"github.com/rigledger/haul-calculator/internal/config"
	"github.com/rigledger/haul-calculator/internal/output"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFullPipeline(t *testing.T) {
	parser := config.NewInputParser()
	cfg := parser.CreateExampleConfiguration()

	// Round-trip through YAML the way the CLI does.
	path := filepath.Join(t.TempDir(), "ledger.yaml")
	require.NoError(t, output.SaveConfiguration(cfg, path))
	loaded, err := parser.LoadFromFile(path)
	require.NoError(t, err)

	engine := calculation.NewAnalysisEngine(loaded.Assumptions)
	asOf := time.Date(2025, time.August, 15, 0, 0, 0, 0, time.UTC)
	snapshot, err := engine.Analyze(context.Background(), &loaded.Ledger, asOf)
	require.NoError(t, err)

	// The example ledger has one realized and one pending trip.
	assert.Equal(t, 1, snapshot.Totals.TripCount)
	assert.Equal(t, 1, snapshot.Totals.PendingTripCount)
	assert.Equal(t, "2625.00", snapshot.Totals.RealizedRevenue.StringFixed(2))
	assert.Equal(t, "1450.00", snapshot.Totals.PendingRevenue.StringFixed(2))

	// Cash positive, and the reserves still leave a true profit.
	assert.True(t, snapshot.Profit.CashProfit.GreaterThan(decimal.Zero))
	assert.True(t, snapshot.Profit.TrueProfit.LessThan(snapshot.Profit.CashProfit))
	assert.True(t, snapshot.Tax.EstimatedTax.GreaterThanOrEqual(decimal.Zero))

	// The high-interest fuel card is scheduled ahead of the overdue
	// repair invoice despite its smaller balance.
	require.Len(t, snapshot.DebtPlan.Entries, 2)
	assert.Equal(t, "debt-card", snapshot.DebtPlan.Entries[0].DebtID)
	assert.Equal(t, "debt-shop", snapshot.DebtPlan.Entries[1].DebtID)
	assert.NotNil(t, snapshot.DebtPlan.DebtFreeDate)

	assert.NotEmpty(t, snapshot.Monthly)
	assert.NotEmpty(t, snapshot.Assumptions)
}

func TestOutputGeneration(t *testing.T) {
	parser := config.NewInputParser()
	cfg := parser.CreateExampleConfiguration()

	engine := calculation.NewAnalysisEngine(cfg.Assumptions)
	asOf := time.Date(2025, time.August, 15, 0, 0, 0, 0, time.UTC)
	snapshot, err := engine.Analyze(context.Background(), &cfg.Ledger, asOf)
	require.NoError(t, err)

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	defer os.Chdir(wd)

	for _, format := range []string{"console", "json", "csv"} {
		filename, err := output.GenerateReport(snapshot, format)
		assert.NoError(t, err, format)
		assert.FileExists(t, filename)
	}
}

func TestImportThenAnalyze(t *testing.T) {
	parser := config.NewInputParser()
	cfg := parser.CreateExampleConfiguration()

	manifest := "date,origin,destination,distance,payout,counterparty\n" +
		"2025-08-01,Columbus OH,Nashville TN,380,836.00,Acme Logistics\n"
	path := filepath.Join(t.TempDir(), "manifest.csv")
	require.NoError(t, os.WriteFile(path, []byte(manifest), 0644))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	fuelModel := calculation.NewRegionalFuelModel(cfg.Assumptions.FuelPricing)
	importer := calculation.NewManifestImporter(fuelModel, nil)
	result, err := importer.ImportCSV(f)
	require.NoError(t, err)
	require.Len(t, result.Trips, 1)

	before := calculation.NewLedgerAggregator().Aggregate(&cfg.Ledger,
		time.Date(2025, time.August, 15, 0, 0, 0, 0, time.UTC))

	cfg.Ledger.Trips = append(cfg.Ledger.Trips, result.Trips...)
	cfg.Ledger.Expenses = append(cfg.Ledger.Expenses, result.Expenses...)
	require.NoError(t, parser.ValidateConfiguration(cfg))

	after := calculation.NewLedgerAggregator().Aggregate(&cfg.Ledger,
		time.Date(2025, time.August, 15, 0, 0, 0, 0, time.UTC))

	assert.Equal(t, before.TripCount+1, after.TripCount)
	assert.True(t, after.RealizedRevenue.Sub(before.RealizedRevenue).Equal(result.Trips[0].Payout))
}
