package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/rigledger/haul-calculator/internal/calculation"
	"github.com/rigledger/haul-calculator/internal/config"
	"github.com/rigledger/haul-calculator/internal/logging"
	"github.com/rigledger/haul-calculator/internal/output"
)

var (
	inputFile  string
	formatName string
	asOfDate   string
	logLevel   string
)

var rootCmd = &cobra.Command{
	Use:   "haulcalc",
	Short: "Profitability analysis for independent vehicle operators",
	Long: `haulcalc analyzes an operator's trip and expense ledger: realized vs
pending revenue, true profit after depreciation and maintenance reserves,
tax estimates, break-even mileage, and a debt payoff schedule.`,
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Run the full analysis over a ledger file",
	RunE: func(cmd *cobra.Command, args []string) error {
		parser := config.NewInputParser()
		cfg, err := parser.LoadFromFile(inputFile)
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}

		asOf := time.Now()
		if asOfDate != "" {
			asOf, err = time.Parse("2006-01-02", asOfDate)
			if err != nil {
				return fmt.Errorf("invalid --date %q: expected YYYY-MM-DD", asOfDate)
			}
		}

		engine := calculation.NewAnalysisEngine(cfg.Assumptions)
		engine.SetLogger(logging.NewDefault(logLevel))

		snapshot, err := engine.Analyze(cmd.Context(), &cfg.Ledger, asOf)
		if err != nil {
			return fmt.Errorf("analysis failed: %w", err)
		}

		filename, err := output.GenerateReport(snapshot, formatName)
		if err != nil {
			return err
		}
		fmt.Printf("Report written to %s\n", filename)
		return nil
	},
}

var exampleCmd = &cobra.Command{
	Use:   "example [filename]",
	Short: "Write an example ledger configuration",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		filename := "haul_example.yaml"
		if len(args) == 1 {
			filename = args[0]
		}
		cfg := config.NewInputParser().CreateExampleConfiguration()
		if err := output.SaveConfiguration(cfg, filename); err != nil {
			return fmt.Errorf("failed to write example configuration: %w", err)
		}
		fmt.Printf("Example configuration written to %s\n", filename)
		return nil
	},
}

var importOutput string

var importCmd = &cobra.Command{
	Use:   "import <manifest.csv>",
	Short: "Import trips from a broker manifest into a ledger file",
	Long: `import reads a CSV manifest (date, origin, destination, distance,
payout, counterparty), converts each valid row into a trip with a derived
fuel expense, and appends them to the ledger in the input configuration.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		parser := config.NewInputParser()
		cfg, err := parser.LoadFromFile(inputFile)
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}

		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("failed to open manifest: %w", err)
		}
		defer f.Close()

		logger := logging.NewDefault(logLevel)
		fuelModel := calculation.NewRegionalFuelModel(cfg.Assumptions.FuelPricing)
		importer := calculation.NewManifestImporter(fuelModel, logger)

		result, err := importer.ImportCSV(f)
		if err != nil {
			return err
		}
		cfg.Ledger.Trips = append(cfg.Ledger.Trips, result.Trips...)
		cfg.Ledger.Expenses = append(cfg.Ledger.Expenses, result.Expenses...)

		dest := importOutput
		if dest == "" {
			dest = inputFile
		}
		if err := output.SaveConfiguration(cfg, dest); err != nil {
			return fmt.Errorf("failed to save configuration: %w", err)
		}
		fmt.Printf("Imported %d trip(s) (%d row(s) skipped) into %s\n",
			len(result.Trips), result.SkippedRows, dest)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&logLevel, "log-level", "l", "warn", "Log level (debug, info, warn, error)")

	analyzeCmd.Flags().StringVarP(&inputFile, "input", "i", "", "Input ledger YAML file (required)")
	analyzeCmd.Flags().StringVarP(&formatName, "format", "f", "console", "Output format (console, json, csv)")
	analyzeCmd.Flags().StringVarP(&asOfDate, "date", "d", "", "Evaluation date as YYYY-MM-DD (default today)")
	analyzeCmd.MarkFlagRequired("input")

	importCmd.Flags().StringVarP(&inputFile, "input", "i", "", "Ledger YAML file to append into (required)")
	importCmd.Flags().StringVarP(&importOutput, "output", "o", "", "Destination file (default: overwrite input)")
	importCmd.MarkFlagRequired("input")

	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(exampleCmd)
	rootCmd.AddCommand(importCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
