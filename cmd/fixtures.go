package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pagesec/pagesec-cli/internal/fixtures"
)

var fixturesCmd = &cobra.Command{
	Use:   "fixtures",
	Short: "Generate adversarial test fixtures (CSV, QIF, OFX, edge-case lists)",
	Long: `Write a reproducible corpus of malformed and malicious import data to
disk. The corpus is an external data source for exercising import hardening;
the rule engine itself never reads it.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		outputDir, _ := cmd.Flags().GetString("output-dir")
		rows, _ := cmd.Flags().GetInt("rows")
		seed, _ := cmd.Flags().GetInt64("seed")
		malicious, _ := cmd.Flags().GetBool("malicious")

		if err := os.MkdirAll(outputDir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}

		gen := fixtures.NewGenerator(seed)
		files := []struct {
			name    string
			content string
		}{
			{"transactions.csv", gen.CSV(rows, malicious)},
			{"edge_cases.qif", gen.QIFEdgeCases()},
			{"edge_cases.ofx", gen.OFXEdgeCases()},
			{"numeric_cases.txt", strings.Join(gen.NumericEdgeCases(), "\n") + "\n"},
			{"date_cases.txt", strings.Join(gen.DateEdgeCases(), "\n") + "\n"},
			{"string_cases.txt", strings.Join(gen.StringEdgeCases(), "\n") + "\n"},
		}

		for _, f := range files {
			path := filepath.Join(outputDir, f.name)
			if err := os.WriteFile(path, []byte(f.content), 0o644); err != nil {
				return fmt.Errorf("failed to write %s: %w", f.name, err)
			}
			fmt.Printf("%s %s (%d bytes)\n", colorInfo("Wrote:"), path, len(f.content))
		}

		logger.Infow("fixtures generated", "dir", outputDir, "seed", seed, "rows", rows, "malicious", malicious)
		fmt.Printf("%s seed=%d — rerun with the same seed to reproduce\n", colorSafe("Done."), seed)
		return nil
	},
}

func init() {
	fixturesCmd.Flags().String("output-dir", defaultOutputDir, "directory for generated fixture files")
	fixturesCmd.Flags().Int("rows", defaultFixtureRows, "CSV transaction rows to generate")
	fixturesCmd.Flags().Int64("seed", defaultFixtureSeed, "random seed; output is fully determined by it")
	fixturesCmd.Flags().Bool("malicious", true, "weave attack payloads into the CSV payee column")
}
