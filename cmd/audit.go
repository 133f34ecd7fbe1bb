package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/pagesec/pagesec-cli/internal/artifact"
	"github.com/pagesec/pagesec-cli/internal/payload"
	"github.com/pagesec/pagesec-cli/internal/report"
	"github.com/pagesec/pagesec-cli/internal/rules"
)

// RunMetadata identifies one audit run in machine-readable reports.
type RunMetadata struct {
	RunID        string    `json:"run_id"`
	ArtifactPath string    `json:"artifact_path"`
	StartedAt    time.Time `json:"started_at"`
	CompletedAt  time.Time `json:"completed_at"`
	ArtifactSize int       `json:"artifact_bytes"`
	LineCount    int       `json:"line_count"`
	PayloadCount int       `json:"payload_count"`
}

// RunOutput is the audit report plus its run metadata.
type RunOutput struct {
	Metadata RunMetadata   `json:"metadata"`
	Report   report.Report `json:"report"`
}

var auditCmd = &cobra.Command{
	Use:   "audit [file]",
	Short: "Run the adversarial rule engine against an HTML artifact",
	Long: `Judge every payload in the compiled-in attack catalog against the
artifact's embedded script text. Exit status is 0 only when no payload is
judged vulnerable.`,
	Args:         cobra.MaximumNArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		format, _ := cmd.Flags().GetString("format")
		outputDir, _ := cmd.Flags().GetString("output-dir")
		concurrency, _ := cmd.Flags().GetInt("concurrency")

		format = strings.ToLower(format)
		switch format {
		case "text", "json", "md", "pdf":
		default:
			return &InvalidFormatError{Format: format}
		}

		// A defective catalog aborts before any check runs.
		if err := payload.Validate(); err != nil {
			return fmt.Errorf("payload catalog validation: %w", err)
		}

		path := defaultArtifactPath
		if len(args) == 1 {
			path = args[0]
		}

		doc, err := artifact.Load(path)
		if err != nil {
			return &ArtifactNotFoundError{Path: path}
		}

		meta := RunMetadata{
			RunID:        uuid.NewString(),
			ArtifactPath: path,
			StartedAt:    time.Now().UTC(),
			ArtifactSize: doc.Length(),
			LineCount:    doc.LineCount(),
			PayloadCount: payload.Count(),
		}
		logger.Infow("audit start", "run_id", meta.RunID, "artifact", path, "bytes", meta.ArtifactSize)

		runner := &rules.Runner{Concurrency: concurrency}
		rep := report.Build(runner.Run(doc))
		meta.CompletedAt = time.Now().UTC()

		output := &RunOutput{Metadata: meta, Report: rep}

		if err := renderReport(output, format, outputDir); err != nil {
			return err
		}

		logger.Infow("audit complete", "run_id", meta.RunID, "vulnerabilities", rep.VulnerabilityCount, "pass", rep.OverallPass)

		if !rep.OverallPass {
			return &AuditFailedError{Path: path, Vulnerabilities: rep.VulnerabilityCount}
		}
		return nil
	},
}

func renderReport(output *RunOutput, format, outputDir string) error {
	if format == "text" {
		printTextReport(os.Stdout, output)
		return nil
	}

	var content []byte
	var filename string
	var err error

	switch format {
	case "json":
		content, err = generateJSONReport(output)
		filename = "pagesec-report.json"
	case "md":
		content, err = generateMarkdownReport(output)
		filename = "pagesec-report.md"
	case "pdf":
		content, err = generatePDFReportBytes(output)
		filename = "pagesec-report.pdf"
	}
	if err != nil {
		return fmt.Errorf("failed to generate %s report: %w", format, err)
	}

	reportPath := filepath.Join(outputDir, filename)
	if err := os.WriteFile(reportPath, content, 0o644); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	fmt.Printf("Report generated: %s\n", reportPath)
	fmt.Printf("Format: %s\n", format)
	fmt.Printf("Vulnerabilities: %d\n", output.Report.VulnerabilityCount)
	return nil
}

func init() {
	auditCmd.Flags().StringP("format", "f", defaultReportFormat, "report format: text, json, md, or pdf")
	auditCmd.Flags().String("output-dir", defaultOutputDir, "directory for generated report files")
	auditCmd.Flags().Int("concurrency", 1, "category evaluators to run in parallel")
}
