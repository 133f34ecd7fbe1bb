package cmd

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"html/template"
	"io"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/pagesec/pagesec-cli/internal/payload"
	"github.com/pagesec/pagesec-cli/internal/rules"
)

const markdownTemplatePath = "templates/report.md"

//go:embed templates/report.md
var reportTemplateFS embed.FS

var markdownTemplateFuncs = template.FuncMap{
	"upper":          strings.ToUpper,
	"formatTime":     formatShortTimestamp,
	"catalogSummary": categoryCatalogSummary,
}

func formatShortTimestamp(t time.Time) string {
	if t.IsZero() {
		return "n/a"
	}
	return t.Format("Jan 02 15:04")
}

var markdownReportTemplate = template.Must(
	template.New("report.md").Funcs(markdownTemplateFuncs).ParseFS(reportTemplateFS, markdownTemplatePath),
)

// CategorySection groups a category's verdicts for rendering.
type CategorySection struct {
	Title    string
	Verdicts []rules.Verdict
}

// categorySections splits the flat verdict sequence back into category
// blocks, preserving evaluation order.
func categorySections(verdicts []rules.Verdict) []CategorySection {
	var sections []CategorySection
	for _, v := range verdicts {
		title := v.Payload.Category.Title()
		if len(sections) == 0 || sections[len(sections)-1].Title != title {
			sections = append(sections, CategorySection{Title: title})
		}
		last := &sections[len(sections)-1]
		last.Verdicts = append(last.Verdicts, v)
	}
	return sections
}

// TemplateData feeds the markdown template.
type TemplateData struct {
	Metadata  RunMetadata
	Sections  []CategorySection
	Total     int
	VulnCount int
	Pass      bool
}

func buildTemplateData(output *RunOutput) TemplateData {
	return TemplateData{
		Metadata:  output.Metadata,
		Sections:  categorySections(output.Report.Verdicts),
		Total:     len(output.Report.Verdicts),
		VulnCount: output.Report.VulnerabilityCount,
		Pass:      output.Report.OverallPass,
	}
}

func printTextReport(w io.Writer, output *RunOutput) {
	fmt.Fprintf(w, "%s %s (%d bytes, %d lines)\n",
		colorInfo("Auditing:"), output.Metadata.ArtifactPath,
		output.Metadata.ArtifactSize, output.Metadata.LineCount)

	for _, section := range categorySections(output.Report.Verdicts) {
		fmt.Fprintf(w, "\n%s\n", colorInfo(section.Title))
		for _, v := range section.Verdicts {
			tag := "[" + strings.ToUpper(string(v.Outcome)) + "]"
			if v.Outcome == rules.Vulnerable {
				fmt.Fprintf(w, "  %s %s — %s\n", colorVuln(tag), v.Payload.Label, v.Justification)
			} else {
				fmt.Fprintf(w, "  %s %s\n", colorSafe(tag), v.Payload.Label)
			}
		}
	}

	fmt.Fprintf(w, "\n%s\n", colorInfo("Summary"))
	fmt.Fprintf(w, "  Payloads judged:  %d\n", len(output.Report.Verdicts))
	fmt.Fprintf(w, "  Vulnerabilities:  %d\n", output.Report.VulnerabilityCount)
	if output.Report.OverallPass {
		fmt.Fprintf(w, "  Result: %s\n", colorSafe("PASS"))
	} else {
		fmt.Fprintf(w, "  Result: %s\n", colorVuln("FAIL"))
	}
}

func generateJSONReport(output *RunOutput) ([]byte, error) {
	data, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		return nil, err
	}
	return data, nil
}

func generateMarkdownReport(output *RunOutput) ([]byte, error) {
	var buf bytes.Buffer
	if err := markdownReportTemplate.Execute(&buf, buildTemplateData(output)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func generatePDFReportBytes(output *RunOutput) ([]byte, error) {
	data := buildTemplateData(output)

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	// Title
	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(0, 10, "Artifact Security Audit", "", 1, "C", false, 0, "")
	pdf.Ln(5)

	// Metadata section
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(0, 6, fmt.Sprintf("Run ID: %s", data.Metadata.RunID), "", 1, "", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Artifact: %s (%d bytes, %d lines)",
		data.Metadata.ArtifactPath, data.Metadata.ArtifactSize, data.Metadata.LineCount), "", 1, "", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Started: %s", formatShortTimestamp(data.Metadata.StartedAt)), "", 1, "", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Completed: %s", formatShortTimestamp(data.Metadata.CompletedAt)), "", 1, "", false, 0, "")
	pdf.Ln(5)

	// Summary section
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(0, 8, "Summary", "", 1, "", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	result := "PASS"
	if !data.Pass {
		result = "FAIL"
	}
	pdf.CellFormat(0, 6, fmt.Sprintf("Payloads judged: %d | Vulnerabilities: %d | Result: %s",
		data.Total, data.VulnCount, result), "", 1, "", false, 0, "")
	pdf.Ln(5)

	// Per-category verdicts
	for _, section := range data.Sections {
		if pdf.GetY() > 250 {
			pdf.AddPage()
		}
		pdf.SetFont("Arial", "B", 11)
		pdf.SetFillColor(240, 240, 240)
		pdf.CellFormat(0, 7, section.Title, "", 1, "", true, 0, "")
		pdf.Ln(1)

		pdf.SetFont("Arial", "", 9)
		for _, v := range section.Verdicts {
			line := fmt.Sprintf("[%s] %s", strings.ToUpper(string(v.Outcome)), v.Payload.Label)
			if v.Outcome == rules.Vulnerable {
				line += " - " + v.Justification
			}
			pdf.MultiCell(0, 5, line, "", "", false)
		}
		pdf.Ln(3)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// categoryCatalogSummary is used by the markdown report footer to document
// what the battery covers.
func categoryCatalogSummary() []string {
	var out []string
	for _, cat := range payload.Categories() {
		out = append(out, fmt.Sprintf("%s (%d payloads)", cat.Title(), len(payload.For(cat))))
	}
	return out
}
