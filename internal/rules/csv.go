package rules

import (
	"regexp"
	"strings"

	"github.com/pagesec/pagesec-cli/internal/artifact"
	"github.com/pagesec/pagesec-cli/internal/payload"
)

// exportRoutinePattern grabs the body of the spreadsheet export routine so
// the escaping evidence can be checked close to where values leave the app.
var exportRoutinePattern = regexp.MustCompile(`(?s)exportData[^}]+}`)

// csvInjectionEvaluator requires both halves of the formula-injection
// defence: escaping on export and formula-prefix stripping on import. Each
// missing half gets its own justification so the report distinguishes them.
type csvInjectionEvaluator struct{}

func (csvInjectionEvaluator) Category() payload.Category { return payload.CategoryCSVInjection }

func (csvInjectionEvaluator) Evaluate(script string, _ *artifact.Document, payloads []payload.Payload) []Verdict {
	if script == "" {
		return safeAll(payloads, noContentJustification)
	}

	exportBlock := exportRoutinePattern.FindString(script)
	exportEscapes := exportBlock == "" || hasExportEscaping(exportBlock, script)
	importStrips := hasImportStripping(script)

	out := make([]Verdict, 0, len(payloads))
	for _, p := range payloads {
		v := Verdict{Payload: p, Outcome: Safe, Justification: "formula characters escaped"}
		if !exportEscapes {
			v.Outcome = Vulnerable
			v.Justification = "no escaping in spreadsheet export routine"
		}
		if strings.HasPrefix(p.Input, "=") && !importStrips {
			v.Outcome = Vulnerable
			v.Justification = "formula prefix not stripped on import"
		}
		out = append(out, v)
	}
	return out
}

func hasExportEscaping(block, script string) bool {
	return strings.Contains(block, "escapeCSV") ||
		strings.Contains(script, `^[=+\-@`) ||
		(strings.Contains(block, "replace") && strings.Contains(block, `"`)) ||
		strings.Contains(script, "startsWith('=')")
}

func hasImportStripping(script string) bool {
	return strings.Contains(script, "escapeCSV") ||
		strings.Contains(script, `^[=+\-@`) ||
		strings.Contains(script, "startsWith") ||
		strings.Contains(script, "trim()")
}
