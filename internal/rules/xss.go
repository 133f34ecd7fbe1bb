package rules

import (
	"regexp"
	"strings"

	"github.com/pagesec/pagesec-cli/internal/artifact"
	"github.com/pagesec/pagesec-cli/internal/payload"
)

// rawSinkAssignPattern matches every assignment into a live-rendering sink.
var rawSinkAssignPattern = regexp.MustCompile(`\.innerHTML\s*=\s*[^;]+`)

// xssEvaluator looks for raw-markup sink assignments fed by dynamic data.
// A payload is Safe when no sink exists, when a parallel safe-text sink or
// escaping logic is in evidence, or when every sink assignment is a fixed
// literal. The escaping check is a whole-script signal, not a per-call-site
// proof — advisory by design.
type xssEvaluator struct{}

func (xssEvaluator) Category() payload.Category { return payload.CategoryXSS }

func (xssEvaluator) Evaluate(script string, _ *artifact.Document, payloads []payload.Payload) []Verdict {
	if script == "" {
		return safeAll(payloads, noContentJustification)
	}
	if !strings.Contains(script, "innerHTML") {
		return safeAll(payloads, "no raw-markup sink in script")
	}
	if strings.Contains(script, "textContent") || strings.Contains(script, "createTextNode") {
		return safeAll(payloads, "safe text sink preferred alongside raw-markup sink")
	}
	if strings.Contains(script, "replace(") && (strings.Contains(script, "&lt;") || strings.Contains(script, "<")) {
		return safeAll(payloads, "character escaping applied before rendering")
	}

	for _, use := range rawSinkAssignPattern.FindAllString(script, -1) {
		if assignsDynamicData(use) && !mentionsEscaping(use) {
			return vulnerableAll(payloads, "raw-markup sink receives dynamic content: "+excerpt(use, 40))
		}
	}
	return safeAll(payloads, "raw-markup sink assigns fixed literals only")
}

func assignsDynamicData(code string) bool {
	return strings.Contains(code, "${") || strings.Contains(code, "+ ") || strings.Contains(code, " +")
}

func mentionsEscaping(code string) bool {
	lower := strings.ToLower(code)
	return strings.Contains(lower, "escap") || strings.Contains(lower, "sanitiz")
}
