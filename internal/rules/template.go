package rules

import (
	"regexp"
	"strings"

	"github.com/pagesec/pagesec-cli/internal/artifact"
	"github.com/pagesec/pagesec-cli/internal/payload"
)

// templateLiteralPattern matches backtick template literals that interpolate
// at least one expression.
var templateLiteralPattern = regexp.MustCompile("`[^`]*\\$\\{[^}]+\\}[^`]*`")

// templateInjectionEvaluator flags template literals that interpolate
// user-supplied fields without a sanitize call wrapping the data. Whether a
// field is user-supplied is judged by its name ("description", "input") — a
// naming convention, not data-flow analysis.
type templateInjectionEvaluator struct{}

func (templateInjectionEvaluator) Category() payload.Category {
	return payload.CategoryTemplateInjection
}

func (templateInjectionEvaluator) Evaluate(script string, _ *artifact.Document, payloads []payload.Payload) []Verdict {
	if script == "" {
		return safeAll(payloads, noContentJustification)
	}

	hasSanitizeDef := strings.Contains(script, "const sanitize") || strings.Contains(script, "function sanitize")
	sanitizeUsed := strings.Contains(script, "sanitize(")

	for _, usage := range templateLiteralPattern.FindAllString(script, -1) {
		lower := strings.ToLower(usage)
		if !strings.Contains(lower, "description") && !strings.Contains(lower, "input") {
			continue
		}
		if hasSanitizeDef && sanitizeUsed && strings.Contains(usage, "sanitize(") {
			return safeAll(payloads, "user data sanitized before interpolation")
		}
		return vulnerableAll(payloads, "user data interpolated into template: "+excerpt(usage, 40))
	}
	return safeAll(payloads, "no user data flows into template rendering")
}
