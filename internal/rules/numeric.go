package rules

import (
	"strings"

	"github.com/pagesec/pagesec-cli/internal/artifact"
	"github.com/pagesec/pagesec-cli/internal/payload"
)

// numericLimitEvaluator requires a guard matching the payload class: NaN
// payloads need a not-a-number test, infinite payloads need a finiteness
// test. A bound declared in the document itself (a max attribute or MAX
// constant) is sufficient on its own.
type numericLimitEvaluator struct{}

func (numericLimitEvaluator) Category() payload.Category { return payload.CategoryNumericLimit }

func (numericLimitEvaluator) Evaluate(script string, doc *artifact.Document, payloads []payload.Payload) []Verdict {
	if script == "" {
		return safeAll(payloads, noContentJustification)
	}

	boundDeclared := strings.Contains(doc.Content, "max=") || strings.Contains(script, "MAX")
	hasNaNGuard := strings.Contains(script, "isNaN")
	hasFiniteGuard := strings.Contains(script, "isFinite")

	out := make([]Verdict, 0, len(payloads))
	for _, p := range payloads {
		v := Verdict{Payload: p, Outcome: Safe, Justification: "numeric validation present"}
		switch {
		case boundDeclared:
			v.Justification = "input bound declared in document"
		case strings.Contains(p.Input, "NaN") && !hasNaNGuard:
			v.Outcome = Vulnerable
			v.Justification = "no not-a-number guard found"
		case (strings.Contains(p.Input, "Infinity") || strings.Contains(p.Input, "e308")) && !hasFiniteGuard:
			v.Outcome = Vulnerable
			v.Justification = "no finiteness guard found"
		}
		out = append(out, v)
	}
	return out
}
