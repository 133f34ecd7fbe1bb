package rules

import (
	"regexp"

	"github.com/pagesec/pagesec-cli/internal/artifact"
	"github.com/pagesec/pagesec-cli/internal/payload"
)

var (
	// Regex literals in both inline and constructor-call form. The inline
	// form over-matches division expressions occasionally; that imprecision
	// is inherited from the lexical approach and tolerated.
	regexLiteralPattern = regexp.MustCompile(`/([^/]+)/[gimsuvy]*`)
	regexCtorPattern    = regexp.MustCompile(`new RegExp\(['"]([^'"]+)`)

	// One shape probe per catalog entry: a quantified group directly nested
	// inside another quantifier, in every +/* combination.
	nestedQuantifierShapes = map[string]*regexp.Regexp{
		"nested-plus-plus": regexp.MustCompile(`\(.+\+\)\+`),
		"nested-star-star": regexp.MustCompile(`\(.+\*\)\*`),
		"nested-plus-star": regexp.MustCompile(`\(.+\+\)\*`),
		"nested-star-plus": regexp.MustCompile(`\(.+\*\)\+`),
	}
)

// redosEvaluator inspects the document's own regex literals for catastrophic
// backtracking shapes. It only examines pattern text — the suspect pattern is
// never compiled or executed, so a pathological pattern cannot slow the scan.
type redosEvaluator struct{}

func (redosEvaluator) Category() payload.Category { return payload.CategoryReDoS }

func (redosEvaluator) Evaluate(script string, _ *artifact.Document, payloads []payload.Payload) []Verdict {
	if script == "" {
		return safeAll(payloads, noContentJustification)
	}

	var literals []string
	for _, m := range regexLiteralPattern.FindAllStringSubmatch(script, -1) {
		literals = append(literals, m[1])
	}
	for _, m := range regexCtorPattern.FindAllStringSubmatch(script, -1) {
		literals = append(literals, m[1])
	}

	out := make([]Verdict, 0, len(payloads))
	for _, p := range payloads {
		shape := nestedQuantifierShapes[p.ID]
		v := Verdict{Payload: p, Outcome: Safe, Justification: "no nested quantifier of this shape in any pattern literal"}
		if shape != nil {
			for _, lit := range literals {
				if shape.MatchString(lit) {
					v.Outcome = Vulnerable
					v.Justification = "catastrophic backtracking shape in pattern /" + lit + "/"
					break
				}
			}
		}
		out = append(out, v)
	}
	return out
}
