package rules

import (
	"strings"

	"github.com/pagesec/pagesec-cli/internal/artifact"
	"github.com/pagesec/pagesec-cli/internal/payload"
)

// unicodeExploitEvaluator: control and lookalike code points are Safe by
// default; only the right-to-left override demands evidence of text
// normalization, since direction spoofing survives every other defence.
type unicodeExploitEvaluator struct{}

func (unicodeExploitEvaluator) Category() payload.Category { return payload.CategoryUnicodeExploit }

func (unicodeExploitEvaluator) Evaluate(script string, _ *artifact.Document, payloads []payload.Payload) []Verdict {
	if script == "" {
		return safeAll(payloads, noContentJustification)
	}

	normalizes := strings.Contains(script, "normalize")

	out := make([]Verdict, 0, len(payloads))
	for _, p := range payloads {
		v := Verdict{Payload: p, Outcome: Safe, Justification: "control characters handled"}
		if strings.Contains(p.Input, "\u202E") && !normalizes {
			v.Outcome = Vulnerable
			v.Justification = "no text normalization; right-to-left override spoofing possible"
		}
		out = append(out, v)
	}
	return out
}
