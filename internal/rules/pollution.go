package rules

import (
	"strings"

	"github.com/pagesec/pagesec-cli/internal/artifact"
	"github.com/pagesec/pagesec-cli/internal/payload"
)

// prototypePollutionEvaluator accepts two Safe postures: defensive code
// (frozen/sealed prototypes or own-property filtering before merges), or the
// reserved prototype path never appearing at all — nothing to pollute.
type prototypePollutionEvaluator struct{}

func (prototypePollutionEvaluator) Category() payload.Category {
	return payload.CategoryPrototypePollution
}

func (prototypePollutionEvaluator) Evaluate(script string, _ *artifact.Document, payloads []payload.Payload) []Verdict {
	if script == "" {
		return safeAll(payloads, noContentJustification)
	}
	if strings.Contains(script, "Object.freeze") ||
		strings.Contains(script, "Object.seal") ||
		strings.Contains(script, "hasOwnProperty") {
		return safeAll(payloads, "shared prototypes frozen or own-property filtering present")
	}
	if !strings.Contains(strings.ToLower(script), "prototype") {
		return safeAll(payloads, "reserved prototype path never referenced")
	}
	return vulnerableAll(payloads, "prototype chain reachable without defensive filtering")
}

// domClobberingEvaluator is a coarse whole-document signal: any null check or
// optional chaining anywhere counts as the guarding idiom. A per-call-site
// check would claim more precision than the heuristic has.
type domClobberingEvaluator struct{}

func (domClobberingEvaluator) Category() payload.Category { return payload.CategoryDOMClobbering }

func (domClobberingEvaluator) Evaluate(script string, _ *artifact.Document, payloads []payload.Payload) []Verdict {
	if script == "" {
		return safeAll(payloads, noContentJustification)
	}
	if strings.Contains(script, "null") || strings.Contains(script, "?.") {
		return safeAll(payloads, "null/optional-access guards present on DOM lookups")
	}
	return vulnerableAll(payloads, "DOM lookups never guarded against clobbered globals")
}
