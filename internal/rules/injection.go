package rules

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/pagesec/pagesec-cli/internal/artifact"
	"github.com/pagesec/pagesec-cli/internal/payload"
)

// jsonInjectionEvaluator: structured parsing never executes embedded code, so
// the only vulnerable posture is a dynamic-code-evaluation call that could be
// reached with attacker-shaped text.
type jsonInjectionEvaluator struct{}

func (jsonInjectionEvaluator) Category() payload.Category { return payload.CategoryJSONInjection }

func (jsonInjectionEvaluator) Evaluate(script string, _ *artifact.Document, payloads []payload.Payload) []Verdict {
	if script == "" {
		return safeAll(payloads, noContentJustification)
	}
	if strings.Contains(script, "eval(") {
		return vulnerableAll(payloads, "dynamic code evaluation present: eval() could execute smuggled content")
	}
	return safeAll(payloads, "structured parsing only; parsed data is never executed")
}

// rawSinkMargin is how far raw-markup rendering may outnumber safe-text
// rendering before passive markup injection is considered likely.
const rawSinkMargin = 5

// htmlInjectionEvaluator compares raw-markup sink usage against safe-text
// sink usage across the whole script. Heavy reliance on raw rendering is the
// signal; the margin keeps small, reviewed usages from tripping it.
type htmlInjectionEvaluator struct{}

func (htmlInjectionEvaluator) Category() payload.Category { return payload.CategoryHTMLInjection }

func (htmlInjectionEvaluator) Evaluate(script string, _ *artifact.Document, payloads []payload.Payload) []Verdict {
	if script == "" {
		return safeAll(payloads, noContentJustification)
	}
	if !strings.Contains(script, ".innerHTML") {
		return safeAll(payloads, "no raw-markup rendering in script")
	}

	rawCount := strings.Count(script, ".innerHTML")
	textCount := strings.Count(script, ".textContent")
	if rawCount > textCount+rawSinkMargin {
		return vulnerableAll(payloads, fmt.Sprintf("raw-markup rendering dominates (%d innerHTML vs %d textContent)", rawCount, textCount))
	}
	return safeAll(payloads, "raw-markup usage balanced by safe text sinks")
}

var fetchCallPattern = regexp.MustCompile(`fetch\s*\([^)]+\)`)

// pathTraversalEvaluator: a client-side artifact has no server file access,
// so traversal payloads are Safe unless a network-fetch target is assembled
// from concatenation or interpolation.
type pathTraversalEvaluator struct{}

func (pathTraversalEvaluator) Category() payload.Category { return payload.CategoryPathTraversal }

func (pathTraversalEvaluator) Evaluate(script string, _ *artifact.Document, payloads []payload.Payload) []Verdict {
	if script == "" {
		return safeAll(payloads, noContentJustification)
	}
	if strings.Contains(script, "fetch(") {
		for _, call := range fetchCallPattern.FindAllString(script, -1) {
			if strings.Contains(call, "+") || strings.Contains(call, "${") {
				return vulnerableAll(payloads, "fetch target assembled from dynamic input: "+excerpt(call, 40))
			}
		}
	}
	return safeAll(payloads, "client-side artifact; no server file access")
}
