// Package rules holds the adversarial check registry: one evaluator per
// vulnerability category. Every evaluator is a shallow lexical heuristic over
// the extracted script text — surface patterns and counts, never execution —
// so a verdict is an inference about risk, not a certainty.
package rules

import (
	"strings"
	"sync"

	"github.com/pagesec/pagesec-cli/internal/artifact"
	"github.com/pagesec/pagesec-cli/internal/payload"
)

// Outcome is the engine's judgement for one payload.
type Outcome string

const (
	Safe       Outcome = "safe"
	Vulnerable Outcome = "vulnerable"
)

// Verdict pairs a payload with its outcome and a human justification.
// Immutable once produced; ordering follows catalog order within a category.
type Verdict struct {
	Payload       payload.Payload `json:"payload"`
	Outcome       Outcome         `json:"outcome"`
	Justification string          `json:"justification"`
}

// Evaluator judges every payload of one category against the extracted
// script text (and, for some categories, the raw document). Implementations
// are pure functions of their inputs and must return exactly one verdict per
// payload, degrading to all-Safe on empty script text rather than failing.
type Evaluator interface {
	Category() payload.Category
	Evaluate(script string, doc *artifact.Document, payloads []payload.Payload) []Verdict
}

// noContentJustification is the shared all-Safe justification for documents
// without any executable script content.
const noContentJustification = "no executable content found"

// Registry returns the evaluators in the fixed evaluation order. The order
// must match payload.Categories so report ordering stays deterministic.
func Registry() []Evaluator {
	return []Evaluator{
		xssEvaluator{},
		csvInjectionEvaluator{},
		prototypePollutionEvaluator{},
		redosEvaluator{},
		templateInjectionEvaluator{},
		jsonInjectionEvaluator{},
		htmlInjectionEvaluator{},
		pathTraversalEvaluator{},
		numericLimitEvaluator{},
		domClobberingEvaluator{},
		unicodeExploitEvaluator{},
	}
}

// Runner executes the registry against a document. Evaluators are pure and
// share only the read-only document text, so they can run concurrently; the
// per-category outputs are merged back in registry order to keep the verdict
// sequence deterministic.
type Runner struct {
	Concurrency int // maximum evaluators in flight; <=1 means sequential
}

// Run extracts the script text once and judges every catalog payload exactly
// once. The returned sequence always has len == payload.Count().
func (r *Runner) Run(doc *artifact.Document) []Verdict {
	script := artifact.ExtractScript(doc)
	evaluators := Registry()
	perCategory := make([][]Verdict, len(evaluators))

	workers := r.Concurrency
	if workers <= 1 {
		for i, ev := range evaluators {
			perCategory[i] = ev.Evaluate(script, doc, payload.For(ev.Category()))
		}
	} else {
		sem := make(chan struct{}, workers)
		var wg sync.WaitGroup
		for i, ev := range evaluators {
			wg.Add(1)
			go func(idx int, ev Evaluator) {
				defer wg.Done()
				sem <- struct{}{}
				defer func() { <-sem }()
				perCategory[idx] = ev.Evaluate(script, doc, payload.For(ev.Category()))
			}(i, ev)
		}
		wg.Wait()
	}

	verdicts := make([]Verdict, 0, payload.Count())
	for _, vs := range perCategory {
		verdicts = append(verdicts, vs...)
	}
	return verdicts
}

func safeAll(payloads []payload.Payload, justification string) []Verdict {
	out := make([]Verdict, 0, len(payloads))
	for _, p := range payloads {
		out = append(out, Verdict{Payload: p, Outcome: Safe, Justification: justification})
	}
	return out
}

func vulnerableAll(payloads []payload.Payload, justification string) []Verdict {
	out := make([]Verdict, 0, len(payloads))
	for _, p := range payloads {
		out = append(out, Verdict{Payload: p, Outcome: Vulnerable, Justification: justification})
	}
	return out
}

// excerpt trims a code fragment for use inside a justification.
func excerpt(code string, max int) string {
	code = strings.TrimSpace(code)
	if len(code) <= max {
		return code
	}
	return code[:max] + "..."
}
