// Package report aggregates per-payload verdicts into the final audit
// report. Aggregation is purely additive: verdicts are concatenated in
// evaluation order, never reordered or de-duplicated.
package report

import "github.com/pagesec/pagesec-cli/internal/rules"

// Report is the ordered verdict sequence plus derived summary fields.
// VulnerabilityCount and OverallPass are always computed from Verdicts,
// never set independently.
type Report struct {
	Verdicts           []rules.Verdict `json:"verdicts"`
	VulnerabilityCount int             `json:"vulnerability_count"`
	OverallPass        bool            `json:"overall_pass"`
}

// Build folds the verdict sequence into a Report. The input order is
// preserved exactly; two payloads with identical justifications remain two
// distinct entries.
func Build(verdicts []rules.Verdict) Report {
	count := 0
	for _, v := range verdicts {
		if v.Outcome == rules.Vulnerable {
			count++
		}
	}
	return Report{
		Verdicts:           append([]rules.Verdict(nil), verdicts...),
		VulnerabilityCount: count,
		OverallPass:        count == 0,
	}
}

// Vulnerable returns the vulnerable verdicts in report order.
func (r Report) Vulnerable() []rules.Verdict {
	var out []rules.Verdict
	for _, v := range r.Verdicts {
		if v.Outcome == rules.Vulnerable {
			out = append(out, v)
		}
	}
	return out
}
