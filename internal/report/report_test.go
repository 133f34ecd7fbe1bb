package report

import (
	"testing"

	"github.com/pagesec/pagesec-cli/internal/artifact"
	"github.com/pagesec/pagesec-cli/internal/payload"
	"github.com/pagesec/pagesec-cli/internal/rules"
)

func TestBuildCountsVulnerableVerdicts(t *testing.T) {
	verdicts := []rules.Verdict{
		{Outcome: rules.Safe, Justification: "a"},
		{Outcome: rules.Vulnerable, Justification: "b"},
		{Outcome: rules.Vulnerable, Justification: "b"},
		{Outcome: rules.Safe, Justification: "c"},
	}

	rep := Build(verdicts)
	if rep.VulnerabilityCount != 2 {
		t.Errorf("expected 2 vulnerabilities, got %d", rep.VulnerabilityCount)
	}
	if rep.OverallPass {
		t.Error("report with vulnerabilities must not pass")
	}
	if len(rep.Verdicts) != 4 {
		t.Errorf("identical justifications must not be de-duplicated, got %d entries", len(rep.Verdicts))
	}
}

func TestBuildAllSafePasses(t *testing.T) {
	rep := Build([]rules.Verdict{{Outcome: rules.Safe}, {Outcome: rules.Safe}})
	if rep.VulnerabilityCount != 0 || !rep.OverallPass {
		t.Errorf("all-safe report: count=%d pass=%v", rep.VulnerabilityCount, rep.OverallPass)
	}
}

func TestBuildPreservesOrder(t *testing.T) {
	verdicts := []rules.Verdict{
		{Justification: "first"},
		{Justification: "second"},
		{Justification: "third"},
	}
	rep := Build(verdicts)
	for i, v := range rep.Verdicts {
		if v.Justification != verdicts[i].Justification {
			t.Fatalf("verdict %d reordered: %q", i, v.Justification)
		}
	}
}

func TestBuildCopiesInput(t *testing.T) {
	verdicts := []rules.Verdict{{Outcome: rules.Safe, Justification: "original"}}
	rep := Build(verdicts)
	verdicts[0].Justification = "mutated"
	if rep.Verdicts[0].Justification != "original" {
		t.Error("report must not alias the caller's verdict slice")
	}
}

func TestVulnerableFilter(t *testing.T) {
	rep := Build([]rules.Verdict{
		{Outcome: rules.Safe, Justification: "a"},
		{Outcome: rules.Vulnerable, Justification: "b"},
	})
	vuln := rep.Vulnerable()
	if len(vuln) != 1 || vuln[0].Justification != "b" {
		t.Errorf("Vulnerable() = %v", vuln)
	}
}

// Aggregation consistency over a real end-to-end run: count and pass are
// always derived from the verdict sequence.
func TestAggregationConsistencyEndToEnd(t *testing.T) {
	docs := []*artifact.Document{
		{Content: ""},
		{Content: "<script>document.body.innerHTML = '<b>' + name;</script>"},
		{Content: "<script>out.textContent = name;</script>"},
	}

	runner := &rules.Runner{}
	for _, doc := range docs {
		rep := Build(runner.Run(doc))
		if len(rep.Verdicts) != payload.Count() {
			t.Errorf("verdict count %d != catalog size %d", len(rep.Verdicts), payload.Count())
		}
		count := 0
		for _, v := range rep.Verdicts {
			if v.Outcome == rules.Vulnerable {
				count++
			}
		}
		if rep.VulnerabilityCount != count {
			t.Errorf("derived count %d != recount %d", rep.VulnerabilityCount, count)
		}
		if rep.OverallPass != (count == 0) {
			t.Errorf("overall pass %v inconsistent with count %d", rep.OverallPass, count)
		}
	}
}
