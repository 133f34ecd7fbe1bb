package rules

import (
	"strings"
	"testing"

	"github.com/pagesec/pagesec-cli/internal/payload"
)

func evaluateXSS(t *testing.T, script string) []Verdict {
	t.Helper()
	return xssEvaluator{}.Evaluate(script, nil, payload.For(payload.CategoryXSS))
}

func TestXSSDynamicSinkIsVulnerable(t *testing.T) {
	verdicts := evaluateXSS(t, `document.getElementById('out').innerHTML = '<b>' + userInput;`)
	for _, v := range verdicts {
		if v.Outcome != Vulnerable {
			t.Fatalf("payload %s judged %s, want vulnerable", v.Payload.ID, v.Outcome)
		}
		if !strings.Contains(v.Justification, "innerHTML") {
			t.Errorf("justification should name the offending assignment, got %q", v.Justification)
		}
	}
}

func TestXSSNoSinkIsSafe(t *testing.T) {
	for _, v := range evaluateXSS(t, `var total = price * quantity;`) {
		if v.Outcome != Safe {
			t.Errorf("payload %s judged %s without any sink", v.Payload.ID, v.Outcome)
		}
	}
}

func TestXSSSafeTextSinkPreferred(t *testing.T) {
	script := `
	el.innerHTML = template;
	out.textContent = userInput;`
	for _, v := range evaluateXSS(t, script) {
		if v.Outcome != Safe {
			t.Errorf("payload %s judged %s with safe text sink in evidence", v.Payload.ID, v.Outcome)
		}
	}
}

func TestXSSFixedLiteralAssignmentIsSafe(t *testing.T) {
	for _, v := range evaluateXSS(t, `el.innerHTML = '<b>static banner</b>';`) {
		if v.Outcome != Safe {
			t.Errorf("payload %s judged %s for fixed-literal assignment", v.Payload.ID, v.Outcome)
		}
	}
}

func TestXSSEmptyScript(t *testing.T) {
	for _, v := range evaluateXSS(t, "") {
		if v.Outcome != Safe || v.Justification != noContentJustification {
			t.Errorf("empty script: payload %s got %s / %q", v.Payload.ID, v.Outcome, v.Justification)
		}
	}
}
