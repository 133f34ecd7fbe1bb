package rules

import (
	"testing"

	"github.com/pagesec/pagesec-cli/internal/artifact"
	"github.com/pagesec/pagesec-cli/internal/payload"
)

func evaluateNumeric(t *testing.T, script string, doc *artifact.Document) []Verdict {
	t.Helper()
	if doc == nil {
		doc = &artifact.Document{Content: "<script>" + script + "</script>"}
	}
	return numericLimitEvaluator{}.Evaluate(script, doc, payload.For(payload.CategoryNumericLimit))
}

func TestNumericGuardsPresent(t *testing.T) {
	script := `
	var n = parseFloat(input.value);
	if (isNaN(n) || !isFinite(n)) { reject(); }`
	for _, v := range evaluateNumeric(t, script, nil) {
		if v.Outcome != Safe {
			t.Errorf("payload %s judged %s with both guards present", v.Payload.ID, v.Outcome)
		}
	}
}

func TestNumericDeclaredBoundSuffices(t *testing.T) {
	doc := &artifact.Document{Content: `<input type="number" max="999999"><script>var n = +input.value;</script>`}
	for _, v := range evaluateNumeric(t, `var n = +input.value;`, doc) {
		if v.Outcome != Safe {
			t.Errorf("payload %s judged %s with document-declared bound", v.Payload.ID, v.Outcome)
		}
		if v.Justification != "input bound declared in document" {
			t.Errorf("payload %s justification %q", v.Payload.ID, v.Justification)
		}
	}
}

func TestNumericMissingGuards(t *testing.T) {
	script := `var n = parseFloat(input.value); total += n;`

	wantVulnerable := map[string]bool{
		"nan":           true,
		"infinity":      true,
		"near-infinity": true,
	}
	for _, v := range evaluateNumeric(t, script, nil) {
		if wantVulnerable[v.Payload.ID] {
			if v.Outcome != Vulnerable {
				t.Errorf("payload %s judged %s without guards", v.Payload.ID, v.Outcome)
			}
		} else if v.Outcome != Safe {
			t.Errorf("payload %s judged %s, range payloads need no specific guard", v.Payload.ID, v.Outcome)
		}
	}
}

func TestNumericEmptyScript(t *testing.T) {
	doc := &artifact.Document{Content: ""}
	for _, v := range evaluateNumeric(t, "", doc) {
		if v.Outcome != Safe {
			t.Errorf("empty script: payload %s judged %s", v.Payload.ID, v.Outcome)
		}
	}
}
