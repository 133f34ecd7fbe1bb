// Package structure is the structural checklist: presence and counting
// checks over the artifact's markup, script, and style text. It shares the
// extractor with the rule engine but is otherwise independent of it — a
// structural failure never influences a security verdict and vice versa.
package structure

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/pagesec/pagesec-cli/internal/artifact"
)

// Status classifies a single checklist finding.
type Status string

const (
	StatusPass Status = "pass"
	StatusFail Status = "fail"
	StatusWarn Status = "warn"
	StatusInfo Status = "info"
)

// CheckResult is one line of the checklist report.
type CheckResult struct {
	Name   string `json:"name"`
	Status Status `json:"status"`
	Detail string `json:"detail,omitempty"`
}

// Checklist tallies every structural finding for one document.
type Checklist struct {
	Results  []CheckResult `json:"results"`
	Passed   int           `json:"passed"`
	Failed   int           `json:"failed"`
	Warnings int           `json:"warnings"`
}

func (c *Checklist) add(name string, status Status, detail string) {
	c.Results = append(c.Results, CheckResult{Name: name, Status: status, Detail: detail})
	switch status {
	case StatusPass:
		c.Passed++
	case StatusFail:
		c.Failed++
	case StatusWarn:
		c.Warnings++
	}
}

// Score returns the pass percentage over the scored (non-info) checks.
func (c *Checklist) Score() float64 {
	total := c.Passed + c.Failed + c.Warnings
	if total == 0 {
		return 0
	}
	return float64(c.Passed) / float64(total) * 100
}

var (
	langAttrPattern     = regexp.MustCompile(`(?i)<html[^>]*\slang\s*=\s*["'][^"']+["']`)
	charsetMetaPattern  = regexp.MustCompile(`(?i)<meta[^>]*\scharset\s*=`)
	viewportMetaPattern = regexp.MustCompile(`(?i)<meta[^>]+name\s*=\s*["']viewport["']`)
	titlePattern        = regexp.MustCompile(`(?is)<title[^>]*>\s*(\S.*?)\s*</title>`)
	cspMetaPattern      = regexp.MustCompile(`(?i)<meta[^>]+http-equiv\s*=\s*["']Content-Security-Policy["'][^>]*content\s*=\s*["']([^"']*)["']`)
	xctoMetaPattern     = regexp.MustCompile(`(?i)<meta[^>]+http-equiv\s*=\s*["']X-Content-Type-Options["']`)
	cdnScriptPattern    = regexp.MustCompile(`(?i)<script[^>]+src\s*=\s*["']([^"']*cdn[^"']*)["'][^>]*>`)
	labeledInputPattern = regexp.MustCompile(`(?i)<input[^>]*>`)
	ariaLabelPattern    = regexp.MustCompile(`(?i)aria-label\s*=`)
	inputIDPattern      = regexp.MustCompile(`(?i)\bid\s*=\s*["']([^"']+)["']`)
	inputTypePattern    = regexp.MustCompile(`(?i)\btype\s*=\s*["']([^"']+)["']`)
	buttonPattern       = regexp.MustCompile(`(?is)<button([^>]*)>(.*?)</button>`)
	evalCallPattern     = regexp.MustCompile(`\beval\s*\(`)
	consoleCallPattern  = regexp.MustCompile(`console\.(log|error|warn|debug)`)
	cssVarPattern       = regexp.MustCompile(`--[\w-]+:`)
	mediaQueryPattern   = regexp.MustCompile(`@media[^{]+`)
)

// checklist thresholds, carried from the audited conventions: console noise
// and !important overuse are warnings, not failures.
const (
	maxConsoleStatements = 5
	maxImportantUses     = 10
	minLabelCoverage     = 90.0
)

// Run executes every structural check against the document.
func Run(doc *artifact.Document) *Checklist {
	c := &Checklist{}
	script := artifact.ExtractScript(doc)
	style := artifact.ExtractStyle(doc)

	checkMarkup(c, doc)
	checkSecurityMeta(c, doc)
	checkScriptHygiene(c, script)
	checkAccessibility(c, doc)
	checkStyle(c, style)

	return c
}

func checkMarkup(c *Checklist, doc *artifact.Document) {
	if strings.HasPrefix(strings.TrimSpace(doc.Content), "<!DOCTYPE html>") {
		c.add("DOCTYPE present", StatusPass, "")
	} else {
		c.add("DOCTYPE present", StatusFail, "document does not start with <!DOCTYPE html>")
	}

	if langAttrPattern.MatchString(doc.Content) {
		c.add("Language attribute", StatusPass, "")
	} else {
		c.add("Language attribute", StatusFail, "missing lang attribute on <html>")
	}

	if charsetMetaPattern.MatchString(doc.Content) {
		c.add("Charset declared", StatusPass, "")
	} else {
		c.add("Charset declared", StatusFail, "missing charset meta tag")
	}

	if viewportMetaPattern.MatchString(doc.Content) {
		c.add("Viewport meta tag", StatusPass, "")
	} else {
		c.add("Viewport meta tag", StatusFail, "missing viewport meta tag")
	}

	if m := titlePattern.FindStringSubmatch(doc.Content); m != nil {
		c.add("Title present", StatusPass, truncate(m[1], 50))
	} else {
		c.add("Title present", StatusFail, "missing or empty <title>")
	}
}

func checkSecurityMeta(c *Checklist, doc *artifact.Document) {
	// Only the directive sub-checks depend on a CSP being present; the
	// remaining meta checks always run.
	if m := cspMetaPattern.FindStringSubmatch(doc.Content); m != nil {
		c.add("Content-Security-Policy", StatusPass, "")

		csp := m[1]
		if strings.Contains(csp, "default-src") {
			c.add("CSP default-src directive", StatusPass, "")
		} else {
			c.add("CSP default-src directive", StatusWarn, "no default-src fallback")
		}
		if strings.Contains(csp, "script-src") {
			c.add("CSP script-src directive", StatusPass, "")
		} else {
			c.add("CSP script-src directive", StatusWarn, "no script-src directive")
		}
		if strings.Contains(csp, "'unsafe-eval'") {
			c.add("CSP blocks unsafe-eval", StatusWarn, "policy allows 'unsafe-eval'")
		} else {
			c.add("CSP blocks unsafe-eval", StatusPass, "")
		}
	} else {
		c.add("Content-Security-Policy", StatusFail, "no CSP meta tag")
	}

	if xctoMetaPattern.MatchString(doc.Content) {
		c.add("X-Content-Type-Options", StatusPass, "")
	} else {
		c.add("X-Content-Type-Options", StatusWarn, "missing X-Content-Type-Options meta tag")
	}

	for _, tag := range cdnScriptPattern.FindAllStringSubmatch(doc.Content, -1) {
		if strings.Contains(strings.ToLower(tag[0]), "integrity=") {
			c.add("Subresource integrity", StatusPass, truncate(tag[1], 40))
		} else {
			c.add("Subresource integrity", StatusFail, "CDN script without integrity hash: "+truncate(tag[1], 40))
		}
	}
}

func checkScriptHygiene(c *Checklist, script string) {
	if script == "" {
		c.add("Inline script", StatusInfo, "no inline script regions")
		return
	}

	if n := len(evalCallPattern.FindAllString(script, -1)); n == 0 {
		c.add("No eval() usage", StatusPass, "")
	} else {
		c.add("No eval() usage", StatusFail, fmt.Sprintf("%d eval() call(s)", n))
	}

	if n := len(consoleCallPattern.FindAllString(script, -1)); n <= maxConsoleStatements {
		c.add("Console statements", StatusPass, fmt.Sprintf("%d statement(s)", n))
	} else {
		c.add("Console statements", StatusWarn, fmt.Sprintf("%d statement(s), consider reducing", n))
	}

	c.add("Raw-markup assignments", StatusInfo, fmt.Sprintf("%d innerHTML assignment(s), review for injection", strings.Count(script, ".innerHTML")))

	// Error handling for storage operations; swallowed failures corrupt
	// imports silently.
	if strings.Contains(script, "objectStore") {
		if strings.Contains(script, "onerror") || strings.Contains(script, ".catch") {
			c.add("Storage error handling", StatusPass, "")
		} else {
			c.add("Storage error handling", StatusFail, "no error handling around storage operations")
		}
	}
}

func checkAccessibility(c *Checklist, doc *artifact.Document) {
	inputs := labeledInputPattern.FindAllString(doc.Content, -1)
	scored := 0
	labeled := 0
	for _, in := range inputs {
		if m := inputTypePattern.FindStringSubmatch(in); m != nil {
			switch strings.ToLower(m[1]) {
			case "hidden", "submit", "button":
				continue
			}
		}
		scored++
		if ariaLabelPattern.MatchString(in) {
			labeled++
			continue
		}
		if id := inputIDPattern.FindStringSubmatch(in); id != nil {
			forPattern := regexp.MustCompile(`(?i)<label[^>]+for\s*=\s*["']` + regexp.QuoteMeta(id[1]) + `["']`)
			if forPattern.MatchString(doc.Content) {
				labeled++
			}
		}
	}
	if scored > 0 {
		pct := float64(labeled) / float64(scored) * 100
		detail := fmt.Sprintf("%d/%d (%.0f%%)", labeled, scored, pct)
		if pct >= minLabelCoverage {
			c.add("Form inputs labeled", StatusPass, detail)
		} else {
			c.add("Form inputs labeled", StatusWarn, detail)
		}
	}

	unlabeled := 0
	buttons := buttonPattern.FindAllStringSubmatch(doc.Content, -1)
	for _, b := range buttons {
		attrs, text := b[1], b[2]
		if strings.TrimSpace(stripTags(text)) != "" {
			continue
		}
		if ariaLabelPattern.MatchString(attrs) || strings.Contains(strings.ToLower(attrs), "title=") {
			continue
		}
		unlabeled++
	}
	if len(buttons) > 0 {
		if unlabeled == 0 {
			c.add("Buttons labeled", StatusPass, fmt.Sprintf("all %d button(s)", len(buttons)))
		} else {
			c.add("Buttons labeled", StatusWarn, fmt.Sprintf("%d button(s) may need labels", unlabeled))
		}
	}
}

func checkStyle(c *Checklist, style string) {
	if style == "" {
		c.add("Inline style", StatusInfo, "no inline style regions")
		return
	}

	if n := strings.Count(style, "!important"); n <= maxImportantUses {
		c.add("!important usage", StatusPass, fmt.Sprintf("%d use(s)", n))
	} else {
		c.add("!important usage", StatusWarn, fmt.Sprintf("%d use(s), consider reducing", n))
	}

	c.add("CSS custom properties", StatusInfo, fmt.Sprintf("%d defined", len(cssVarPattern.FindAllString(style, -1))))
	c.add("Media queries", StatusInfo, fmt.Sprintf("%d defined", len(mediaQueryPattern.FindAllString(style, -1))))

	if strings.Contains(style, "768px") || strings.Contains(style, "1024px") {
		c.add("Responsive breakpoints", StatusPass, "")
	}
}

var tagPattern = regexp.MustCompile(`<[^>]*>`)

func stripTags(s string) string {
	return tagPattern.ReplaceAllString(s, "")
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
