package artifact

import (
	"regexp"
	"strings"
)

var (
	scriptRegionPattern = regexp.MustCompile(`(?is)<script([^>]*)>(.*?)</script>`)
	styleRegionPattern  = regexp.MustCompile(`(?is)<style[^>]*>(.*?)</style>`)
	typeAttrPattern     = regexp.MustCompile(`(?i)type\s*=\s*["']([^"']+)["']`)
)

// ExtractScript concatenates every inline script region in document order.
// Regions that declare a non-executable content type (JSON-LD, templates,
// other structured data riding in a script tag) are excluded: treating data
// as code would produce false vulnerable verdicts downstream. A document
// without script regions yields the empty string, which is not an error.
func ExtractScript(doc *Document) string {
	matches := scriptRegionPattern.FindAllStringSubmatch(doc.Content, -1)
	if len(matches) == 0 {
		return ""
	}

	parts := make([]string, 0, len(matches))
	for _, m := range matches {
		attrs, body := m[1], m[2]
		if !executableScriptType(attrs) {
			continue
		}
		if strings.TrimSpace(body) == "" {
			continue
		}
		parts = append(parts, body)
	}
	return strings.Join(parts, "\n")
}

// ExtractStyle concatenates every inline style region in document order. Only
// the structural checklist consumes style text; the security evaluators do
// not.
func ExtractStyle(doc *Document) string {
	matches := styleRegionPattern.FindAllStringSubmatch(doc.Content, -1)
	if len(matches) == 0 {
		return ""
	}

	parts := make([]string, 0, len(matches))
	for _, m := range matches {
		if strings.TrimSpace(m[1]) == "" {
			continue
		}
		parts = append(parts, m[1])
	}
	return strings.Join(parts, "\n")
}

func executableScriptType(attrs string) bool {
	m := typeAttrPattern.FindStringSubmatch(attrs)
	if m == nil {
		return true
	}
	switch strings.ToLower(strings.TrimSpace(m[1])) {
	case "", "text/javascript", "application/javascript", "application/ecmascript", "module":
		return true
	}
	return false
}
