// Package payload is the compiled-in attack catalog: named sample attacker
// inputs grouped by vulnerability category. It is pure data, versionable
// independently of the evaluators that judge it.
package payload

import (
	"fmt"

	sharederrors "github.com/pagesec/pagesec-cli/internal/shared/errors"
)

// Category tags a payload with the vulnerability class it probes. The set is
// closed: adding a category means adding payloads here and an evaluator in
// internal/rules, never inferring one dynamically.
type Category string

const (
	CategoryXSS                Category = "xss"
	CategoryCSVInjection       Category = "csv-injection"
	CategoryPrototypePollution Category = "prototype-pollution"
	CategoryReDoS              Category = "redos"
	CategoryTemplateInjection  Category = "template-injection"
	CategoryJSONInjection      Category = "json-injection"
	CategoryHTMLInjection      Category = "html-injection"
	CategoryPathTraversal      Category = "path-traversal"
	CategoryNumericLimit       Category = "numeric-limit"
	CategoryDOMClobbering      Category = "dom-clobbering"
	CategoryUnicodeExploit     Category = "unicode-exploit"
)

// Categories returns every category in the fixed evaluation order. Report
// ordering is derived from this sequence, so it must stay stable.
func Categories() []Category {
	return []Category{
		CategoryXSS,
		CategoryCSVInjection,
		CategoryPrototypePollution,
		CategoryReDoS,
		CategoryTemplateInjection,
		CategoryJSONInjection,
		CategoryHTMLInjection,
		CategoryPathTraversal,
		CategoryNumericLimit,
		CategoryDOMClobbering,
		CategoryUnicodeExploit,
	}
}

// Title returns the human heading used when rendering a category section.
func (c Category) Title() string {
	switch c {
	case CategoryXSS:
		return "XSS Attack Vectors"
	case CategoryCSVInjection:
		return "CSV Formula Injection"
	case CategoryPrototypePollution:
		return "Prototype Pollution"
	case CategoryReDoS:
		return "ReDoS (Regex Denial of Service)"
	case CategoryTemplateInjection:
		return "Template Injection"
	case CategoryJSONInjection:
		return "JSON Injection"
	case CategoryHTMLInjection:
		return "HTML Injection"
	case CategoryPathTraversal:
		return "Path Traversal"
	case CategoryNumericLimit:
		return "Integer Overflow / Numeric Limits"
	case CategoryDOMClobbering:
		return "DOM Clobbering"
	case CategoryUnicodeExploit:
		return "Unicode Security"
	}
	return string(c)
}

// Payload is one literal sample attacker input. Static data, never mutated.
type Payload struct {
	Category Category `json:"category"`
	ID       string   `json:"id"`
	Input    string   `json:"input"`
	Label    string   `json:"label"`
}

// For returns the catalog entries for one category, in catalog order.
func For(cat Category) []Payload {
	entries := catalog[cat]
	out := make([]Payload, len(entries))
	copy(out, entries)
	return out
}

// All returns every payload, categories in the fixed evaluation order.
func All() []Payload {
	var out []Payload
	for _, cat := range Categories() {
		out = append(out, catalog[cat]...)
	}
	return out
}

// Count returns the total number of catalog entries.
func Count() int {
	n := 0
	for _, cat := range Categories() {
		n += len(catalog[cat])
	}
	return n
}

// Validate checks the compiled-in catalog eagerly at startup. Any failure
// here is a defect in the catalog data itself, so callers should abort the
// run rather than continue with a partial check battery.
func Validate() error {
	if Count() == 0 {
		return sharederrors.ErrEmptyCatalog
	}

	known := make(map[Category]struct{}, len(Categories()))
	for _, cat := range Categories() {
		known[cat] = struct{}{}
		if len(catalog[cat]) == 0 {
			return fmt.Errorf("%w: %s", sharederrors.ErrCategoryNoPayload, cat)
		}
	}

	for cat, entries := range catalog {
		if _, ok := known[cat]; !ok {
			return fmt.Errorf("%w: %s", sharederrors.ErrUnknownCategory, cat)
		}
		seen := make(map[string]struct{}, len(entries))
		for _, p := range entries {
			if p.Category != cat {
				return fmt.Errorf("%w: %s filed under %s", sharederrors.ErrUnknownCategory, p.Category, cat)
			}
			if p.ID == "" {
				return fmt.Errorf("%w: category %s", sharederrors.ErrEmptyPayloadID, cat)
			}
			if p.Label == "" {
				return fmt.Errorf("%w: %s/%s", sharederrors.ErrEmptyPayloadLabel, cat, p.ID)
			}
			if _, dup := seen[p.ID]; dup {
				return fmt.Errorf("%w: %s/%s", sharederrors.ErrDuplicatePayload, cat, p.ID)
			}
			seen[p.ID] = struct{}{}
		}
	}
	return nil
}
