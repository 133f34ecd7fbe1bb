// Package artifact loads the web artifact under audit and isolates the
// embedded sub-languages (script, style) that the rule engine inspects.
// Extraction is textual on purpose: this tool is an advisory linter, not a
// parser, and never executes anything it reads.
package artifact

import (
	"fmt"
	"os"
	"strings"
)

// Document is the full artifact text as read from disk. It is loaded once per
// run and never mutated.
type Document struct {
	Path    string
	Content string
}

// Load reads the artifact at path. A missing or unreadable file is fatal to
// the run; no checks execute against a document that failed to load.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- path is the user-supplied audit target.
	if err != nil {
		return nil, fmt.Errorf("load artifact %s: %w", path, err)
	}
	return &Document{Path: path, Content: string(data)}, nil
}

// Length returns the artifact size in bytes.
func (d *Document) Length() int {
	return len(d.Content)
}

// LineCount returns the number of lines in the artifact.
func (d *Document) LineCount() int {
	if d.Content == "" {
		return 0
	}
	n := strings.Count(d.Content, "\n")
	if !strings.HasSuffix(d.Content, "\n") {
		n++
	}
	return n
}
