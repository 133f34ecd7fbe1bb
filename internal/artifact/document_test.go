package artifact

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadReadsArtifact(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "app.html")
	content := "<!DOCTYPE html>\n<html></html>\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	doc, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected load error: %v", err)
	}
	if doc.Content != content {
		t.Errorf("content mismatch: got %q", doc.Content)
	}
	if doc.Length() != len(content) {
		t.Errorf("expected length %d, got %d", len(content), doc.Length())
	}
	if doc.LineCount() != 2 {
		t.Errorf("expected 2 lines, got %d", doc.LineCount())
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.html")); err == nil {
		t.Fatal("expected error for missing artifact")
	}
}

func TestLineCount(t *testing.T) {
	cases := []struct {
		content string
		want    int
	}{
		{"", 0},
		{"one line", 1},
		{"one line\n", 1},
		{"a\nb\nc", 3},
		{"a\nb\nc\n", 3},
	}
	for _, tc := range cases {
		doc := &Document{Content: tc.content}
		if got := doc.LineCount(); got != tc.want {
			t.Errorf("LineCount(%q) = %d, want %d", tc.content, got, tc.want)
		}
	}
}
