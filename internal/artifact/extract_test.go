package artifact

import (
	"strings"
	"testing"
)

func TestExtractScriptConcatenatesInOrder(t *testing.T) {
	doc := &Document{Content: `
	<html><head>
	  <script>var first = 1;</script>
	</head><body>
	  <script type="text/javascript">var second = 2;</script>
	</body></html>`}

	script := ExtractScript(doc)
	firstIdx := strings.Index(script, "first")
	secondIdx := strings.Index(script, "second")
	if firstIdx < 0 || secondIdx < 0 {
		t.Fatalf("missing script region content: %q", script)
	}
	if firstIdx > secondIdx {
		t.Error("script regions not concatenated in document order")
	}
}

func TestExtractScriptExcludesDataRegions(t *testing.T) {
	doc := &Document{Content: `
	<script type="application/ld+json">{"@context": "https://schema.org"}</script>
	<script type="application/json">{"config": true}</script>
	<script type="text/template"><div>{{name}}</div></script>
	<script type="module">import "./app.js";</script>
	<script>var live = true;</script>`}

	script := ExtractScript(doc)
	if strings.Contains(script, "schema.org") || strings.Contains(script, "config") {
		t.Errorf("structured-data region leaked into script text: %q", script)
	}
	if strings.Contains(script, "{{name}}") {
		t.Error("template region leaked into script text")
	}
	if !strings.Contains(script, "import") {
		t.Error("module region should be executable")
	}
	if !strings.Contains(script, "var live") {
		t.Error("untyped region should be executable")
	}
}

func TestExtractScriptEmptyDocument(t *testing.T) {
	if got := ExtractScript(&Document{Content: ""}); got != "" {
		t.Errorf("expected empty script text, got %q", got)
	}
	if got := ExtractScript(&Document{Content: "<html><body>no scripts</body></html>"}); got != "" {
		t.Errorf("expected empty script text, got %q", got)
	}
}

func TestExtractStyle(t *testing.T) {
	doc := &Document{Content: `
	<style>body { margin: 0; }</style>
	<style media="print">.page { color: black; }</style>`}

	style := ExtractStyle(doc)
	if !strings.Contains(style, "margin") || !strings.Contains(style, ".page") {
		t.Errorf("style regions missing: %q", style)
	}

	if got := ExtractStyle(&Document{Content: "<html></html>"}); got != "" {
		t.Errorf("expected empty style text, got %q", got)
	}
}
