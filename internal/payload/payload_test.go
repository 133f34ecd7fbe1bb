package payload

import (
	"strings"
	"testing"
)

func TestValidateCompiledCatalog(t *testing.T) {
	if err := Validate(); err != nil {
		t.Fatalf("compiled-in catalog must validate: %v", err)
	}
}

func TestAllMatchesCount(t *testing.T) {
	all := All()
	if len(all) != Count() {
		t.Fatalf("All() length %d != Count() %d", len(all), Count())
	}
	if len(all) == 0 {
		t.Fatal("catalog must not be empty")
	}
}

func TestAllFollowsCategoryOrder(t *testing.T) {
	order := make(map[Category]int, len(Categories()))
	for i, cat := range Categories() {
		order[cat] = i
	}

	last := -1
	for _, p := range All() {
		idx, ok := order[p.Category]
		if !ok {
			t.Fatalf("payload %s has unknown category %s", p.ID, p.Category)
		}
		if idx < last {
			t.Fatalf("payload %s out of category order", p.ID)
		}
		last = idx
	}
}

func TestForReturnsCopy(t *testing.T) {
	first := For(CategoryXSS)
	if len(first) == 0 {
		t.Fatal("XSS category must have payloads")
	}
	first[0].ID = "mutated"

	again := For(CategoryXSS)
	if again[0].ID == "mutated" {
		t.Error("For must return a copy, not the backing slice")
	}
}

func TestEveryCategoryHasPayloads(t *testing.T) {
	for _, cat := range Categories() {
		if len(For(cat)) == 0 {
			t.Errorf("category %s has no payloads", cat)
		}
	}
}

func findPayload(t *testing.T, cat Category, id string) Payload {
	t.Helper()
	for _, p := range For(cat) {
		if p.ID == id {
			return p
		}
	}
	t.Fatalf("payload %s/%s missing from catalog", cat, id)
	return Payload{}
}

func TestUnicodePayloadsCarryControlCodePoints(t *testing.T) {
	cases := []struct {
		id   string
		want string
	}{
		{"null-byte", "\x00"},
		{"zero-width-space", "\u200B"},
		{"bom", "\uFEFF"},
		{"rtl-override", "\u202E"},
	}
	for _, tc := range cases {
		p := findPayload(t, CategoryUnicodeExploit, tc.id)
		if p.Input != tc.want {
			t.Errorf("payload %s input = %q, want %q", tc.id, p.Input, tc.want)
		}
	}
}

func TestJSONEscapeMarkupPayloadIsEncoded(t *testing.T) {
	p := findPayload(t, CategoryJSONInjection, "unicode-escape-markup")
	if !strings.Contains(p.Input, `\u003c`) {
		t.Errorf("payload must carry literal numeric escapes, got %q", p.Input)
	}
	if strings.ContainsAny(p.Input, "<>") {
		t.Errorf("payload must not carry decoded markup delimiters, got %q", p.Input)
	}
}

func TestCategoryTitles(t *testing.T) {
	for _, cat := range Categories() {
		if cat.Title() == string(cat) {
			t.Errorf("category %s has no human title", cat)
		}
	}
}
