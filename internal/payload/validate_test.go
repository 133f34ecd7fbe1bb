package payload

import (
	"errors"
	"testing"

	sharederrors "github.com/pagesec/pagesec-cli/internal/shared/errors"
)

// withCatalog swaps the compiled-in catalog for a malformed one and restores
// it when the test finishes.
func withCatalog(t *testing.T, replacement map[Category][]Payload) {
	t.Helper()
	saved := catalog
	catalog = replacement
	t.Cleanup(func() { catalog = saved })
}

// cloneCatalog deep-copies the real catalog so a test can corrupt one entry.
func cloneCatalog() map[Category][]Payload {
	out := make(map[Category][]Payload, len(catalog))
	for cat, entries := range catalog {
		copied := make([]Payload, len(entries))
		copy(copied, entries)
		out[cat] = copied
	}
	return out
}

func TestValidateEmptyCatalog(t *testing.T) {
	withCatalog(t, map[Category][]Payload{})
	if err := Validate(); !errors.Is(err, sharederrors.ErrEmptyCatalog) {
		t.Errorf("expected ErrEmptyCatalog, got %v", err)
	}
}

func TestValidateCategoryWithoutPayloads(t *testing.T) {
	corrupted := cloneCatalog()
	corrupted[CategoryReDoS] = nil
	withCatalog(t, corrupted)

	if err := Validate(); !errors.Is(err, sharederrors.ErrCategoryNoPayload) {
		t.Errorf("expected ErrCategoryNoPayload, got %v", err)
	}
}

func TestValidateUnknownCategoryKey(t *testing.T) {
	corrupted := cloneCatalog()
	bogus := Category("sql-injection")
	corrupted[bogus] = []Payload{{Category: bogus, ID: "x", Input: "x", Label: "x"}}
	withCatalog(t, corrupted)

	if err := Validate(); !errors.Is(err, sharederrors.ErrUnknownCategory) {
		t.Errorf("expected ErrUnknownCategory, got %v", err)
	}
}

func TestValidateMisfiledPayload(t *testing.T) {
	corrupted := cloneCatalog()
	corrupted[CategoryXSS][0].Category = CategoryCSVInjection
	withCatalog(t, corrupted)

	if err := Validate(); !errors.Is(err, sharederrors.ErrUnknownCategory) {
		t.Errorf("expected ErrUnknownCategory for misfiled payload, got %v", err)
	}
}

func TestValidateEmptyPayloadID(t *testing.T) {
	corrupted := cloneCatalog()
	corrupted[CategoryXSS][0].ID = ""
	withCatalog(t, corrupted)

	if err := Validate(); !errors.Is(err, sharederrors.ErrEmptyPayloadID) {
		t.Errorf("expected ErrEmptyPayloadID, got %v", err)
	}
}

func TestValidateEmptyPayloadLabel(t *testing.T) {
	corrupted := cloneCatalog()
	corrupted[CategoryXSS][0].Label = ""
	withCatalog(t, corrupted)

	if err := Validate(); !errors.Is(err, sharederrors.ErrEmptyPayloadLabel) {
		t.Errorf("expected ErrEmptyPayloadLabel, got %v", err)
	}
}

func TestValidateDuplicatePayloadID(t *testing.T) {
	corrupted := cloneCatalog()
	corrupted[CategoryXSS][1].ID = corrupted[CategoryXSS][0].ID
	withCatalog(t, corrupted)

	if err := Validate(); !errors.Is(err, sharederrors.ErrDuplicatePayload) {
		t.Errorf("expected ErrDuplicatePayload, got %v", err)
	}
}
