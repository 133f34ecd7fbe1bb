package errors

import "errors"

// Domain errors
var (
	// Catalog errors. A malformed catalog entry is a programming error in the
	// compiled-in data, surfaced at startup rather than skipped silently.
	ErrEmptyCatalog      = errors.New("payload catalog is empty")
	ErrUnknownCategory   = errors.New("payload references an unknown category")
	ErrEmptyPayloadID    = errors.New("payload identifier cannot be empty")
	ErrEmptyPayloadLabel = errors.New("payload label cannot be empty")
	ErrDuplicatePayload  = errors.New("duplicate payload identifier within category")
	ErrCategoryNoPayload = errors.New("category has no payloads")
)
