package sentinel

import "errors"

// Sentinel infrastructure errors. Storage backends return these (optionally
// wrapped) so the registry translates them into domain errors exactly once.
var (
	ErrNotFound    = errors.New("not found")
	ErrConflict    = errors.New("conflict")
	ErrUnavailable = errors.New("unavailable")

	// ErrNoData means the backend holds no persisted registry yet.
	ErrNoData = errors.New("no persisted data")

	// ErrDataConversion means persisted data exists but cannot be turned back
	// into a valid registry.
	ErrDataConversion = errors.New("data conversion failed")
)
