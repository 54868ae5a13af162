package competitor

import "errors"

// Error kinds surfaced by the enrichment flow. The HTTP layer maps these to
// status codes with errors.Is.
var (
	// ErrNotFound indicates the requested competitor id is absent from the store.
	ErrNotFound = errors.New("competitor not found")

	// ErrSummaryGeneration indicates the completion call failed, timed out, or
	// returned no usable text.
	ErrSummaryGeneration = errors.New("summary generation failed")

	// ErrStoreWrite indicates the summary update affected no rows or the store
	// call itself errored.
	ErrStoreWrite = errors.New("summary write failed")

	// ErrStoreRead indicates a listing or selection call against the store errored.
	ErrStoreRead = errors.New("competitor read failed")
)
