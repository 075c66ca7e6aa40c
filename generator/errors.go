package generator

import "errors"

// Sentinel errors surfaced by the pipeline.
var (
	// ErrEmptyTopic means the caller supplied no topic; no model call was made.
	ErrEmptyTopic = errors.New("topic is required")
	// ErrModelUnavailable wraps any upstream completion failure: missing
	// credential, network error, non-2xx status, or an empty response.
	ErrModelUnavailable = errors.New("model unavailable")
)
