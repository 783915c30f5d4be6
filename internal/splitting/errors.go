// Package splitting implements the hierarchical parent/sub-block text
// chunker: a pure, deterministic transformation from a document string to a
// flattened chunk string, with no I/O and no dependency on call order.
package splitting

import "errors"

// Sentinel errors of this package. Size-bound overruns are never surfaced
// as errors — the splitter always returns its best-effort result instead.
var (
	// ErrInvalidMode is returned by internal/rpc's SplitRequest.UnmarshalJSON
	// when the wire request's mode field is not a JSON string at all.
	ErrInvalidMode = errors.New("splitting: mode must be a string")

	// ErrUnknownMode is returned when mode is a string but not one of the
	// recognized aliases for pdf, table, or image mode.
	ErrUnknownMode = errors.New("splitting: unrecognized mode")

	// ErrMissingPreviewURL is returned when image mode is requested without
	// a preview URL to attach to the content.
	ErrMissingPreviewURL = errors.New("splitting: preview_url is required for image mode")
)
