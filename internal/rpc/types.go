// Package rpc exposes the chunker's Split operation as a Connect unary
// handler. It is pure transport plumbing; all chunking logic lives in
// internal/splitting.
package rpc

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/hsn0918/docsplit/internal/splitting"
)

// SplitRequest mirrors the entry point's parameters field for field,
// including its documented defaults (applied when a field is left zero).
type SplitRequest struct {
	Mode            string `json:"mode"`
	Content         string `json:"content"`
	ParentBlockSize int    `json:"parent_block_size,omitempty"`
	SubBlockSize    int    `json:"sub_block_size,omitempty"`
	ParentSeparator string `json:"parent_separator,omitempty"`
	SubSeparator    string `json:"sub_separator,omitempty"`
	PreviewURL      string `json:"preview_url,omitempty"`
	Overlap         int    `json:"overlap,omitempty"`
}

// UnmarshalJSON rejects a non-string mode field with ErrInvalidMode instead
// of letting encoding/json's own type-mismatch error surface, so a caller
// that sends e.g. mode: 1 gets the same sentinel-backed rejection as a
// caller that sends an unrecognized mode string.
func (r *SplitRequest) UnmarshalJSON(data []byte) error {
	type alias SplitRequest
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field == "mode" {
			return fmt.Errorf("%w: got %s", splitting.ErrInvalidMode, typeErr.Value)
		}
		return err
	}
	*r = SplitRequest(a)
	return nil
}

// SplitResponse wraps the flattened chunk string.
type SplitResponse struct {
	Result string `json:"result"`
}

// UploadRequest carries a document to store ahead of an image-mode Split
// call. Content is base64-encoded since the transport is JSON.
type UploadRequest struct {
	Filename      string `json:"filename"`
	ContentBase64 string `json:"content_base64"`
	ObjectName    string `json:"object_name,omitempty"`
	OriginalURL   string `json:"original_url,omitempty"`
}

// UploadResponse reports where a document landed and the preview_url a
// follow-up image-mode Split call should use.
type UploadResponse struct {
	ObjectName string `json:"object_name"`
	Size       int64  `json:"size"`
	ETag       string `json:"etag"`
	PreviewURL string `json:"preview_url"`
}

// DeleteRequest names the object to remove.
type DeleteRequest struct {
	ObjectName string `json:"object_name"`
}

// DeleteResponse confirms removal.
type DeleteResponse struct {
	ObjectName string `json:"object_name"`
}

// StatRequest names the object to describe.
type StatRequest struct {
	ObjectName string `json:"object_name"`
}

// StatResponse reports a stored object's metadata.
type StatResponse struct {
	Size         int64  `json:"size"`
	LastModified string `json:"last_modified"`
	ETag         string `json:"etag"`
	ContentType  string `json:"content_type"`
}
