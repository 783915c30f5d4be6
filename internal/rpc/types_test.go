package rpc

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/hsn0918/docsplit/internal/splitting"
)

func TestSplitRequest_UnmarshalJSON_StringMode(t *testing.T) {
	var req SplitRequest
	err := json.Unmarshal([]byte(`{"mode":"pdf","content":"hello"}`), &req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if req.Mode != "pdf" || req.Content != "hello" {
		t.Fatalf("unexpected decoded request: %+v", req)
	}
}

func TestSplitRequest_UnmarshalJSON_NonStringMode(t *testing.T) {
	var req SplitRequest
	err := json.Unmarshal([]byte(`{"mode":1,"content":"hello"}`), &req)
	if !errors.Is(err, splitting.ErrInvalidMode) {
		t.Fatalf("expected ErrInvalidMode, got %v", err)
	}
}
