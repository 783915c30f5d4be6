package rpc

import (
	"errors"
	"fmt"
)

// ErrInvalidRequest is the sentinel wrapped into a connect.CodeInvalidArgument
// error for any structurally malformed request, matching the teacher's
// HTTPValidator pattern of rejecting before any work is done.
var ErrInvalidRequest = errors.New("rpc: invalid request")

// validateRequest performs the hand-written structural checks that stand in
// for protobuf field validation here, since there are no generated message
// types to validate against in this build.
func validateRequest(req *SplitRequest) error {
	if req == nil {
		return fmt.Errorf("%w: request body is required", ErrInvalidRequest)
	}
	if req.Mode == "" {
		return fmt.Errorf("%w: mode is required", ErrInvalidRequest)
	}
	if req.ParentBlockSize < 0 {
		return fmt.Errorf("%w: parent_block_size must not be negative", ErrInvalidRequest)
	}
	if req.SubBlockSize < 0 {
		return fmt.Errorf("%w: sub_block_size must not be negative", ErrInvalidRequest)
	}
	return nil
}

func validateUploadRequest(req *UploadRequest) error {
	if req == nil {
		return fmt.Errorf("%w: request body is required", ErrInvalidRequest)
	}
	if req.Filename == "" {
		return fmt.Errorf("%w: filename is required", ErrInvalidRequest)
	}
	if req.ContentBase64 == "" {
		return fmt.Errorf("%w: content_base64 is required", ErrInvalidRequest)
	}
	return nil
}

func validateObjectName(objectName string) error {
	if objectName == "" {
		return fmt.Errorf("%w: object_name is required", ErrInvalidRequest)
	}
	return nil
}
