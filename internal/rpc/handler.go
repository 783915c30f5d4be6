package rpc

import (
	"context"
	"encoding/base64"
	"errors"
	"time"

	"connectrpc.com/connect"
	"go.uber.org/zap"

	"github.com/hsn0918/docsplit/internal/splitting"
	"github.com/hsn0918/docsplit/internal/storage"
	"github.com/hsn0918/docsplit/internal/validation"
)

// timeFormat is how Stat renders a stored object's last-modified time.
const timeFormat = time.RFC3339

// Handler implements the Split, Upload, Delete, and Stat unary RPCs. Split
// delegates to internal/splitting; the other three delegate to the
// internal/storage collaborator that gives preview_url a real origin.
type Handler struct {
	logger  *zap.Logger
	storage *storage.Service
}

func NewHandler(logger *zap.Logger, storageService *storage.Service) *Handler {
	return &Handler{logger: logger, storage: storageService}
}

// Split handles a single chunking request.
func (h *Handler) Split(ctx context.Context, req *connect.Request[SplitRequest]) (*connect.Response[SplitResponse], error) {
	msg := req.Msg
	if err := validateRequest(msg); err != nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}

	opts := splitting.Options{
		ParentBlockSize: msg.ParentBlockSize,
		SubBlockSize:    msg.SubBlockSize,
		ParentSeparator: msg.ParentSeparator,
		SubSeparator:    msg.SubSeparator,
		PreviewURL:      msg.PreviewURL,
		Overlap:         msg.Overlap,
	}

	result, err := splitting.Split(msg.Mode, msg.Content, opts)
	if err != nil {
		switch {
		case errors.Is(err, splitting.ErrUnknownMode), errors.Is(err, splitting.ErrMissingPreviewURL):
			h.logger.Warn("split request rejected",
				zap.String("mode", msg.Mode),
				zap.Error(err),
			)
			return nil, connect.NewError(connect.CodeInvalidArgument, err)
		default:
			h.logger.Error("split request failed", zap.Error(err))
			return nil, connect.NewError(connect.CodeInternal, err)
		}
	}

	h.logger.Debug("split request completed",
		zap.String("mode", msg.Mode),
		zap.Int("content_length", len(msg.Content)),
		zap.Int("result_length", len(result)),
	)

	return connect.NewResponse(&SplitResponse{Result: result}), nil
}

// Upload stores a document and returns the preview_url a subsequent
// image-mode Split call should attach to its content.
func (h *Handler) Upload(ctx context.Context, req *connect.Request[UploadRequest]) (*connect.Response[UploadResponse], error) {
	msg := req.Msg
	if err := validateUploadRequest(msg); err != nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}

	data, err := base64.StdEncoding.DecodeString(msg.ContentBase64)
	if err != nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, errors.New("rpc: content_base64 is not valid base64"))
	}

	result, err := h.storage.Upload(ctx, data, msg.Filename, msg.ObjectName, msg.OriginalURL)
	if err != nil {
		if errors.Is(err, validation.ErrEmptyFile) || errors.Is(err, validation.ErrUnsupportedType) || errors.Is(err, validation.ErrFileTooLarge) {
			h.logger.Warn("upload rejected", zap.String("filename", msg.Filename), zap.Error(err))
			return nil, connect.NewError(connect.CodeInvalidArgument, err)
		}
		h.logger.Error("upload failed", zap.String("filename", msg.Filename), zap.Error(err))
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	h.logger.Debug("upload completed",
		zap.String("object_name", result.ObjectName),
		zap.Int64("size", result.Size),
	)

	return connect.NewResponse(&UploadResponse{
		ObjectName: result.ObjectName,
		Size:       result.Size,
		ETag:       result.ETag,
		PreviewURL: result.PreviewURL,
	}), nil
}

// Delete removes a previously uploaded document.
func (h *Handler) Delete(ctx context.Context, req *connect.Request[DeleteRequest]) (*connect.Response[DeleteResponse], error) {
	msg := req.Msg
	if err := validateObjectName(msg.ObjectName); err != nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}

	result, err := h.storage.Delete(ctx, msg.ObjectName)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, connect.NewError(connect.CodeNotFound, err)
		}
		h.logger.Error("delete failed", zap.String("object_name", msg.ObjectName), zap.Error(err))
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	return connect.NewResponse(&DeleteResponse{ObjectName: result.ObjectName}), nil
}

// Stat reports metadata for a stored document.
func (h *Handler) Stat(ctx context.Context, req *connect.Request[StatRequest]) (*connect.Response[StatResponse], error) {
	msg := req.Msg
	if err := validateObjectName(msg.ObjectName); err != nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}

	info, err := h.storage.Stat(ctx, msg.ObjectName)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, connect.NewError(connect.CodeNotFound, err)
		}
		h.logger.Error("stat failed", zap.String("object_name", msg.ObjectName), zap.Error(err))
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	return connect.NewResponse(&StatResponse{
		Size:         info.Size,
		LastModified: info.LastModified.Format(timeFormat),
		ETag:         info.ETag,
		ContentType:  info.ContentType,
	}), nil
}
