package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	miniogo "github.com/minio/minio-go/v7"

	"github.com/hsn0918/docsplit/internal/validation"
)

// ErrNotFound is returned by Delete and Stat when the requested object does
// not exist in the bucket.
var ErrNotFound = errors.New("storage: object not found")

// previewableExtensions mirrors the original service's preview allow-list:
// only these file types get a browser-viewable preview URL.
var previewableExtensions = map[string]bool{
	".jpg": true, ".jpeg": true, ".png": true, ".gif": true, ".pdf": true,
}

// UploadResult describes a stored document, including the preview_url that
// image-mode chunking attaches to its content.
type UploadResult struct {
	ObjectName       string
	OriginalFilename string
	Size             int64
	ETag             string
	PreviewURL       string
	UploadTime       time.Time
	OriginalURL      string
}

// DeleteResult confirms which object was removed.
type DeleteResult struct {
	ObjectName string
}

// FileInfo describes a stored object's metadata.
type FileInfo struct {
	Size         int64
	LastModified time.Time
	ETag         string
	ContentType  string
}

// Service is the out-of-scope object-store collaborator described by the
// chunker's external interface: it gives preview_url values fed into
// image-mode chunking a real origin, and nothing more.
type Service struct {
	storage    ObjectStorage
	validator  *validation.Validator
	endpoint   string
	bucketName string
	useSSL     bool
}

func NewService(storage ObjectStorage, validator *validation.Validator, endpoint, bucketName string, useSSL bool) *Service {
	return &Service{
		storage:    storage,
		validator:  validator,
		endpoint:   endpoint,
		bucketName: bucketName,
		useSSL:     useSSL,
	}
}

// Upload validates data, assigns an object name when objectName is empty,
// uploads it, and returns the metadata needed to build preview_url-bearing
// requests downstream.
func (s *Service) Upload(ctx context.Context, data []byte, filename, objectName, originalURL string) (UploadResult, error) {
	ext, err := s.validator.Validate(filename, data)
	if err != nil {
		return UploadResult{}, err
	}

	if objectName == "" {
		objectName = generateObjectName(ext)
	}

	contentType := contentTypeForExtension(ext)
	if err := s.storage.UploadFile(ctx, objectName, bytes.NewReader(data), int64(len(data)), contentType); err != nil {
		return UploadResult{}, fmt.Errorf("storage: upload failed: %w", err)
	}

	info, err := s.storage.GetFileInfo(ctx, objectName)
	if err != nil {
		return UploadResult{}, fmt.Errorf("storage: stat after upload failed: %w", err)
	}

	return UploadResult{
		ObjectName:       objectName,
		OriginalFilename: filename,
		Size:             info.Size,
		ETag:             info.ETag,
		PreviewURL:       s.previewURL(objectName, ext),
		UploadTime:       time.Now().UTC(),
		OriginalURL:      originalURL,
	}, nil
}

// Delete stats the object first so a missing object is reported distinctly
// from a storage failure, then removes it.
func (s *Service) Delete(ctx context.Context, objectName string) (DeleteResult, error) {
	if _, err := s.storage.GetFileInfo(ctx, objectName); err != nil {
		if isNotFound(err) {
			return DeleteResult{}, ErrNotFound
		}
		return DeleteResult{}, fmt.Errorf("storage: stat before delete failed: %w", err)
	}
	if err := s.storage.DeleteFile(ctx, objectName); err != nil {
		return DeleteResult{}, fmt.Errorf("storage: delete failed: %w", err)
	}
	return DeleteResult{ObjectName: objectName}, nil
}

// Stat returns size, last-modified time, etag, and content type for an
// object.
func (s *Service) Stat(ctx context.Context, objectName string) (FileInfo, error) {
	info, err := s.storage.GetFileInfo(ctx, objectName)
	if err != nil {
		if isNotFound(err) {
			return FileInfo{}, ErrNotFound
		}
		return FileInfo{}, fmt.Errorf("storage: stat failed: %w", err)
	}
	return FileInfo{
		Size:         info.Size,
		LastModified: info.LastModTime,
		ETag:         info.ETag,
		ContentType:  info.ContentType,
	}, nil
}

func (s *Service) previewURL(objectName, ext string) string {
	if !previewableExtensions[ext] {
		return ""
	}
	scheme := "http"
	if s.useSSL {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/%s/%s", scheme, s.endpoint, s.bucketName, objectName)
}

func generateObjectName(ext string) string {
	now := time.Now().UTC()
	return fmt.Sprintf("%04d/%02d/%02d/%s%s", now.Year(), now.Month(), now.Day(), uuid.New().String(), ext)
}

func isNotFound(err error) bool {
	var resp miniogo.ErrorResponse
	if !errors.As(err, &resp) {
		return false
	}
	return resp.Code == "NoSuchKey"
}

var contentTypes = map[string]string{
	".pdf":  "application/pdf",
	".txt":  "text/plain",
	".md":   "text/markdown",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".gif":  "image/gif",
}

func contentTypeForExtension(ext string) string {
	if ct, ok := contentTypes[strings.ToLower(ext)]; ok {
		return ct
	}
	return "application/octet-stream"
}
