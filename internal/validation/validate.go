// Package validation checks uploaded source documents before they are
// handed to object storage, mirroring the original service's
// validate_file / content-sniffing fallback.
package validation

import (
	"bytes"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

// Sentinel errors describing why a file was rejected.
var (
	ErrEmptyFile       = errors.New("validation: file is empty")
	ErrUnsupportedType = errors.New("validation: unsupported file type")
	ErrFileTooLarge    = errors.New("validation: file exceeds the maximum allowed size")
)

// Config carries the allow-list and size ceiling a Validator checks against.
type Config struct {
	MaxFileSize       int64
	AllowedExtensions []string
}

// Validator validates an uploaded file's size and type before it reaches
// object storage.
type Validator struct {
	cfg Config
}

func NewValidator(cfg Config) *Validator {
	return &Validator{cfg: cfg}
}

// Validate checks filename and data against the configured size ceiling and
// extension allow-list, falling back to content-sniffing when filename
// carries no recognizable extension. It returns the resolved extension
// (lower-cased, with leading dot) on success.
func (v *Validator) Validate(filename string, data []byte) (string, error) {
	if len(data) == 0 {
		return "", ErrEmptyFile
	}
	if v.cfg.MaxFileSize > 0 && int64(len(data)) > v.cfg.MaxFileSize {
		return "", fmt.Errorf("%w: %d bytes (limit %d)", ErrFileTooLarge, len(data), v.cfg.MaxFileSize)
	}

	ext := strings.ToLower(filepath.Ext(filename))
	if ext == "" {
		ext = detectExtensionFromContent(data)
	}
	if ext == "" || !v.isAllowed(ext) {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedType, ext)
	}
	return ext, nil
}

func (v *Validator) isAllowed(ext string) bool {
	for _, allowed := range v.cfg.AllowedExtensions {
		if strings.EqualFold(allowed, ext) {
			return true
		}
	}
	return false
}

// magic-byte signatures used to resolve a file's type when its name carries
// no extension at all.
var signatures = []struct {
	ext   string
	magic []byte
}{
	{".jpg", []byte{0xFF, 0xD8, 0xFF}},
	{".png", []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1A, '\n'}},
	{".gif", []byte("GIF87a")},
	{".gif", []byte("GIF89a")},
	{".pdf", []byte("%PDF")},
}

func detectExtensionFromContent(data []byte) string {
	for _, sig := range signatures {
		if bytes.HasPrefix(data, sig.magic) {
			return sig.ext
		}
	}
	if isLikelyUTF8Text(data) {
		return ".txt"
	}
	return ""
}

func isLikelyUTF8Text(data []byte) bool {
	sample := data
	if len(sample) > 4096 {
		sample = sample[:4096]
	}
	return utf8.Valid(sample)
}
