package validation

import (
	"errors"
	"testing"
)

func TestValidator_Validate(t *testing.T) {
	v := NewValidator(Config{
		MaxFileSize:       10,
		AllowedExtensions: []string{".pdf", ".txt"},
	})

	tests := []struct {
		name     string
		filename string
		data     []byte
		wantExt  string
		wantErr  error
	}{
		{
			name:    "empty file",
			data:    nil,
			wantErr: ErrEmptyFile,
		},
		{
			name:     "too large",
			filename: "doc.pdf",
			data:     []byte("this string is longer than ten bytes"),
			wantErr:  ErrFileTooLarge,
		},
		{
			name:     "disallowed extension",
			filename: "image.exe",
			data:     []byte("short"),
			wantErr:  ErrUnsupportedType,
		},
		{
			name:     "extension from filename",
			filename: "notes.txt",
			data:     []byte("short"),
			wantExt:  ".txt",
		},
		{
			name:    "sniffed pdf magic bytes",
			data:    []byte("%PDF-1.4 rest"),
			wantExt: ".pdf",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ext, err := v.Validate(tt.filename, tt.data)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected error %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if ext != tt.wantExt {
				t.Fatalf("expected ext %q, got %q", tt.wantExt, ext)
			}
		})
	}
}
