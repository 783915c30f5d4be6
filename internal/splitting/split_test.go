package splitting

import (
	"errors"
	"strings"
	"testing"
)

func TestSplit_EmptyContent(t *testing.T) {
	result, err := Split("pdf", "", Options{})
	if err != nil {
		t.Fatalf("Split returned error for empty content: %v", err)
	}
	if result != "" {
		t.Fatalf("expected empty result, got %q", result)
	}
}

func TestSplit_ShortProseIsSingleParent(t *testing.T) {
	result, err := Split("pdf", "Hello world.", Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result != "Hello world." {
		t.Fatalf("expected content to pass through unchanged, got %q", result)
	}
}

func TestSplit_UnknownModeIsError(t *testing.T) {
	_, err := Split("not-a-mode", "content", Options{})
	if !errors.Is(err, ErrUnknownMode) {
		t.Fatalf("expected ErrUnknownMode, got %v", err)
	}
}

func TestSplit_ImageModeRequiresPreviewURL(t *testing.T) {
	_, err := Split("image", "【图片主题：a cat】", Options{})
	if !errors.Is(err, ErrMissingPreviewURL) {
		t.Fatalf("expected ErrMissingPreviewURL, got %v", err)
	}
}

func TestSplit_ModeAliasesAreEquivalent(t *testing.T) {
	content := "# Title\n\nSome body text here."
	canonical, err := Split("pdf", content, Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, alias := range []string{"PDF", " pdf_text ", "PDF_TEXT"} {
		got, err := Split(alias, content, Options{})
		if err != nil {
			t.Fatalf("alias %q: unexpected error: %v", alias, err)
		}
		if got != canonical {
			t.Fatalf("alias %q diverged from canonical mode result:\nwant %q\ngot  %q", alias, canonical, got)
		}
	}
}

func TestSplit_Deterministic(t *testing.T) {
	content := strings.Repeat("# Section\n\nSome paragraph content that repeats a little. ", 40)
	opts := Options{ParentBlockSize: 256, SubBlockSize: 96}
	first, err := Split("pdf", content, opts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := Split("pdf", content, opts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first != second {
		t.Fatalf("Split is not deterministic across identical calls")
	}
}

func TestSplit_ContentConservation(t *testing.T) {
	content := "# A\n\nfirst paragraph\n\n# B\n\nsecond paragraph, somewhat longer than the first one to force a split."
	opts := Options{ParentBlockSize: 40, SubBlockSize: 20}
	result, err := Split("pdf", content, opts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	strip := func(s string) string {
		return strings.Join(strings.Fields(s), "")
	}
	wantChars := strip(content)
	gotChars := strip(strings.NewReplacer(
		opts.WithDefaults().ParentSeparator, "",
		opts.WithDefaults().SubSeparator, "",
	).Replace(result))

	if gotChars != wantChars {
		t.Fatalf("content was not conserved:\nwant substring set %q\ngot  %q", wantChars, gotChars)
	}
}

func TestSplit_TableModeReplicatesHeader(t *testing.T) {
	var rows strings.Builder
	rows.WriteString("| Name | Value |\n| --- | --- |\n")
	for i := 0; i < 60; i++ {
		rows.WriteString("| item | a fairly long value that takes up real space |\n")
	}

	opts := Options{ParentBlockSize: 200, SubBlockSize: 80}
	result, err := Split("table", rows.String(), opts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	parents := strings.Split(result, opts.WithDefaults().ParentSeparator)
	if len(parents) < 2 {
		t.Fatalf("expected table content to split into multiple parent blocks, got %d", len(parents))
	}
	for i, p := range parents {
		if !strings.Contains(p, "| Name | Value |") {
			t.Errorf("parent block %d is missing the replicated header:\n%s", i, p)
		}
	}
}

func TestSplit_TableModeFallsBackToPDFWithoutTable(t *testing.T) {
	content := "# Notes\n\nThis document has no table rows at all, just prose."
	result, err := Split("table", content, Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(result, "This document has no table rows") {
		t.Fatalf("expected fallback pdf output to retain the prose, got %q", result)
	}
}

func TestSplit_ImageModeOverflowTruncatesBody(t *testing.T) {
	content := "【图片主题：a very long description that goes on and on and on and on】"
	opts := Options{ParentBlockSize: 30, SubBlockSize: 30, PreviewURL: "https://example.com/a.png"}
	result, err := Split("image", content, opts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(result, "图片连接") {
		t.Fatalf("expected preview url label to survive truncation, got %q", result)
	}
	if !strings.Contains(result, opts.PreviewURL) {
		t.Fatalf("expected preview url to survive truncation, got %q", result)
	}
	if strings.Contains(result, "description") {
		t.Fatalf("expected overflowing body to be truncated, got %q", result)
	}
}

func TestSplit_SoftSizeCeiling(t *testing.T) {
	content := strings.Repeat("word ", 500)
	opts := Options{ParentBlockSize: 120, SubBlockSize: 50}
	result, err := Split("pdf", content, opts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, parent := range strings.Split(result, opts.WithDefaults().ParentSeparator) {
		for _, sub := range strings.Split(parent, opts.WithDefaults().SubSeparator) {
			if n := len([]rune(sub)); n > opts.SubBlockSize*2 {
				t.Errorf("sub-block of length %d grossly exceeds sub_block_size %d:\n%s", n, opts.SubBlockSize, sub)
			}
		}
	}
}

func TestFixHeadingAdjacency(t *testing.T) {
	tests := []struct {
		name string
		in   string
		sep  string
		want string
	}{
		{
			name: "heading stranded right before separator",
			in:   "body text #\n\n\n\nTitle Two\nmore body",
			sep:  "\n\n\n\n",
			want: "body text \n\n\n\n# Title Two\nmore body",
		},
		{
			name: "no adjacency, no change",
			in:   "# Title\n\nbody",
			sep:  "\n\n\n\n",
			want: "# Title\n\nbody",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := fixHeadingAdjacency(tt.in, tt.sep)
			if got != tt.want {
				t.Errorf("fixHeadingAdjacency() = %q, want %q", got, tt.want)
			}
		})
	}
}
