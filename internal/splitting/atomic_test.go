package splitting

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestSplitAtomicImage_OversizedRegionSplitsWithMarkers(t *testing.T) {
	content := "【图片主题：" + strings.Repeat("a long descriptive line\n", 10) + "】"
	chunks := splitAtomicImage(content, 40)

	if len(chunks) < 2 {
		t.Fatalf("expected content exceeding limit to split into multiple chunks, got %d", len(chunks))
	}
	if !strings.HasPrefix(chunks[0], "【图片内容(分段):") {
		t.Fatalf("expected first chunk to carry the segment marker, got %q", chunks[0])
	}
	for _, c := range chunks[1:] {
		if !strings.HasPrefix(c, "【图片内容(续):") {
			t.Errorf("expected continuation chunk to carry the continuation marker, got %q", c)
		}
	}
	for _, c := range chunks {
		if !strings.HasSuffix(c, "】") {
			t.Errorf("expected chunk to be closed with 】, got %q", c)
		}
	}
}

func TestSplitAtomicImage_FitsWithinLimitIsUnsplit(t *testing.T) {
	content := "【图片主题：short】"
	chunks := splitAtomicImage(content, 1000)
	if len(chunks) != 1 {
		t.Fatalf("expected a single chunk for small content, got %d: %v", len(chunks), chunks)
	}
}

func TestSplitAtomicTable_OversizedTableReplicatesHeader(t *testing.T) {
	var b strings.Builder
	b.WriteString("| Name | Value |\n| --- | --- |\n")
	for i := 0; i < 30; i++ {
		b.WriteString("| item | a fairly long value that takes up real space |\n")
	}

	chunks := splitAtomicTable(strings.TrimRight(b.String(), "\n"), 120)
	if len(chunks) < 2 {
		t.Fatalf("expected oversized table to split into multiple chunks, got %d", len(chunks))
	}
	for i, c := range chunks {
		if !strings.Contains(c, "| Name | Value |") {
			t.Errorf("chunk %d missing replicated header:\n%s", i, c)
		}
		if !strings.Contains(c, "| --- | --- |") {
			t.Errorf("chunk %d missing replicated separator:\n%s", i, c)
		}
		if n := utf8.RuneCountInString(c); n > 120*3 {
			t.Errorf("chunk %d of length %d grossly exceeds limit", i, n)
		}
	}
}

func TestSplitAtomicTable_FitsWithinLimitIsUnsplit(t *testing.T) {
	content := "| A | B |\n| --- | --- |\n| 1 | 2 |"
	chunks := splitAtomicTable(content, 1000)
	if len(chunks) != 1 {
		t.Fatalf("expected a single chunk for small content, got %d: %v", len(chunks), chunks)
	}
}

// TestSplit_OversizedImageRegionInProseModeUsesAtomicSplitter exercises C8
// indirectly through the public entry point: an image-annotation region
// embedded in prose content that, once tokenized, is too large to fit as a
// single sub-block must come back out through splitAtomicImage rather than
// being silently dropped or left oversized.
func TestSplit_OversizedImageRegionInProseModeUsesAtomicSplitter(t *testing.T) {
	region := "【图片解析内容：" + strings.Repeat("detailed finding about the figure. ", 20) + "】"
	content := "# Report\n\n" + region + "\n\nSome trailing prose."

	opts := Options{ParentBlockSize: 600, SubBlockSize: 60}
	result, err := Split("pdf", content, opts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(result, "图片内容(分段)") {
		t.Fatalf("expected oversized image region to be split via splitAtomicImage, got:\n%s", result)
	}
	if !strings.Contains(result, "图片内容(续)") {
		t.Fatalf("expected at least one continuation chunk, got:\n%s", result)
	}
}

// TestSplit_OversizedTableRegionInProseModeUsesAtomicSplitter exercises C8
// for the table branch: a Markdown table embedded in prose content (so it
// is tokenized by tokenizeContent rather than reaching the table-mode
// pipeline) that overflows a single sub-block must be split with the
// header and separator replicated in every piece.
func TestSplit_OversizedTableRegionInProseModeUsesAtomicSplitter(t *testing.T) {
	var rows strings.Builder
	rows.WriteString("| Name | Value |\n| --- | --- |\n")
	for i := 0; i < 30; i++ {
		rows.WriteString("| item | a fairly long value that takes up real space |\n")
	}
	content := "# Report\n\n" + rows.String() + "\nSome trailing prose."

	opts := Options{ParentBlockSize: 600, SubBlockSize: 80}
	result, err := Split("pdf", content, opts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	count := strings.Count(result, "| Name | Value |")
	if count < 2 {
		t.Fatalf("expected oversized table region to be split via splitAtomicTable with header replicated at least twice, got %d occurrences:\n%s", count, result)
	}
}
