package splitting

import (
	"strings"
	"unicode/utf8"
)

// splitAtomicImage breaks an oversized image-annotation region into several
// bracketed pieces, each reading as a standalone image entry: the first
// carries a "segment" marker and every following piece a "continuation"
// marker, so a reader sees at a glance that the image description was cut.
func splitAtomicImage(content string, limit int) []string {
	runes := []rune(content)
	if len(runes) < 2 {
		return []string{content}
	}
	inner := string(runes[1 : len(runes)-1]) // strip outer 【 】
	lines := strings.Split(inner, "\n")

	const segmentPrefix = "【图片内容(分段):"
	const continuedPrefix = "【图片内容(续):"

	var chunks []string
	current := segmentPrefix
	for _, line := range lines {
		candidate := utf8.RuneCountInString(current) + utf8.RuneCountInString(line) + 1
		if candidate > limit {
			chunks = append(chunks, current+"】")
			current = continuedPrefix + line
			continue
		}
		current += "\n" + line
	}
	chunks = append(chunks, current+"】")
	return chunks
}

// splitAtomicTable breaks an oversized table region into several chunks,
// each replicating the header and separator rows so that every chunk reads
// as a complete table on its own.
func splitAtomicTable(content string, limit int) []string {
	lines := strings.Split(strings.TrimSpace(content), "\n")
	if len(lines) < 2 {
		return []string{content}
	}
	header := lines[0]
	sep := lines[1]
	rows := lines[2:]

	baseLen := utf8.RuneCountInString(header) + utf8.RuneCountInString(sep) + 2

	var chunks []string
	var current []string
	currentLen := baseLen
	flush := func() {
		if len(current) == 0 {
			return
		}
		all := append([]string{header, sep}, current...)
		chunks = append(chunks, strings.Join(all, "\n"))
		current = nil
		currentLen = baseLen
	}

	for _, row := range rows {
		rowLen := utf8.RuneCountInString(row)
		if currentLen+rowLen+1 > limit && len(current) > 0 {
			flush()
		}
		current = append(current, row)
		currentLen += rowLen + 1
	}
	flush()
	return chunks
}
