package splitting

import "strings"

// coarsePartition splits text at every position immediately before a
// top-level heading ("# ", never "## " or deeper), so each resulting
// segment carries its heading forward into the following content rather
// than leaving it stranded at the end of the previous segment. A document
// with no top-level heading at all comes back as a single segment equal to
// the whole input.
func coarsePartition(text string) []string {
	idxs := headingSplitPoints(text)
	if len(idxs) == 0 {
		return []string{text}
	}
	segments := make([]string, 0, len(idxs)+1)
	prev := 0
	for _, idx := range idxs {
		segments = append(segments, text[prev:idx])
		prev = idx
	}
	segments = append(segments, text[prev:])
	return segments
}

// headingSplitPoints locates every byte offset at which a top-level heading
// begins: either the very start of text, or a newline immediately followed
// by "# ". The newline itself belongs to the split point so the heading
// travels with the text that follows it.
func headingSplitPoints(text string) []int {
	var idxs []int
	if strings.HasPrefix(text, "# ") {
		idxs = append(idxs, 0)
	}
	offset := 0
	for {
		rel := strings.Index(text[offset:], "\n# ")
		if rel == -1 {
			break
		}
		pos := offset + rel
		idxs = append(idxs, pos)
		offset = pos + 1
	}
	return idxs
}

// coarseSplitAndMerge partitions text at top-level headings, then greedily
// merges adjacent segments back together as long as the merged result
// still fits within target, producing the first-pass parent blocks.
func coarseSplitAndMerge(text string, target int, tt *tokenTable) []string {
	return greedyAccumulate(coarsePartition(text), target, tt)
}
