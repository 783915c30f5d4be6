package splitting

import "strings"

// parentLadder is the separator ladder used to refine an oversized parent
// block, coarsest first. Unlike the sub-block ladder it never bottoms out
// in a forced character cut: a parent block that still exceeds its hard
// maximum after every tier is returned as-is, best effort.
var parentLadder = []string{"\n## ", "\n### ", "\n#### ", "\n\n", "\n", " "}

// subBlockLadder is the separator ladder used to split an oversized plain-
// text fragment within a sub-block. The trailing empty string is a forced
// cut: it always produces chunks of at most target runes, guaranteeing the
// recursion terminates.
var subBlockLadder = []string{"\n\n", "\n", "。", "！", "？", "；", ";", " ", ""}

// recursiveSplit is the general boundary splitter (C4). It tries the first
// separator in ladder, greedily accumulating the alternating segment/
// separator parts into buffers of at most target runes, then recurses into
// the remaining ladder for any buffer that still exceeds max. A block that
// already fits within max is returned unchanged without consulting the
// ladder at all.
func recursiveSplit(s string, target, max int, tt *tokenTable, ladder []string) []string {
	if realLength(s, tt) <= max {
		return []string{s}
	}
	if len(ladder) == 0 {
		return []string{s}
	}

	sep := ladder[0]
	rest := ladder[1:]

	if sep == "" {
		return forceCut(s, target)
	}

	parts := splitAlternating(s, sep)
	chunks := greedyAccumulate(parts, target, tt)

	result := make([]string, 0, len(chunks))
	for _, c := range chunks {
		if realLength(c, tt) > max {
			result = append(result, recursiveSplit(c, target, max, tt, rest)...)
		} else {
			result = append(result, c)
		}
	}
	return result
}

// splitAlternating splits s on every non-overlapping occurrence of sep,
// returning the segments and the separator itself as alternating elements
// so that concatenating the result reconstructs s exactly.
func splitAlternating(s, sep string) []string {
	if sep == "" {
		return []string{s}
	}
	var parts []string
	for {
		idx := strings.Index(s, sep)
		if idx == -1 {
			parts = append(parts, s)
			break
		}
		parts = append(parts, s[:idx], sep)
		s = s[idx+len(sep):]
	}
	return parts
}

// greedyAccumulate appends parts one at a time into a buffer, flushing it
// as a chunk whenever adding the next part would push the buffer's real
// length past target. A part that alone exceeds target is still placed
// into its own buffer rather than dropped.
func greedyAccumulate(parts []string, target int, tt *tokenTable) []string {
	var chunks []string
	var buf strings.Builder
	for _, part := range parts {
		if part == "" {
			continue
		}
		if buf.Len() > 0 && realLength(buf.String()+part, tt) > target {
			chunks = append(chunks, buf.String())
			buf.Reset()
		}
		buf.WriteString(part)
	}
	if buf.Len() > 0 {
		chunks = append(chunks, buf.String())
	}
	return chunks
}

// forceCut splits s into successive slices of at most target runes each,
// the last-resort tier of the sub-block ladder.
func forceCut(s string, target int) []string {
	if target < 1 {
		target = 1
	}
	runes := []rune(s)
	if len(runes) == 0 {
		return []string{""}
	}
	out := make([]string, 0, (len(runes)+target-1)/target)
	for i := 0; i < len(runes); i += target {
		end := i + target
		if end > len(runes) {
			end = len(runes)
		}
		out = append(out, string(runes[i:end]))
	}
	return out
}
