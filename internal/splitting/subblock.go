package splitting

import "unicode/utf8"

// splitIntoSubBlocks walks parentBlock as an alternating sequence of plain
// text and atomic placeholders (C7). Plain fragments are handed to
// splitNormalText; placeholders are expanded back to their real content and
// emitted whole when they fit subMax, or handed to the matching atomic
// splitter when they don't.
func splitIntoSubBlocks(parentBlock string, target, max int, tt *tokenTable) []string {
	parts := splitPreservingTokens(parentBlock)

	var subBlocks []string
	for _, part := range parts {
		if part == "" {
			continue
		}
		if isTokenPlaceholder(part) {
			content, ok := tt.lookup(part)
			if !ok || content == "" {
				continue
			}
			if utf8.RuneCountInString(content) <= max {
				subBlocks = append(subBlocks, content)
				continue
			}
			switch tokenKindOf(part) {
			case kindImage:
				subBlocks = append(subBlocks, splitAtomicImage(content, max)...)
			case kindTable:
				subBlocks = append(subBlocks, splitAtomicTable(content, max)...)
			default:
				subBlocks = append(subBlocks, content)
			}
			continue
		}
		subBlocks = append(subBlocks, splitNormalText(part, target, max, tt)...)
	}
	return subBlocks
}

// splitNormalText recurses a plain-text fragment down the sub-block ladder.
// Since the ladder ends in a forced character cut, the result always fits
// within max.
func splitNormalText(text string, target, max int, tt *tokenTable) []string {
	if realLength(text, tt) <= max {
		return []string{text}
	}
	return recursiveSplit(text, target, max, tt, subBlockLadder)
}
