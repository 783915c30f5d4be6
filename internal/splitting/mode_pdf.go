package splitting

import "strings"

// splitPDFText is the pdf/prose pipeline: convert HTML tables, tokenize
// atomic regions, coarse-partition at top-level headings, refine each
// parent down to parentMax, split every refined parent into sub-blocks, and
// finally join everything back with the caller's separators.
func splitPDFText(content string, opts Options) string {
	env := newEnvelope(opts.ParentBlockSize, opts.SubBlockSize)

	content = convertHTMLTables(content)
	tt := newTokenTable()
	content = tokenizeContent(content, tt)

	coarseBlocks := coarseSplitAndMerge(content, env.parentTarget, tt)

	var parents []string
	for _, block := range coarseBlocks {
		parents = append(parents, refineParentBlock(block, env.parentTarget, env.parentMax, tt)...)
	}

	var processed []string
	for _, parent := range parents {
		subBlocks := splitIntoSubBlocks(parent, env.subTarget, env.subMax, tt)
		valid := trimNonEmpty(subBlocks)
		if len(valid) > 0 {
			processed = append(processed, strings.Join(valid, opts.SubSeparator))
		}
	}

	return strings.Join(processed, opts.ParentSeparator)
}

// trimNonEmpty trims whitespace from each element of parts and drops any
// that become empty, preserving order.
func trimNonEmpty(parts []string) []string {
	var out []string
	for _, p := range parts {
		trimmed := strings.TrimSpace(p)
		if trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
