package splitting

import (
	"strings"
	"unicode/utf8"
)

// splitTableText is the table-mode pipeline. It looks for the first
// Markdown header row immediately followed by a separator row, using the
// same loose per-character check as the source algorithm (every character
// in the trimmed line drawn from {|, -, space, :} — column counts between
// header and separator are never compared). If no such pair is found, the
// content is handed to the pdf pipeline instead. Otherwise it streams the
// data rows into parent blocks that each replicate the header and
// separator, reserving header space only against the first sub-block of
// each parent — every later sub-block in the same parent gets the full
// sub_block_size budget, since only the first sub-block sits directly
// under the replicated header.
//
// This loose scan is deliberately not gated behind a stricter GFM-table
// check (e.g. goldmark's, which requires the separator row's cell count to
// match the header's): the source algorithm accepts mismatched-column
// input as tabular, and a stricter precondition here would silently divert
// such input to the prose pipeline instead.
//
// Unlike the pdf and image pipelines, table mode measures against the raw
// caller-supplied parent_block_size and sub_block_size directly; there is
// no 1280/320 internal cap here.
func splitTableText(content string, opts Options) string {
	content = convertHTMLTables(content)

	lines := strings.Split(content, "\n")

	headerIdx, sepIdx := -1, -1
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if !strings.HasPrefix(trimmed, "|") {
			continue
		}
		if headerIdx != -1 && headerIdx == i-1 && isMarkdownSeparatorRow(trimmed) {
			sepIdx = i
			break
		}
		headerIdx = i
	}
	if headerIdx == -1 || sepIdx == -1 {
		return splitPDFText(content, opts)
	}

	headerStr := strings.Join(lines[headerIdx:sepIdx+1], "\n")

	var dataRows []string
	for _, line := range lines[sepIdx+1:] {
		if strings.HasPrefix(strings.TrimSpace(line), "|") {
			dataRows = append(dataRows, line)
		}
	}

	st := &tableStreamer{
		headerStr: headerStr,
		opts:      opts,
	}
	for _, row := range dataRows {
		st.addRow(row)
	}
	st.finish()

	return strings.Join(st.parentBlocks, opts.ParentSeparator)
}

func isMarkdownSeparatorRow(trimmed string) bool {
	if trimmed == "" {
		return false
	}
	for _, r := range trimmed {
		switch r {
		case '|', '-', ' ', ':':
		default:
			return false
		}
	}
	return true
}

// tableStreamer accumulates data rows into sub-blocks and sub-blocks into
// parent blocks, greedily packing as much as fits under opts.SubBlockSize
// (minus the header's footprint for each parent's first sub-block) and
// opts.ParentBlockSize.
type tableStreamer struct {
	headerStr string
	opts      Options

	parentBlocks []string
	currentSubs  []string
	currentRows  []string
}

func (st *tableStreamer) subLen(rows []string) int {
	if len(rows) == 0 {
		return 0
	}
	total := len(rows) - 1
	for _, r := range rows {
		total += utf8.RuneCountInString(r)
	}
	return total
}

func (st *tableStreamer) parentLen(subs []string) int {
	total := utf8.RuneCountInString(st.headerStr)
	if len(subs) == 0 {
		return total
	}
	total += 1
	for i, s := range subs {
		total += utf8.RuneCountInString(s)
		if i < len(subs)-1 {
			total += utf8.RuneCountInString(st.opts.SubSeparator)
		}
	}
	return total
}

func (st *tableStreamer) flushParent() {
	content := st.headerStr + "\n" + strings.Join(st.currentSubs, st.opts.SubSeparator)
	st.parentBlocks = append(st.parentBlocks, content)
	st.currentSubs = nil
}

func (st *tableStreamer) subLimit() int {
	limit := st.opts.SubBlockSize
	if len(st.currentSubs) == 0 {
		limit -= utf8.RuneCountInString(st.headerStr) + 1
		if limit < 0 {
			limit = 0
		}
	}
	return limit
}

func (st *tableStreamer) addRow(row string) {
	tempRows := append(append([]string{}, st.currentRows...), row)
	if st.subLen(tempRows) <= st.subLimit() {
		joined := strings.Join(tempRows, "\n")
		tempSubs := append(append([]string{}, st.currentSubs...), joined)
		if st.parentLen(tempSubs) <= st.opts.ParentBlockSize {
			st.currentRows = tempRows
			return
		}
		if len(st.currentRows) > 0 {
			st.currentSubs = append(st.currentSubs, strings.Join(st.currentRows, "\n"))
			st.flushParent()
			st.currentRows = []string{row}
			return
		}
		st.currentRows = tempRows
		return
	}

	if len(st.currentRows) == 0 {
		st.currentRows = append(st.currentRows, row)
		return
	}

	subStr := strings.Join(st.currentRows, "\n")
	tempSubs := append(append([]string{}, st.currentSubs...), subStr)
	if st.parentLen(tempSubs) <= st.opts.ParentBlockSize {
		st.currentSubs = append(st.currentSubs, subStr)
		st.currentRows = []string{row}
		if st.parentLen(append(append([]string{}, st.currentSubs...), strings.Join(st.currentRows, "\n"))) > st.opts.ParentBlockSize {
			st.flushParent()
		}
		return
	}

	if len(st.currentSubs) > 0 {
		st.flushParent()
	}
	st.currentSubs = append(st.currentSubs, subStr)
	st.currentRows = []string{row}
	if st.parentLen(append(append([]string{}, st.currentSubs...), strings.Join(st.currentRows, "\n"))) > st.opts.ParentBlockSize {
		st.flushParent()
	}
}

func (st *tableStreamer) finish() {
	if len(st.currentRows) > 0 {
		subStr := strings.Join(st.currentRows, "\n")
		tempSubs := append(append([]string{}, st.currentSubs...), subStr)
		if st.parentLen(tempSubs) <= st.opts.ParentBlockSize {
			st.currentSubs = append(st.currentSubs, subStr)
			st.flushParent()
			return
		}
		if len(st.currentSubs) > 0 {
			st.flushParent()
		}
		st.parentBlocks = append(st.parentBlocks, st.headerStr+"\n"+subStr)
		return
	}
	if len(st.currentSubs) > 0 {
		st.flushParent()
	}
}
