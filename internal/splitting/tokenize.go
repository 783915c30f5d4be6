package splitting

import "regexp"

// imageRegionRe matches a full image-annotation region, opened and closed by
// the full-width brackets 【 】, introduced by either a caption or a parsed
// description marker. (?s) lets . cross newlines since a region's body is
// itself multi-line.
var imageRegionRe = regexp.MustCompile(`(?s)【(?:图片主题|图片解析内容).*?】`)

// tableBlockRe matches one or more consecutive pipe-delimited lines, i.e. a
// run of Markdown table rows. The leading/trailing \s* (not just horizontal
// whitespace) is deliberate: it lets a blank line between two table blocks
// be absorbed into the same match, merging them into a single TAB token
// exactly as the source algorithm's equivalent pattern does.
var tableBlockRe = regexp.MustCompile(`(?m)(?:^\s*\|.*\|\s*$\n?)+`)

// tokenizeContent replaces every image region and every run of Markdown
// table rows in text with an atomic placeholder, recording the original
// content in tt. Images are tokenized first so a table-shaped line that
// happens to sit inside an image region's caption is never mistaken for a
// real table.
func tokenizeContent(text string, tt *tokenTable) string {
	text = imageRegionRe.ReplaceAllStringFunc(text, func(m string) string {
		return tt.put(kindImage, m)
	})
	text = tableBlockRe.ReplaceAllStringFunc(text, func(m string) string {
		return tt.put(kindTable, m)
	})
	return text
}
