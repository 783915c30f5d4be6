package splitting

import (
	"fmt"
	"regexp"
	"strings"
)

// Split is the single public entry point of this package: it dispatches on
// mode, runs the matching pipeline, and repairs any heading that landed
// directly adjacent to a parent separator during parent-joining before
// returning the flattened result. It is a pure function — no global state
// survives between calls, and the same inputs always produce the same
// output.
func Split(mode, content string, opts Options) (string, error) {
	opts = opts.WithDefaults()

	var result string
	switch normalizeMode(mode) {
	case "pdf":
		result = splitPDFText(content, opts)
	case "table":
		result = splitTableText(content, opts)
	case "image":
		var err error
		result, err = splitImageText(content, opts)
		if err != nil {
			return "", err
		}
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownMode, mode)
	}

	if opts.ParentSeparator != "" {
		result = fixHeadingAdjacency(result, opts.ParentSeparator)
	}
	return result, nil
}

// normalizeMode maps every recognized mode alias onto one of "pdf",
// "table", or "image"; anything else comes back empty.
func normalizeMode(mode string) string {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "pdf", "pdf_text":
		return "pdf"
	case "table", "md_table", "markdown":
		return "table"
	case "image", "img", "text_with_preview", "preview":
		return "image"
	default:
		return ""
	}
}

// fixHeadingAdjacency rewrites "#<ws>*<sep><ws>*<title>" back to
// "<sep># <title>" wherever a heading marker ended up immediately before a
// parent separator with its title stranded on the far side — a byproduct
// of parent blocks being joined back together with the caller's separator.
func fixHeadingAdjacency(text, sep string) string {
	pattern := `#\s*` + regexp.QuoteMeta(sep) + `\s*([^\n]+)`
	re := regexp.MustCompile(pattern)
	return re.ReplaceAllStringFunc(text, func(m string) string {
		groups := re.FindStringSubmatch(m)
		return sep + "# " + groups[1]
	})
}
