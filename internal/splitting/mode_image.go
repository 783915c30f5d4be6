package splitting

import (
	"strings"
	"unicode/utf8"
)

// imageLinkLabel is the Chinese label prefixed to a preview URL appended to
// image-mode content, carried over from the system this chunker replaces.
const imageLinkLabel = "\n图片连接："

// splitImageText is the image-mode pipeline. The caption/body content is
// right-truncated, if necessary, to leave room for "\n图片连接：<preview_url>",
// then that suffix (plus the caller's parent separator, so it never gets
// split away from the content it belongs to) is registered as a single
// atomic token appended to the content before handing everything to the
// sub-block splitter.
func splitImageText(content string, opts Options) (string, error) {
	if opts.PreviewURL == "" {
		return "", ErrMissingPreviewURL
	}

	suffix := imageLinkLabel + opts.PreviewURL
	total := utf8.RuneCountInString(content) + utf8.RuneCountInString(suffix)
	if total > opts.ParentBlockSize {
		excess := total - opts.ParentBlockSize
		runes := []rune(content)
		if excess >= len(runes) {
			content = ""
		} else {
			content = string(runes[:len(runes)-excess])
		}
	}

	protectedSuffix := suffix + opts.ParentSeparator

	tt := newTokenTable()
	token := tt.put(kindPreviewURL, protectedSuffix)
	withToken := content + token

	env := newEnvelope(opts.ParentBlockSize, opts.SubBlockSize)
	subBlocks := splitIntoSubBlocks(withToken, env.subTarget, env.subMax, tt)

	valid := trimNonEmpty(subBlocks)
	return strings.Join(valid, opts.SubSeparator), nil
}
