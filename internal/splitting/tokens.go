package splitting

import (
	"fmt"
	"regexp"
	"strings"
)

// tokenKind identifies which atomic region a placeholder stands in for.
type tokenKind string

const (
	kindImage      tokenKind = "IMG"
	kindTable      tokenKind = "TAB"
	kindPreviewURL tokenKind = "PREVIEW_URL_SECTION"
)

// tokenRe matches any atomic placeholder of the form <<ATOMIC_KIND_N>>,
// regardless of kind. It is the only pattern used to locate placeholders
// once they exist in a string, so the length oracle and every downstream
// splitter agree on what counts as "atomic".
var tokenRe = regexp.MustCompile(`<<ATOMIC_\w+_\d+>>`)

// tokenTable maps placeholder strings to the literal region they replaced.
// Entries are written once by the tokenizer and never mutated afterward;
// everything downstream only reads from it.
type tokenTable struct {
	entries map[string]string
	counter int
}

func newTokenTable() *tokenTable {
	return &tokenTable{entries: make(map[string]string)}
}

// put registers content under kind and returns the placeholder that now
// stands in for it. The counter is shared across all kinds, so successive
// calls never reuse an id even when kinds differ.
func (t *tokenTable) put(kind tokenKind, content string) string {
	id := fmt.Sprintf("<<ATOMIC_%s_%d>>", kind, t.counter)
	t.counter++
	t.entries[id] = content
	return id
}

func (t *tokenTable) lookup(id string) (string, bool) {
	content, ok := t.entries[id]
	return content, ok
}

// isTokenPlaceholder reports whether s is, in its entirety, a single atomic
// placeholder rather than plain text that merely contains one.
func isTokenPlaceholder(s string) bool {
	loc := tokenRe.FindStringIndex(s)
	return loc != nil && loc[0] == 0 && loc[1] == len(s)
}

// tokenKindOf classifies a placeholder by the substring it carries, mirroring
// the substring checks the source algorithm uses rather than re-parsing the
// placeholder's own kind field.
func tokenKindOf(token string) tokenKind {
	switch {
	case strings.Contains(token, "ATOMIC_IMG"):
		return kindImage
	case strings.Contains(token, "ATOMIC_TAB"):
		return kindTable
	default:
		return kindPreviewURL
	}
}

// splitPreservingTokens splits s into a flat, order-preserving sequence of
// plain-text fragments and atomic placeholders. Concatenating the result
// reconstructs s exactly.
func splitPreservingTokens(s string) []string {
	locs := tokenRe.FindAllStringIndex(s, -1)
	if len(locs) == 0 {
		return []string{s}
	}
	parts := make([]string, 0, len(locs)*2+1)
	prev := 0
	for _, loc := range locs {
		parts = append(parts, s[prev:loc[0]])
		parts = append(parts, s[loc[0]:loc[1]])
		prev = loc[1]
	}
	parts = append(parts, s[prev:])
	return parts
}
