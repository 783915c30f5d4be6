package splitting

import "unicode/utf8"

// realLength is the only length function used for size-bounded decisions
// anywhere in this package. It counts scalar (rune) length, resolving every
// atomic placeholder in s against tt to the length of the region it stands
// in for rather than the length of the placeholder text itself.
func realLength(s string, tt *tokenTable) int {
	locs := tokenRe.FindAllStringIndex(s, -1)
	if len(locs) == 0 {
		return utf8.RuneCountInString(s)
	}
	length := 0
	prev := 0
	for _, loc := range locs {
		length += utf8.RuneCountInString(s[prev:loc[0]])
		id := s[loc[0]:loc[1]]
		if content, ok := tt.lookup(id); ok {
			length += utf8.RuneCountInString(content)
		} else {
			length += utf8.RuneCountInString(id)
		}
		prev = loc[1]
	}
	length += utf8.RuneCountInString(s[prev:])
	return length
}
