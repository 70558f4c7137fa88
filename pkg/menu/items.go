package menu

import "unicode/utf8"

// textLen is the length of s in characters.
func textLen(s string) int {
	return utf8.RuneCountInString(s)
}

// maxItemLen returns the length of the longest item.
func maxItemLen(items []string) int {
	longest := 0
	for _, item := range items {
		longest = max(longest, textLen(item))
	}
	return longest
}

// clip returns at most n characters of s starting at character off.
func clip(s string, off, n int) string {
	if off <= 0 && n >= textLen(s) {
		return s
	}
	r := []rune(s)
	off = min(max(off, 0), len(r))
	end := min(off+max(n, 0), len(r))
	return string(r[off:end])
}
