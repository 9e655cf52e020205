// markup/highlight.go
package markup

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Highlight wraps every case-insensitive occurrence of term in text with
// <mark> tags, keeping the casing found in text. Matches do not overlap and
// are found left to right. An empty term leaves text unchanged.
func Highlight(text, term string) string {
	if term == "" {
		return text
	}

	var b strings.Builder
	last := 0
	for i := 0; i < len(text); {
		if n, ok := hasFoldPrefix(text[i:], term); ok {
			b.WriteString(text[last:i])
			b.WriteString("<mark>")
			b.WriteString(text[i : i+n])
			b.WriteString("</mark>")
			i += n
			last = i
			continue
		}
		_, size := utf8.DecodeRuneInString(text[i:])
		i += size
	}
	if last == 0 {
		return text
	}
	b.WriteString(text[last:])
	return b.String()
}

// hasFoldPrefix reports whether s starts with prefix under simple Unicode
// case folding, and how many bytes of s the match covers. Invalid UTF-8
// bytes only match the same byte.
func hasFoldPrefix(s, prefix string) (int, bool) {
	n := 0
	for j := 0; j < len(prefix); {
		if n >= len(s) {
			return 0, false
		}
		pr, psize := utf8.DecodeRuneInString(prefix[j:])
		sr, ssize := utf8.DecodeRuneInString(s[n:])
		if invalid(pr, psize) || invalid(sr, ssize) {
			if s[n:n+ssize] != prefix[j:j+psize] {
				return 0, false
			}
		} else if !equalFold(sr, pr) {
			return 0, false
		}
		n += ssize
		j += psize
	}
	return n, true
}

func invalid(r rune, size int) bool {
	return r == utf8.RuneError && size == 1
}

func equalFold(a, b rune) bool {
	if a == b {
		return true
	}
	for r := unicode.SimpleFold(a); r != a; r = unicode.SimpleFold(r) {
		if r == b {
			return true
		}
	}
	return false
}
