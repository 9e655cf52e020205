// markup/markup.go

// Package markup turns the inline description dialect into HTML and marks
// search hits.
//
// The dialect has three constructs:
//
//	*bold*        -> <b>bold</b>
//	_italic_      -> <i>italic</i>
//	!3colored!    -> <span style="color:dodgerblue">colored</span>
//
// A construct runs until the next occurrence of its closing marker. Its body
// is copied as-is, so constructs do not nest. A construct with no closing
// marker runs to the end of the text and is left open. Input is not escaped.
package markup

import "strings"

// colors maps the digit after '!' to a CSS color name. '0' has no color.
var colors = [10]string{
	"",
	"red",
	"lime",
	"dodgerblue",
	"goldenrod",
	"lightblue",
	"magenta",
	"pink",
	"brown",
	"black",
}

type kind int

const (
	text kind = iota
	bold
	italic
	color
)

type segment struct {
	kind   kind
	body   string
	color  string
	closed bool
}

// ToHTML converts s to HTML.
func ToHTML(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, seg := range scan(s) {
		seg.writeTo(&b)
	}
	return b.String()
}

func (seg segment) writeTo(b *strings.Builder) {
	var openTag, closeTag string
	switch seg.kind {
	case text:
		b.WriteString(seg.body)
		return
	case bold:
		openTag, closeTag = "<b>", "</b>"
	case italic:
		openTag, closeTag = "<i>", "</i>"
	case color:
		openTag, closeTag = `<span style="color:`+seg.color+`">`, "</span>"
	}
	b.WriteString(openTag)
	b.WriteString(seg.body)
	if seg.closed {
		b.WriteString(closeTag)
	}
}

// scan splits s into segments in one left-to-right pass. The markers are
// ASCII, so walking bytes never splits a UTF-8 sequence that matters.
func scan(s string) []segment {
	var segs []segment
	start := 0 // start of pending plain text

	flush := func(end int) {
		if end > start {
			segs = append(segs, segment{kind: text, body: s[start:end]})
		}
	}

	for i := 0; i < len(s); {
		var seg segment
		bodyStart := i + 1

		switch c := s[i]; {
		case c == '*':
			seg.kind = bold
		case c == '_':
			seg.kind = italic
		case c == '!' && i+1 < len(s) && isDigit(s[i+1]):
			seg.kind = color
			seg.color = colors[s[i+1]-'0']
			bodyStart = i + 2
		default:
			i++
			continue
		}

		flush(i)
		closing := s[i]
		end := strings.IndexByte(s[bodyStart:], closing)
		if end < 0 {
			seg.body = s[bodyStart:]
			segs = append(segs, seg)
			return segs
		}
		seg.body = s[bodyStart : bodyStart+end]
		seg.closed = true
		segs = append(segs, seg)

		i = bodyStart + end + 1
		start = i
	}

	flush(len(s))
	return segs
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}
