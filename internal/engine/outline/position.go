package outline

import (
	"unicode/utf16"
	"unicode/utf8"

	sitter "github.com/tree-sitter/go-tree-sitter"
)

// endPosition returns the 1-based line and the 0-based UTF-16 column just
// past the last character of n.
func endPosition(src []byte, n *sitter.Node) (line, column int) {
	p := n.EndPosition()
	end := int(n.EndByte())
	start := end - int(p.Column)
	if start < 0 {
		start = 0
	}
	if end > len(src) {
		end = len(src)
	}
	return int(p.Row) + 1, utf16Width(src[start:end])
}

// endLine returns the 1-based line on which n closes.
func endLine(n *sitter.Node) int {
	return int(n.EndPosition().Row) + 1
}

// utf16Width counts b in UTF-16 code units. Invalid bytes count as one unit
// each, the way a decoder substitutes U+FFFD.
func utf16Width(b []byte) int {
	width := 0
	for len(b) > 0 {
		r, size := utf8.DecodeRune(b)
		b = b[size:]
		if n := utf16.RuneLen(r); n > 0 {
			width += n
		} else {
			width++
		}
	}
	return width
}

func nodeText(src []byte, n *sitter.Node) string {
	if n == nil {
		return ""
	}
	start, end := int(n.StartByte()), int(n.EndByte())
	if start < 0 || end > len(src) || start > end {
		return ""
	}
	return string(src[start:end])
}
