package langserver

import (
	"unicode/utf8"

	protocol "github.com/tliron/glsp/protocol_3_16"
)

// OffsetAt converts an LSP line/character position into a byte offset in
// content. Character counts UTF-16 code units, the protocol's default
// position encoding. Positions past the end of a line or of the document
// clamp to the nearest valid offset.
func OffsetAt(content string, pos protocol.Position) int {
	offset := 0
	for line := uint32(0); line < pos.Line; line++ {
		nl := indexByte(content, offset, '\n')
		if nl < 0 {
			return len(content)
		}
		offset = nl + 1
	}

	units := uint32(0)
	for offset < len(content) && content[offset] != '\n' && units < pos.Character {
		r, size := utf8.DecodeRuneInString(content[offset:])
		units += utf16Len(r)
		offset += size
	}
	return offset
}

// PositionAt converts a byte offset into an LSP line/character position,
// with Character in UTF-16 code units.
func PositionAt(content string, offset int) protocol.Position {
	if offset > len(content) {
		offset = len(content)
	}
	var line, character uint32
	for i := 0; i < offset; {
		r, size := utf8.DecodeRuneInString(content[i:])
		if r == '\n' {
			line++
			character = 0
		} else {
			character += utf16Len(r)
		}
		i += size
	}
	return protocol.Position{Line: line, Character: character}
}

// utf16Len is the number of UTF-16 code units encoding r: two for runes
// outside the basic multilingual plane, one for everything else.
func utf16Len(r rune) uint32 {
	if r >= 0x10000 {
		return 2
	}
	return 1
}

func indexByte(s string, from int, b byte) int {
	for i := from; i < len(s); i++ {
		if s[i] == b {
			return i
		}
	}
	return -1
}
