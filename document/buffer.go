// Package document provides the text-buffer model Slate edits against:
// a character-addressable buffer, text edits, and the atomic multi-edit
// transaction used when a completion is applied.
package document

// Buffer is a read-only view of an open document. Offsets are byte offsets.
type Buffer interface {
	// Len returns the number of bytes in the buffer
	Len() int
	// CharAt returns the byte at the given offset. Callers must stay in bounds.
	CharAt(offset int) byte
}

// Text is an in-memory Buffer backed by a byte slice. It is the concrete
// document representation used by the language server's document cache and
// by tests. Mutation happens only through Editor.ApplyAll.
type Text struct {
	content []byte
}

// NewText creates a Text buffer holding the given content
func NewText(content string) *Text {
	return &Text{content: []byte(content)}
}

// Len returns the number of bytes in the buffer
func (t *Text) Len() int {
	return len(t.content)
}

// CharAt returns the byte at the given offset
func (t *Text) CharAt(offset int) byte {
	return t.content[offset]
}

// String returns the buffer content
func (t *Text) String() string {
	return string(t.content)
}
