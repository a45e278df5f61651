package document

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/teranos/slate/errors"
)

func TestApplyAll_SingleReplacement(t *testing.T) {
	buf := NewText("val x = foo")
	var ed Editor

	caret, err := ed.ApplyAll(buf, 11, []Edit{{Start: 8, End: 11, Text: "foobar"}})
	require.NoError(t, err)
	assert.Equal(t, "val x = foobar", buf.String())
	assert.Equal(t, 14, caret, "caret inside the span lands after the replacement")
}

func TestApplyAll_InsertionKeepsLaterCaret(t *testing.T) {
	buf := NewText("object Main")
	var ed Editor

	// Pure insertion at the front shifts a caret at the end
	caret, err := ed.ApplyAll(buf, 11, []Edit{{Start: 0, End: 0, Text: "// gen\n"}})
	require.NoError(t, err)
	assert.Equal(t, "// gen\nobject Main", buf.String())
	assert.Equal(t, 18, caret)
}

func TestApplyAll_MultipleEditsOnePass(t *testing.T) {
	// Completion replacement plus an import insertion, submitted together
	buf := NewText("package a\n\nobject Main {\n  co\n}\n")
	var ed Editor

	edits := []Edit{
		{Start: 27, End: 29, Text: "copy(name, age)"}, // the completion
		{Start: 10, End: 10, Text: "\nimport b.C\n"},   // the import
	}

	caret, err := ed.ApplyAll(buf, 29, edits)
	require.NoError(t, err)
	assert.Equal(t, "package a\n\nimport b.C\n\nobject Main {\n  copy(name, age)\n}\n", buf.String())
	// Caret was at the end of the replaced span: after replacement text plus
	// the import inserted before it
	assert.Equal(t, 27+len("copy(name, age)")+len("\nimport b.C\n"), caret)
}

func TestApplyAll_RejectsOutOfBounds(t *testing.T) {
	buf := NewText("short")
	var ed Editor

	_, err := ed.ApplyAll(buf, 0, []Edit{{Start: 2, End: 99, Text: "x"}})
	require.Error(t, err)
	assert.True(t, errors.IsEditConflictError(err))
	assert.Equal(t, "short", buf.String(), "buffer must be untouched on rejection")
}

func TestApplyAll_RejectsOverlap(t *testing.T) {
	buf := NewText("abcdefgh")
	var ed Editor

	_, err := ed.ApplyAll(buf, 0, []Edit{
		{Start: 0, End: 4, Text: "x"},
		{Start: 3, End: 6, Text: "y"},
	})
	require.Error(t, err)
	assert.True(t, errors.IsEditConflictError(err))
	assert.Equal(t, "abcdefgh", buf.String(), "buffer must be untouched on rejection")
}

func TestApplyAll_EmptyBatch(t *testing.T) {
	buf := NewText("unchanged")
	var ed Editor

	caret, err := ed.ApplyAll(buf, 3, nil)
	require.NoError(t, err)
	assert.Equal(t, 3, caret)
	assert.Equal(t, "unchanged", buf.String())
}

func TestIdentifierLen(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		offset   int
		expected int
	}{
		{"plain identifier", "foo.map(x)", 4, 3},
		{"identifier to end", "foo.map", 4, 3},
		{"at non-ident char", "a + b", 2, 0},
		{"underscore and digits", "x_1y rest", 0, 4},
		{"offset at end", "abc", 3, 0},
		{"negative offset", "abc", -1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := NewText(tt.content)
			assert.Equal(t, tt.expected, IdentifierLen(buf, tt.offset))
		})
	}
}
