package document

import (
	"sort"

	"github.com/teranos/slate/errors"
)

// Edit replaces the bytes in [Start, End) with Text. A zero-length span
// (Start == End) is a pure insertion.
type Edit struct {
	Start int
	End   int
	Text  string
}

// Editor applies edit batches to Text buffers as single transactions.
// The zero value is ready to use.
type Editor struct{}

// ApplyAll applies all edits to the buffer as one atomic change and returns
// the caret offset remapped through the applied edits. Every edit's span is
// interpreted against the pre-edit buffer. If any edit is out of bounds or
// two edits overlap, the batch is rejected with ErrEditConflict and the
// buffer is left untouched.
func (Editor) ApplyAll(t *Text, caret int, edits []Edit) (int, error) {
	if len(edits) == 0 {
		return caret, nil
	}

	for _, e := range edits {
		if e.Start < 0 || e.End < e.Start || e.End > t.Len() {
			return 0, errors.Wrapf(errors.ErrEditConflict,
				"edit [%d, %d) out of bounds for buffer of %d bytes", e.Start, e.End, t.Len())
		}
	}

	// Sort a copy descending by start so earlier splices don't shift later spans
	ordered := make([]Edit, len(edits))
	copy(ordered, edits)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Start > ordered[j].Start
	})

	for i := 1; i < len(ordered); i++ {
		// ordered[i] precedes ordered[i-1]; its end must not reach into it
		if ordered[i].End > ordered[i-1].Start {
			return 0, errors.Wrapf(errors.ErrEditConflict,
				"edits [%d, %d) and [%d, %d) overlap",
				ordered[i].Start, ordered[i].End, ordered[i-1].Start, ordered[i-1].End)
		}
	}

	for _, e := range ordered {
		spliced := make([]byte, 0, t.Len()-(e.End-e.Start)+len(e.Text))
		spliced = append(spliced, t.content[:e.Start]...)
		spliced = append(spliced, e.Text...)
		spliced = append(spliced, t.content[e.End:]...)
		t.content = spliced
	}

	return remapCaret(caret, edits), nil
}

// remapCaret shifts a pre-edit caret offset through the applied edits.
// A caret inside a replaced span lands at the end of the replacement text.
func remapCaret(caret int, edits []Edit) int {
	shifted := caret
	for _, e := range edits {
		switch {
		case e.End <= caret:
			shifted += len(e.Text) - (e.End - e.Start)
		case e.Start <= caret:
			shifted += e.Start + len(e.Text) - caret
		}
	}
	return shifted
}
