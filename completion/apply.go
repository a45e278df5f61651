package completion

import (
	"sync"

	"go.uber.org/zap"

	"github.com/teranos/slate/analysis"
	"github.com/teranos/slate/document"
	"github.com/teranos/slate/errors"
)

// DocumentEditor is the document-edit collaborator: it applies an ordered
// edit batch to a buffer as one atomic transaction and reports the resulting
// caret offset.
type DocumentEditor interface {
	ApplyAll(buf *document.Text, caret int, edits []document.Edit) (int, error)
}

// ImportOrganizer is the refactoring collaborator that computes the edits
// adding an import for a fully qualified name.
type ImportOrganizer interface {
	ImportEdits(b *analysis.Binding, fqn string) ([]document.Edit, error)
}

// Result reports where the caret lands after a proposal is applied and
// whether the editor should enter linked (tab-stop) editing over the
// inserted parameter names.
type Result struct {
	Caret      int
	LinkedMode bool
}

// Applier applies accepted proposals to documents.
type Applier struct {
	editor  DocumentEditor
	imports ImportOrganizer
	logger  *zap.SugaredLogger
}

// NewApplier creates an applier with the given collaborators
func NewApplier(editor DocumentEditor, imports ImportOrganizer, logger *zap.SugaredLogger) *Applier {
	return &Applier{
		editor:  editor,
		imports: imports,
		logger:  logger,
	}
}

// Apply splices the proposal's completion into the buffer and, when needed,
// adds an import for it, as a single atomic change.
//
// caret is the current caret offset, sitting at the end of the typed prefix.
// With overwrite, the replaced span extends through the identifier token at
// the caret; otherwise text is purely inserted.
//
// A nil Result with nil error means the unit's analysis binding was
// unavailable and nothing was applied; callers treat it as a no-op. Any
// collaborator failure also yields a nil Result, with the error attached,
// and leaves the buffer untouched.
func (a *Applier) Apply(p *Proposal, buf *document.Text, unit *analysis.Unit, caret int, overwrite bool) (*Result, error) {
	// The heuristic reads the buffer at most once no matter how often the
	// answer is consulted below
	argsExist := sync.OnceValue(func() bool {
		return ArgsAlreadyExist(buf, caret)
	})

	insertion := p.CompletionString(overwrite, argsExist)

	var res *Result
	ok, err := unit.WithBinding(func(b *analysis.Binding) error {
		end := caret
		if overwrite {
			end = caret + document.IdentifierLen(buf, caret)
		}

		// Replacement edit first, then any import edits: both go to the
		// editor in one pass so the import edit cannot invalidate the
		// completion edit's offsets
		edits := []document.Edit{{Start: p.StartPos, End: end, Text: insertion}}

		if p.NeedImport {
			importEdits, impErr := a.imports.ImportEdits(b, p.FullyQualifiedName)
			if impErr != nil {
				return errors.Wrapf(impErr, "computing import for %s", p.FullyQualifiedName)
			}
			edits = append(edits, importEdits...)
		}

		linkedMode := p.Context != ImportContext &&
			(!overwrite || !argsExist()) &&
			p.ExplicitParamNames().HasNames()

		newCaret, applyErr := a.editor.ApplyAll(buf, caret, edits)
		if applyErr != nil {
			return errors.Wrap(applyErr, "applying completion edits")
		}

		if linkedMode {
			// Linked editing starts right after the inserted text
			newCaret = p.StartPos + len(insertion)
		}

		res = &Result{Caret: newCaret, LinkedMode: linkedMode}
		return nil
	})

	switch {
	case !ok:
		if a.logger != nil {
			a.logger.Debugw("Completion not applied, unit unavailable",
				"uri", unit.URI(),
				"completion", p.Completion,
			)
		}
		return nil, nil
	case err != nil:
		return nil, err
	}

	if a.logger != nil {
		a.logger.Debugw("Completion applied",
			"uri", unit.URI(),
			"completion", p.Completion,
			"kind", p.Kind.String(),
			"overwrite", overwrite,
			"linked_mode", res.LinkedMode,
			"caret", res.Caret,
		)
	}
	return res, nil
}
