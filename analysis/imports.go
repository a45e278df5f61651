package analysis

import (
	"github.com/teranos/slate/document"
	"github.com/teranos/slate/errors"
)

// Organizer computes the edits needed to add an import to a compilation
// unit. The zero value is ready to use.
type Organizer struct{}

// ImportEdits returns the edits that add an import for fqn to the unit
// behind b. Returns no edits when the import is already present. The new
// clause goes after the last existing import, after the package clause when
// there are no imports, or at the top of the unit as a last resort.
func (Organizer) ImportEdits(b *Binding, fqn string) ([]document.Edit, error) {
	if fqn == "" {
		return nil, errors.Wrap(errors.ErrInvalidRequest, "empty fully qualified name")
	}
	if b.HasImport(fqn) {
		return nil, nil
	}

	clause := "import " + fqn + "\n"

	switch {
	case len(b.Imports) > 0:
		at := b.Imports[len(b.Imports)-1].End
		return []document.Edit{{Start: at, End: at, Text: clause}}, nil
	case b.PackageEnd > 0:
		return []document.Edit{{Start: b.PackageEnd, End: b.PackageEnd, Text: "\n" + clause}}, nil
	default:
		return []document.Edit{{Start: 0, End: 0, Text: clause + "\n"}}, nil
	}
}
