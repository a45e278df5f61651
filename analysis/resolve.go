package analysis

import (
	"strings"
)

// Resolve builds a Binding from unit source by scanning the header for the
// package clause and import section. This is a textual resolution: it reads
// line structure, not a full parse tree, which is all import placement needs.
func Resolve(source string) *Binding {
	b := &Binding{Source: source}

	offset := 0
	for _, line := range strings.SplitAfter(source, "\n") {
		trimmed := strings.TrimSpace(line)

		switch {
		case strings.HasPrefix(trimmed, "package "):
			b.PackageEnd = offset + len(line)
		case strings.HasPrefix(trimmed, "import "):
			path := strings.TrimSpace(strings.TrimPrefix(trimmed, "import "))
			b.Imports = append(b.Imports, ImportClause{
				Path: path,
				End:  offset + len(line),
			})
		case trimmed == "" || strings.HasPrefix(trimmed, "//"):
			// blank lines and comments may separate header clauses
		default:
			// First real declaration ends the header
			return b
		}
		offset += len(line)
	}

	return b
}

// HasImport reports whether the binding already imports fqn, either exactly
// or through a wildcard import of fqn's enclosing package.
func (b *Binding) HasImport(fqn string) bool {
	for _, imp := range b.Imports {
		if imp.Path == fqn {
			return true
		}
		if pkg, ok := strings.CutSuffix(imp.Path, "._"); ok {
			if dot := strings.LastIndex(fqn, "."); dot > 0 && fqn[:dot] == pkg {
				return true
			}
		}
	}
	return false
}
