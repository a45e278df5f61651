// Package analysis models Slate's view of a compilation unit: a handle whose
// analysis state may be unavailable, a resolved binding over the unit's
// source, and the import rewriting needed when a completion pulls in a new
// symbol.
package analysis

import (
	"go.uber.org/zap"
)

// Binding is the resolved analysis view of a compilation unit. It is produced
// by a Loader and consumed only inside Unit.WithBinding.
type Binding struct {
	// Source is the unit's full text at resolution time
	Source string
	// PackageEnd is the offset just past the package clause line, or 0 when
	// the unit has no package clause
	PackageEnd int
	// Imports are the unit's import clauses in source order
	Imports []ImportClause
}

// ImportClause is one import statement in a unit.
type ImportClause struct {
	// Path is the imported fully qualified name, e.g. "scala.collection.Seq"
	// or a wildcard "scala.collection._"
	Path string
	// End is the offset just past the clause's line terminator
	End int
}

// Loader produces a Binding for a unit, or an error when the unit cannot be
// analyzed (unloaded, stale, mid-edit).
type Loader func() (*Binding, error)

// Unit is a handle to a compilation unit. The analysis binding behind it may
// be expensive to obtain and may be unavailable; access is scoped through
// WithBinding so no caller ever holds a possibly-nil binding.
type Unit struct {
	uri    string
	loader Loader
	logger *zap.SugaredLogger
}

// NewUnit creates a unit handle for the given URI
func NewUnit(uri string, loader Loader, logger *zap.SugaredLogger) *Unit {
	return &Unit{uri: uri, loader: loader, logger: logger}
}

// URI returns the unit's document URI
func (u *Unit) URI() string {
	return u.uri
}

// WithBinding runs f against the unit's analysis binding if one can be
// obtained. Returns ok=false without calling f when no binding is available;
// a load failure is not an error for the caller, just an unavailable unit.
// The error return is whatever f itself reported.
func (u *Unit) WithBinding(f func(*Binding) error) (ok bool, err error) {
	b, loadErr := u.loader()
	if loadErr != nil || b == nil {
		if loadErr != nil && u.logger != nil {
			u.logger.Debugw("Analysis binding unavailable",
				"uri", u.uri,
				"error", loadErr,
			)
		}
		return false, nil
	}
	return true, f(b)
}

// SourceUnit builds a Unit whose binding is resolved directly from in-memory
// source. This is the path the language server uses for open documents.
func SourceUnit(uri, source string, logger *zap.SugaredLogger) *Unit {
	return NewUnit(uri, func() (*Binding, error) {
		return Resolve(source), nil
	}, logger)
}
