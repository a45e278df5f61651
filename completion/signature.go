package completion

import "strings"

// Signature is an ordered sequence of parameter sections, one entry per
// parenthesized group of a possibly-curried signature. Each section lists
// its parameters in order. The same shape carries parameter names on one
// side and type-display strings on the other.
type Signature [][]string

// ArityShape distinguishes signatures by what trailing parentheses they
// would render.
type ArityShape int

const (
	// NoArgs is a signature with no parameter lists at all, e.g. a val
	NoArgs ArityShape = iota
	// EmptyArgs is exactly one empty parameter list, e.g. `def close()`
	EmptyArgs
	// NonEmptyArgs has at least one section with parameters
	NonEmptyArgs
)

// ShapeOf classifies a signature's arity shape.
func ShapeOf(sig Signature) ArityShape {
	switch {
	case len(sig) == 0:
		return NoArgs
	case len(sig) == 1 && len(sig[0]) == 0:
		return EmptyArgs
	default:
		return NonEmptyArgs
	}
}

// HasNames reports whether any section carries at least one parameter.
func (s Signature) HasNames() bool {
	for _, section := range s {
		if len(section) > 0 {
			return true
		}
	}
	return false
}

// Decorate renders the signature as appended argument lists: each section
// parenthesized with its entries joined by ", ", sections concatenated.
// An empty signature renders as "".
func (s Signature) Decorate() string {
	var sb strings.Builder
	for _, section := range s {
		sb.WriteByte('(')
		sb.WriteString(strings.Join(section, ", "))
		sb.WriteByte(')')
	}
	return sb.String()
}
