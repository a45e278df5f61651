// Package completion implements how an accepted code-completion choice is
// rendered and applied: the literal insertion text, the linked-edit spans an
// editor lets the user tab through, the heuristic deciding whether a call
// site already has arguments, and the atomic apply transaction combining the
// completion edit with an optional import edit.
//
// Finding candidate completions and ranking them is not this package's job;
// proposals arrive fully described from a completion source and leave through
// Applier.Apply.
package completion

// MemberKind classifies the symbol a proposal refers to.
type MemberKind int

const (
	KindClass MemberKind = iota
	KindTrait
	KindType
	KindObject
	KindPackage
	KindPackageObject
	KindDef
	KindVal
	KindVar
)

// String returns the kind name for logging and display
func (k MemberKind) String() string {
	switch k {
	case KindClass:
		return "class"
	case KindTrait:
		return "trait"
	case KindType:
		return "type"
	case KindObject:
		return "object"
	case KindPackage:
		return "package"
	case KindPackageObject:
		return "package object"
	case KindDef:
		return "def"
	case KindVal:
		return "val"
	case KindVar:
		return "var"
	default:
		return "unknown"
	}
}

// ContextType classifies the syntactic position where completion was invoked.
type ContextType int

const (
	// DefaultContext is a plain identifier position
	DefaultContext ContextType = iota
	// ApplyContext is a function-application position
	ApplyContext
	// NewContext is a constructor position after `new`
	NewContext
	// ImportContext is an import clause; completions there never get
	// argument-list decoration
	ImportContext
)

// String returns the context name for logging
func (c ContextType) String() string {
	switch c {
	case DefaultContext:
		return "default"
	case ApplyContext:
		return "apply"
	case NewContext:
		return "new"
	case ImportContext:
		return "import"
	default:
		return "unknown"
	}
}
