package completion

import (
	"strings"
	"sync"
)

// Proposal is one resolved completion candidate. It is immutable after
// construction and holds everything needed to render the choice in a popup
// and to apply it when accepted.
type Proposal struct {
	// Kind classifies the referenced symbol
	Kind MemberKind
	// Context is the syntactic position completion was invoked in
	Context ContextType
	// StartPos is the buffer offset where the typed prefix begins; inserted
	// text starts here
	StartPos int
	// Completion is the bare name to insert
	Completion string
	// Display and DisplayDetail are presentation-only strings
	Display       string
	DisplayDetail string
	// Relevance is a ranking hint, higher is better
	Relevance int
	// IsJava marks proposals originating from Java symbols
	IsJava bool
	// ParamTypes mirrors the section shape of the parameter names and
	// carries type-display strings
	ParamTypes Signature
	// FullyQualifiedName is used only when an import must be added
	FullyQualifiedName string
	// NeedImport requests an import edit on apply
	NeedImport bool

	// Retrieving parameter names can be expensive, so it is deferred and
	// computed at most once per proposal
	paramNames func() Signature
	namesOnce  sync.Once
	names      Signature
}

// NewProposal creates a proposal whose parameter names come from the given
// deferred provider. The provider must return explicit sections only;
// implicit sections are the caller's business to exclude. A nil provider
// means an empty signature.
func NewProposal(kind MemberKind, context ContextType, startPos int, completionText string, paramNames func() Signature) *Proposal {
	return &Proposal{
		Kind:       kind,
		Context:    context,
		StartPos:   startPos,
		Completion: completionText,
		paramNames: paramNames,
	}
}

// ExplicitParamNames returns the proposal's parameter-name sections,
// invoking the deferred provider on first use and caching the result for
// the proposal's lifetime.
func (p *Proposal) ExplicitParamNames() Signature {
	p.namesOnce.Do(func() {
		if p.paramNames != nil {
			p.names = p.paramNames()
		}
	})
	return p.names
}

// Tooltip renders the full signature as `(name: Type, ...)` per section.
// Name and type sections are expected to be congruent; if they diverge the
// zip truncates to the shorter side rather than fail.
func (p *Proposal) Tooltip() string {
	names := p.ExplicitParamNames()

	var sb strings.Builder
	for s, section := range names {
		if s >= len(p.ParamTypes) {
			break
		}
		types := p.ParamTypes[s]

		sb.WriteByte('(')
		for i, name := range section {
			if i >= len(types) {
				break
			}
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(name)
			sb.WriteString(": ")
			sb.WriteString(types[i])
		}
		sb.WriteByte(')')
	}
	return sb.String()
}

// CompletionString computes the exact text to splice in at StartPos.
//
// Import completions are always the bare name. Otherwise, when the signature
// is empty or the completion overwrites existing text, and the call site
// already appears to have an argument list, the bare name is inserted so the
// existing arguments are not duplicated. In every other case the name gets
// one parenthesized name list appended per explicit section.
//
// existingArgs is only evaluated when its answer matters; Import completions
// never force it.
func (p *Proposal) CompletionString(overwrite bool, existingArgs func() bool) string {
	if p.Context == ImportContext {
		return p.Completion
	}

	names := p.ExplicitParamNames()
	if (len(names) == 0 || overwrite) && existingArgs() {
		return p.Completion
	}
	return p.Completion + names.Decorate()
}

// LinkedEditGroup is one tabbable character span inside freshly inserted
// completion text. Offset is absolute in the post-insertion buffer.
type LinkedEditGroup struct {
	Offset int
	Length int
}

// LinkedEditGroups returns one span per parameter name, in insertion order,
// positioned as if the decorated completion string has been spliced at
// StartPos. Sections contribute their parentheses to the arithmetic even
// when empty; an empty signature yields no groups.
func (p *Proposal) LinkedEditGroups() []LinkedEditGroup {
	names := p.ExplicitParamNames()

	var groups []LinkedEditGroup
	cursor := p.StartPos + len(p.Completion)
	for _, section := range names {
		cursor++ // opening parenthesis
		for i, name := range section {
			if i > 0 {
				cursor += 2 // ", " separator
			}
			groups = append(groups, LinkedEditGroup{Offset: cursor, Length: len(name)})
			cursor += len(name)
		}
		cursor++ // closing parenthesis
	}
	return groups
}
