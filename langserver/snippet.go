package langserver

import (
	"fmt"
	"strings"

	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/teranos/slate/completion"
	"github.com/teranos/slate/internal/util"
)

// Snippet renders the proposal's insertion text in LSP snippet syntax, one
// `${n:name}` placeholder per parameter name. Placeholders walk the same
// section order as the proposal's linked-edit groups, so a snippet-capable
// client tabs through exactly the spans a direct buffer apply would link.
func Snippet(p *completion.Proposal) string {
	names := p.ExplicitParamNames()
	if p.Context == completion.ImportContext || len(names) == 0 {
		return p.Completion
	}

	var sb strings.Builder
	sb.WriteString(p.Completion)
	stop := 1
	for _, section := range names {
		sb.WriteByte('(')
		for i, name := range section {
			if i > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "${%d:%s}", stop, name)
			stop++
		}
		sb.WriteByte(')')
	}
	return sb.String()
}

// Item converts a proposal into an LSP completion item replacing the span
// from the proposal's start position to the request position.
func Item(p *completion.Proposal, content string, requestOffset int) protocol.CompletionItem {
	label := p.Display
	if label == "" {
		label = p.Completion
	}

	snippet := Snippet(p)
	format := protocol.InsertTextFormatSnippet
	if snippet == p.Completion {
		format = protocol.InsertTextFormatPlainText
	}

	item := protocol.CompletionItem{
		Label:            label,
		Kind:             util.Ptr(itemKind(p.Kind)),
		SortText:         util.Ptr(sortText(p.Relevance)),
		FilterText:       util.Ptr(p.Completion),
		InsertTextFormat: util.Ptr(format),
		TextEdit: &protocol.TextEdit{
			Range: protocol.Range{
				Start: PositionAt(content, p.StartPos),
				End:   PositionAt(content, requestOffset),
			},
			NewText: snippet,
		},
	}

	if p.DisplayDetail != "" {
		item.Detail = util.Ptr(p.DisplayDetail)
	} else if tooltip := p.Tooltip(); tooltip != "" {
		item.Detail = util.Ptr(tooltip)
	}

	return item
}

// sortText folds the relevance ranking into LSP's lexicographic sort:
// higher relevance sorts first.
func sortText(relevance int) string {
	if relevance < 0 {
		relevance = 0
	}
	if relevance > 9999 {
		relevance = 9999
	}
	return fmt.Sprintf("%04d", 9999-relevance)
}

func itemKind(kind completion.MemberKind) protocol.CompletionItemKind {
	switch kind {
	case completion.KindClass:
		return protocol.CompletionItemKindClass
	case completion.KindTrait:
		return protocol.CompletionItemKindInterface
	case completion.KindType:
		return protocol.CompletionItemKindTypeParameter
	case completion.KindObject, completion.KindPackageObject:
		return protocol.CompletionItemKindModule
	case completion.KindPackage:
		return protocol.CompletionItemKindFolder
	case completion.KindDef:
		return protocol.CompletionItemKindMethod
	case completion.KindVal:
		return protocol.CompletionItemKindValue
	case completion.KindVar:
		return protocol.CompletionItemKindVariable
	default:
		return protocol.CompletionItemKindText
	}
}
