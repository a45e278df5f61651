package langserver

import (
	"sort"
	"strings"

	"github.com/teranos/slate/completion"
	"github.com/teranos/slate/document"
)

// LexicalSource is a fallback ProposalSource that proposes identifiers
// already present in the document. It stands in for a resolution-backed
// source when none is wired, so the server is usable on its own.
type LexicalSource struct {
	// MaxProposals caps the result size; zero means no cap
	MaxProposals int
}

// ProposalsAt returns Def-kind proposals for every identifier in the
// document that extends the prefix ending at offset.
func (s *LexicalSource) ProposalsAt(uri, content string, offset int) []*completion.Proposal {
	if offset > len(content) {
		offset = len(content)
	}

	// Walk back over identifier characters to find the typed prefix
	start := offset
	for start > 0 && document.IsIdentChar(content[start-1]) {
		start--
	}
	prefix := content[start:offset]

	seen := make(map[string]bool)
	var words []string
	for i := 0; i < len(content); {
		if !document.IsIdentChar(content[i]) {
			i++
			continue
		}
		j := i
		for j < len(content) && document.IsIdentChar(content[j]) {
			j++
		}
		word := content[i:j]
		i = j

		// The prefix itself is not a useful proposal
		if word == prefix || seen[word] {
			continue
		}
		if prefix != "" && !strings.HasPrefix(word, prefix) {
			continue
		}
		seen[word] = true
		words = append(words, word)
	}
	sort.Strings(words)

	if s.MaxProposals > 0 && len(words) > s.MaxProposals {
		words = words[:s.MaxProposals]
	}

	proposals := make([]*completion.Proposal, 0, len(words))
	for _, word := range words {
		p := completion.NewProposal(completion.KindDef, completion.DefaultContext, start, word, nil)
		p.Display = word
		proposals = append(proposals, p)
	}
	return proposals
}
