package langserver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLexicalSource_PrefixFiltering(t *testing.T) {
	source := &LexicalSource{}
	content := "val mapper = items.map(f)\nval mask = ma"

	proposals := source.ProposalsAt("file:///a.scala", content, len(content))

	var names []string
	for _, p := range proposals {
		names = append(names, p.Completion)
	}
	assert.Equal(t, []string{"map", "mapper", "mask"}, names,
		"should propose identifiers extending the prefix, sorted, without the prefix itself")

	require.NotEmpty(t, proposals)
	assert.Equal(t, len(content)-2, proposals[0].StartPos, "start position should be where the prefix begins")
}

func TestLexicalSource_NoPrefix(t *testing.T) {
	source := &LexicalSource{}
	content := "foo bar "

	proposals := source.ProposalsAt("file:///a.scala", content, len(content))

	var names []string
	for _, p := range proposals {
		names = append(names, p.Completion)
	}
	assert.Equal(t, []string{"bar", "foo"}, names, "empty prefix matches everything")
	assert.Equal(t, len(content), proposals[0].StartPos)
}

func TestLexicalSource_Cap(t *testing.T) {
	source := &LexicalSource{MaxProposals: 1}
	proposals := source.ProposalsAt("file:///a.scala", "alpha beta ", 11)
	assert.Len(t, proposals, 1)
}

func TestLexicalSource_Deduplicates(t *testing.T) {
	source := &LexicalSource{}
	proposals := source.ProposalsAt("file:///a.scala", "foo foo foo f", 13)
	require.Len(t, proposals, 1)
	assert.Equal(t, "foo", proposals[0].Completion)
}
