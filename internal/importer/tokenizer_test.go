package importer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenizeLineSimple(t *testing.T) {
	fields, err := TokenizeLine("a,b,c")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, fields)
}

func TestTokenizeLineQuotedComma(t *testing.T) {
	fields, err := TokenizeLine(`"Ada Lovelace","Calculus",1`)
	require.NoError(t, err)
	assert.Equal(t, []string{"Ada Lovelace", "Calculus", "1"}, fields)
}

func TestTokenizeLineEmbeddedDelimiter(t *testing.T) {
	fields, err := TokenizeLine(`"Silva, João",Programação`)
	require.NoError(t, err)
	assert.Equal(t, []string{"Silva, João", "Programação"}, fields)
}

func TestTokenizeLineTrimsWhitespace(t *testing.T) {
	fields, err := TokenizeLine(`  Ada  , " Calculus " ,1`)
	require.NoError(t, err)
	assert.Equal(t, []string{"Ada", "Calculus", "1"}, fields)
}

func TestTokenizeLineEmptyFields(t *testing.T) {
	fields, err := TokenizeLine("a,,c")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "", "c"}, fields)
}

func TestTokenizeLineUnbalancedQuote(t *testing.T) {
	_, err := TokenizeLine(`"Ada Lovelace,Calculus,1`)
	require.Error(t, err)
}

func TestSplitLinesKeepsSourceNumbers(t *testing.T) {
	lines := SplitLines("header\n\nrow one\r\n\nrow two\n")
	require.Len(t, lines, 3)
	assert.Equal(t, 1, lines[0].Number)
	assert.Equal(t, "header", lines[0].Text)
	assert.Equal(t, 3, lines[1].Number)
	assert.Equal(t, "row one", lines[1].Text)
	assert.Equal(t, 5, lines[2].Number)
}

func TestSplitLinesEmptyContent(t *testing.T) {
	assert.Empty(t, SplitLines(""))
	assert.Empty(t, SplitLines("\n\n\n"))
}
