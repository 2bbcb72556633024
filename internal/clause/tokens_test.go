package clause

import (
	"go/token"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScan_ArrowIsTwoAdjacentTokens(t *testing.T) {
	toks, err := Scan("test.whengo", []byte("a => b"))

	require.NoError(t, err)
	require.Len(t, toks, 4)
	assert.Equal(t, token.ASSIGN, toks[1].Kind)
	assert.Equal(t, token.GTR, toks[2].Kind)
	assert.Equal(t, toks[1].Off+1, toks[2].Off)
}

func TestScan_DropsInsertedSemicolonsKeepsExplicit(t *testing.T) {
	toks, err := Scan("test.whengo", []byte("a := 1\nb := 2; c()"))

	require.NoError(t, err)

	explicit := 0
	for _, tok := range toks {
		if tok.Kind == token.SEMICOLON {
			explicit++
			assert.Equal(t, ";", tok.Lit)
		}
	}

	assert.Equal(t, 1, explicit)
}

func TestScan_UnterminatedStringRejected(t *testing.T) {
	_, err := Scan("test.whengo", []byte(`cond => "oops`))

	var synErr *SyntaxError
	require.ErrorAs(t, err, &synErr)
	assert.Equal(t, CodeBadToken, synErr.Code)
}

func TestTok_TextAndEnd(t *testing.T) {
	toks, err := Scan("test.whengo", []byte(`name >= "str"`))

	require.NoError(t, err)
	require.Len(t, toks, 3)

	assert.Equal(t, "name", toks[0].Text())
	assert.Equal(t, 4, toks[0].End())
	assert.Equal(t, ">=", toks[1].Text())
	assert.Equal(t, 7, toks[1].End())
	assert.Equal(t, `"str"`, toks[2].Text())
	assert.Equal(t, 13, toks[2].End())
}
