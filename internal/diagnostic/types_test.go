package diagnostic

import (
	"errors"
	"go/token"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"whengen/internal/clause"
	"whengen/internal/gen"
)

func TestAddErr_RecoversSyntaxErrorPosition(t *testing.T) {
	var diags Diagnostics

	diags.AddErr("main.whengo", &clause.SyntaxError{
		Pos:     token.Position{Filename: "main.whengo", Line: 7, Column: 3},
		Code:    clause.CodeDefaultNotLast,
		Message: "default `_ =>` clause must be the last clause",
	})

	require.Len(t, diags.Errors, 1)

	d := diags.Errors[0]
	assert.Equal(t, string(clause.CodeDefaultNotLast), d.Code)
	assert.Equal(t, 7, d.Line)
	assert.Equal(t, 3, d.Column)
	assert.Contains(t, d.String(), "main.whengo:7:3: error:")
}

func TestAddErr_RecoversExpansionError(t *testing.T) {
	var diags Diagnostics

	diags.AddErr("main.whengo", &gen.ExpansionError{
		Pos:     token.Position{Line: 2, Column: 9},
		Code:    gen.CodeMissingDefault,
		Message: "when[...] used as an expression requires a trailing `_ =>` clause",
	})

	require.Len(t, diags.Errors, 1)
	assert.Equal(t, gen.CodeMissingDefault, diags.Errors[0].Code)
	assert.Equal(t, "main.whengo", diags.Errors[0].File)
}

func TestAddErr_PlainError(t *testing.T) {
	var diags Diagnostics

	diags.AddErr("main.whengo", errors.New("boom"))

	require.True(t, diags.HasErrors())
	assert.Equal(t, "main.whengo: error: boom", diags.Errors[0].String())
}

func TestAddWarning_DoesNotCountAsError(t *testing.T) {
	var diags Diagnostics

	diags.AddWarning("W1", "odd but fine", "x.whengo", 1, 1)

	assert.False(t, diags.HasErrors())
	require.Len(t, diags.Warnings, 1)
	assert.Equal(t, "x.whengo:1:1: warning: [W1] odd but fine", diags.Warnings[0].String())
}
