package gen

import (
	"go/token"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"whengen/internal/clause"
)

func parseList(t *testing.T, src string) *clause.List {
	t.Helper()

	toks, err := clause.Scan("test.whengo", []byte(src))
	require.NoError(t, err)

	list, err := clause.Parse(toks, []byte(src), token.Position{Filename: "test.whengo", Line: 1, Column: 1})
	require.NoError(t, err)

	return list
}

func TestExpand_StatementChain(t *testing.T) {
	list := parseList(t, `x > 2 => big(), x > 0 => small(), _ => none()`)

	out, err := Expand(Request{List: list, Mode: ModeStatement})

	require.NoError(t, err)
	assert.Equal(t, "if x > 2 {\nbig()\n} else if x > 0 {\nsmall()\n} else {\nnone()\n}", out)
}

func TestExpand_StatementNoDefaultHasNoElse(t *testing.T) {
	list := parseList(t, `a => f(), b => g()`)

	out, err := Expand(Request{List: list, Mode: ModeStatement})

	require.NoError(t, err)
	assert.Equal(t, "if a {\nf()\n} else if b {\ng()\n}", out)
}

func TestExpand_ExpressionChain(t *testing.T) {
	list := parseList(t, `false => 0, true => 1, _ => 42`)

	out, err := Expand(Request{List: list, Mode: ModeExpression, ResultType: "int"})

	require.NoError(t, err)
	assert.Equal(t,
		"func() int {\nif false {\nreturn 0\n} else if true {\nreturn 1\n} else {\nreturn 42\n}\n}()",
		out)
}

func TestExpand_ExpressionWithoutDefaultRejected(t *testing.T) {
	list := parseList(t, `false => 0, true => 1`)

	_, err := Expand(Request{
		List:       list,
		Mode:       ModeExpression,
		ResultType: "int",
		Pos:        token.Position{Filename: "test.whengo", Line: 3, Column: 7},
	})

	var expErr *ExpansionError
	require.ErrorAs(t, err, &expErr)
	assert.Equal(t, CodeMissingDefault, expErr.Code)
	assert.Equal(t, 3, expErr.Pos.Line)
}

func TestExpand_BindGuardUsesCommaOk(t *testing.T) {
	list := parseList(t, `let v = cache[key] => v, _ => fallback`)

	out, err := Expand(Request{List: list, Mode: ModeExpression, ResultType: "string"})

	require.NoError(t, err)
	assert.Contains(t, out, "if v, ok := cache[key]; ok {")
	assert.Contains(t, out, "return v")
	assert.Contains(t, out, "return fallback")
}

func TestExpand_BindGuardOkNameCollision(t *testing.T) {
	list := parseList(t, `let ok = probe() => use(ok)`)

	out, err := Expand(Request{List: list, Mode: ModeStatement})

	require.NoError(t, err)
	assert.Contains(t, out, "if ok, ok_ := probe(); ok_ {")
}

func TestExpand_CompositeLiteralGuardParenthesized(t *testing.T) {
	list := parseList(t, `zero == Vec{X: 1} => f(), _ => g()`)

	out, err := Expand(Request{List: list, Mode: ModeStatement})

	require.NoError(t, err)
	assert.Contains(t, out, "if (zero == Vec{X: 1}) {")
}

func TestExpand_BlockBodySplicedWithoutDoubleBraces(t *testing.T) {
	list := parseList(t, `cond => { a := 1
use(a) }`)

	out, err := Expand(Request{List: list, Mode: ModeStatement})

	require.NoError(t, err)
	assert.Equal(t, "if cond {\na := 1\nuse(a)\n}", out)
}

func TestExpand_EveryGuardAppearsExactlyOnce(t *testing.T) {
	list := parseList(t, `probe(1) => a(), probe(2) => b(), probe(3) => c(), _ => d()`)

	out, err := Expand(Request{List: list, Mode: ModeStatement})

	require.NoError(t, err)
	for _, guard := range []string{"probe(1)", "probe(2)", "probe(3)"} {
		assert.Equal(t, 1, strings.Count(out, guard), "guard %s", guard)
	}
}

func TestExpand_ClausesKeepTextualOrder(t *testing.T) {
	list := parseList(t, `g1() => 1, let v = g2() => v, g3() => 3, _ => 0`)

	out, err := Expand(Request{List: list, Mode: ModeExpression, ResultType: "int"})

	require.NoError(t, err)

	i1 := strings.Index(out, "g1()")
	i2 := strings.Index(out, "g2()")
	i3 := strings.Index(out, "g3()")
	require.NotEqual(t, -1, i1)
	require.NotEqual(t, -1, i2)
	require.NotEqual(t, -1, i3)
	assert.Less(t, i1, i2)
	assert.Less(t, i2, i3)
}
