package analyze

import (
	"go/token"

	"whengen/internal/clause"
)

// Site is one when-block invocation found in a source file.
type Site struct {
	// Keyword is the invocation's keyword token.
	Keyword clause.Tok
	// TypeArg is the raw text between the optional brackets, "" for the
	// statement form.
	TypeArg string
	// Inner holds the tokens strictly between the braces.
	Inner []clause.Tok
	// OpenPos is the position of the opening brace.
	OpenPos token.Position
	// Start and End delimit the byte range of the whole invocation,
	// keyword through closing brace inclusive.
	Start, End int
}

// Expression reports whether the site must produce a value.
func (s Site) Expression() bool {
	return s.TypeArg != ""
}

// FindSites scans toks for invocations of keyword. Sites are returned in
// source order and never overlap. An invocation with an unterminated block
// is a syntax error.
func FindSites(keyword string, toks []clause.Tok, src []byte) ([]Site, error) {
	var sites []Site

	for i := 0; i < len(toks); i++ {
		t := toks[i]
		if t.Kind != token.IDENT || t.Lit != keyword {
			continue
		}

		if i > 0 {
			switch toks[i-1].Kind {
			case token.PERIOD, token.FUNC:
				// x.when is a selector; func when() { ... } is a declaration.
				continue
			}
		}

		j := i + 1
		typeArg := ""

		if j < len(toks) && toks[j].Kind == token.LBRACK {
			end, ok := matchDelim(toks, j, token.LBRACK, token.RBRACK)
			if !ok {
				return nil, syntaxErrAt(toks[j], "unterminated `[` in when type argument")
			}

			typeArg = string(src[toks[j].End():toks[end].Off])
			j = end + 1
		}

		if j >= len(toks) || toks[j].Kind != token.LBRACE {
			continue
		}

		end, ok := matchDelim(toks, j, token.LBRACE, token.RBRACE)
		if !ok {
			return nil, syntaxErrAt(toks[j], "unterminated when block")
		}

		sites = append(sites, Site{
			Keyword: t,
			TypeArg: typeArg,
			Inner:   toks[j+1 : end],
			OpenPos: toks[j].Pos,
			Start:   t.Off,
			End:     toks[end].End(),
		})

		i = end
	}

	return sites, nil
}

// matchDelim returns the index of the delimiter closing toks[open].
func matchDelim(toks []clause.Tok, open int, lo, hi token.Token) (int, bool) {
	depth := 0

	for i := open; i < len(toks); i++ {
		switch toks[i].Kind {
		case lo:
			depth++
		case hi:
			depth--
			if depth == 0 {
				return i, true
			}
		}
	}

	return 0, false
}

func syntaxErrAt(t clause.Tok, msg string) *clause.SyntaxError {
	return &clause.SyntaxError{
		Pos:     t.Pos,
		Code:    clause.CodeUnbalanced,
		Message: msg,
	}
}
