package clause

import (
	"go/token"
	"strings"
)

// Parse parses the token run between a when block's braces into a List.
// toks are the tokens strictly inside the braces, src is the full source the
// offsets refer to, and open is the position of the opening brace (used for
// diagnostics when the list is empty).
//
// Any deviation from the grammar is reported as a single *SyntaxError naming
// the offending token; there is no recovery and no partial result.
func Parse(toks []Tok, src []byte, open token.Position) (*List, error) {
	p := &parser{toks: toks, src: src, open: open}

	return p.parseList()
}

type parser struct {
	toks []Tok
	src  []byte
	open token.Position
	i    int
}

func (p *parser) done() bool {
	return p.i >= len(p.toks)
}

func (p *parser) cur() Tok {
	return p.toks[p.i]
}

func (p *parser) parseList() (*List, error) {
	list := &List{}

	for !p.done() {
		if list.Default != nil {
			return nil, syntaxErr(p.cur().Pos, CodeDefaultNotLast,
				"default `_ =>` clause must be the last clause")
		}

		if err := p.parseClause(list); err != nil {
			return nil, err
		}

		if !p.done() {
			if p.cur().Kind != token.COMMA {
				return nil, syntaxErr(p.cur().Pos, CodeBadToken,
					"expected `,` between clauses, found %q", p.cur().Text())
			}

			p.i++ // a trailing comma before the closing brace is fine
		}
	}

	if len(list.Clauses) == 0 {
		return nil, syntaxErr(p.open, CodeEmptyList,
			"when block requires at least one non-default clause")
	}

	return list, nil
}

// parseClause parses one `("let" ident_list "=")? expr "=>" body` unit, or
// the `_ => body` default, and appends it to list.
func (p *parser) parseClause(list *List) error {
	names, isBind := p.parseLetPrefix()

	guardStart := p.i

	guard, arrow, err := p.scanGuard()
	if err != nil {
		return err
	}

	body, err := p.scanBody(arrow)
	if err != nil {
		return err
	}

	// A bare `_` guard without a `let` prefix is the default clause.
	if !isBind && arrow-guardStart == 1 &&
		p.toks[guardStart].Kind == token.IDENT && p.toks[guardStart].Lit == "_" {
		list.Default = &body

		return nil
	}

	g := Guard{
		Kind:         GuardBool,
		Expr:         guard.text,
		Parenthesize: guard.parenthesize,
		Pos:          p.toks[guardStart].Pos,
	}
	if isBind {
		g.Kind = GuardBind
		g.Names = names
	}

	list.Clauses = append(list.Clauses, Clause{
		Guard: g,
		Body:  body,
		Index: len(list.Clauses),
	})

	return nil
}

// parseLetPrefix consumes `let ident ("," ident)* =` if the upcoming tokens
// form exactly that shape. `let` is not a host keyword, so a guard expression
// may legitimately start with an identifier named let; the prefix is only
// taken when the full binding shape is present.
func (p *parser) parseLetPrefix() ([]string, bool) {
	j := p.i
	if j >= len(p.toks) || p.toks[j].Kind != token.IDENT || p.toks[j].Lit != "let" {
		return nil, false
	}

	j++

	var names []string

	for {
		if j >= len(p.toks) || p.toks[j].Kind != token.IDENT {
			return nil, false
		}

		names = append(names, p.toks[j].Lit)
		j++

		if j >= len(p.toks) {
			return nil, false
		}

		if p.toks[j].Kind == token.COMMA {
			j++
			continue
		}

		break
	}

	if p.toks[j].Kind != token.ASSIGN {
		return nil, false
	}

	// `=` immediately followed by `>` is the clause arrow, not a binding.
	if j+1 < len(p.toks) && p.toks[j+1].Kind == token.GTR && p.toks[j+1].Off == p.toks[j].Off+1 {
		return nil, false
	}

	p.i = j + 1

	return names, true
}

type guardRun struct {
	text         string
	parenthesize bool
}

// scanGuard walks tokens until the depth-0 `=>` arrow, tracking delimiter
// depth so commas and arrows inside nested expressions are ignored. It
// returns the guard text and the index of the arrow's `=` token, leaving p.i
// positioned on the first body token.
func (p *parser) scanGuard() (guardRun, int, error) {
	var parens, bracks, braces int

	start := p.i
	parenthesize := false

	for ; p.i < len(p.toks); p.i++ {
		t := p.toks[p.i]

		switch t.Kind {
		case token.LPAREN:
			parens++
		case token.RPAREN:
			if parens == 0 {
				return guardRun{}, 0, syntaxErr(t.Pos, CodeUnbalanced, "unexpected `)` in guard")
			}
			parens--
		case token.LBRACK:
			bracks++
		case token.RBRACK:
			if bracks == 0 {
				return guardRun{}, 0, syntaxErr(t.Pos, CodeUnbalanced, "unexpected `]` in guard")
			}
			bracks--
		case token.LBRACE:
			// A composite literal at the top level of the guard. Legal here,
			// but the emitted `if` header must parenthesize it.
			if parens == 0 && bracks == 0 && braces == 0 {
				parenthesize = true
			}
			braces++
		case token.RBRACE:
			if braces == 0 {
				return guardRun{}, 0, syntaxErr(t.Pos, CodeUnbalanced, "unexpected `}` in guard")
			}
			braces--
		case token.COMMA:
			if parens == 0 && bracks == 0 && braces == 0 {
				return guardRun{}, 0, syntaxErr(t.Pos, CodeMissingArrow,
					"expected `=>` before `,`")
			}
		case token.ASSIGN:
			if parens != 0 || bracks != 0 || braces != 0 {
				continue
			}

			if p.i+1 < len(p.toks) && p.toks[p.i+1].Kind == token.GTR &&
				p.toks[p.i+1].Off == t.Off+1 {
				if p.i == start {
					return guardRun{}, 0, syntaxErr(t.Pos, CodeEmptyGuard,
						"clause has no guard expression")
				}

				arrow := p.i
				text := p.rawText(start, arrow)
				p.i = arrow + 2 // skip `=` `>`

				return guardRun{text: text, parenthesize: parenthesize}, arrow, nil
			}
		}
	}

	pos := p.open
	if start < len(p.toks) {
		pos = p.toks[start].Pos
	}

	return guardRun{}, 0, syntaxErr(pos, CodeMissingArrow, "clause is missing `=>`")
}

// scanBody walks tokens from p.i until the next depth-0 comma or the end of
// the list. arrow is the index of the clause's `=` token, used to position
// empty-body diagnostics.
func (p *parser) scanBody(arrow int) (Body, error) {
	var parens, bracks, braces int

	start := p.i

	for ; p.i < len(p.toks); p.i++ {
		t := p.toks[p.i]

		switch t.Kind {
		case token.LPAREN:
			parens++
		case token.RPAREN:
			if parens == 0 {
				return Body{}, syntaxErr(t.Pos, CodeUnbalanced, "unexpected `)` in body")
			}
			parens--
		case token.LBRACK:
			bracks++
		case token.RBRACK:
			if bracks == 0 {
				return Body{}, syntaxErr(t.Pos, CodeUnbalanced, "unexpected `]` in body")
			}
			bracks--
		case token.LBRACE:
			braces++
		case token.RBRACE:
			if braces == 0 {
				return Body{}, syntaxErr(t.Pos, CodeUnbalanced, "unexpected `}` in body")
			}
			braces--
		case token.COMMA:
			if parens == 0 && bracks == 0 && braces == 0 {
				return p.finishBody(start, p.i, arrow)
			}
		case token.ASSIGN:
			if parens != 0 || bracks != 0 || braces != 0 {
				continue
			}

			// A depth-0 `=>` cannot occur inside a body; it means the comma
			// separating this clause from the next one was left out.
			if p.i+1 < len(p.toks) && p.toks[p.i+1].Kind == token.GTR &&
				p.toks[p.i+1].Off == t.Off+1 {
				return Body{}, syntaxErr(t.Pos, CodeBadToken,
					"expected `,` between clauses, found `=>`")
			}
		}
	}

	if parens != 0 || bracks != 0 || braces != 0 {
		return Body{}, syntaxErr(p.toks[len(p.toks)-1].Pos, CodeUnbalanced,
			"unbalanced delimiters in body")
	}

	return p.finishBody(start, p.i, arrow)
}

func (p *parser) finishBody(start, end, arrow int) (Body, error) {
	if end == start {
		return Body{}, syntaxErr(p.toks[arrow].Pos, CodeEmptyBody,
			"clause has no body after `=>`")
	}

	return Body{
		Text:  p.rawText(start, end),
		Block: p.isBlock(start, end),
		Pos:   p.toks[start].Pos,
	}, nil
}

// isBlock reports whether the tokens [start, end) form a single braced block.
func (p *parser) isBlock(start, end int) bool {
	if p.toks[start].Kind != token.LBRACE {
		return false
	}

	depth := 0
	for i := start; i < end; i++ {
		switch p.toks[i].Kind {
		case token.LBRACE:
			depth++
		case token.RBRACE:
			depth--
			if depth == 0 {
				return i == end-1
			}
		}
	}

	return false
}

// rawText slices the original source covered by tokens [start, end).
func (p *parser) rawText(start, end int) string {
	return strings.TrimSpace(string(p.src[p.toks[start].Off:p.toks[end-1].End()]))
}
