package clause

import (
	"go/scanner"
	"go/token"
)

// Tok is a single host-language token with its location in the scanned source.
type Tok struct {
	Kind token.Token
	Lit  string // literal text for identifiers and literals, "" for operators
	Off  int    // byte offset of the token in the scanned source
	Pos  token.Position
}

// Text returns the source text of the token.
func (t Tok) Text() string {
	if t.Lit != "" {
		return t.Lit
	}

	return t.Kind.String()
}

// End returns the byte offset just past the token.
func (t Tok) End() int {
	return t.Off + len(t.Text())
}

// Scan tokenizes src with the host tokenizer. Comments are skipped (they stay
// in the raw text slices taken later by offset, so they never act as clause
// boundaries). Semicolons inserted by the tokenizer at line ends are dropped;
// explicit semicolons are kept.
func Scan(filename string, src []byte) ([]Tok, error) {
	fset := token.NewFileSet()
	file := fset.AddFile(filename, fset.Base(), len(src))

	var scanErr error

	var s scanner.Scanner
	s.Init(file, src, func(pos token.Position, msg string) {
		if scanErr == nil {
			scanErr = &SyntaxError{Pos: pos, Code: CodeBadToken, Message: msg}
		}
	}, 0)

	var toks []Tok

	for {
		pos, tok, lit := s.Scan()
		if tok == token.EOF {
			break
		}

		if tok == token.SEMICOLON && lit == "\n" {
			// Inserted by the tokenizer, not present in the source.
			continue
		}

		toks = append(toks, Tok{
			Kind: tok,
			Lit:  lit,
			Off:  file.Offset(pos),
			Pos:  fset.Position(pos),
		})
	}

	if scanErr != nil {
		return nil, scanErr
	}

	return toks, nil
}
