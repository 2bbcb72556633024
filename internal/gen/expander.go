package gen

import (
	"fmt"
	"go/token"
	"slices"
	"strings"

	"whengen/internal/clause"
)

// Mode selects the emission shape of an expansion.
type Mode int

const (
	// ModeStatement emits a bare if/else chain. With all guards failed and no
	// default, the chain simply does nothing.
	ModeStatement Mode = iota
	// ModeExpression emits an immediately invoked function literal producing
	// a value. A default clause is mandatory in this mode.
	ModeExpression
)

// CodeMissingDefault identifies the expression-form-without-default error.
const CodeMissingDefault = "WHEN_MISSING_DEFAULT"

// ExpansionError reports a clause list that is grammatically fine but cannot
// be emitted in the requested mode.
type ExpansionError struct {
	Pos     token.Position
	Code    string
	Message string
}

// Error implements the error interface.
func (e *ExpansionError) Error() string {
	if e.Pos.IsValid() {
		return fmt.Sprintf("%s: %s", e.Pos, e.Message)
	}

	return e.Message
}

// Request describes one expansion.
type Request struct {
	List *clause.List
	Mode Mode
	// ResultType is the raw type text from `when[T]`. Required in expression
	// mode, ignored otherwise.
	ResultType string
	// Pos is the position of the when keyword, for diagnostics.
	Pos token.Position
}

// Expand turns a clause list into its conditional chain. The result is not
// formatted; callers format the surrounding file once all sites are spliced.
//
// Guards are tested in original order and each guard expression appears
// exactly once in the output, so the emitted chain evaluates every guard at
// most once and stops at the first success.
func Expand(req Request) (string, error) {
	if req.Mode == ModeExpression {
		if strings.TrimSpace(req.ResultType) == "" {
			return "", &ExpansionError{
				Pos:     req.Pos,
				Code:    CodeMissingDefault,
				Message: "when expression form requires a result type",
			}
		}

		if req.List.Default == nil {
			return "", &ExpansionError{
				Pos:     req.Pos,
				Code:    CodeMissingDefault,
				Message: "when[...] used as an expression requires a trailing `_ =>` clause",
			}
		}
	}

	// Right fold: start from the innermost piece (the default, if any) and
	// wrap each clause around it, last clause first.
	rest := ""
	if req.List.Default != nil {
		rest = "{\n" + bodyText(*req.List.Default, req.Mode) + "\n}"
	}

	for i := len(req.List.Clauses) - 1; i >= 0; i-- {
		c := req.List.Clauses[i]

		seg := "if " + guardHeader(c.Guard) + " {\n" + bodyText(c.Body, req.Mode) + "\n}"
		if rest != "" {
			seg += " else " + rest
		}

		rest = seg
	}

	if req.Mode == ModeExpression {
		return "func() " + strings.TrimSpace(req.ResultType) + " {\n" + rest + "\n}()", nil
	}

	return rest, nil
}

// guardHeader renders the `if` header for a guard.
//
// Bind guards become the host's comma-ok form: the target is evaluated once
// in the init statement, the bound names live only inside the clause body,
// and a failed match leaks nothing.
func guardHeader(g clause.Guard) string {
	expr := g.Expr
	if g.Parenthesize {
		expr = "(" + expr + ")"
	}

	if g.Kind == clause.GuardBool {
		return expr
	}

	flag := successFlag(g.Names)

	return strings.Join(g.Names, ", ") + ", " + flag + " := " + expr + "; " + flag
}

// successFlag picks the comma-ok flag identifier, stepping aside when the
// clause binds a name called ok itself.
func successFlag(names []string) string {
	flag := "ok"
	for slices.Contains(names, flag) {
		flag += "_"
	}

	return flag
}

// bodyText renders a clause body for splicing inside the emitted braces.
func bodyText(b clause.Body, mode Mode) string {
	if b.Block {
		// Splice the block's own statements into the emitted braces. In
		// expression mode the block is expected to return; if it doesn't,
		// the compiler reports the missing return at the use site.
		inner := strings.TrimSpace(b.Text)
		inner = strings.TrimPrefix(inner, "{")
		inner = strings.TrimSuffix(inner, "}")

		return strings.TrimSpace(inner)
	}

	if mode == ModeExpression {
		return "return " + b.Text
	}

	return b.Text
}
