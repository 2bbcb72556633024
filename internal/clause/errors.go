package clause

import (
	"fmt"
	"go/token"
)

// Code is a stable identifier for a syntax diagnostic.
type Code string

const (
	CodeBadToken       Code = "WHEN_BAD_TOKEN"
	CodeEmptyList      Code = "WHEN_EMPTY_LIST"
	CodeMissingArrow   Code = "WHEN_MISSING_ARROW"
	CodeDefaultNotLast Code = "WHEN_DEFAULT_NOT_LAST"
	CodeBadBinding     Code = "WHEN_BAD_BINDING"
	CodeEmptyGuard     Code = "WHEN_EMPTY_GUARD"
	CodeEmptyBody      Code = "WHEN_EMPTY_BODY"
	CodeUnbalanced     Code = "WHEN_UNBALANCED"
)

// SyntaxError reports a clause list that does not match the grammar. It names
// the offending token position; no partial expansion is produced alongside it.
type SyntaxError struct {
	Pos     token.Position
	Code    Code
	Message string
}

// Error implements the error interface.
func (e *SyntaxError) Error() string {
	if e.Pos.IsValid() {
		return fmt.Sprintf("%s: %s", e.Pos, e.Message)
	}

	return e.Message
}

func syntaxErr(pos token.Position, code Code, format string, args ...any) *SyntaxError {
	return &SyntaxError{
		Pos:     pos,
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}
