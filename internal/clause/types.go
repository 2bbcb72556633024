package clause

import "go/token"

// GuardKind distinguishes the two guard forms a clause can carry.
type GuardKind int

const (
	// GuardBool is a plain boolean condition: `expr => body`.
	GuardBool GuardKind = iota
	// GuardBind is a comma-ok binding: `let names = expr => body`. The guard
	// succeeds iff the trailing bool result of expr is true, and the bound
	// names are in scope only within the clause body.
	GuardBind
)

// String returns a human-readable kind name.
func (k GuardKind) String() string {
	switch k {
	case GuardBool:
		return "bool"
	case GuardBind:
		return "bind"
	default:
		return "unknown"
	}
}

// Guard is the condition of a single clause.
type Guard struct {
	Kind GuardKind
	// Names are the identifiers bound on success. Empty for GuardBool.
	Names []string
	// Expr is the raw source text of the condition (GuardBool) or of the
	// comma-ok target (GuardBind). It is opaque to the transformation.
	Expr string
	// Parenthesize is set when Expr contains a composite literal at its top
	// level. Such expressions must be parenthesized in the emitted `if`
	// header to stay parseable as Go.
	Parenthesize bool
	Pos          token.Position
}

// Body is the expression or block evaluated when a clause's guard succeeds.
type Body struct {
	// Text is the raw source text of the body.
	Text string
	// Block is true when the body is a braced block rather than a single
	// expression.
	Block bool
	Pos   token.Position
}

// Clause is one `guard => body` unit.
type Clause struct {
	Guard Guard
	Body  Body
	// Index is the clause's position in the original list. Ordering is
	// load-bearing: the first clause whose guard succeeds wins.
	Index int
}

// List is an ordered clause sequence plus an optional trailing default body.
type List struct {
	Clauses []Clause
	// Default is the `_ => body` fallback, nil when absent. When present it
	// was the syntactically last element.
	Default *Body
}
