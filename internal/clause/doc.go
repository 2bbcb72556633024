// Package clause implements the front half of the when-block transformation:
// tokenizing a source region with the host tokenizer (go/scanner) and parsing
// the clause-list grammar into an ordered List.
//
// Grammar:
//
//	clause_list := clause ("," clause)* ("," default)? ","?
//	clause      := ("let" ident_list "=")? expression "=>" body
//	default     := "_" "=>" body
//	body        := expression | block
//
// Guard and body expressions are kept as opaque token runs. The parser only
// tracks delimiter depth to find clause boundaries, so composite literals are
// legal inside guards without extra parentheses. Everything inside a guard or
// body is validated later by the Go compiler, not here.
package clause
