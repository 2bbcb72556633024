// Package analyze locates when-block invocations in a source file.
//
// A site is the configured keyword identifier, optionally followed by a
// bracketed result type, followed by a brace-balanced block:
//
//	when { ... }        statement form
//	when[T] { ... }     expression form
//
// Scanning is purely lexical. Selector uses of the keyword (x.when) and
// function declarations named like it are skipped; anything inside strings or
// comments never matches because the host tokenizer already classified it.
// The scanner does not descend into a matched block: nested invocations are
// picked up by the rewriter's next pass over the spliced output.
package analyze
