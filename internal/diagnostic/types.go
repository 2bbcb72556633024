package diagnostic

import (
	"errors"
	"fmt"

	"whengen/internal/clause"
	"whengen/internal/gen"
)

// Severity represents the severity level of a diagnostic.
type Severity int

const (
	SeverityWarning Severity = iota
	SeverityError
)

// String returns a human-readable severity name.
func (s Severity) String() string {
	switch s {
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "unknown"
	}
}

// Diagnostic is a single reportable finding.
type Diagnostic struct {
	Severity Severity
	// Code is a stable identifier for this kind of diagnostic.
	Code string
	// Message is the human-readable description.
	Message string
	// File, Line and Column locate the offending token. Line 0 means the
	// diagnostic has no position.
	File   string
	Line   int
	Column int
}

// String returns the diagnostic formatted with its file:line:col prefix.
func (d Diagnostic) String() string {
	msg := d.Message
	if d.Code != "" {
		msg = fmt.Sprintf("[%s] %s", d.Code, msg)
	}

	if d.File != "" && d.Line > 0 {
		return fmt.Sprintf("%s:%d:%d: %s: %s", d.File, d.Line, d.Column, d.Severity, msg)
	}

	if d.File != "" {
		return fmt.Sprintf("%s: %s: %s", d.File, d.Severity, msg)
	}

	return fmt.Sprintf("%s: %s", d.Severity, msg)
}

// Diagnostics holds all findings from a run.
type Diagnostics struct {
	Errors   []Diagnostic
	Warnings []Diagnostic
}

// AddError adds an error diagnostic.
func (d *Diagnostics) AddError(code, message, file string, line, column int) {
	d.Errors = append(d.Errors, Diagnostic{
		Severity: SeverityError,
		Code:     code,
		Message:  message,
		File:     file,
		Line:     line,
		Column:   column,
	})
}

// AddWarning adds a warning diagnostic.
func (d *Diagnostics) AddWarning(code, message, file string, line, column int) {
	d.Warnings = append(d.Warnings, Diagnostic{
		Severity: SeverityWarning,
		Code:     code,
		Message:  message,
		File:     file,
		Line:     line,
		Column:   column,
	})
}

// AddErr records err against file, recovering position and code information
// when err is one of the transformation's own error types.
func (d *Diagnostics) AddErr(file string, err error) {
	var synErr *clause.SyntaxError
	if errors.As(err, &synErr) {
		f := synErr.Pos.Filename
		if f == "" {
			f = file
		}

		d.AddError(string(synErr.Code), synErr.Message, f, synErr.Pos.Line, synErr.Pos.Column)

		return
	}

	var expErr *gen.ExpansionError
	if errors.As(err, &expErr) {
		f := expErr.Pos.Filename
		if f == "" {
			f = file
		}

		d.AddError(expErr.Code, expErr.Message, f, expErr.Pos.Line, expErr.Pos.Column)

		return
	}

	d.AddError("", err.Error(), file, 0, 0)
}

// HasErrors returns true if there are any error diagnostics.
func (d *Diagnostics) HasErrors() bool {
	return len(d.Errors) > 0
}
