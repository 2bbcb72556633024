// Package diagnostic collects per-file expansion diagnostics for reporting.
//
// Everything here is compile-time only: a diagnostic is fatal to its own use
// site but never halts unrelated sites or files.
package diagnostic
