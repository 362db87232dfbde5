// Package diag defines the diagnostic model shared by the assembly and
// parse-tree phases.
//
//   - Diagnostic is the central record: severity, stable numeric code,
//     message, primary span and optional notes.
//   - Reporter decouples producers from storage; BagReporter collects
//     into a Bag, DedupReporter filters repeats.
//   - InternalError is the distinguished error type for broken
//     contracts between phases. It is never a parse diagnostic: a
//     diagnostic means the input is wrong, an InternalError means the
//     system is.
//
// Rendering lives in internal/diagfmt; this package performs no IO.
package diag
