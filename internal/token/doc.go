// Package token defines the terminal token and comment vocabulary of
// the sable front end.
// Invariants:
//   - Token.Text and Comment.Text are slices of the assembled snapshot
//     text (no copies).
//   - Token positions span Text exactly (Start.Offset..End.Offset).
//   - Tokens and comments are immutable once assembly produced them.
//   - Per-line constructs split across physical lines (block comments,
//     quoted identifiers, text literals) never reach this package in
//     pieces; assembly merges them into single tokens or comments first.
package token
