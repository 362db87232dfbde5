// Package lexline turns the per-line output of the external tokenizer
// into one immutable Snapshot: a single text buffer, the ordered token
// and comment sequences, and the line-terminator table.
//
// The pass has two stages. Flattening concatenates line texts and
// terminators into the global buffer and rewrites every token with
// absolute and line-relative positions; it cannot fail. Assembly then
// walks the flat stream once, merging multiline begin/content/end runs
// into single tokens or comments. Assembly is all-or-nothing: either
// every construct resolves and a Snapshot is produced, or the whole
// pass aborts with a single tagged failure and no partial result.
package lexline
