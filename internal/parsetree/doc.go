// Package parsetree is the id-indexed store for the mutable tree a
// grammar driver builds while parsing. Nodes reference each other by
// NodeID only — never by pointer — so the whole tree can be duplicated
// with a plain value copy to back speculative parsing: the driver takes
// a Clone before an ambiguous production, continues on the clone on
// success, and discards it on failure with the original untouched.
//
// Ids are allocated from a counter stored in the Tree and are never
// reused, even across deletions and clones, so two logically distinct
// nodes can never alias. Deletion is shallow: DeleteContext unlinks the
// named node only, and the driver unwinds a speculative subtree
// innermost-first. Invariant violations (missing ids, structural
// corruption) surface as *diag.InternalError values: they mean the
// driver misused the arena, not that the input was malformed.
package parsetree
