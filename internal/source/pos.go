package source

// Pos is one boundary of a token or comment in the assembled text.
// Offset is the absolute byte offset; LineOffset is the byte offset
// within the physical line; Line is the 0-based physical line number.
type Pos struct {
	Offset     uint32
	LineOffset uint32
	Line       uint32
}

// LineTerminator records one line boundary of the assembled text:
// the byte offset where the terminator begins and its exact text
// ("\n", "\r\n" or "\r"). The table is kept strictly ascending by Offset.
type LineTerminator struct {
	Offset uint32
	Text   string
}

// End returns the exclusive byte offset just past the terminator.
func (lt LineTerminator) End() uint32 {
	return lt.Offset + uint32(len(lt.Text))
}

// LineCol is a human-facing position used by diagnostics. Line and Col
// are 0-based; Col counts grapheme clusters, not bytes, so multi-byte
// code points advance it by one step. Offset keeps the absolute byte
// offset the position was resolved from.
type LineCol struct {
	Line   uint32
	Col    uint32
	Offset uint32
}
