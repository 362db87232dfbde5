package lexline

// Line is the external tokenizer's output for one physical line: the
// raw text without its terminator, the terminator that followed it (""
// on the final line), and the tokens found in the text with offsets
// local to the line. Token ranges are assumed valid; the tokenizer
// enforces that upstream.
type Line struct {
	Text       string
	Terminator string
	Tokens     []LineToken
}

// LineToken is a single token within one line, [Start, End) in bytes
// relative to the line's text.
type LineToken struct {
	Kind  FlatKind
	Start uint32
	End   uint32
}
