package lexline

import (
	"sable/internal/source"
	"sable/internal/token"
)

// Snapshot is the sole artifact assembly hands to the parser: the
// global text, the ordered terminal tokens, the ordered comments and
// the line-terminator table. It is immutable once built and may be
// read concurrently without synchronisation.
type Snapshot struct {
	Text            string
	Tokens          []token.Token
	Comments        []token.Comment
	LineTerminators []source.LineTerminator
}

// Resolve maps a span of the snapshot text to a grapheme-aware
// line/column position.
func (s *Snapshot) Resolve(span source.Span) source.LineCol {
	return source.Resolve(s.Text, s.LineTerminators, span)
}
