package token

import (
	"sable/internal/source"
)

// CommentKind distinguishes the two comment shapes of the language.
type CommentKind uint8

const (
	// CommentLine is a comment running to the end of its line.
	CommentLine CommentKind = iota
	// CommentBlock is a delimited comment that may span physical lines.
	CommentBlock
)

func (k CommentKind) String() string {
	switch k {
	case CommentLine:
		return "CommentLine"
	case CommentBlock:
		return "CommentBlock"
	}
	return "CommentKind(?)"
}

// Comment is an assembled source comment, delimiters included in Text.
// ContainsNewline is true exactly when the comment's start and end sit
// on different physical lines.
type Comment struct {
	Kind            CommentKind
	Text            string
	ContainsNewline bool
	Start           source.Pos
	End             source.Pos
}

// Span returns the absolute byte range the comment occupies.
func (c Comment) Span() source.Span {
	return source.Span{Start: c.Start.Offset, End: c.End.Offset}
}
