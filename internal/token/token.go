package token

import (
	"sable/internal/source"
)

// Token represents a single assembled source token with its exact
// positions. Start and End carry both the absolute and the
// line-relative location of the token's boundaries.
type Token struct {
	Kind  Kind
	Text  string
	Start source.Pos
	End   source.Pos
}

// Span returns the absolute byte range the token occupies.
func (t Token) Span() source.Span {
	return source.Span{Start: t.Start.Offset, End: t.End.Offset}
}

// IsLiteral reports whether the token is a numeric, boolean, or text literal.
func (t Token) IsLiteral() bool {
	switch t.Kind {
	case IntLit, FloatLit, TextLit, KwTrue, KwFalse:
		return true
	default:
		return false
	}
}

// IsKeyword reports whether the token is a language keyword.
func (t Token) IsKeyword() bool {
	return t.Kind >= KwLet && t.Kind <= KwFalse
}

// IsPunctOrOp reports whether the token is a punctuation or operator.
func (t Token) IsPunctOrOp() bool {
	return t.Kind >= Plus && t.Kind < kindCount
}

// IsIdent reports whether the token is an identifier.
func (t Token) IsIdent() bool { return t.Kind == Ident }
