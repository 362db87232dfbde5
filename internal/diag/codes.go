package diag

import (
	"fmt"
)

// Code is a compact, stable identifier for a diagnostic or internal
// fault. Codes are grouped in bands per phase: 1000s for lexical
// assembly, 9000s for internal defects (ICE).
type Code uint16

const (
	// UnknownCode is the zero value; never emitted deliberately.
	UnknownCode Code = 0

	// Лексическая сборка
	LexInfo              Code = 1000
	LexUnterminatedToken Code = 1001
	LexTooManyTokens     Code = 1002

	// Внутренние дефекты — контракт между фазами нарушен
	IceInfo          Code = 9000
	IceBadTerminator Code = 9001
	IceNodeMissing   Code = 9002
	IceParentMissing Code = 9003
	IceChildMissing  Code = 9004
	IceRefinalized   Code = 9005
	IceWrapped       Code = 9006
)

// ID renders the stable textual form, e.g. "LEX1001" or "ICE9003".
func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 9000 && ic < 10000:
		return fmt.Sprintf("ICE%04d", ic)
	}
	return "E0000"
}

// Title returns a short human label for the code.
func (c Code) Title() string {
	switch c {
	case LexInfo:
		return "lexical note"
	case LexUnterminatedToken:
		return "unterminated multiline token"
	case LexTooManyTokens:
		return "token stream exceeds limit"
	case IceInfo:
		return "internal note"
	case IceBadTerminator:
		return "multiline piece out of place"
	case IceNodeMissing:
		return "parse node missing from arena"
	case IceParentMissing:
		return "parent node missing from arena"
	case IceChildMissing:
		return "node absent from parent's children"
	case IceRefinalized:
		return "parse node finalized twice"
	case IceWrapped:
		return "unexpected internal failure"
	}
	return "unknown"
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
