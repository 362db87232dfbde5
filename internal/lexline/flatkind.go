package lexline

import (
	"sable/internal/token"
)

// FlatKind is the token vocabulary of the external per-line tokenizer.
// Values below token.NumKinds are terminal kinds verbatim and pass
// through assembly unchanged; the kinds defined here are the per-line
// pieces that assembly merges away. They never appear in a Snapshot.
type FlatKind uint8

const (
	// LineComment is a comment running to the end of its line.
	LineComment FlatKind = FlatKind(token.NumKinds) + iota
	// BlockComment is a delimited comment completed within one line.
	BlockComment
	// MultilineCommentStart opens a block comment cut at a line break.
	MultilineCommentStart
	// MultilineCommentContent continues a cut block comment.
	MultilineCommentContent
	// MultilineCommentEnd closes a cut block comment.
	MultilineCommentEnd
	// QuotedIdentStart opens a quoted identifier cut at a line break.
	QuotedIdentStart
	// QuotedIdentContent continues a cut quoted identifier.
	QuotedIdentContent
	// QuotedIdentEnd closes a cut quoted identifier.
	QuotedIdentEnd
	// TextLitStart opens a text literal cut at a line break.
	TextLitStart
	// TextLitContent continues a cut text literal.
	TextLitContent
	// TextLitEnd closes a cut text literal.
	TextLitEnd
)

// Flat wraps a terminal kind into the flat vocabulary unchanged.
func Flat(k token.Kind) FlatKind { return FlatKind(k) }

// Terminal reports the terminal counterpart of fk. The two kind spaces
// share numbering below token.NumKinds, so the reinterpretation is the
// identity; every flat kind at or above the boundary has no terminal
// counterpart and must be consumed by assembly.
func (fk FlatKind) Terminal() (token.Kind, bool) {
	if uint8(fk) < token.NumKinds {
		return token.Kind(fk), true
	}
	return token.Invalid, false
}

func (fk FlatKind) String() string {
	if k, ok := fk.Terminal(); ok {
		return k.String()
	}
	switch fk {
	case LineComment:
		return "LineComment"
	case BlockComment:
		return "BlockComment"
	case MultilineCommentStart:
		return "MultilineCommentStart"
	case MultilineCommentContent:
		return "MultilineCommentContent"
	case MultilineCommentEnd:
		return "MultilineCommentEnd"
	case QuotedIdentStart:
		return "QuotedIdentStart"
	case QuotedIdentContent:
		return "QuotedIdentContent"
	case QuotedIdentEnd:
		return "QuotedIdentEnd"
	case TextLitStart:
		return "TextLitStart"
	case TextLitContent:
		return "TextLitContent"
	case TextLitEnd:
		return "TextLitEnd"
	}
	return "FlatKind(?)"
}

// construct describes one multiline shape: the content and end kinds
// that follow its start kind, the terminal kind of the merged result
// (token.Invalid when the result is a comment), and a human name for
// failure messages.
type construct struct {
	content FlatKind
	end     FlatKind
	merged  token.Kind
	name    string
}

var constructs = map[FlatKind]construct{
	MultilineCommentStart: {
		content: MultilineCommentContent,
		end:     MultilineCommentEnd,
		merged:  token.Invalid,
		name:    "multiline comment",
	},
	QuotedIdentStart: {
		content: QuotedIdentContent,
		end:     QuotedIdentEnd,
		merged:  token.Ident,
		name:    "quoted identifier",
	},
	TextLitStart: {
		content: TextLitContent,
		end:     TextLitEnd,
		merged:  token.TextLit,
		name:    "text literal",
	},
}

// startsConstruct reports the construct opened by fk, if any.
func (fk FlatKind) startsConstruct() (construct, bool) {
	c, ok := constructs[fk]
	return c, ok
}
