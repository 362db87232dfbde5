package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"

	"sable/internal/lexline"
	"sable/internal/source"
)

// TokenOutput is the JSON shape of one assembled token.
type TokenOutput struct {
	Kind string      `json:"kind"`
	Text string      `json:"text,omitempty"`
	Span source.Span `json:"span"`
	Line uint32      `json:"line"`
	Col  uint32      `json:"col"`
}

// CommentOutput is the JSON shape of one assembled comment.
type CommentOutput struct {
	Kind            string      `json:"kind"`
	Text            string      `json:"text"`
	Span            source.Span `json:"span"`
	ContainsNewline bool        `json:"containsNewline"`
}

// SnapshotOutput is the JSON shape of a whole snapshot dump.
type SnapshotOutput struct {
	Tokens   []TokenOutput   `json:"tokens"`
	Comments []CommentOutput `json:"comments,omitempty"`
}

// FormatTokensPretty выводит токены снапшота в человекочитаемом формате.
func FormatTokensPretty(w io.Writer, snap *lexline.Snapshot) error {
	for i, tok := range snap.Tokens {
		start := snap.Resolve(tok.Span())
		if _, err := fmt.Fprintf(w, "%3d: %-12s", i+1, tok.Kind.String()); err != nil {
			return err
		}
		if tok.Text != "" {
			fmt.Fprintf(w, " %q", tok.Text)
		}
		fmt.Fprintf(w, " at %d:%d\n", start.Line, start.Col)
	}
	return nil
}

// FormatTokensJSON выводит токены и комментарии снапшота в JSON.
func FormatTokensJSON(w io.Writer, snap *lexline.Snapshot) error {
	out := SnapshotOutput{
		Tokens: make([]TokenOutput, 0, len(snap.Tokens)),
	}
	for _, tok := range snap.Tokens {
		pos := snap.Resolve(tok.Span())
		out.Tokens = append(out.Tokens, TokenOutput{
			Kind: tok.Kind.String(),
			Text: tok.Text,
			Span: tok.Span(),
			Line: pos.Line,
			Col:  pos.Col,
		})
	}
	for _, c := range snap.Comments {
		out.Comments = append(out.Comments, CommentOutput{
			Kind:            c.Kind.String(),
			Text:            c.Text,
			Span:            c.Span(),
			ContainsNewline: c.ContainsNewline,
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
