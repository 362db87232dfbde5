package lexline

import (
	"errors"
	"fmt"

	"sable/internal/diag"
	"sable/internal/source"
	"sable/internal/token"
)

// UnterminatedError reports a multiline construct whose end marker
// never appears before end of input. Pos is the grapheme position of
// the start token; Span its byte range.
type UnterminatedError struct {
	Start FlatKind
	Pos   source.LineCol
	Span  source.Span
}

func (e *UnterminatedError) Error() string {
	name := "multiline token"
	if c, ok := e.Start.startsConstruct(); ok {
		name = c.name
	}
	return fmt.Sprintf("unterminated %s at %d:%d", name, e.Pos.Line, e.Pos.Col)
}

// ErrTooManyTokens aborts assembly when the flat stream exceeds the
// configured MaxTokens cap.
var ErrTooManyTokens = errors.New("token stream exceeds configured limit")

// Assemble runs the whole pass: flatten the lines, then walk the flat
// stream once, left to right, merging multiline begin/content/end runs.
// Exactly one of three outcomes: a complete Snapshot, an
// *UnterminatedError (also reported through Options.Reporter), or an
// internal fault for a broken tokenizer contract. Never a partial
// Snapshot.
func Assemble(lines []Line, opts Options) (*Snapshot, error) {
	text, terms, flat := flatten(lines)

	if opts.MaxTokens > 0 && uint(len(flat)) > opts.MaxTokens {
		sp := source.Span{Start: 0, End: 0}
		if len(flat) > 0 {
			sp = source.Span{Start: flat[0].Start.Offset, End: flat[len(flat)-1].End.Offset}
		}
		opts.report(diag.LexTooManyTokens, sp,
			fmt.Sprintf("input produced %d tokens, limit is %d", len(flat), opts.MaxTokens))
		return nil, fmt.Errorf("assemble: %w", ErrTooManyTokens)
	}

	tokens := make([]token.Token, 0, len(flat))
	var comments []token.Comment

	for i := 0; i < len(flat); i++ {
		ft := flat[i]

		// Сквозные терминальные токены.
		if k, ok := ft.Kind.Terminal(); ok {
			tokens = append(tokens, token.Token{
				Kind:  k,
				Text:  text[ft.Start.Offset:ft.End.Offset],
				Start: ft.Start,
				End:   ft.End,
			})
			continue
		}

		switch ft.Kind {
		case LineComment, BlockComment:
			kind := token.CommentLine
			if ft.Kind == BlockComment {
				kind = token.CommentBlock
			}
			comments = append(comments, token.Comment{
				Kind: kind,
				Text: text[ft.Start.Offset:ft.End.Offset],
				// у однострочного блочного комментария всегда false
				ContainsNewline: ft.Start.Line != ft.End.Line,
				Start:           ft.Start,
				End:             ft.End,
			})

		default:
			c, ok := ft.Kind.startsConstruct()
			if !ok {
				// Content/End вне своей конструкции — контракт токенизатора нарушен.
				return nil, diag.Internalf(diag.IceBadTerminator, "lexline.Assemble",
					"stray %s at offset %d outside a multiline construct", ft.Kind, ft.Start.Offset)
			}

			// Жадно съедаем content-последовательность.
			j := i + 1
			for j < len(flat) && flat[j].Kind == c.content {
				j++
			}
			if j == len(flat) {
				span := source.Span{Start: ft.Start.Offset, End: ft.End.Offset}
				pos := source.Resolve(text, terms, span)
				opts.report(diag.LexUnterminatedToken, span,
					fmt.Sprintf("unterminated %s", c.name))
				return nil, &UnterminatedError{Start: ft.Kind, Pos: pos, Span: span}
			}

			endTok := flat[j]
			if endTok.Kind != c.end {
				return nil, diag.Internalf(diag.IceBadTerminator, "lexline.Assemble",
					"%s run terminated by %s, want %s", c.name, endTok.Kind, c.end)
			}

			data := text[ft.Start.Offset:endTok.End.Offset]
			if c.merged == token.Invalid {
				comments = append(comments, token.Comment{
					Kind:            token.CommentBlock,
					Text:            data,
					ContainsNewline: ft.Start.Line != endTok.End.Line,
					Start:           ft.Start,
					End:             endTok.End,
				})
			} else {
				tokens = append(tokens, token.Token{
					Kind:  c.merged,
					Text:  data,
					Start: ft.Start,
					End:   endTok.End,
				})
			}
			i = j
		}
	}

	return &Snapshot{
		Text:            text,
		Tokens:          tokens,
		Comments:        comments,
		LineTerminators: terms,
	}, nil
}
