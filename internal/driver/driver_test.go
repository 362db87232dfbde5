package driver_test

import (
	"errors"
	"testing"

	"sable/internal/diag"
	"sable/internal/driver"
	"sable/internal/lexline"
	"sable/internal/token"
)

// scriptedTokenizer plays back a fixed token list per line and records
// what it was asked to tokenize.
type scriptedTokenizer struct {
	byLine [][]lexline.LineToken
	texts  []string
	lines  []uint32
}

func (s *scriptedTokenizer) TokenizeLine(text string, line uint32) []lexline.LineToken {
	s.texts = append(s.texts, text)
	s.lines = append(s.lines, line)
	if int(line) < len(s.byLine) {
		return s.byLine[line]
	}
	return nil
}

func TestRunHappyPath(t *testing.T) {
	tk := &scriptedTokenizer{byLine: [][]lexline.LineToken{
		{
			{Kind: lexline.Flat(token.KwLet), Start: 0, End: 3},
			{Kind: lexline.Flat(token.Ident), Start: 4, End: 5},
		},
		{
			{Kind: lexline.Flat(token.Ident), Start: 0, End: 1},
		},
	}}

	snap, bag, err := driver.Run([]byte("let x\ny"), tk, driver.Options{})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if bag.Len() != 0 {
		t.Errorf("unexpected diagnostics: %+v", bag.Items())
	}
	if snap.Text != "let x\ny" {
		t.Errorf("Text = %q", snap.Text)
	}

	if len(snap.Tokens) != 3 {
		t.Fatalf("tokens = %d, want 3", len(snap.Tokens))
	}
	last := snap.Tokens[2]
	if last.Text != "y" || last.Start.Offset != 6 || last.Start.Line != 1 {
		t.Errorf("tokens[2] = %+v", last)
	}
	if len(snap.LineTerminators) != 1 || snap.LineTerminators[0].Offset != 5 {
		t.Errorf("terminators = %+v", snap.LineTerminators)
	}

	// Токенизатор видит строки без терминаторов и их порядковые номера.
	if len(tk.texts) != 2 || tk.texts[0] != "let x" || tk.texts[1] != "y" {
		t.Errorf("tokenized texts = %q", tk.texts)
	}
	if tk.lines[0] != 0 || tk.lines[1] != 1 {
		t.Errorf("tokenized lines = %v", tk.lines)
	}
}

func TestRunStripsBOM(t *testing.T) {
	tk := &scriptedTokenizer{byLine: [][]lexline.LineToken{
		{{Kind: lexline.Flat(token.Ident), Start: 0, End: 1}},
	}}
	snap, _, err := driver.Run([]byte("\xEF\xBB\xBFx"), tk, driver.Options{})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if snap.Text != "x" {
		t.Errorf("Text = %q, want BOM stripped", snap.Text)
	}
	if snap.Tokens[0].Start.Offset != 0 {
		t.Errorf("token offset = %d, want 0", snap.Tokens[0].Start.Offset)
	}
}

func TestRunUnterminated(t *testing.T) {
	tk := &scriptedTokenizer{byLine: [][]lexline.LineToken{
		{{Kind: lexline.MultilineCommentStart, Start: 0, End: 3}},
	}}
	snap, bag, err := driver.Run([]byte("/*a"), tk, driver.Options{})
	if snap != nil {
		t.Error("no snapshot must be produced on unterminated input")
	}
	var ue *lexline.UnterminatedError
	if !errors.As(err, &ue) {
		t.Fatalf("err = %v, want UnterminatedError", err)
	}
	if ue.Pos.Line != 0 || ue.Pos.Col != 0 {
		t.Errorf("position = %d:%d, want 0:0", ue.Pos.Line, ue.Pos.Col)
	}
	if bag.Len() != 1 || bag.Items()[0].Code != diag.LexUnterminatedToken {
		t.Errorf("diagnostics = %+v", bag.Items())
	}
}

func TestRunTokenLimit(t *testing.T) {
	tk := &scriptedTokenizer{byLine: [][]lexline.LineToken{
		{
			{Kind: lexline.Flat(token.Ident), Start: 0, End: 1},
			{Kind: lexline.Flat(token.Ident), Start: 2, End: 3},
		},
	}}
	_, bag, err := driver.Run([]byte("a b"), tk, driver.Options{MaxTokens: 1})
	if !errors.Is(err, lexline.ErrTooManyTokens) {
		t.Fatalf("err = %v, want ErrTooManyTokens", err)
	}
	if bag.Len() != 1 || bag.Items()[0].Code != diag.LexTooManyTokens {
		t.Errorf("diagnostics = %+v", bag.Items())
	}
}

func TestRunCacheShortCircuit(t *testing.T) {
	cache, err := driver.OpenSnapshotCacheAt(t.TempDir())
	if err != nil {
		t.Fatalf("OpenSnapshotCacheAt failed: %v", err)
	}
	opts := driver.Options{Cache: cache}

	content := []byte("let x")
	script := [][]lexline.LineToken{
		{
			{Kind: lexline.Flat(token.KwLet), Start: 0, End: 3},
			{Kind: lexline.Flat(token.Ident), Start: 4, End: 5},
		},
	}

	cold := &scriptedTokenizer{byLine: script}
	first, _, err := driver.Run(content, cold, opts)
	if err != nil {
		t.Fatalf("cold Run failed: %v", err)
	}

	warm := &scriptedTokenizer{byLine: script}
	second, _, err := driver.Run(content, warm, opts)
	if err != nil {
		t.Fatalf("warm Run failed: %v", err)
	}
	if len(warm.texts) != 0 {
		t.Errorf("warm run tokenized %d lines, want cache hit", len(warm.texts))
	}
	if second.Text != first.Text || len(second.Tokens) != len(first.Tokens) {
		t.Errorf("cached snapshot differs: %+v vs %+v", second, first)
	}

	// Другое содержимое — другой ключ.
	other := &scriptedTokenizer{byLine: [][]lexline.LineToken{
		{{Kind: lexline.Flat(token.Ident), Start: 0, End: 1}},
	}}
	if _, _, err := driver.Run([]byte("z"), other, opts); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if len(other.texts) == 0 {
		t.Error("different content must miss the cache")
	}
}
