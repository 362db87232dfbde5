package token_test

import (
	"testing"

	"sable/internal/token"
)

func TestKindString(t *testing.T) {
	tests := []struct {
		kind token.Kind
		want string
	}{
		{token.Invalid, "Invalid"},
		{token.Ident, "Ident"},
		{token.TextLit, "TextLit"},
		{token.KwLet, "KwLet"},
		{token.Arrow, "Arrow"},
		{token.RBracket, "RBracket"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("Kind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestEveryKindHasName(t *testing.T) {
	for k := token.Kind(0); uint8(k) < token.NumKinds; k++ {
		if k.String() == "Kind(?)" {
			t.Errorf("kind %d has no name", k)
		}
	}
}

func TestTokenPredicates(t *testing.T) {
	if !(token.Token{Kind: token.IntLit}).IsLiteral() {
		t.Error("IntLit should be a literal")
	}
	if !(token.Token{Kind: token.KwTrue}).IsLiteral() {
		t.Error("KwTrue should be a literal")
	}
	if !(token.Token{Kind: token.KwWhile}).IsKeyword() {
		t.Error("KwWhile should be a keyword")
	}
	if (token.Token{Kind: token.Ident}).IsKeyword() {
		t.Error("Ident should not be a keyword")
	}
	if !(token.Token{Kind: token.Semicolon}).IsPunctOrOp() {
		t.Error("Semicolon should be punct/op")
	}
	if (token.Token{Kind: token.TextLit}).IsPunctOrOp() {
		t.Error("TextLit should not be punct/op")
	}
	if !(token.Token{Kind: token.Ident}).IsIdent() {
		t.Error("Ident should be an identifier")
	}
}

func TestLookupKeyword(t *testing.T) {
	if k, ok := token.LookupKeyword("let"); !ok || k != token.KwLet {
		t.Errorf("LookupKeyword(let) = %v, %v", k, ok)
	}
	if k, ok := token.LookupKeyword("false"); !ok || k != token.KwFalse {
		t.Errorf("LookupKeyword(false) = %v, %v", k, ok)
	}
	if _, ok := token.LookupKeyword("Let"); ok {
		t.Error("keywords must be case-sensitive")
	}
	if _, ok := token.LookupKeyword("banana"); ok {
		t.Error("banana is not a keyword")
	}
}
