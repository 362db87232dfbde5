package token

var keywords = map[string]Kind{
	"let":    KwLet,
	"fn":     KwFn,
	"if":     KwIf,
	"else":   KwElse,
	"while":  KwWhile,
	"return": KwReturn,
	"import": KwImport,
	"type":   KwType,
	"true":   KwTrue,
	"false":  KwFalse,
}

// LookupKeyword reports the keyword kind for ident, if it is one.
// Keywords are case-sensitive; only lowercase forms are recognised.
func LookupKeyword(ident string) (Kind, bool) {
	k, ok := keywords[ident]
	return k, ok
}
