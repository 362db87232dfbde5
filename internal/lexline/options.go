package lexline

import (
	"sable/internal/diag"
	"sable/internal/source"
)

// Options configures one assembly pass.
type Options struct {
	Reporter  diag.Reporter // может быть nil — тогда диагностики не собираем
	MaxTokens uint          // cap on the flat stream, 0 = unlimited
}

func (o Options) report(code diag.Code, sp source.Span, msg string) {
	if o.Reporter != nil {
		o.Reporter.Report(code, diag.SevError, sp, msg, nil)
	}
}
