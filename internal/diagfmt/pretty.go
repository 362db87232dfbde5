package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"sable/internal/diag"
	"sable/internal/source"
)

// Pretty formats diagnostics in a human-readable way. It walks
// bag.Items() in order (callers are expected to bag.Sort() first).
// For each diagnostic it prints
//
//	<path>:<line>:<col>: <SEV> [<CODE>]: <message>
//
// followed by the offending source line with a ^~~~ underline, then
// notes in the same shape. Line and column are grapheme-aware; the
// underline width follows the rendered width of the marked text.
func Pretty(w io.Writer, bag *diag.Bag, text string, terms []source.LineTerminator, path string, opts PrettyOpts) {
	for _, d := range bag.Items() {
		writeHeading(w, d.Severity, d.Code, d.Message, text, terms, d.Primary, path, opts)
		writeContext(w, text, terms, d.Primary, opts)
		if opts.ShowNotes {
			for _, n := range d.Notes {
				pos := source.Resolve(text, terms, n.Span)
				fmt.Fprintf(w, "%s:%d:%d: note: %s\n", path, pos.Line, pos.Col, n.Msg)
				writeContext(w, text, terms, n.Span, opts)
			}
		}
	}
}

func writeHeading(w io.Writer, sev diag.Severity, code diag.Code, msg, text string, terms []source.LineTerminator, sp source.Span, path string, opts PrettyOpts) {
	pos := source.Resolve(text, terms, sp)
	sevText := sev.String()
	if c := severityColor(sev, opts); c != nil {
		sevText = c.Sprint(sevText)
	}
	fmt.Fprintf(w, "%s:%d:%d: %s [%s]: %s\n", path, pos.Line, pos.Col, sevText, code.ID(), msg)
}

// writeContext prints the first physical line of the span's window with
// an underline. Multi-line spans are clipped to that first line.
func writeContext(w io.Writer, text string, terms []source.LineTerminator, sp source.Span, opts PrettyOpts) {
	window := source.LineWindow(text, terms, sp)
	if window.Empty() {
		return
	}
	line := text[window.Start:window.End]
	if cut := strings.IndexAny(line, "\r\n"); cut >= 0 {
		line = line[:cut]
	}
	fmt.Fprintf(w, "  %s\n", line)

	start := int(sp.Start - window.Start)
	if start > len(line) {
		start = len(line)
	}
	end := int(sp.End - window.Start)
	if end > len(line) {
		end = len(line)
	}
	pad := runewidth.StringWidth(line[:start])
	width := runewidth.StringWidth(line[start:end])
	if width < 1 {
		width = 1
	}
	marker := "^" + strings.Repeat("~", width-1)
	if c := markerColor(opts); c != nil {
		marker = c.Sprint(marker)
	}
	fmt.Fprintf(w, "  %s%s\n", strings.Repeat(" ", pad), marker)
}

func severityColor(sev diag.Severity, opts PrettyOpts) *color.Color {
	if !opts.Color {
		return nil
	}
	switch sev {
	case diag.SevError:
		return color.New(color.FgRed, color.Bold)
	case diag.SevWarning:
		return color.New(color.FgYellow, color.Bold)
	default:
		return color.New(color.FgCyan)
	}
}

func markerColor(opts PrettyOpts) *color.Color {
	if !opts.Color {
		return nil
	}
	return color.New(color.FgGreen, color.Bold)
}
