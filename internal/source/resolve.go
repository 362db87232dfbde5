package source

import (
	"fmt"

	"fortio.org/safecast"
	"github.com/rivo/uniseg"
)

// Resolve maps the start of span back to a grapheme-aware line/column.
// The line is the number of terminators strictly before span.Start; the
// column is the count of grapheme clusters between the start of that
// line and span.Start. Never fails: offsets past the end of text are
// clamped to the last position, and an offset inside a multi-byte
// terminator resolves to column 0 of the following line.
func Resolve(text string, terms []LineTerminator, span Span) LineCol {
	off := span.Start
	lenText, err := safecast.Conv[uint32](len(text))
	if err != nil {
		panic(fmt.Errorf("text length overflow: %w", err))
	}
	if off > lenText {
		off = lenText
	}

	var line, lineStart uint32
	for _, t := range terms {
		if t.Offset >= off {
			break
		}
		line++
		lineStart = t.End()
	}
	// offset внутри многобайтового терминатора — начало следующей строки
	if lineStart > off {
		lineStart = off
	}

	col, err := safecast.Conv[uint32](uniseg.GraphemeClusterCount(text[lineStart:off]))
	if err != nil {
		panic(fmt.Errorf("column overflow: %w", err))
	}
	return LineCol{Line: line, Col: col, Offset: off}
}

// LineWindow returns the minimal window of whole physical lines that
// encloses span: it starts just past the last terminator strictly before
// span.Start and ends at the end of the first terminator at or after
// span.End (or at the end of text when no such terminator exists). A
// span crossing several physical lines yields a multi-line window.
func LineWindow(text string, terms []LineTerminator, span Span) Span {
	lenText, err := safecast.Conv[uint32](len(text))
	if err != nil {
		panic(fmt.Errorf("text length overflow: %w", err))
	}

	start := uint32(0)
	end := lenText
	for _, t := range terms {
		if t.Offset < span.Start {
			start = t.End()
			continue
		}
		if t.Offset >= span.End {
			end = t.End()
			break
		}
	}
	return Span{Start: start, End: end}
}
