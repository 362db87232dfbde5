package lexline

import (
	"fmt"
	"strings"

	"fortio.org/safecast"

	"sable/internal/source"
)

// flatToken is a line token rewritten with global positions and a
// strictly increasing sequence index. Intermediate only; it never
// leaves this package.
type flatToken struct {
	Kind      FlatKind
	FlatIndex int
	Start     source.Pos
	End       source.Pos
}

// flatten concatenates line texts and terminators into one global
// buffer (the final line's terminator is always omitted) and rewrites
// every token with absolute and line-relative positions. One
// LineTerminator is recorded per line boundary. A non-final line with
// an empty terminator forms no boundary: its text fuses with the next
// line in the buffer, while its tokens keep the line numbers of the
// input lines they came from. Total: no failure mode.
func flatten(lines []Line) (string, []source.LineTerminator, []flatToken) {
	var sb strings.Builder
	terms := make([]source.LineTerminator, 0, len(lines))
	var flat []flatToken

	var off uint32
	for i, line := range lines {
		lineNo, err := safecast.Conv[uint32](i)
		if err != nil {
			panic(fmt.Errorf("line count overflow: %w", err))
		}
		sb.WriteString(line.Text)
		for _, lt := range line.Tokens {
			flat = append(flat, flatToken{
				Kind:      lt.Kind,
				FlatIndex: len(flat),
				Start:     source.Pos{Offset: off + lt.Start, LineOffset: lt.Start, Line: lineNo},
				End:       source.Pos{Offset: off + lt.End, LineOffset: lt.End, Line: lineNo},
			})
		}
		lenLine, err := safecast.Conv[uint32](len(line.Text))
		if err != nil {
			panic(fmt.Errorf("line length overflow: %w", err))
		}
		off += lenLine

		if i == len(lines)-1 || line.Terminator == "" {
			// пустой терминатор не образует границы строки
			continue
		}
		sb.WriteString(line.Terminator)
		terms = append(terms, source.LineTerminator{Offset: off, Text: line.Terminator})
		lenTerm, err := safecast.Conv[uint32](len(line.Terminator))
		if err != nil {
			panic(fmt.Errorf("terminator length overflow: %w", err))
		}
		off += lenTerm
	}
	return sb.String(), terms, flat
}
