package source

import (
	"bytes"
)

var bom = []byte{0xEF, 0xBB, 0xBF}

// RawLine is one physical line of input before tokenization: its text
// without the terminator, and the terminator that followed it ("" for
// the final line of the input).
type RawLine struct {
	Text       string
	Terminator string
}

// RemoveBOM strips a leading UTF-8 byte order mark, reporting whether
// one was present.
func RemoveBOM(content []byte) ([]byte, bool) {
	if bytes.HasPrefix(content, bom) {
		return content[len(bom):], true
	}
	return content, false
}

// SplitLines splits content into physical lines, recognising "\r\n",
// "\n" and "\r" terminators. The final line always carries an empty
// Terminator; content ending in a terminator therefore produces a
// trailing empty line. Concatenating every line's Text and Terminator
// reproduces content byte for byte. Empty content yields no lines.
func SplitLines(content []byte) []RawLine {
	if len(content) == 0 {
		return nil
	}

	var lines []RawLine
	start := 0
	i := 0
	for i < len(content) {
		switch content[i] {
		case '\n':
			lines = append(lines, RawLine{Text: string(content[start:i]), Terminator: "\n"})
			i++
			start = i
		case '\r':
			term := "\r"
			next := i + 1
			if next < len(content) && content[next] == '\n' {
				term = "\r\n"
				next++
			}
			lines = append(lines, RawLine{Text: string(content[start:i]), Terminator: term})
			i = next
			start = i
		default:
			i++
		}
	}
	lines = append(lines, RawLine{Text: string(content[start:])})
	return lines
}
