// Package driver ties the line splitter, the external per-line
// tokenizer and the assembler into one pass, with an optional disk
// cache of assembled snapshots.
package driver

import (
	"crypto/sha256"
	"fmt"

	"fortio.org/safecast"

	"sable/internal/diag"
	"sable/internal/lexline"
	"sable/internal/source"
)

// Tokenizer is the external per-line collaborator: it receives one
// line's text (terminator excluded) and returns its tokens with
// line-local offsets. Implementations must not retain text.
type Tokenizer interface {
	TokenizeLine(text string, line uint32) []lexline.LineToken
}

// Options configures one Run.
type Options struct {
	MaxErrors uint           // bag capacity, 0 = default
	MaxTokens uint           // flat-stream cap, 0 = unlimited
	Cache     *SnapshotCache // optional, nil disables caching
}

const defaultMaxErrors = 64

// Run assembles content into a Snapshot: strip the BOM, split into
// physical lines, tokenize each line, then run the assembly pass.
// Diagnostics land in the returned Bag (deduplicated); err carries the
// tagged failure when no snapshot could be produced. A warm cache
// short-circuits the whole pass on a content-digest hit.
func Run(content []byte, tk Tokenizer, opts Options) (*lexline.Snapshot, *diag.Bag, error) {
	maxErrors := opts.MaxErrors
	if maxErrors == 0 {
		maxErrors = defaultMaxErrors
	}
	bag := diag.NewBag(int(maxErrors))

	content, _ = source.RemoveBOM(content)
	key := Digest(sha256.Sum256(content))

	if opts.Cache != nil {
		if snap, ok, err := opts.Cache.Get(key); err == nil && ok {
			return snap, bag, nil
		}
		// промах или повреждение — собираем заново
	}

	raw := source.SplitLines(content)
	lines := make([]lexline.Line, len(raw))
	for i, rl := range raw {
		lineNo, err := safecast.Conv[uint32](i)
		if err != nil {
			panic(fmt.Errorf("line count overflow: %w", err))
		}
		lines[i] = lexline.Line{
			Text:       rl.Text,
			Terminator: rl.Terminator,
			Tokens:     tk.TokenizeLine(rl.Text, lineNo),
		}
	}

	reporter := diag.NewDedupReporter(diag.BagReporter{Bag: bag})
	snap, err := lexline.Assemble(lines, lexline.Options{
		Reporter:  reporter,
		MaxTokens: opts.MaxTokens,
	})
	if err != nil {
		return nil, bag, err
	}

	if opts.Cache != nil {
		// best effort: ошибка записи кэша не ломает сборку
		_ = opts.Cache.Put(key, snap)
	}
	return snap, bag, nil
}
