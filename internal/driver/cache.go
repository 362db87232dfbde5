package driver

import (
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"sable/internal/lexline"
	"sable/internal/source"
	"sable/internal/token"
)

// Digest identifies input content, SHA-256.
type Digest [32]byte

// Current schema version - increment when snapshotPayload format changes
const cacheSchemaVersion uint16 = 1

// SnapshotCache хранит собранные снапшоты по Digest на диске, чтобы не
// пересобирать незатронутые файлы. Thread-safe for concurrent access.
// Всегда best effort: промах или повреждение кэша означают повторную
// сборку, не ошибку.
type SnapshotCache struct {
	mu  sync.RWMutex
	dir string
}

// snapshotPayload is the serialised form of a Snapshot.
type snapshotPayload struct {
	// Schema version for safe invalidation when format changes
	Schema uint16

	Text            string
	Tokens          []token.Token
	Comments        []token.Comment
	LineTerminators []source.LineTerminator
}

// OpenSnapshotCache initializes a cache at the standard XDG location.
func OpenSnapshotCache(app string) (*SnapshotCache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	return OpenSnapshotCacheAt(filepath.Join(base, app))
}

// OpenSnapshotCacheAt initializes a cache rooted at an explicit
// directory, creating it when needed.
func OpenSnapshotCacheAt(dir string) (*SnapshotCache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &SnapshotCache{dir: dir}, nil
}

func (c *SnapshotCache) pathFor(key Digest) string {
	hexKey := hex.EncodeToString(key[:])
	// подкаталог "snap" — для удобства очистки
	return filepath.Join(c.dir, "snap", hexKey+".mp")
}

// Put serializes and writes a snapshot to the disk cache.
func (c *SnapshotCache) Put(key Digest, snap *lexline.Snapshot) error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	p := c.pathFor(key)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	defer os.Remove(f.Name())

	payload := snapshotPayload{
		Schema:          cacheSchemaVersion,
		Text:            snap.Text,
		Tokens:          snap.Tokens,
		Comments:        snap.Comments,
		LineTerminators: snap.LineTerminators,
	}
	if err := msgpack.NewEncoder(f).Encode(&payload); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	// Атомарная замена
	return os.Rename(f.Name(), p)
}

// Get reads a cached snapshot, reporting whether a usable entry was
// found. Schema mismatches count as misses.
func (c *SnapshotCache) Get(key Digest) (*lexline.Snapshot, bool, error) {
	if c == nil {
		return nil, false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	f, err := os.Open(c.pathFor(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, err
	}
	defer f.Close()

	var payload snapshotPayload
	if err := msgpack.NewDecoder(f).Decode(&payload); err != nil {
		return nil, false, fmt.Errorf("decode cached snapshot: %w", err)
	}
	if payload.Schema != cacheSchemaVersion {
		return nil, false, nil
	}
	return &lexline.Snapshot{
		Text:            payload.Text,
		Tokens:          payload.Tokens,
		Comments:        payload.Comments,
		LineTerminators: payload.LineTerminators,
	}, true, nil
}

// DropAll invalidates the cache, useful after format changes.
func (c *SnapshotCache) DropAll() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	old := c.dir + ".old-" + time.Now().Format("20060102150405")
	if err := os.Rename(c.dir, old); err != nil {
		return err
	}
	return os.RemoveAll(old)
}
