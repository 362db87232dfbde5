package driver_test

import (
	"crypto/sha256"
	"reflect"
	"testing"

	"sable/internal/driver"
	"sable/internal/lexline"
	"sable/internal/source"
	"sable/internal/token"
)

func testSnapshot() *lexline.Snapshot {
	return &lexline.Snapshot{
		Text: "let x\n",
		Tokens: []token.Token{
			{
				Kind:  token.KwLet,
				Text:  "let",
				Start: source.Pos{Offset: 0, LineOffset: 0, Line: 0},
				End:   source.Pos{Offset: 3, LineOffset: 0, Line: 0},
			},
			{
				Kind:  token.Ident,
				Text:  "x",
				Start: source.Pos{Offset: 4, LineOffset: 0, Line: 0},
				End:   source.Pos{Offset: 5, LineOffset: 0, Line: 0},
			},
		},
		LineTerminators: []source.LineTerminator{{Offset: 5, Text: "\n"}},
	}
}

func TestSnapshotCacheRoundTrip(t *testing.T) {
	cache, err := driver.OpenSnapshotCacheAt(t.TempDir())
	if err != nil {
		t.Fatalf("OpenSnapshotCacheAt failed: %v", err)
	}

	snap := testSnapshot()
	key := driver.Digest(sha256.Sum256([]byte(snap.Text)))

	if _, ok, err := cache.Get(key); err != nil || ok {
		t.Fatalf("Get before Put = (%v, %v), want miss", ok, err)
	}

	if err := cache.Put(key, snap); err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	got, ok, err := cache.Get(key)
	if err != nil || !ok {
		t.Fatalf("Get after Put = (%v, %v)", ok, err)
	}
	if !reflect.DeepEqual(got, snap) {
		t.Errorf("round trip mismatch:\ngot  %+v\nwant %+v", got, snap)
	}
}

func TestSnapshotCacheDistinctKeys(t *testing.T) {
	cache, err := driver.OpenSnapshotCacheAt(t.TempDir())
	if err != nil {
		t.Fatalf("OpenSnapshotCacheAt failed: %v", err)
	}
	if err := cache.Put(driver.Digest(sha256.Sum256([]byte("a"))), testSnapshot()); err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	if _, ok, _ := cache.Get(driver.Digest(sha256.Sum256([]byte("b")))); ok {
		t.Error("different digest must miss")
	}
}

func TestSnapshotCacheDropAll(t *testing.T) {
	cache, err := driver.OpenSnapshotCacheAt(t.TempDir())
	if err != nil {
		t.Fatalf("OpenSnapshotCacheAt failed: %v", err)
	}
	key := driver.Digest(sha256.Sum256([]byte("x")))
	if err := cache.Put(key, testSnapshot()); err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	if err := cache.DropAll(); err != nil {
		t.Fatalf("DropAll failed: %v", err)
	}
	if _, ok, _ := cache.Get(key); ok {
		t.Error("entry survived DropAll")
	}

	// Кэш продолжает работать после очистки.
	if err := cache.Put(key, testSnapshot()); err != nil {
		t.Fatalf("Put after DropAll failed: %v", err)
	}
	if _, ok, _ := cache.Get(key); !ok {
		t.Error("Put after DropAll did not take")
	}
}

func TestNilCacheIsNoop(t *testing.T) {
	var cache *driver.SnapshotCache
	key := driver.Digest(sha256.Sum256(nil))
	if err := cache.Put(key, testSnapshot()); err != nil {
		t.Errorf("nil Put = %v", err)
	}
	if _, ok, err := cache.Get(key); ok || err != nil {
		t.Errorf("nil Get = (%v, %v)", ok, err)
	}
}
