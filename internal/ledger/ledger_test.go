package ledger

import (
	"io"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/ridgely/clefdrill/internal/db"
	"github.com/ridgely/clefdrill/internal/notation"
)

// memStore is an in-memory Storage for tests.
type memStore struct {
	values map[string]string
}

func newMemStore() *memStore {
	return &memStore{values: map[string]string{}}
}

func (s *memStore) GetValue(key string) (string, bool, error) {
	v, ok := s.values[key]
	return v, ok, nil
}

func (s *memStore) PutValue(key, value string) error {
	s.values[key] = value
	return nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func mustNote(t *testing.T, clef notation.Clef, id string) notation.Note {
	t.Helper()
	n, ok := notation.Lookup(clef, id)
	if !ok {
		t.Fatalf("catalog missing %s %s", clef, id)
	}
	return n
}

func TestOpenEmpty(t *testing.T) {
	l := Open(newMemStore(), testLogger())
	if l.Len() != 0 {
		t.Errorf("empty store yielded %d entries", l.Len())
	}
}

func TestMissHitLifecycle(t *testing.T) {
	l := Open(newMemStore(), testLogger())
	c4 := mustNote(t, notation.Treble, "C4")

	for i := 0; i < 3; i++ {
		l.RecordMiss(notation.Treble, c4)
	}
	if got := l.Count(notation.Treble, c4); got != 3 {
		t.Fatalf("count after 3 misses = %d, want 3", got)
	}

	for i := 0; i < 3; i++ {
		l.RecordHit(notation.Treble, c4)
	}
	if got := l.Count(notation.Treble, c4); got != 0 {
		t.Errorf("count after matching hits = %d, want 0", got)
	}
	if l.Len() != 0 {
		t.Error("entry should be removed when count reaches zero")
	}
}

func TestHitOnUntrackedNoteIsNoop(t *testing.T) {
	l := Open(newMemStore(), testLogger())
	c4 := mustNote(t, notation.Treble, "C4")

	l.RecordHit(notation.Treble, c4)
	if l.Len() != 0 {
		t.Error("hit on untracked note created an entry")
	}
	if got := l.Count(notation.Treble, c4); got != 0 {
		t.Errorf("count = %d, want 0", got)
	}
}

func TestLastMissedAtStamped(t *testing.T) {
	l := Open(newMemStore(), testLogger())
	fixed := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	l.now = func() time.Time { return fixed }

	c4 := mustNote(t, notation.Bass, "C4")
	l.RecordMiss(notation.Bass, c4)

	entries := l.Available(notation.SpanTwo)
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}
	if got := entries[0].Record.LastMissedAt; got != fixed.UnixMilli() {
		t.Errorf("lastMissedAt = %d, want %d", got, fixed.UnixMilli())
	}
}

func TestCorruptDataStartsEmpty(t *testing.T) {
	store := newMemStore()
	store.values[storageKey] = "{not json"

	l := Open(store, testLogger())
	if l.Len() != 0 {
		t.Errorf("corrupt data yielded %d entries", l.Len())
	}

	// The ledger must stay usable after recovery.
	c4 := mustNote(t, notation.Treble, "C4")
	l.RecordMiss(notation.Treble, c4)
	if got := l.Count(notation.Treble, c4); got != 1 {
		t.Errorf("count = %d, want 1", got)
	}
}

func TestRoundTripThroughStorage(t *testing.T) {
	store := newMemStore()

	l := Open(store, testLogger())
	c4 := mustNote(t, notation.Treble, "C4")
	d4 := mustNote(t, notation.Treble, "D4")
	l.RecordMiss(notation.Treble, c4)
	l.RecordMiss(notation.Treble, c4)
	l.RecordMiss(notation.Treble, d4)

	reloaded := Open(store, testLogger())
	if got := reloaded.Count(notation.Treble, c4); got != 2 {
		t.Errorf("reloaded C4 count = %d, want 2", got)
	}
	if got := reloaded.Count(notation.Treble, d4); got != 1 {
		t.Errorf("reloaded D4 count = %d, want 1", got)
	}
	if reloaded.Len() != 2 {
		t.Errorf("reloaded ledger has %d entries, want 2", reloaded.Len())
	}
}

func TestAvailableFiltersByRange(t *testing.T) {
	l := Open(newMemStore(), testLogger())
	c4 := mustNote(t, notation.Treble, "C4")
	c6 := mustNote(t, notation.Treble, "C6")
	l.RecordMiss(notation.Treble, c4)
	l.RecordMiss(notation.Treble, c6)

	// Span 0 admits only middle C.
	entries := l.Available(notation.SpanZero)
	if len(entries) != 1 {
		t.Fatalf("span 0 entries = %d, want 1", len(entries))
	}
	if entries[0].Note.ID() != "C4" {
		t.Errorf("span 0 entry = %s, want C4", entries[0].Note.ID())
	}

	if got := len(l.Available(notation.SpanTwo)); got != 2 {
		t.Errorf("span 2 entries = %d, want 2", got)
	}

	if !l.HasEligible(notation.SpanZero) {
		t.Error("HasEligible(span 0) = false, want true")
	}
}

func TestAvailableSkipsUnknownKeys(t *testing.T) {
	store := newMemStore()
	store.values[storageKey] = `{"treble:C4":{"count":1,"lastMissedAt":0},"alto:C4":{"count":5,"lastMissedAt":0},"treble:Z9":{"count":5,"lastMissedAt":0}}`

	l := Open(store, testLogger())
	entries := l.Available(notation.SpanTwo)
	if len(entries) != 1 {
		t.Fatalf("entries = %d, want 1", len(entries))
	}
	if entries[0].Note.ID() != "C4" {
		t.Errorf("entry = %s, want C4", entries[0].Note.ID())
	}
}

func TestParseKey(t *testing.T) {
	clef, note, ok := ParseKey("bass:E3")
	if !ok {
		t.Fatal("ParseKey(bass:E3) not ok")
	}
	if clef != notation.Bass || note.ID() != "E3" {
		t.Errorf("ParseKey = %s %s", clef, note.ID())
	}

	for _, bad := range []string{"", "C4", "alto:C4", "treble:H4", "treble:"} {
		if _, _, ok := ParseKey(bad); ok {
			t.Errorf("ParseKey(%q) unexpectedly ok", bad)
		}
	}
}

func TestReset(t *testing.T) {
	store := newMemStore()
	l := Open(store, testLogger())
	l.RecordMiss(notation.Treble, mustNote(t, notation.Treble, "C4"))

	l.Reset()
	if l.Len() != 0 {
		t.Error("reset left entries behind")
	}
	if Open(store, testLogger()).Len() != 0 {
		t.Error("reset was not persisted")
	}
}

func TestRoundTripThroughSQLite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.sqlite")
	store, err := db.Open(path)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	defer store.Close()

	l := Open(store, testLogger())
	g2 := mustNote(t, notation.Bass, "G2")
	l.RecordMiss(notation.Bass, g2)
	l.RecordMiss(notation.Bass, g2)

	reloaded := Open(store, testLogger())
	if got := reloaded.Count(notation.Bass, g2); got != 2 {
		t.Errorf("reloaded count = %d, want 2", got)
	}
}
