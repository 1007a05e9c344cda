// Package ledger tracks which notes the user has answered incorrectly,
// net of later correct answers, and persists the tally across runs.
package ledger

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/ridgely/clefdrill/internal/notation"
)

// storageKey is the kv key holding the serialized ledger.
const storageKey = "mistakes"

// Record is the persisted tally for one (clef, note) key.
type Record struct {
	Count        int   `json:"count"`
	LastMissedAt int64 `json:"lastMissedAt"` // epoch milliseconds
}

// Entry is a ledger record resolved back to its catalog note.
type Entry struct {
	Clef   notation.Clef
	Note   notation.Note
	Record Record
}

// Storage is the persistence surface the ledger needs.
type Storage interface {
	GetValue(key string) (string, bool, error)
	PutValue(key, value string) error
}

// Ledger holds the in-memory mistake map and writes it back after every
// mutation. It is owned by the single-threaded UI loop; no locking.
type Ledger struct {
	store   Storage
	log     *slog.Logger
	entries map[string]Record
	now     func() time.Time
}

// Key builds the persisted key for a note, e.g. "treble:C4".
func Key(clef notation.Clef, note notation.Note) string {
	return fmt.Sprintf("%s:%s", clef, note.ID())
}

// ParseKey resolves a persisted key back to its clef and catalog note.
// Keys that no longer match a catalog entry report ok=false.
func ParseKey(key string) (notation.Clef, notation.Note, bool) {
	clefStr, id, found := strings.Cut(key, ":")
	if !found {
		return "", notation.Note{}, false
	}
	clef := notation.Clef(clefStr)
	if clef != notation.Treble && clef != notation.Bass {
		return "", notation.Note{}, false
	}
	note, ok := notation.Lookup(clef, id)
	if !ok {
		return "", notation.Note{}, false
	}
	return clef, note, true
}

// Open loads the ledger from storage. Missing or corrupt data yields an
// empty ledger; corruption is logged, never fatal.
func Open(store Storage, log *slog.Logger) *Ledger {
	l := &Ledger{
		store:   store,
		log:     log,
		entries: map[string]Record{},
		now:     time.Now,
	}

	raw, ok, err := store.GetValue(storageKey)
	if err != nil {
		log.Warn("read mistake ledger", "error", err)
		return l
	}
	if !ok {
		return l
	}
	if err := json.Unmarshal([]byte(raw), &l.entries); err != nil {
		log.Warn("mistake ledger corrupt, starting empty", "error", err)
		l.entries = map[string]Record{}
	}
	return l
}

// RecordMiss bumps the note's miss count and stamps the miss time.
func (l *Ledger) RecordMiss(clef notation.Clef, note notation.Note) {
	key := Key(clef, note)
	rec := l.entries[key]
	rec.Count++
	rec.LastMissedAt = l.now().UnixMilli()
	l.entries[key] = rec
	l.save()
}

// RecordHit decrements the note's miss count, removing the record when it
// reaches zero. A hit on an untracked note is a no-op.
func (l *Ledger) RecordHit(clef notation.Clef, note notation.Note) {
	key := Key(clef, note)
	rec, ok := l.entries[key]
	if !ok {
		return
	}
	rec.Count--
	if rec.Count <= 0 {
		delete(l.entries, key)
	} else {
		l.entries[key] = rec
	}
	l.save()
}

// Count returns the outstanding miss count for a note, zero if untracked.
func (l *Ledger) Count(clef notation.Clef, note notation.Note) int {
	return l.entries[Key(clef, note)].Count
}

// Len returns the number of tracked notes.
func (l *Ledger) Len() int {
	return len(l.entries)
}

// Available returns the entries with outstanding misses whose note passes
// the given range filter. Unparseable keys are skipped.
func (l *Ledger) Available(span notation.Span) []Entry {
	lo, hi := span.Window()
	var out []Entry
	for key, rec := range l.entries {
		if rec.Count <= 0 {
			continue
		}
		clef, note, ok := ParseKey(key)
		if !ok {
			continue
		}
		if p := note.Pitch(); p < lo || p > hi {
			continue
		}
		out = append(out, Entry{Clef: clef, Note: note, Record: rec})
	}
	return out
}

// HasEligible reports whether mistake-weighted practice has anything to
// draw from under the given range setting.
func (l *Ledger) HasEligible(span notation.Span) bool {
	return len(l.Available(span)) > 0
}

// Reset discards all entries and persists the empty ledger.
func (l *Ledger) Reset() {
	l.entries = map[string]Record{}
	l.save()
}

// save writes the ledger back; failures are logged and otherwise ignored
// so a bad disk never interrupts practice.
func (l *Ledger) save() {
	raw, err := json.Marshal(l.entries)
	if err != nil {
		l.log.Warn("encode mistake ledger", "error", err)
		return
	}
	if err := l.store.PutValue(storageKey, string(raw)); err != nil {
		l.log.Warn("write mistake ledger", "error", err)
	}
}
