package records

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"
)

type stored[R any] struct {
	id     ID
	record R
}

// Store holds one ordered collection of records of a single schema.
//
// Every mutation builds a new backing slice and swaps it in under the lock, so a
// reader never observes a partially applied change.
type Store[D, R any] struct {
	schema Schema[D, R]
	now    func() time.Time
	logger *slog.Logger

	mu      sync.RWMutex
	entries []stored[R]
	lastID  ID
}

// NewStore constructs an empty store. now defaults to time.Now and logger to
// slog.Default.
func NewStore[D, R any](schema Schema[D, R], now func() time.Time, logger *slog.Logger) *Store[D, R] {
	if now == nil {
		now = time.Now
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Store[D, R]{schema: schema, now: now, logger: logger}
}

// Name returns the schema name.
func (s *Store[D, R]) Name() string {
	return s.schema.Name
}

// Create validates the draft and appends the resulting record.
func (s *Store[D, R]) Create(draft D) (Entry[R], error) {
	record, err := s.schema.Build(draft)
	if err != nil {
		return Entry[R]{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.schema.Stamp != nil {
		record = s.schema.Stamp(record, s.now())
	}
	s.lastID++
	next := make([]stored[R], len(s.entries), len(s.entries)+1)
	copy(next, s.entries)
	next = append(next, stored[R]{id: s.lastID, record: record})
	s.entries = next

	s.logger.Debug("record created", slog.String("schema", s.schema.Name), slog.Int64("id", int64(s.lastID)))
	return Entry[R]{ID: s.lastID, Position: len(next) - 1, Record: record}, nil
}

// Seed creates every draft in order and stops at the first failure.
func (s *Store[D, R]) Seed(drafts ...D) error {
	for i, draft := range drafts {
		if _, err := s.Create(draft); err != nil {
			return fmt.Errorf("seed %s #%d: %w", s.schema.Name, i, err)
		}
	}
	return nil
}

// Update replaces the record identified by id, keeping its position.
func (s *Store[D, R]) Update(id ID, draft D, policy UpdatePolicy) (Entry[R], error) {
	record, err := s.schema.Build(draft)
	if err != nil {
		return Entry[R]{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	pos := s.indexOf(id)
	if pos < 0 {
		return Entry[R]{}, s.notFound(id)
	}
	return s.replaceLocked(pos, record, policy), nil
}

// UpdateAt replaces the record at the given position.
func (s *Store[D, R]) UpdateAt(position int, draft D, policy UpdatePolicy) (Entry[R], error) {
	record, err := s.schema.Build(draft)
	if err != nil {
		return Entry[R]{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if position < 0 || position >= len(s.entries) {
		return Entry[R]{}, &OutOfRangeError{Position: position, Len: len(s.entries)}
	}
	return s.replaceLocked(position, record, policy), nil
}

func (s *Store[D, R]) replaceLocked(pos int, record R, policy UpdatePolicy) Entry[R] {
	prev := s.entries[pos]
	switch {
	case policy == RefreshSubmittedAt && s.schema.Stamp != nil:
		record = s.schema.Stamp(record, s.now())
	case s.schema.Carry != nil:
		record = s.schema.Carry(prev.record, record)
	}

	next := make([]stored[R], len(s.entries))
	copy(next, s.entries)
	next[pos] = stored[R]{id: prev.id, record: record}
	s.entries = next

	s.logger.Debug("record updated", slog.String("schema", s.schema.Name), slog.Int64("id", int64(prev.id)), slog.Int("position", pos))
	return Entry[R]{ID: prev.id, Position: pos, Record: record}
}

// Delete removes the record identified by id. Later records move up one position.
func (s *Store[D, R]) Delete(id ID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	pos := s.indexOf(id)
	if pos < 0 {
		return s.notFound(id)
	}
	s.removeLocked(pos)
	return nil
}

// DeleteAt removes the record at the given position.
func (s *Store[D, R]) DeleteAt(position int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if position < 0 || position >= len(s.entries) {
		return &OutOfRangeError{Position: position, Len: len(s.entries)}
	}
	s.removeLocked(position)
	return nil
}

func (s *Store[D, R]) removeLocked(pos int) {
	id := s.entries[pos].id
	next := make([]stored[R], 0, len(s.entries)-1)
	next = append(next, s.entries[:pos]...)
	next = append(next, s.entries[pos+1:]...)
	s.entries = next

	s.logger.Debug("record deleted", slog.String("schema", s.schema.Name), slog.Int64("id", int64(id)), slog.Int("position", pos))
}

// Snapshot returns the current records in insertion order.
func (s *Store[D, R]) Snapshot() []Entry[R] {
	s.mu.RLock()
	entries := s.entries
	s.mu.RUnlock()

	out := make([]Entry[R], len(entries))
	for i, item := range entries {
		out[i] = Entry[R]{ID: item.id, Position: i, Record: item.record}
	}
	return out
}

// Records returns the bare records of the current snapshot.
func (s *Store[D, R]) Records() []R {
	s.mu.RLock()
	entries := s.entries
	s.mu.RUnlock()

	out := make([]R, len(entries))
	for i, item := range entries {
		out[i] = item.record
	}
	return out
}

// Len reports the number of stored records.
func (s *Store[D, R]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// Get returns the entry identified by id.
func (s *Store[D, R]) Get(id ID) (Entry[R], error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	pos := s.indexOf(id)
	if pos < 0 {
		return Entry[R]{}, s.notFound(id)
	}
	return Entry[R]{ID: id, Position: pos, Record: s.entries[pos].record}, nil
}

// Position derives the current position of id.
func (s *Store[D, R]) Position(id ID) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	pos := s.indexOf(id)
	if pos < 0 {
		return -1, s.notFound(id)
	}
	return pos, nil
}

// Resume returns form input pre-filled from the stored record, for editing.
func (s *Store[D, R]) Resume(id ID) (D, error) {
	var zero D
	if s.schema.Draft == nil {
		return zero, errors.New("records: schema " + s.schema.Name + " does not support edit")
	}
	entry, err := s.Get(id)
	if err != nil {
		return zero, err
	}
	return s.schema.Draft(entry.Record), nil
}

func (s *Store[D, R]) indexOf(id ID) int {
	for i, item := range s.entries {
		if item.id == id {
			return i
		}
	}
	return -1
}

func (s *Store[D, R]) notFound(id ID) error {
	return fmt.Errorf("%s %d: %w", s.schema.Name, id, ErrNotFound)
}
