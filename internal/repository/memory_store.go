package repository

import (
	"strconv"
	"sync"

	domainRepo "go-medical-frontdesk/internal/domain/repository"
)

type cloner[T any] interface {
	Clone() T
}

type storeOptions struct {
	legacyIDs bool
	formatID  func(seq int) string
}

type StoreOption func(*storeOptions)

// WithLegacyIDs derives new ids from the current record count plus one,
// so ids may repeat after a delete.
func WithLegacyIDs(enabled bool) StoreOption {
	return func(o *storeOptions) {
		o.legacyIDs = enabled
	}
}

// WithIDFormat renders the numeric sequence into an id string.
func WithIDFormat(format func(seq int) string) StoreOption {
	return func(o *storeOptions) {
		o.formatID = format
	}
}

// MemoryStore is an ordered, mutex-guarded record collection keyed by string id.
// Records are cloned on the way in and out so callers never share backing arrays.
type MemoryStore[T cloner[T]] struct {
	mu    sync.RWMutex
	items []T
	seq   int
	idOf  func(*T) *string
	opts  storeOptions
}

func NewMemoryStore[T cloner[T]](idOf func(*T) *string, opts ...StoreOption) *MemoryStore[T] {
	o := storeOptions{formatID: strconv.Itoa}
	for _, opt := range opts {
		opt(&o)
	}
	return &MemoryStore[T]{idOf: idOf, opts: o}
}

// Seed appends records with their ids untouched and advances the sequence past them.
func (s *MemoryStore[T]) Seed(items ...T) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, item := range items {
		s.items = append(s.items, item.Clone())
		s.seq++
		if n, err := strconv.Atoi(*s.idOf(&item)); err == nil && n > s.seq {
			s.seq = n
		}
	}
}

// Insert assigns the next id to item, stores it and returns the stored copy.
func (s *MemoryStore[T]) Insert(item T) T {
	s.mu.Lock()
	defer s.mu.Unlock()

	*s.idOf(&item) = s.nextID()
	s.items = append(s.items, item.Clone())
	return item
}

func (s *MemoryStore[T]) nextID() string {
	if s.opts.legacyIDs {
		return s.opts.formatID(len(s.items) + 1)
	}
	s.seq++
	return s.opts.formatID(s.seq)
}

// List returns every record in insertion order.
func (s *MemoryStore[T]) List() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]T, len(s.items))
	for i, item := range s.items {
		out[i] = item.Clone()
	}
	return out
}

// Get returns the first record with the given id.
func (s *MemoryStore[T]) Get(id string) (T, bool) {
	return s.Find(func(item *T) bool {
		return *s.idOf(item) == id
	})
}

// Find returns the first record that satisfies match.
func (s *MemoryStore[T]) Find(match func(*T) bool) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.items {
		if match(&s.items[i]) {
			return s.items[i].Clone(), true
		}
	}
	var zero T
	return zero, false
}

// Replace swaps the stored record sharing item's id for item.
func (s *MemoryStore[T]) Replace(item T) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(*s.idOf(&item))
	if idx < 0 {
		return domainRepo.ErrRecordNotFound
	}
	s.items[idx] = item.Clone()
	return nil
}

// Remove deletes the first record with the given id and returns it.
func (s *MemoryStore[T]) Remove(id string) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var zero T
	idx := s.indexOf(id)
	if idx < 0 {
		return zero, domainRepo.ErrRecordNotFound
	}
	removed := s.items[idx]
	s.items = append(s.items[:idx], s.items[idx+1:]...)
	return removed, nil
}

// Move swaps the record with the one offset positions away. Out of range targets are ignored.
func (s *MemoryStore[T]) Move(id string, offset int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return domainRepo.ErrRecordNotFound
	}
	target := idx + offset
	if target < 0 || target >= len(s.items) {
		return nil
	}
	s.items[idx], s.items[target] = s.items[target], s.items[idx]
	return nil
}

func (s *MemoryStore[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

func (s *MemoryStore[T]) indexOf(id string) int {
	for i := range s.items {
		if *s.idOf(&s.items[i]) == id {
			return i
		}
	}
	return -1
}
