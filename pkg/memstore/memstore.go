// Package memstore provides a process-local substitute for a database
// table: an id-keyed map plus a counter for assigning ids. It backs
// resources that live only in memory and doubles as a store backend in
// tests.
package memstore

import (
	"sort"
	"sync"
)

type Store[T any] struct {
	mu     sync.RWMutex
	rows   map[uint]T
	nextID uint
}

func New[T any]() *Store[T] {
	return &Store[T]{rows: make(map[uint]T), nextID: 1}
}

// GetAll returns every row in ascending id order.
func (s *Store[T]) GetAll() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]uint, 0, len(s.rows))
	for id := range s.rows {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	out := make([]T, 0, len(ids))
	for _, id := range ids {
		out = append(out, s.rows[id])
	}
	return out
}

func (s *Store[T]) Get(id uint) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	row, ok := s.rows[id]
	return row, ok
}

// Insert stores the row under the given id, assigning the next free id when
// id is zero. It returns the id used and false when the id is already taken.
func (s *Store[T]) Insert(id uint, row T) (uint, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if id == 0 {
		id = s.nextID
		s.nextID++
	} else if _, taken := s.rows[id]; taken {
		return id, false
	} else if id >= s.nextID {
		s.nextID = id + 1
	}
	s.rows[id] = row
	return id, true
}

// Put replaces an existing row; it returns false when the id is absent.
func (s *Store[T]) Put(id uint, row T) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.rows[id]; !ok {
		return false
	}
	s.rows[id] = row
	return true
}

// Delete removes the row; deleting an absent id returns false.
func (s *Store[T]) Delete(id uint) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.rows[id]; !ok {
		return false
	}
	delete(s.rows, id)
	return true
}

// Find returns every row matching the predicate, in ascending id order.
func (s *Store[T]) Find(match func(T) bool) []T {
	out := make([]T, 0)
	for _, row := range s.GetAll() {
		if match(row) {
			out = append(out, row)
		}
	}
	return out
}

func (s *Store[T]) Any(match func(T) bool) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, row := range s.rows {
		if match(row) {
			return true
		}
	}
	return false
}

func (s *Store[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.rows)
}
