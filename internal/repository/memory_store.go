package repository

import (
	"sort"
	"sync"
)

// MemoryStore is the mock mirror: rows keyed by id plus their insertion
// order so listings stay deterministic.
type MemoryStore[T any] struct {
	mu    sync.RWMutex
	rows  map[string]T
	order []string
	id    func(*T) *string
}

func NewMemoryStore[T any](id func(*T) *string, seed []T) *MemoryStore[T] {
	s := &MemoryStore[T]{
		rows: make(map[string]T, len(seed)),
		id:   id,
	}
	for _, row := range seed {
		key := *id(&row)
		if _, exists := s.rows[key]; !exists {
			s.order = append(s.order, key)
		}
		s.rows[key] = row
	}
	return s
}

func (s *MemoryStore[T]) List(q Query[T]) []T {
	s.mu.RLock()
	out := make([]T, 0, len(s.order))
	for _, key := range s.order {
		row := s.rows[key]
		if q.Match == nil || q.Match(row) {
			out = append(out, row)
		}
	}
	s.mu.RUnlock()

	if q.Less != nil {
		sort.SliceStable(out, func(i, j int) bool {
			if q.Descending {
				return q.Less(out[j], out[i])
			}
			return q.Less(out[i], out[j])
		})
	}
	return out
}

func (s *MemoryStore[T]) Get(id string) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	row, ok := s.rows[id]
	return row, ok
}

func (s *MemoryStore[T]) Insert(row T) error {
	key := *s.id(&row)

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.rows[key]; exists {
		return ErrAlreadyExists
	}
	s.rows[key] = row
	s.order = append(s.order, key)
	return nil
}

// Update applies mutate to a copy and only stores it when mutate succeeds.
func (s *MemoryStore[T]) Update(id string, mutate func(*T) error) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	row, ok := s.rows[id]
	if !ok {
		var zero T
		return zero, ErrNotFound
	}
	if err := mutate(&row); err != nil {
		var zero T
		return zero, err
	}
	*s.id(&row) = id
	s.rows[id] = row
	return row, nil
}

func (s *MemoryStore[T]) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.rows[id]; !ok {
		return false
	}
	delete(s.rows, id)
	for i, key := range s.order {
		if key == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return true
}

func (s *MemoryStore[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.rows)
}
