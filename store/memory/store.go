// Package memory implements the item repo as an in-process map. It backs
// tests and local demos; nothing survives a restart.
package memory

import (
	"context"
	"sync"

	"todod"
)

// Store is an in-memory ItemRepo. Safe for concurrent use.
type Store struct {
	mu    sync.RWMutex
	items map[string]todod.Item
}

// New creates an empty Store.
func New() *Store {
	return &Store{items: make(map[string]todod.Item)}
}

func (s *Store) List(_ context.Context) ([]todod.Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]todod.Item, 0, len(s.items))
	for _, item := range s.items {
		items = append(items, item)
	}

	return items, nil
}

func (s *Store) Get(_ context.Context, id string) (todod.Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, ok := s.items[id]
	if !ok {
		return todod.Item{}, todod.ErrNotFound
	}

	return item, nil
}

func (s *Store) Put(_ context.Context, item todod.Item) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items[item.ID] = item
	return nil
}

func (s *Store) SetCompleted(_ context.Context, id string, completed bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, ok := s.items[id]
	if !ok {
		return todod.ErrNotFound
	}

	item.Completed = completed
	s.items[id] = item
	return nil
}

func (s *Store) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.items, id)
	return nil
}
