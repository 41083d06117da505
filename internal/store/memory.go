package store

import (
	"context"
	"sync"
	"time"

	"github.com/miqat-dev/miqat/internal/model"
)

// MemoryStore is an in-process Store used by tests and by handler code that
// runs without Redis.
type MemoryStore struct {
	mu        sync.RWMutex
	sel       model.UserSelection
	hasSel    bool
	snap      model.TimingsSnapshot
	updatedAt time.Time
}

var _ Store = (*MemoryStore)(nil)

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Selection(ctx context.Context) (model.UserSelection, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.hasSel {
		return model.UserSelection{}, ErrNoSelection
	}
	sel := s.sel
	if sel.Country == "" {
		sel.Country = model.DefaultCountry
	}
	return sel, nil
}

func (s *MemoryStore) SaveSelection(ctx context.Context, sel model.UserSelection) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sel = sel
	s.hasSel = sel.City != ""
	return nil
}

func (s *MemoryStore) Timings(ctx context.Context) (model.TimingsSnapshot, time.Time, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap, s.updatedAt, nil
}

func (s *MemoryStore) SaveTimings(ctx context.Context, snap model.TimingsSnapshot, updatedAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap = snap
	s.updatedAt = updatedAt
	return nil
}
