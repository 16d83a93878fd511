package memory

import (
	"context"
	"sync"

	"github.com/MikhailRaia/link-shortener/internal/model"
)

// Storage implements in-memory LinkStore for testing and development.
type Storage struct {
	links model.LinkMapping
	saves int
	mutex sync.RWMutex
}

// NewStorage creates a new in-memory storage instance.
func NewStorage() *Storage {
	return &Storage{
		links: make(model.LinkMapping),
	}
}

// Load returns a copy of the stored mapping.
func (s *Storage) Load(ctx context.Context) (model.LinkMapping, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mutex.RLock()
	defer s.mutex.RUnlock()

	return s.links.Clone(), nil
}

// Save replaces the stored mapping with a copy of links.
func (s *Storage) Save(ctx context.Context, links model.LinkMapping) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.links = links.Clone()
	s.saves++
	return nil
}

// Saves reports how many times the mapping has been written.
func (s *Storage) Saves() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	return s.saves
}
