package catalog

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync/atomic"
)

// Loader builds a fresh catalog snapshot from its source
type Loader func(ctx context.Context) (*Catalog, error)

// ErrNoLoader is returned by Reload when the store was created without a source
var ErrNoLoader = errors.New("catalog has no reload source")

// Store hands out the current catalog snapshot. Reload builds a new
// snapshot and swaps it in; readers holding the old one keep using it.
type Store struct {
	current atomic.Pointer[Catalog]
	loader  Loader
}

// NewStore creates a store serving initial. loader may be nil.
func NewStore(initial *Catalog, loader Loader) *Store {
	s := &Store{loader: loader}
	s.current.Store(initial)
	return s
}

// Open loads the first snapshot through loader and returns a store for it
func Open(ctx context.Context, loader Loader) (*Store, error) {
	c, err := loader(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}
	return NewStore(c, loader), nil
}

// Current returns the active snapshot
func (s *Store) Current() *Catalog {
	return s.current.Load()
}

// Reload rebuilds the catalog from the loader and swaps it in
func (s *Store) Reload(ctx context.Context) (*Catalog, error) {
	if s.loader == nil {
		return nil, ErrNoLoader
	}

	c, err := s.loader(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to reload catalog: %w", err)
	}

	s.current.Store(c)
	log.Printf("[Catalog] Reloaded: %d POIs, %d stations, %d station pairs",
		len(c.pois), len(c.stations), c.timetable.Pairs())
	return c, nil
}

// DefaultLoader serves the built-in dataset
func DefaultLoader(ctx context.Context) (*Catalog, error) {
	return Default(), nil
}
