package memstore

import (
	"context"
	"sync"

	"github.com/interlink/interlink/pkg/interlink/store"
)

// Store is an in-memory implementation of store.Store for tests and
// small sites.
type Store struct {
	mu    sync.RWMutex
	pages map[string]store.Page
	order []string
}

// New creates a new in-memory store.
func New() *Store {
	return &Store{
		pages: make(map[string]store.Page),
	}
}

// Close implements store.Store.
func (s *Store) Close() error { return nil }

// UpsertPage inserts or updates a page, keyed by ID. First insertion
// order is preserved for ListCandidates.
func (s *Store) UpsertPage(ctx context.Context, p store.Page) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if p.ID == "" {
		return nil
	}
	if _, exists := s.pages[p.ID]; !exists {
		s.order = append(s.order, p.ID)
	}
	s.pages[p.ID] = copyPage(p)
	return nil
}

// GetPage returns a page by ID.
func (s *Store) GetPage(ctx context.Context, id string) (store.Page, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if p, ok := s.pages[id]; ok {
		return copyPage(p), true, nil
	}
	return store.Page{}, false, nil
}

// ListCandidates returns up to limit ready pages in insertion order,
// excluding excludeID.
func (s *Store) ListCandidates(ctx context.Context, excludeID string, limit int) ([]store.Page, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if limit <= 0 {
		limit = 500
	}

	var out []store.Page
	for _, id := range s.order {
		if id == excludeID {
			continue
		}
		p := s.pages[id]
		if p.Status != store.StatusReady {
			continue
		}
		out = append(out, copyPage(p))
		if len(out) >= limit {
			break
		}
	}
	return out, nil
}

func copyPage(p store.Page) store.Page {
	copySlice := func(in []string) []string {
		if in == nil {
			return nil
		}
		out := make([]string, len(in))
		copy(out, in)
		return out
	}

	return store.Page{
		ID:         p.ID,
		URL:        p.URL,
		Slug:       p.Slug,
		Title:      p.Title,
		Status:     p.Status,
		Categories: copySlice(p.Categories),
		Tags:       copySlice(p.Tags),
	}
}
