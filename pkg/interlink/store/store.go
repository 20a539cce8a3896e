package store

import "context"

// Status reflects whether a page may be offered as a link target
type Status string

// Page statuses
const (
	StatusReady Status = "ready"
	StatusDraft Status = "draft"
)

// Page represents a stored site page
type Page struct {
	ID         string
	URL        string
	Slug       string
	Title      string
	Status     Status
	Categories []string
	Tags       []string
}

// Store is the interface for persisting and querying link candidates.
//
// ListCandidates must return pages in stable insertion order: the
// position buckets downstream are derived from pool order, so a store
// that reorders results between runs would make link placement
// non-deterministic.
type Store interface {
	Close() error

	UpsertPage(ctx context.Context, p Page) error
	GetPage(ctx context.Context, id string) (Page, bool, error)

	// ListCandidates returns up to limit ready pages, excluding the page
	// identified by excludeID (self-links are never offered).
	ListCandidates(ctx context.Context, excludeID string, limit int) ([]Page, error)
}
