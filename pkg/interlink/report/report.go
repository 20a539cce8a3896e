// Package report builds identified records of enhancement runs.
package report

import (
	"crypto/rand"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/interlink/interlink/pkg/interlink/rank"
)

// Builder constructs enhancement reports
type Builder struct {
	entropy *ulid.MonotonicEntropy
}

// New creates a new report builder
func New() *Builder {
	return &Builder{
		entropy: ulid.Monotonic(rand.Reader, 0),
	}
}

// Report records the outcome of one enhancement run
type Report struct {
	ID        string    `json:"id"`
	PageID    string    `json:"pageId"`
	Keyword   string    `json:"targetKeyword"`
	CreatedAt time.Time `json:"createdAt"`
	Links     []Link    `json:"links"`
	Stats     Stats     `json:"stats"`
}

// Link is one inserted link in a report
type Link struct {
	URL      string        `json:"url"`
	Anchor   string        `json:"anchor"`
	Title    string        `json:"title"`
	Score    float64       `json:"score"`
	Position rank.Position `json:"position"`
}

// Stats aggregates a run
type Stats struct {
	CandidatesAnalyzed int     `json:"candidatesAnalyzed"`
	LinksInserted      int     `json:"linksInserted"`
	AvgRelevanceScore  float64 `json:"avgRelevanceScore"`
}

// Build creates a report for one run
func (b *Builder) Build(pageID, keyword string, links []rank.ScoredLink, stats Stats) Report {
	r := Report{
		ID:        ulid.MustNew(ulid.Now(), b.entropy).String(),
		PageID:    pageID,
		Keyword:   keyword,
		CreatedAt: time.Now().UTC(),
		Links:     make([]Link, 0, len(links)),
		Stats:     stats,
	}

	for _, l := range links {
		r.Links = append(r.Links, Link{
			URL:      l.URL,
			Anchor:   l.Anchor,
			Title:    l.Title,
			Score:    l.Score,
			Position: l.Position,
		})
	}

	return r
}
