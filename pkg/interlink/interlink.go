package interlink

import (
	"context"
	"fmt"

	"github.com/interlink/interlink/pkg/interlink/anchor"
	"github.com/interlink/interlink/pkg/interlink/ingest"
	"github.com/interlink/interlink/pkg/interlink/internalerr"
	"github.com/interlink/interlink/pkg/interlink/place"
	"github.com/interlink/interlink/pkg/interlink/rank"
	"github.com/interlink/interlink/pkg/interlink/store"
)

// DefaultMaxLinks is the link budget used when a request does not set one
const DefaultMaxLinks = 5

// DefaultMaxCandidates caps the candidate pool fetched per run
const DefaultMaxCandidates = 500

// Engine is the internal link relevance engine facade
type Engine struct {
	store         store.Store
	tokenizer     *ingest.Tokenizer
	scorer        *rank.Scorer
	maxCandidates int
}

// Options configures an Engine instance
type Options struct {
	Store         store.Store
	Tokenizer     *ingest.Tokenizer
	Weights       rank.Weights
	MaxCandidates int
}

// New creates an Engine with the given dependencies
func New(opts Options) *Engine {
	maxCandidates := opts.MaxCandidates
	if maxCandidates <= 0 {
		maxCandidates = DefaultMaxCandidates
	}
	return &Engine{
		store:         opts.Store,
		tokenizer:     opts.Tokenizer,
		scorer:        rank.NewScorer(opts.Weights),
		maxCandidates: maxCandidates,
	}
}

// Close cleanly shuts down the engine
func (e *Engine) Close() error {
	return e.store.Close()
}

// Request describes one enhancement run
type Request struct {
	Content       string `json:"content"`
	PageID        string `json:"pageId"`
	TargetKeyword string `json:"targetKeyword"`
	MaxLinks      int    `json:"maxLinks"`
	SiteURL       string `json:"siteUrl"`
}

// Link is one selected link in a response
type Link struct {
	URL      string        `json:"url"`
	Anchor   string        `json:"anchor"`
	Title    string        `json:"title"`
	Score    float64       `json:"score"`
	Position rank.Position `json:"position"`
}

// Stats aggregates one enhancement run
type Stats struct {
	CandidatesAnalyzed int     `json:"candidatesAnalyzed"`
	LinksInserted      int     `json:"linksInserted"`
	AvgRelevanceScore  float64 `json:"avgRelevanceScore"`
}

// Response carries the enhanced content and the link report
type Response struct {
	Success bool   `json:"success"`
	Links   []Link `json:"links"`
	Content string `json:"content"`
	Stats   Stats  `json:"stats"`
}

// Enhance scores the candidate pool against the request content, selects
// up to MaxLinks links and splices them in. An empty candidate pool is
// not an error: the original content comes back unchanged with zero
// links. Store failures propagate to the caller.
func (e *Engine) Enhance(ctx context.Context, req Request) (Response, error) {
	if req.Content == "" {
		return Response{}, fmt.Errorf("%w: content is empty", internalerr.ErrInvalidInput)
	}
	maxLinks := req.MaxLinks
	if maxLinks <= 0 {
		maxLinks = DefaultMaxLinks
	}

	pages, err := e.store.ListCandidates(ctx, req.PageID, e.maxCandidates)
	if err != nil {
		return Response{}, fmt.Errorf("list candidates: %w", err)
	}

	if len(pages) == 0 {
		return Response{
			Success: true,
			Links:   []Link{},
			Content: req.Content,
		}, nil
	}

	contentTokens := e.tokenizer.Tokenize(req.Content)
	cands := make([]rank.Candidate, len(pages))
	docs := make([][]string, 0, len(pages)+1)
	docs = append(docs, contentTokens)
	for i, p := range pages {
		cands[i] = rank.Candidate{
			ID:         p.ID,
			URL:        p.URL,
			Slug:       p.Slug,
			Title:      p.Title,
			Categories: p.Categories,
			Tags:       p.Tags,
			Tokens:     e.tokenizer.Tokenize(ingest.CandidateText(p.Title, p.Slug, p.Categories, p.Tags)),
		}
		docs = append(docs, cands[i].Tokens)
	}

	// IDF over the combined corpus, computed once per run
	idf := rank.ComputeIDF(docs)
	contentTF := rank.ComputeTF(contentTokens)
	kw := rank.Keyword{
		Raw:    req.TargetKeyword,
		Tokens: e.tokenizer.Tokenize(req.TargetKeyword),
	}

	scored := e.scorer.ScoreAll(contentTF, cands, idf, kw)
	for i := range scored {
		scored[i].Anchor = anchor.Synthesize(scored[i].Title, scored[i].MatchedTerms, req.TargetKeyword)
	}

	selected := place.Select(scored, maxLinks)
	enhanced, inserted := place.Insert(req.Content, selected)

	resp := Response{
		Success: true,
		Links:   make([]Link, 0, len(selected)),
		Content: enhanced,
		Stats: Stats{
			CandidatesAnalyzed: len(pages),
			LinksInserted:      inserted,
		},
	}

	total := 0.0
	for _, l := range selected {
		resp.Links = append(resp.Links, Link{
			URL:      l.URL,
			Anchor:   l.Anchor,
			Title:    l.Title,
			Score:    l.Score,
			Position: l.Position,
		})
		total += l.Score
	}
	if len(selected) > 0 {
		resp.Stats.AvgRelevanceScore = total / float64(len(selected))
	}

	return resp, nil
}

// Selected exposes the selected link set of a response as scored links,
// for report building.
func (r Response) Selected() []rank.ScoredLink {
	out := make([]rank.ScoredLink, 0, len(r.Links))
	for _, l := range r.Links {
		out = append(out, rank.ScoredLink{
			URL:      l.URL,
			Title:    l.Title,
			Anchor:   l.Anchor,
			Score:    l.Score,
			Position: l.Position,
		})
	}
	return out
}
