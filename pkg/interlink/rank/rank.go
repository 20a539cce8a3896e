package rank

import (
	"sort"
	"strings"
)

// Position identifies which third of the candidate pool a candidate was
// evaluated in. It is derived from the candidate's index in the original,
// unsorted pool rather than its score rank, and is used downstream to
// spread accepted links across the content's thirds.
type Position string

// Position buckets
const (
	PositionEarly  Position = "early"
	PositionMiddle Position = "middle"
	PositionLate   Position = "late"
)

// Candidate represents a page eligible to be linked to
type Candidate struct {
	ID         string
	URL        string
	Slug       string
	Title      string
	Categories []string
	Tags       []string
	Tokens     []string
}

// ScoredLink is the evaluated relevance of one candidate against one
// content document. Anchor is filled in by the anchor synthesizer after
// scoring.
type ScoredLink struct {
	URL          string
	Title        string
	Anchor       string
	Score        float64
	MatchedTerms []string
	Position     Position
}

// Weights defines the scoring boost constants and the relevance floor
type Weights struct {
	KeywordBoost   float64 // per keyword token present in the candidate
	CategoryBoost  float64 // candidate category is a substring of the keyword
	TagBoost       float64 // candidate tag is a substring of the keyword
	RelevanceFloor float64 // candidates scoring at or below this are dropped
}

// DefaultWeights returns the reference boost constants
func DefaultWeights() Weights {
	return Weights{
		KeywordBoost:   1.5,
		CategoryBoost:  1.3,
		TagBoost:       1.2,
		RelevanceFloor: 0.001,
	}
}

// Keyword carries the declared target keyword in both its raw form (used
// for the category/tag substring boosts) and tokenized form (used for the
// per-token keyword boost).
type Keyword struct {
	Raw    string
	Tokens []string
}

// Scorer calculates boosted TF-IDF relevance for link candidates
type Scorer struct {
	weights Weights
}

// NewScorer creates a new scorer with the given weights
func NewScorer(w Weights) *Scorer {
	return &Scorer{weights: w}
}

// Score calculates the relevance of one candidate against the content.
//
// The base score accumulates tf_content × tf_candidate × idf² over every
// term present in both documents; squaring the IDF sharpens the weight of
// rare, corpus-distinctive terms. Multiplicative boosts are then applied
// in order: ×KeywordBoost per keyword token found in the candidate's
// tokens, ×CategoryBoost if any candidate category (lower-cased) is a
// substring of the raw target keyword (lower-cased), ×TagBoost likewise
// for tags.
func (s *Scorer) Score(contentTF map[string]float64, cand Candidate, idf map[string]float64, kw Keyword) (float64, []string) {
	candTF := ComputeTF(cand.Tokens)

	score := 0.0
	var matched []string
	for term, cw := range contentTF {
		dw, ok := candTF[term]
		if !ok {
			continue
		}
		w := idf[term]
		score += cw * dw * w * w
		matched = append(matched, term)
	}
	sort.Strings(matched)

	candSet := make(map[string]struct{}, len(cand.Tokens))
	for _, tok := range cand.Tokens {
		candSet[tok] = struct{}{}
	}
	for _, kt := range kw.Tokens {
		if _, ok := candSet[kt]; ok {
			score *= s.weights.KeywordBoost
		}
	}

	keyword := strings.ToLower(kw.Raw)
	if keyword != "" {
		for _, cat := range cand.Categories {
			if cat != "" && strings.Contains(keyword, strings.ToLower(cat)) {
				score *= s.weights.CategoryBoost
				break
			}
		}
		for _, tag := range cand.Tags {
			if tag != "" && strings.Contains(keyword, strings.ToLower(tag)) {
				score *= s.weights.TagBoost
				break
			}
		}
	}

	return score, matched
}

// ScoreAll scores every candidate in pool order, assigns position buckets
// from the original index, and drops candidates whose boosted score does
// not exceed the relevance floor.
func (s *Scorer) ScoreAll(contentTF map[string]float64, cands []Candidate, idf map[string]float64, kw Keyword) []ScoredLink {
	var out []ScoredLink
	for i, cand := range cands {
		score, matched := s.Score(contentTF, cand, idf, kw)
		if score <= s.weights.RelevanceFloor {
			continue
		}
		out = append(out, ScoredLink{
			URL:          cand.URL,
			Title:        cand.Title,
			Score:        score,
			MatchedTerms: matched,
			Position:     BucketFor(i, len(cands)),
		})
	}
	return out
}

// BucketFor maps a candidate's index in the original pool to its third
func BucketFor(index, total int) Position {
	if total <= 0 {
		return PositionEarly
	}
	switch index * 3 / total {
	case 0:
		return PositionEarly
	case 1:
		return PositionMiddle
	default:
		return PositionLate
	}
}
