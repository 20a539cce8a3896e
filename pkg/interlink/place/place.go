// Package place selects the final link set under anchor-uniqueness and
// positional-balance constraints and splices anchor tags into content.
package place

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/interlink/interlink/pkg/interlink/rank"
)

const paragraphSep = "</p>"

// minimum length for an anchor word to qualify as an insertion point
const minAnchorWordLen = 4

// Select ranks scored candidates by score descending and greedily accepts
// up to maxLinks of them, rejecting any link whose anchor matches an
// already-accepted anchor case-insensitively, and capping each position
// bucket at ceil(maxLinks/3)+1 accepted links.
func Select(scored []rank.ScoredLink, maxLinks int) []rank.ScoredLink {
	if maxLinks <= 0 || len(scored) == 0 {
		return nil
	}

	ranked := make([]rank.ScoredLink, len(scored))
	copy(ranked, scored)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})

	bucketCap := (maxLinks+2)/3 + 1

	var selected []rank.ScoredLink
	seenAnchors := make(map[string]struct{})
	bucketCounts := make(map[rank.Position]int)

	for _, link := range ranked {
		if len(selected) >= maxLinks {
			break
		}
		key := strings.ToLower(link.Anchor)
		if _, dup := seenAnchors[key]; dup {
			continue
		}
		if bucketCounts[link.Position] >= bucketCap {
			continue
		}
		seenAnchors[key] = struct{}{}
		bucketCounts[link.Position]++
		selected = append(selected, link)
	}

	return selected
}

// Insert splices anchor tags for the selected links into the content.
//
// The content is split into paragraph units on </p> boundaries and the
// paragraph index range is partitioned into thirds matching the
// early/middle/late buckets. Each link is appended to the first paragraph
// in its bucket's range that has no existing anchor tag and contains one
// of the anchor's words (>= 4 characters) as a whole-word match. When no
// such paragraph exists the link is force-appended, prefixed with
// "Read more:", to the paragraph nearest the middle of the range,
// provided that paragraph carries no anchor yet. Returns the enhanced
// content and the number of links actually inserted.
func Insert(content string, links []rank.ScoredLink) (string, int) {
	if len(links) == 0 {
		return content, 0
	}

	paras := strings.Split(content, paragraphSep)
	inserted := 0

	for _, link := range links {
		start, end := bucketRange(link.Position, len(paras))
		if placeNatural(paras, start, end, link) || placeForced(paras, start, end, link) {
			inserted++
		}
	}

	return strings.Join(paras, paragraphSep), inserted
}

// bucketRange partitions [0, total) into thirds. A bucket that would be
// empty for very short content widens to the full range so placement
// stays best-effort.
func bucketRange(pos rank.Position, total int) (int, int) {
	var start, end int
	switch pos {
	case rank.PositionEarly:
		start, end = 0, total/3
	case rank.PositionMiddle:
		start, end = total/3, total*2/3
	default:
		start, end = total*2/3, total
	}
	if start >= end {
		return 0, total
	}
	return start, end
}

func placeNatural(paras []string, start, end int, link rank.ScoredLink) bool {
	words := anchorWords(link.Anchor)
	if len(words) == 0 {
		return false
	}

	for i := start; i < end; i++ {
		if strings.Contains(paras[i], "<a") {
			continue
		}
		for _, w := range words {
			if wholeWordPattern(w).MatchString(paras[i]) {
				paras[i] += " " + markup(link)
				return true
			}
		}
	}
	return false
}

func placeForced(paras []string, start, end int, link rank.ScoredLink) bool {
	mid := start + (end-start)/2
	if mid >= len(paras) || strings.Contains(paras[mid], "<a") {
		return false
	}
	paras[mid] += " Read more: " + markup(link)
	return true
}

func markup(link rank.ScoredLink) string {
	return fmt.Sprintf(`<a href="%s">%s</a>`, link.URL, link.Anchor)
}

func anchorWords(anchor string) []string {
	var words []string
	for _, w := range strings.Fields(anchor) {
		if len(w) >= minAnchorWordLen {
			words = append(words, w)
		}
	}
	return words
}

func wholeWordPattern(word string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(word) + `\b`)
}
