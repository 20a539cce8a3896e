// Package anchor converts candidate page titles into concise,
// keyword-rich link anchor phrases.
package anchor

import (
	"regexp"
	"strings"
)

const (
	maxTitleLen   = 50
	minWindowLen  = 3
	maxWindowLen  = 6
	fallbackWords = 6

	matchedTermScore = 2
	keywordWordScore = 3
)

var (
	// trailing " - Site Name" / " | Site Name" suffixes
	siteSuffixPattern = regexp.MustCompile(`\s+[-|]\s+[^-|]+$`)
	// anything other than word characters, whitespace, comma, colon, apostrophe
	anchorCharPattern = regexp.MustCompile(`[^\w\s,:']`)
)

// Synthesize produces anchor display text from a candidate title. Short
// cleaned titles are used as-is; longer ones are reduced to the best
// contiguous window of 3-6 words, scored by matched-term and keyword-word
// hits, falling back to the first 6 words when nothing scores.
//
// Anchors are compared case-insensitively for de-duplication downstream;
// Synthesize itself does not deduplicate.
func Synthesize(title string, matchedTerms []string, targetKeyword string) string {
	cleaned := clean(title)
	if len(cleaned) <= maxTitleLen {
		return cleaned
	}

	words := strings.Fields(cleaned)

	matched := make(map[string]struct{}, len(matchedTerms))
	for _, term := range matchedTerms {
		matched[strings.ToLower(term)] = struct{}{}
	}
	keywordWords := make(map[string]struct{})
	for _, kw := range strings.Fields(strings.ToLower(targetKeyword)) {
		keywordWords[kw] = struct{}{}
	}

	bestScore := 0
	var best []string
	for size := minWindowLen; size <= maxWindowLen && size <= len(words); size++ {
		for start := 0; start+size <= len(words); start++ {
			window := words[start : start+size]
			score := scoreWindow(window, matched, keywordWords)
			if score > bestScore {
				bestScore = score
				best = window
			}
		}
	}

	if bestScore > 0 {
		return strings.Join(best, " ")
	}

	if len(words) > fallbackWords {
		words = words[:fallbackWords]
	}
	return strings.Join(words, " ")
}

func scoreWindow(window []string, matched, keywordWords map[string]struct{}) int {
	score := 0
	for _, w := range window {
		lower := strings.ToLower(w)
		if _, ok := matched[lower]; ok {
			score += matchedTermScore
		}
		if _, ok := keywordWords[lower]; ok {
			score += keywordWordScore
		}
	}
	return score
}

func clean(title string) string {
	title = siteSuffixPattern.ReplaceAllString(title, "")
	title = anchorCharPattern.ReplaceAllString(title, "")
	return strings.TrimSpace(title)
}
