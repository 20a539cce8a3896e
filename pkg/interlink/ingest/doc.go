package ingest

import "strings"

// CandidateText builds the scoring document for a link candidate by
// concatenating its title, slug (hyphens replaced with spaces), categories
// and tags. The result is meant to be passed through Tokenize.
func CandidateText(title, slug string, categories, tags []string) string {
	var parts []string
	if title != "" {
		parts = append(parts, title)
	}
	if slug != "" {
		parts = append(parts, strings.ReplaceAll(slug, "-", " "))
	}
	parts = append(parts, categories...)
	parts = append(parts, tags...)
	return strings.Join(parts, " ")
}
