package ingest

import (
	"regexp"
	"strings"
)

var (
	tagPattern   = regexp.MustCompile(`<[^>]*>`)
	punctPattern = regexp.MustCompile(`[^\w\s]`)
)

// Tokenizer handles text normalization and stopword filtering
type Tokenizer struct {
	stopwords map[string]struct{}
}

// NewTokenizer creates a new tokenizer with the given stopword list
func NewTokenizer(stopwords []string) *Tokenizer {
	stops := make(map[string]struct{}, len(stopwords))
	for _, w := range stopwords {
		stops[strings.ToLower(w)] = struct{}{}
	}
	return &Tokenizer{stopwords: stops}
}

// Tokenize splits text into normalized tokens. HTML tags and punctuation
// are replaced with spaces before splitting; tokens of length <= 2 and
// stopwords are dropped. Tag stripping is regex-based and best-effort,
// so malformed markup never causes an error.
func (t *Tokenizer) Tokenize(text string) []string {
	text = tagPattern.ReplaceAllString(text, " ")
	text = strings.ToLower(text)
	text = punctPattern.ReplaceAllString(text, " ")

	var tokens []string
	for _, word := range strings.Fields(text) {
		if len(word) <= 2 {
			continue
		}
		if t.isStopword(word) {
			continue
		}
		tokens = append(tokens, word)
	}
	return tokens
}

func (t *Tokenizer) isStopword(word string) bool {
	_, ok := t.stopwords[word]
	return ok
}

// AddStopword adds a word to the stopword list
func (t *Tokenizer) AddStopword(word string) {
	t.stopwords[strings.ToLower(word)] = struct{}{}
}

// RemoveStopword removes a word from the stopword list
func (t *Tokenizer) RemoveStopword(word string) {
	delete(t.stopwords, strings.ToLower(word))
}
