package stopwords

// defaultTerms is the built-in English stopword list: articles, pronouns,
// auxiliary verbs, conjunctions and other function words that carry no
// topical signal for relevance scoring.
var defaultTerms = []string{
	"the", "and", "for", "are", "but", "not", "you", "all", "can", "had",
	"her", "was", "one", "our", "out", "day", "get", "has", "him", "his",
	"how", "man", "new", "now", "old", "see", "two", "way", "who", "boy",
	"did", "its", "let", "put", "say", "she", "too", "use", "that", "with",
	"have", "this", "will", "your", "from", "they", "know", "want", "been",
	"good", "much", "some", "time", "very", "when", "come", "here", "just",
	"like", "long", "make", "many", "more", "only", "over", "such", "take",
	"than", "them", "well", "were", "what", "which", "their", "would",
	"there", "could", "other", "after", "about", "these", "where", "being",
	"does", "doing", "should", "into", "also",
}

// Default returns a copy of the built-in stopword list.
func Default() []string {
	out := make([]string, len(defaultTerms))
	copy(out, defaultTerms)
	return out
}
