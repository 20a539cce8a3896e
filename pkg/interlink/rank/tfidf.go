package rank

import "math"

// ComputeTF returns the normalized term frequency for one document:
// each token's count divided by the document length. An empty token
// sequence yields an empty map.
func ComputeTF(tokens []string) map[string]float64 {
	tf := make(map[string]float64, len(tokens))
	if len(tokens) == 0 {
		return tf
	}

	for _, tok := range tokens {
		tf[tok]++
	}
	n := float64(len(tokens))
	for tok := range tf {
		tf[tok] /= n
	}
	return tf
}

// ComputeIDF returns the inverse document frequency for every token seen
// across the corpus: ln((N+1)/(df+1)) + 1, where N is the number of
// documents and df the number of documents containing the token.
//
// The corpus is the content document plus all candidate documents for a
// run; IDF is computed once so every candidate is scored on the same
// term-weighting basis.
func ComputeIDF(docs [][]string) map[string]float64 {
	df := make(map[string]float64)
	for _, doc := range docs {
		seen := make(map[string]struct{}, len(doc))
		for _, tok := range doc {
			if _, ok := seen[tok]; ok {
				continue
			}
			seen[tok] = struct{}{}
			df[tok]++
		}
	}

	n := float64(len(docs))
	idf := make(map[string]float64, len(df))
	for tok, count := range df {
		idf[tok] = math.Log((n+1)/(count+1)) + 1
	}
	return idf
}
