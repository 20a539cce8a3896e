package stopwords

import "testing"

func TestDefault(t *testing.T) {
	terms := Default()

	if len(terms) < 70 {
		t.Errorf("expected at least 70 stopwords, got %d", len(terms))
	}

	seen := make(map[string]struct{}, len(terms))
	for _, term := range terms {
		if _, dup := seen[term]; dup {
			t.Errorf("duplicate stopword %q", term)
		}
		seen[term] = struct{}{}
	}

	for _, want := range []string{"the", "and", "with", "would"} {
		if _, ok := seen[want]; !ok {
			t.Errorf("expected %q in default stoplist", want)
		}
	}
}

func TestDefaultReturnsCopy(t *testing.T) {
	a := Default()
	a[0] = "mutated"

	if b := Default(); b[0] == "mutated" {
		t.Error("Default must return a fresh copy")
	}
}
