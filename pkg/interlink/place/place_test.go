package place

import (
	"strings"
	"testing"

	"github.com/interlink/interlink/pkg/interlink/rank"
)

func TestSelectOrdersByScore(t *testing.T) {
	scored := []rank.ScoredLink{
		{URL: "u1", Anchor: "First Anchor", Score: 0.1, Position: rank.PositionEarly},
		{URL: "u2", Anchor: "Second Anchor", Score: 0.9, Position: rank.PositionMiddle},
		{URL: "u3", Anchor: "Third Anchor", Score: 0.5, Position: rank.PositionLate},
	}

	selected := Select(scored, 1)
	if len(selected) != 1 || selected[0].URL != "u2" {
		t.Errorf("expected highest-scoring link selected, got %v", selected)
	}
}

func TestSelectDeduplicatesAnchors(t *testing.T) {
	scored := []rank.ScoredLink{
		{URL: "u1", Anchor: "React Hooks Guide", Score: 0.9, Position: rank.PositionEarly},
		{URL: "u2", Anchor: "react hooks guide", Score: 0.8, Position: rank.PositionMiddle},
	}

	selected := Select(scored, 5)
	if len(selected) != 1 {
		t.Fatalf("case-insensitive duplicate anchors must collapse, got %d links", len(selected))
	}
	if selected[0].URL != "u1" {
		t.Errorf("higher-scoring duplicate must win, got %s", selected[0].URL)
	}
}

func TestSelectBucketCap(t *testing.T) {
	var scored []rank.ScoredLink
	for i := 0; i < 6; i++ {
		scored = append(scored, rank.ScoredLink{
			URL:      string(rune('a' + i)),
			Anchor:   strings.Repeat("x", i+1),
			Score:    float64(6 - i),
			Position: rank.PositionEarly,
		})
	}

	// maxLinks=3 gives a bucket cap of ceil(3/3)+1 = 2
	selected := Select(scored, 3)
	if len(selected) != 2 {
		t.Errorf("bucket cap must limit one bucket to 2 links, got %d", len(selected))
	}

	counts := make(map[rank.Position]int)
	for _, l := range selected {
		counts[l.Position]++
	}
	if counts[rank.PositionEarly] > 2 {
		t.Errorf("early bucket exceeded cap: %d", counts[rank.PositionEarly])
	}
}

func TestSelectStopsAtBudget(t *testing.T) {
	scored := []rank.ScoredLink{
		{URL: "u1", Anchor: "Anchor One", Score: 0.9, Position: rank.PositionEarly},
		{URL: "u2", Anchor: "Anchor Two", Score: 0.8, Position: rank.PositionMiddle},
		{URL: "u3", Anchor: "Anchor Three", Score: 0.7, Position: rank.PositionLate},
	}

	if got := Select(scored, 2); len(got) != 2 {
		t.Errorf("expected 2 links, got %d", len(got))
	}
	if got := Select(scored, 0); got != nil {
		t.Errorf("zero budget must select nothing, got %v", got)
	}
}

func TestInsertNaturalPlacement(t *testing.T) {
	content := "<p>All about react performance.</p><p>Second paragraph here.</p><p>Third paragraph here.</p>"
	links := []rank.ScoredLink{
		{URL: "https://example.com/react", Anchor: "React Guide", Position: rank.PositionEarly},
	}

	enhanced, inserted := Insert(content, links)

	if inserted != 1 {
		t.Fatalf("inserted = %d, want 1", inserted)
	}
	want := `react performance. <a href="https://example.com/react">React Guide</a></p>`
	if !strings.Contains(enhanced, want) {
		t.Errorf("link not appended to matching paragraph:\n%s", enhanced)
	}
	if strings.Contains(enhanced, "Read more:") {
		t.Error("natural placement must not use the forced prefix")
	}
}

func TestInsertForcedPlacement(t *testing.T) {
	content := "<p>Nothing relevant one.</p><p>Nothing relevant two.</p><p>Nothing relevant three.</p>"
	links := []rank.ScoredLink{
		{URL: "https://example.com/zebra", Anchor: "Zebra Migration", Position: rank.PositionEarly},
	}

	enhanced, inserted := Insert(content, links)

	if inserted != 1 {
		t.Fatalf("inserted = %d, want 1", inserted)
	}
	if !strings.Contains(enhanced, `Read more: <a href="https://example.com/zebra">Zebra Migration</a>`) {
		t.Errorf("expected forced placement with prefix:\n%s", enhanced)
	}
}

func TestInsertSkipsParagraphsWithAnchors(t *testing.T) {
	content := `<p>This react paragraph has <a href="/x">a link</a> already.</p><p>Plain react paragraph.</p><p>One more react mention.</p><p>Another react line.</p><p>Fifth react entry.</p><p>Sixth react closer.</p>`
	links := []rank.ScoredLink{
		{URL: "https://example.com/react", Anchor: "React Guide", Position: rank.PositionEarly},
	}

	enhanced, inserted := Insert(content, links)

	if inserted != 1 {
		t.Fatalf("inserted = %d, want 1", inserted)
	}
	if !strings.Contains(enhanced, `Plain react paragraph. <a href="https://example.com/react">React Guide</a>`) {
		t.Errorf("link must land in the first anchor-free paragraph:\n%s", enhanced)
	}
}

func TestInsertCountNeverExceedsSelection(t *testing.T) {
	// One paragraph per bucket range; the second early link can neither
	// place naturally nor force-append once the first occupies the slot.
	content := "<p>Only alpha words here.</p><p>Middle filler text.</p><p>Late filler text.</p>"
	links := []rank.ScoredLink{
		{URL: "u1", Anchor: "Alpha Words", Position: rank.PositionEarly},
		{URL: "u2", Anchor: "Gamma Delta", Position: rank.PositionEarly},
	}

	_, inserted := Insert(content, links)
	if inserted > len(links) {
		t.Fatalf("inserted %d > selected %d", inserted, len(links))
	}
	if inserted != 1 {
		t.Errorf("second link should be blocked by the existing anchor, got %d insertions", inserted)
	}
}

func TestInsertEmptyInputs(t *testing.T) {
	if got, n := Insert("<p>Text.</p>", nil); got != "<p>Text.</p>" || n != 0 {
		t.Errorf("no links must leave content untouched, got %q (%d)", got, n)
	}

	links := []rank.ScoredLink{
		{URL: "u1", Anchor: "Some Anchor", Position: rank.PositionLate},
	}
	enhanced, n := Insert("no paragraph tags at all", links)
	if n != 1 || !strings.Contains(enhanced, "Read more:") {
		t.Errorf("single-block content should get a forced append, got %q (%d)", enhanced, n)
	}
}
