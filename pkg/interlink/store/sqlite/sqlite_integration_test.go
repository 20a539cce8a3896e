package sqlite

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/interlink/interlink/pkg/interlink/store"
)

// TestSQLiteIntegrationBasic tests basic CRUD operations
func TestSQLiteIntegrationBasic(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "test.db")

	st, err := Open(ctx, dbPath)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer st.Close()

	page := store.Page{
		ID:         "p1",
		URL:        "https://example.com/react-hooks",
		Slug:       "react-hooks",
		Title:      "React Hooks Guide",
		Status:     store.StatusReady,
		Categories: []string{"react", "javascript"},
		Tags:       []string{"hooks"},
	}

	if err := st.UpsertPage(ctx, page); err != nil {
		t.Fatalf("UpsertPage: %v", err)
	}

	retrieved, found, err := st.GetPage(ctx, "p1")
	if err != nil {
		t.Fatalf("GetPage: %v", err)
	}
	if !found {
		t.Fatal("page should be found")
	}
	if retrieved.Title != page.Title {
		t.Errorf("Title mismatch: got %q, want %q", retrieved.Title, page.Title)
	}
	if len(retrieved.Categories) != 2 || retrieved.Categories[0] != "react" {
		t.Errorf("Categories mismatch: %v", retrieved.Categories)
	}
	if len(retrieved.Tags) != 1 || retrieved.Tags[0] != "hooks" {
		t.Errorf("Tags mismatch: %v", retrieved.Tags)
	}

	if _, found, _ := st.GetPage(ctx, "missing"); found {
		t.Error("missing page reported as found")
	}
}

func TestSQLiteIntegrationUpsertReplacesLabels(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "test.db")

	st, err := Open(ctx, dbPath)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer st.Close()

	page := store.Page{
		ID:     "p1",
		URL:    "https://example.com/a",
		Status: store.StatusReady,
		Tags:   []string{"old-tag", "stale-tag"},
	}
	if err := st.UpsertPage(ctx, page); err != nil {
		t.Fatalf("UpsertPage: %v", err)
	}

	page.Tags = []string{"fresh-tag"}
	if err := st.UpsertPage(ctx, page); err != nil {
		t.Fatalf("UpsertPage update: %v", err)
	}

	got, _, err := st.GetPage(ctx, "p1")
	if err != nil {
		t.Fatalf("GetPage: %v", err)
	}
	if len(got.Tags) != 1 || got.Tags[0] != "fresh-tag" {
		t.Errorf("tags must be replaced on update: %v", got.Tags)
	}
}

func TestSQLiteIntegrationListCandidates(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "test.db")

	st, err := Open(ctx, dbPath)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer st.Close()

	for i := 0; i < 5; i++ {
		status := store.StatusReady
		if i == 2 {
			status = store.StatusDraft
		}
		page := store.Page{
			ID:     fmt.Sprintf("p%d", i),
			URL:    fmt.Sprintf("https://example.com/%d", i),
			Status: status,
		}
		if err := st.UpsertPage(ctx, page); err != nil {
			t.Fatalf("UpsertPage: %v", err)
		}
	}

	got, err := st.ListCandidates(ctx, "p0", 0)
	if err != nil {
		t.Fatalf("ListCandidates: %v", err)
	}

	// p0 excluded, p2 is draft: expect p1, p3, p4 in insertion order
	if len(got) != 3 {
		t.Fatalf("expected 3 candidates, got %d", len(got))
	}
	for i, wantID := range []string{"p1", "p3", "p4"} {
		if got[i].ID != wantID {
			t.Errorf("candidate[%d] = %s, want %s", i, got[i].ID, wantID)
		}
	}

	limited, err := st.ListCandidates(ctx, "", 2)
	if err != nil {
		t.Fatalf("ListCandidates: %v", err)
	}
	if len(limited) != 2 {
		t.Errorf("limit not honored: got %d", len(limited))
	}
}
