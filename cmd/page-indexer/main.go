package main

import (
	"context"
	"flag"
	"log"

	"github.com/interlink/interlink/internal/wp"
	"github.com/interlink/interlink/pkg/interlink/store"
	"github.com/interlink/interlink/pkg/interlink/store/sqlite"
)

func main() {
	var (
		dbPath   = flag.String("db", "", "Database path (required)")
		dataPath = flag.String("data", "", "Input pages JSONL file (required)")
	)
	flag.Parse()

	if *dbPath == "" {
		log.Fatal("--db required")
	}
	if *dataPath == "" {
		log.Fatal("--data required")
	}

	ctx := context.Background()

	st, err := sqlite.Open(ctx, *dbPath)
	if err != nil {
		log.Fatal("Failed to open database:", err)
	}
	defer st.Close()

	pages, err := wp.LoadFromJSONL(*dataPath)
	if err != nil {
		log.Fatal("Failed to load pages:", err)
	}

	log.Printf("Loaded %d pages from %s", len(pages), *dataPath)

	indexed := 0
	for i, page := range pages {
		status := store.Status(page.Status)
		if status == "" {
			status = store.StatusDraft
		}

		p := store.Page{
			ID:         page.ID,
			URL:        page.URL,
			Slug:       page.Slug,
			Title:      page.Title,
			Status:     status,
			Categories: page.Categories,
			Tags:       page.Tags,
		}

		if err := st.UpsertPage(ctx, p); err != nil {
			log.Printf("Failed to index page %d (%s): %v", i, page.Title, err)
			continue
		}
		indexed++

		if (i+1)%50 == 0 {
			log.Printf("Indexed %d/%d pages", i+1, len(pages))
		}
	}

	log.Printf("Indexing complete: %d pages stored", indexed)
}
