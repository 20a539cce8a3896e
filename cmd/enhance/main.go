package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"os"

	"github.com/interlink/interlink/pkg/interlink"
	"github.com/interlink/interlink/pkg/interlink/config"
	"github.com/interlink/interlink/pkg/interlink/report"
	"github.com/interlink/interlink/pkg/interlink/store/sqlite"
)

func main() {
	var (
		dbPath      = flag.String("db", "", "Database path (required)")
		contentPath = flag.String("content", "", "Content HTML file (required)")
		pageID      = flag.String("page", "", "ID of the page being enhanced")
		keyword     = flag.String("keyword", "", "Target keyword")
		maxLinks    = flag.Int("max-links", 0, "Maximum links to insert (0 = config default)")
		siteURL     = flag.String("site", "", "Site base URL")
		configPath  = flag.String("config", "", "YAML config file (optional)")
		outPath     = flag.String("out", "", "Write enhanced content here (default: stdout report only)")
	)
	flag.Parse()

	if *dbPath == "" {
		log.Fatal("--db required")
	}
	if *contentPath == "" {
		log.Fatal("--content required")
	}

	ctx := context.Background()

	loader := config.Loader{Path: *configPath}
	components, err := loader.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	content, err := os.ReadFile(*contentPath)
	if err != nil {
		log.Fatal("Failed to read content:", err)
	}

	st, err := sqlite.Open(ctx, *dbPath)
	if err != nil {
		log.Fatal("Failed to open database:", err)
	}

	engine := interlink.New(interlink.Options{
		Store:         st,
		Tokenizer:     components.Tokenizer,
		Weights:       components.Weights,
		MaxCandidates: components.MaxCandidates,
	})
	defer engine.Close()

	links := *maxLinks
	if links <= 0 {
		links = components.MaxLinks
	}

	resp, err := engine.Enhance(ctx, interlink.Request{
		Content:       string(content),
		PageID:        *pageID,
		TargetKeyword: *keyword,
		MaxLinks:      links,
		SiteURL:       *siteURL,
	})
	if err != nil {
		log.Fatal("Enhancement failed:", err)
	}

	rep := report.New().Build(*pageID, *keyword, resp.Selected(), report.Stats{
		CandidatesAnalyzed: resp.Stats.CandidatesAnalyzed,
		LinksInserted:      resp.Stats.LinksInserted,
		AvgRelevanceScore:  resp.Stats.AvgRelevanceScore,
	})

	out, err := json.MarshalIndent(rep, "", "  ")
	if err != nil {
		log.Fatal("Failed to encode report:", err)
	}
	os.Stdout.Write(append(out, '\n'))

	if *outPath != "" {
		if err := os.WriteFile(*outPath, []byte(resp.Content), 0644); err != nil {
			log.Fatal("Failed to write enhanced content:", err)
		}
		log.Printf("Enhanced content written to %s (%d links inserted)", *outPath, resp.Stats.LinksInserted)
	}
}
