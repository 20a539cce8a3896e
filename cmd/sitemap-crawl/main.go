package main

import (
	"context"
	"encoding/json"
	"encoding/xml"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/time/rate"

	"github.com/interlink/interlink/internal/wp"
)

// sitemap is the urlset document of a standard XML sitemap
type sitemap struct {
	URLs []struct {
		Loc string `xml:"loc"`
	} `xml:"url"`
}

func main() {
	var (
		sitemapURL = flag.String("sitemap", "", "Sitemap URL (required)")
		outPath    = flag.String("out", "pages.jsonl", "Output pages JSONL file")
		rps        = flag.Float64("rps", 2, "Fetch rate limit, requests per second")
		maxPages   = flag.Int("max-pages", 500, "Maximum pages to fetch")
	)
	flag.Parse()

	if *sitemapURL == "" {
		log.Fatal("--sitemap required")
	}

	ctx := context.Background()
	client := &http.Client{Timeout: 30 * time.Second}
	limiter := rate.NewLimiter(rate.Limit(*rps), 1)

	locs, err := fetchSitemap(ctx, client, *sitemapURL)
	if err != nil {
		log.Fatal("Failed to fetch sitemap:", err)
	}
	if len(locs) > *maxPages {
		locs = locs[:*maxPages]
	}

	log.Printf("Sitemap lists %d pages, fetching up to %d", len(locs), len(locs))

	outFile, err := os.Create(*outPath)
	if err != nil {
		log.Fatal("Failed to create output file:", err)
	}
	defer outFile.Close()

	encoder := json.NewEncoder(outFile)
	fetched := 0

	for i, loc := range locs {
		if err := limiter.Wait(ctx); err != nil {
			log.Fatal("Rate limiter:", err)
		}

		page, err := fetchPage(ctx, client, loc)
		if err != nil {
			log.Printf("Failed to fetch %s: %v", loc, err)
			continue
		}

		if err := encoder.Encode(page); err != nil {
			log.Printf("Failed to encode page: %v", err)
			continue
		}

		fetched++
		if (i+1)%10 == 0 {
			log.Printf("Fetched %d/%d pages...", fetched, len(locs))
		}
	}

	log.Printf("Crawl complete: %d pages written to %s", fetched, *outPath)
}

func fetchSitemap(ctx context.Context, client *http.Client, sitemapURL string) ([]string, error) {
	body, err := get(ctx, client, sitemapURL)
	if err != nil {
		return nil, err
	}

	var sm sitemap
	if err := xml.Unmarshal(body, &sm); err != nil {
		return nil, fmt.Errorf("parse sitemap: %w", err)
	}

	var locs []string
	for _, u := range sm.URLs {
		loc := strings.TrimSpace(u.Loc)
		if loc != "" {
			locs = append(locs, loc)
		}
	}
	return locs, nil
}

func fetchPage(ctx context.Context, client *http.Client, pageURL string) (wp.Page, error) {
	body, err := get(ctx, client, pageURL)
	if err != nil {
		return wp.Page{}, err
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(string(body)))
	if err != nil {
		return wp.Page{}, err
	}

	page := wp.Page{
		ID:      slugOf(pageURL),
		URL:     pageURL,
		Slug:    slugOf(pageURL),
		Title:   strings.TrimSpace(doc.Find("title").First().Text()),
		Status:  "ready",
		Content: wp.ExtractText(string(body)),
	}

	doc.Find(`meta[property="article:section"]`).Each(func(i int, s *goquery.Selection) {
		if content, ok := s.Attr("content"); ok && content != "" {
			page.Categories = append(page.Categories, content)
		}
	})
	doc.Find(`meta[property="article:tag"]`).Each(func(i int, s *goquery.Selection) {
		if content, ok := s.Attr("content"); ok && content != "" {
			page.Tags = append(page.Tags, content)
		}
	})

	return page, nil
}

func get(ctx context.Context, client *http.Client, rawURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", rawURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", "interlink-crawl/1.0")

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d", resp.StatusCode)
	}

	return io.ReadAll(resp.Body)
}

func slugOf(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}
	path := strings.Trim(u.Path, "/")
	if path == "" {
		return u.Host
	}
	parts := strings.Split(path, "/")
	return parts[len(parts)-1]
}
