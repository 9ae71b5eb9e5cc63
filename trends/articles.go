package trends

import (
	"fmt"
	"log"
	"sync"
	"time"

	readability "github.com/go-shiori/go-readability"
	"github.com/mmcdole/gofeed"

	"github.com/vanzic/Project-Rivo/types"
)

const (
	extractWorkers   = 5
	extractorTimeout = 30 * time.Second
)

// FetchArticles retrieves and parses an RSS/Atom feed, returning article metadata
func FetchArticles(feedURL string, maxCount int) ([]*types.Article, error) {
	parser := gofeed.NewParser()
	feed, err := parser.ParseURL(feedURL)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch feed: %w", err)
	}

	count := len(feed.Items)
	if count > maxCount {
		count = maxCount
	}
	articles := make([]*types.Article, 0, count)

	for i := 0; i < count; i++ {
		item := feed.Items[i]

		// Use GUID if available, otherwise generate from URL
		id := item.GUID
		if id == "" && item.Link != "" {
			id = types.GenerateID(item.Link)
		}

		var publishedAt time.Time
		if item.PublishedParsed != nil {
			publishedAt = *item.PublishedParsed
		} else if item.UpdatedParsed != nil {
			publishedAt = *item.UpdatedParsed
		}

		summary := item.Description
		if summary == "" {
			summary = item.Content
		}

		articles = append(articles, &types.Article{
			ID:          id,
			Title:       item.Title,
			URL:         item.Link,
			PublishedAt: publishedAt,
			FetchedAt:   time.Now(),
			Summary:     summary,
		})
	}

	return articles, nil
}

// ExtractAllContent fetches and extracts full content for all articles using a worker pool
func ExtractAllContent(articles []*types.Article) {
	var wg sync.WaitGroup
	articleChan := make(chan *types.Article, len(articles))

	for i := 0; i < extractWorkers; i++ {
		go func(workerID int) {
			for article := range articleChan {
				if err := extractContent(article); err != nil {
					article.ExtractionError = err.Error()
					log.Printf("[Worker %d] Failed to extract %s: %v", workerID, article.URL, err)
				}
				wg.Done()
			}
		}(i)
	}

	for _, article := range articles {
		wg.Add(1)
		articleChan <- article
	}

	wg.Wait()
	close(articleChan)
}

// extractContent fetches and extracts full content for a single article
func extractContent(article *types.Article) error {
	if article.URL == "" {
		return fmt.Errorf("article URL is empty")
	}

	extracted, err := readability.FromURL(article.URL, extractorTimeout)
	if err != nil {
		return fmt.Errorf("readability extraction failed: %w", err)
	}

	article.FullContentText = extracted.TextContent
	article.Excerpt = extracted.Excerpt

	log.Printf("✓ Extracted: %s", article.Title)
	return nil
}
