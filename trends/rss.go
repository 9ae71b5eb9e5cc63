package trends

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"

	"github.com/mmcdole/gofeed"
)

// RSSSource fetches trends from an RSS/Atom feed. Each item title becomes
// a trend string carrying a short link-derived ID and the source name.
type RSSSource struct {
	url    string
	name   string
	parser *gofeed.Parser
}

func NewRSSSource(url, name string) *RSSSource {
	return &RSSSource{
		url:    url,
		name:   name,
		parser: gofeed.NewParser(),
	}
}

func (s *RSSSource) Name() string { return s.name }

// FetchTrends parses the feed and returns one trend string per item.
// Items without a title or link are skipped.
func (s *RSSSource) FetchTrends() ([]string, error) {
	feed, err := s.parser.ParseURL(s.url)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch feed %s: %w", s.url, err)
	}

	trends := make([]string, 0, len(feed.Items))
	for _, item := range feed.Items {
		if item.Title == "" || item.Link == "" {
			continue
		}
		hash := md5.Sum([]byte(item.Link))
		id := hex.EncodeToString(hash[:])[:8]
		trends = append(trends, fmt.Sprintf("%s [%s] | %s", item.Title, id, s.name))
	}
	return trends, nil
}
