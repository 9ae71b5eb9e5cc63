package trends

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/vanzic/Project-Rivo/config"
	"github.com/vanzic/Project-Rivo/dedup"
	"github.com/vanzic/Project-Rivo/types"
)

// Store persists trend state across poll cycles. The Redis-backed
// implementation lives in the store package.
type Store interface {
	// MarkSeen records a raw trend string and reports whether it was new.
	MarkSeen(ctx context.Context, trendID string) (bool, error)
	// IncrementScore bumps a normalized trend key and appends metadata.
	IncrementScore(ctx context.Context, trendKey, source, title string) error
	// TopTrends returns the highest scoring recent trends.
	TopTrends(ctx context.Context, limit int) ([]types.TrendOutput, error)
}

// Deduper screens a normalized trend key for exact or semantic duplicates
// and records it when new. The bloom/embeddings implementation lives in the
// dedup package.
type Deduper interface {
	Process(trendKey string) (*dedup.Result, error)
}

// Poller periodically fetches trends from all sources, deduplicates them
// against the store, and scores the normalized keys.
type Poller struct {
	sources  []Source
	store    Store
	dedup    Deduper
	interval time.Duration
	stop     chan struct{}
	done     chan struct{}
}

// NewPoller builds a poller. Non-positive intervals would panic the ticker,
// so they fall back to the default with a warning.
func NewPoller(sources []Source, store Store, interval time.Duration) *Poller {
	if interval <= 0 {
		log.Printf("Invalid poll interval %s, using %s", interval, config.DefaultPollInterval)
		interval = config.DefaultPollInterval
	}
	return &Poller{
		sources:  sources,
		store:    store,
		interval: interval,
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// WithDeduper attaches a duplicate screen consulted before scoring.
func (p *Poller) WithDeduper(d Deduper) *Poller {
	p.dedup = d
	return p
}

// Start launches the background polling loop.
func (p *Poller) Start() {
	log.Printf("Trend poller starting, interval %s", p.interval)
	go p.loop()
}

// Stop signals the loop to exit and waits for the in-flight cycle.
func (p *Poller) Stop() {
	log.Println("Stopping trend poller...")
	close(p.stop)
	<-p.done
	log.Println("Trend poller stopped cleanly.")
}

func (p *Poller) loop() {
	defer close(p.done)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	// First cycle runs immediately, then on the ticker.
	p.PollOnce(context.Background())
	for {
		select {
		case <-p.stop:
			return
		case <-ticker.C:
			p.PollOnce(context.Background())
		}
	}
}

// PollOnce runs a single poll cycle across all sources.
func (p *Poller) PollOnce(ctx context.Context) {
	var totalFetched, newCount, duplicateCount int

	for _, source := range p.sources {
		fetched, err := source.FetchTrends()
		if err != nil {
			log.Printf("Error fetching from source %s: %v", source.Name(), err)
			continue
		}
		totalFetched += len(fetched)

		for _, trend := range fetched {
			isNew, err := p.store.MarkSeen(ctx, trend)
			if err != nil {
				log.Printf("Dedup check failed for %q: %v", trend, err)
				continue
			}
			if !isNew {
				duplicateCount++
				continue
			}

			newCount++
			log.Printf("New trend found: %q", trend)

			rawTitle := types.ParseTrendString(trend)
			trendKey := types.NormalizeText(rawTitle)
			if trendKey == "" {
				continue
			}
			if p.dedup != nil {
				res, err := p.dedup.Process(trendKey)
				if err != nil {
					// Scoring proceeds; a dedup outage must not stall the poll.
					log.Printf("Dedup screen failed for %q: %v", trendKey, err)
				} else if res.IsDuplicate {
					duplicateCount++
					if res.MatchingKey != "" {
						log.Printf("Skipping %q: near-duplicate of %q (%.0f%% similar)",
							trendKey, res.MatchingKey, res.SimilarityScore*100)
					} else {
						log.Printf("Skipping %q: already in bloom filter", trendKey)
					}
					continue
				}
			}
			if err := p.store.IncrementScore(ctx, trendKey, source.Name(), rawTitle); err != nil {
				log.Printf("Scoring failed for %q: %v", trendKey, err)
				continue
			}
			log.Printf("Trend scored: %q", trendKey)
		}
	}

	log.Printf("Poll metrics: fetched=%d, new=%d, duplicates=%d", totalFetched, newCount, duplicateCount)

	top, err := p.store.TopTrends(ctx, 5)
	if err != nil {
		log.Printf("Ranking failed: %v", err)
		return
	}
	if len(top) > 0 {
		if out, err := json.MarshalIndent(top, "", "  "); err == nil {
			log.Printf("Top trends: %s", out)
		}
	}
}
