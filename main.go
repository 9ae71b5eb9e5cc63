package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/vanzic/Project-Rivo/api"
	"github.com/vanzic/Project-Rivo/config"
	"github.com/vanzic/Project-Rivo/dedup"
	"github.com/vanzic/Project-Rivo/factory"
	"github.com/vanzic/Project-Rivo/kafka"
	"github.com/vanzic/Project-Rivo/store"
	"github.com/vanzic/Project-Rivo/trends"
)

func main() {
	// Load environment variables from .env if present (non-fatal if missing)
	_ = godotenv.Load()

	mode := flag.String("mode", "api", "Run mode: poll, factory, api, kafka")
	limit := flag.Int("limit", config.DefaultFactoryLimit, "Number of trends to process (factory mode)")
	interval := flag.Duration("interval", config.DefaultPollInterval, "Poll interval (poll mode)")
	feeds := flag.String("feeds", trends.DefaultFeedPreset, "Comma-separated feed presets or URLs (poll mode)")
	flag.Parse()

	trendStore, err := store.NewFromEnv()
	if err != nil {
		log.Fatalf("Failed to connect to trend store: %v", err)
	}
	defer trendStore.Close()

	switch *mode {
	case "poll":
		runPoller(trendStore, *feeds, *interval)
	case "factory":
		runFactory(trendStore, *limit)
	case "api":
		runAPI(trendStore)
	case "kafka":
		runKafka(trendStore)
	default:
		log.Fatalf("Unknown mode %q (want poll, factory, api, or kafka)", *mode)
	}
}

// runPoller polls the configured feeds until interrupted.
func runPoller(trendStore *store.RedisStore, feeds string, interval time.Duration) {
	var sources []trends.Source
	for _, feed := range strings.Split(feeds, ",") {
		feed = strings.TrimSpace(feed)
		if feed == "" {
			continue
		}
		if feed == "mock" {
			sources = append(sources, trends.NewMockSource(time.Now().UnixNano()))
			continue
		}
		sources = append(sources, trends.NewRSSSource(trends.ResolveFeedURL(feed), feed))
	}
	if len(sources) == 0 {
		log.Fatal("No trend sources configured")
	}

	poller := trends.NewPoller(sources, trendStore, interval)
	if deduper, err := dedup.NewFromEnv(); err != nil {
		log.Printf("Warning: duplicate screening disabled: %v", err)
	} else {
		defer deduper.Close()
		poller.WithDeduper(deduper)
	}
	poller.Start()

	waitForSignal()
	poller.Stop()
}

// runFactory renders the current top trends once and exits.
func runFactory(trendStore *store.RedisStore, limit int) {
	f := factory.NewDefault(trendStore)
	if _, err := f.Run(context.Background(), limit); err != nil {
		log.Fatalf("Factory run failed: %v", err)
	}
}

// runAPI serves the HTTP API until interrupted.
func runAPI(trendStore *store.RedisStore) {
	addr := ":8080"
	if v := os.Getenv("PORT"); v != "" {
		addr = ":" + v
	}

	r := api.NewRouter(api.Deps{
		Store:   trendStore,
		Factory: factory.NewDefault(trendStore),
	})
	log.Printf("Starting API server on %s", addr)
	log.Println("API endpoints available:")
	log.Println("  GET  /api/health")
	log.Println("  GET  /api/trends/top")
	log.Println("  GET  /api/articles")
	log.Println("  POST /api/render")
	log.Println("  POST /api/render/batch")

	if err := http.ListenAndServe(addr, r); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

// runKafka consumes trend messages until interrupted.
func runKafka(trendStore *store.RedisStore) {
	brokers := strings.Split(config.Getenv("KAFKA_BROKERS", "localhost:9092"), ",")

	consumer, err := kafka.NewConsumer(kafka.ConsumerConfig{
		Brokers: brokers,
		Topic:   config.Getenv("KAFKA_TOPIC", config.DefaultKafkaTopic),
		GroupID: config.Getenv("KAFKA_GROUP_ID", config.DefaultKafkaGroupID),
		Handler: kafka.NewTrendHandler(factory.NewDefault(trendStore)),
	})
	if err != nil {
		log.Fatalf("Failed to create Kafka consumer: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := consumer.Start(ctx); err != nil {
		log.Fatalf("Failed to start Kafka consumer: %v", err)
	}

	waitForSignal()
	cancel()
	if err := consumer.Close(); err != nil {
		log.Printf("Error closing consumer: %v", err)
	}
}

func waitForSignal() {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan
}
