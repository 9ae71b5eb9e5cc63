package config

import (
	"os"
	"time"
)

// Pipeline Constants
const (
	// DefaultFactoryLimit is the number of trends a factory run processes
	DefaultFactoryLimit = 3

	// DefaultPollInterval is how often the trend poller fetches sources
	DefaultPollInterval = 30 * time.Second
)

// Directory Constants
const (
	// BackgroundsDir holds generated background loop videos
	BackgroundsDir = "assets/backgrounds"

	// BlueprintDir is where edit blueprints are written
	BlueprintDir = "outputs/blueprints"

	// AudioDir is where narration audio is written
	AudioDir = "outputs/audio"

	// VideoDir is where finished videos are written
	VideoDir = "outputs/videos"

	// TempDir is the parent for per-render scratch directories
	TempDir = "/tmp"
)

// Kafka Constants
const (
	// DefaultKafkaTopic carries TrendOutput messages to render
	DefaultKafkaTopic = "trends.ranked"

	// DefaultKafkaGroupID identifies the render consumer group
	DefaultKafkaGroupID = "rivo-render"
)

// Getenv returns the environment value for key, or fallback when unset.
func Getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
