package main

import (
	"flag"
	"log"

	"github.com/joho/godotenv"

	"github.com/vanzic/Project-Rivo/backgrounds"
	"github.com/vanzic/Project-Rivo/config"
	"github.com/vanzic/Project-Rivo/media"
)

// Pre-generates the background loop for every emotion so factory runs
// don't pay the generation cost on first use.
func main() {
	_ = godotenv.Load()

	assetDir := flag.String("dir", config.BackgroundsDir, "Directory for background assets")
	flag.Parse()

	manager := backgrounds.NewManager(media.NewFFmpeg(), *assetDir)
	if err := manager.EnsureAll(); err != nil {
		log.Fatalf("Background generation failed: %v", err)
	}
	log.Printf("All backgrounds ready in %s", *assetDir)
}
