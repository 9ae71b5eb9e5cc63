package factory

import (
	"context"
	"log"
	"os"
	"strings"
	"time"

	"github.com/vanzic/Project-Rivo/assembler"
	"github.com/vanzic/Project-Rivo/backgrounds"
	"github.com/vanzic/Project-Rivo/blueprint"
	"github.com/vanzic/Project-Rivo/config"
	"github.com/vanzic/Project-Rivo/media"
	"github.com/vanzic/Project-Rivo/scriptgen"
	"github.com/vanzic/Project-Rivo/storage"
	"github.com/vanzic/Project-Rivo/tts"
	"github.com/vanzic/Project-Rivo/uploader"
)

// NewDefault builds the production pipeline around the given trend ranker:
// ffmpeg rendering, piper narration, and the standard output directories.
// Archive and upload stages are attached when their env config is present.
func NewDefault(ranker TrendRanker) *Factory {
	backend := media.NewFFmpeg()
	bg := backgrounds.NewManager(backend, config.BackgroundsDir)

	f := &Factory{
		Ranker:       ranker,
		Scripts:      scriptgen.New(time.Now().UnixNano()),
		Blueprints:   blueprint.NewGenerator(),
		Audio:        tts.NewGenerator(tts.NewProviderFromEnv(), config.AudioDir),
		Video:        assembler.New(backend, bg, config.VideoDir, config.TempDir),
		Save:         blueprint.Save,
		BlueprintDir: config.BlueprintDir,
	}

	if archiver := archiverFromEnv(); archiver != nil {
		f.Archive = archiver
	}
	if publisher := publisherFromEnv(); publisher != nil {
		f.Publish = publisher
	}
	return f
}

// archiverFromEnv returns an S3 archiver when S3_BUCKET is set.
// Optional: S3_REGION, S3_PROFILE, S3_USE_PATH_STYLE=true
func archiverFromEnv() Archiver {
	bucket := strings.TrimSpace(os.Getenv("S3_BUCKET"))
	if bucket == "" {
		return nil
	}

	client, err := storage.NewS3(context.Background(), storage.S3Config{
		Region:       strings.TrimSpace(os.Getenv("S3_REGION")),
		Profile:      strings.TrimSpace(os.Getenv("S3_PROFILE")),
		UsePathStyle: strings.EqualFold(strings.TrimSpace(os.Getenv("S3_USE_PATH_STYLE")), "true"),
	})
	if err != nil {
		log.Printf("Warning: failed to init S3 client: %v (archiving disabled)", err)
		return nil
	}
	return storage.NewArchiver(client, bucket)
}

// publisherFromEnv returns a YouTube publisher when YOUTUBE_SERVICE_ACCOUNT
// points at a service account file.
func publisherFromEnv() Publisher {
	serviceAccount := strings.TrimSpace(os.Getenv("YOUTUBE_SERVICE_ACCOUNT"))
	if serviceAccount == "" {
		return nil
	}

	up, err := uploader.NewUploader(serviceAccount)
	if err != nil {
		log.Printf("Warning: failed to init YouTube uploader: %v (uploads disabled)", err)
		return nil
	}
	return up
}
