package storage

import (
	"context"
	"fmt"
	"os"
	"path"

	"github.com/vanzic/Project-Rivo/types"
)

// Archiver copies pipeline artifacts under a per-trend prefix in a bucket.
type Archiver struct {
	s3     *S3
	bucket string
}

func NewArchiver(s3 *S3, bucket string) *Archiver {
	return &Archiver{s3: s3, bucket: bucket}
}

// ArchiveVideo uploads a rendered video under trends/<key>/.
// Returns the object key.
func (a *Archiver) ArchiveVideo(ctx context.Context, trendKey, videoPath string) (string, error) {
	return a.archiveFile(ctx, trendKey, videoPath, "video/mp4")
}

// ArchiveBlueprint uploads a blueprint JSON file under trends/<key>/.
func (a *Archiver) ArchiveBlueprint(ctx context.Context, trendKey, blueprintPath string) (string, error) {
	return a.archiveFile(ctx, trendKey, blueprintPath, "application/json")
}

func (a *Archiver) archiveFile(ctx context.Context, trendKey, filePath, contentType string) (string, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to open %s for archive: %w", filePath, err)
	}
	defer file.Close()

	key := path.Join("trends", types.SafeKey(trendKey), path.Base(filePath))
	if err := a.s3.Put(ctx, a.bucket, key, file, contentType); err != nil {
		return "", fmt.Errorf("failed to archive %s: %w", filePath, err)
	}
	return key, nil
}
