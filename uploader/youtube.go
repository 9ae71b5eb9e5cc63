// Package uploader publishes rendered videos to YouTube as shorts.
package uploader

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"

	"github.com/vanzic/Project-Rivo/types"
)

// VideoMetadata describes the upload: title, description, tags, category.
type VideoMetadata struct {
	Title       string
	Description string
	Tags        []string
	CategoryID  string
}

type Uploader struct {
	service *youtube.Service
}

func NewUploader(serviceAccountFile string) (*Uploader, error) {
	ctx := context.Background()

	data, err := os.ReadFile(serviceAccountFile)
	if err != nil {
		return nil, fmt.Errorf("unable to read service account file: %w", err)
	}

	config, err := google.JWTConfigFromJSON(data, youtube.YoutubeUploadScope)
	if err != nil {
		return nil, fmt.Errorf("unable to parse service account: %w", err)
	}

	client := config.Client(ctx)

	service, err := youtube.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		return nil, fmt.Errorf("unable to create YouTube service: %w", err)
	}

	return &Uploader{service: service}, nil
}

func (u *Uploader) UploadVideo(videoPath string, metadata VideoMetadata) (string, error) {
	file, err := os.Open(videoPath)
	if err != nil {
		return "", fmt.Errorf("failed to open video file: %w", err)
	}
	defer file.Close()

	fileInfo, err := file.Stat()
	if err != nil {
		return "", fmt.Errorf("failed to stat video file: %w", err)
	}

	log.Printf("📤 Uploading: %s (%.2f MB)", videoPath, float64(fileInfo.Size())/(1024*1024))

	video := &youtube.Video{
		Snippet: &youtube.VideoSnippet{
			Title:       metadata.Title,
			Description: metadata.Description,
			Tags:        metadata.Tags,
			CategoryId:  metadata.CategoryID,
		},
		Status: &youtube.VideoStatus{
			PrivacyStatus:           "public",
			SelfDeclaredMadeForKids: false,
		},
	}

	call := u.service.Videos.Insert([]string{"snippet", "status"}, video)
	call = call.Media(file)

	response, err := call.Do()
	if err != nil {
		return "", fmt.Errorf("failed to upload video: %w", err)
	}

	videoID := response.Id
	log.Printf("✅ Uploaded! https://youtube.com/shorts/%s", videoID)

	return videoID, nil
}

// Publish uploads the video with metadata derived from the trend.
func (u *Uploader) Publish(trend *types.TrendOutput, videoPath string) (string, error) {
	return u.UploadVideo(videoPath, GenerateMetadata(trend))
}

// GenerateMetadata builds upload metadata from a trend. Titles are capped
// at YouTube's 100 character limit.
func GenerateMetadata(trend *types.TrendOutput) VideoMetadata {
	title := trend.TrendKey
	if len(trend.SampleTitles) > 0 {
		title = trend.SampleTitles[0]
	}
	if len(title) > 100 {
		title = title[:97] + "..."
	}

	description := fmt.Sprintf(
		"%s\n\n"+
			"🔥 Trending on: %s\n\n"+
			"📱 Follow for daily updates!\n"+
			"#trending #news #shorts",
		title,
		strings.Join(trend.Sources, ", "),
	)

	tags := []string{
		"trending",
		"news",
		"shorts",
		"daily updates",
	}
	tags = append(tags, trend.TrendKey)

	return VideoMetadata{
		Title:       title,
		Description: description,
		Tags:        tags,
		CategoryID:  "25",
	}
}
