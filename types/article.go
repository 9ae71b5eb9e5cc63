package types

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Article is a single item pulled from an RSS trend source.
type Article struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	URL             string    `json:"url"`
	PublishedAt     time.Time `json:"published_at"`
	FetchedAt       time.Time `json:"fetched_at"`
	Summary         string    `json:"summary"`
	FullContentText string    `json:"full_content_text,omitempty"`
	Excerpt         string    `json:"excerpt,omitempty"`
	ExtractionError string    `json:"extraction_error,omitempty"`
}

// GenerateID creates a stable short ID from a URL.
func GenerateID(url string) string {
	hash := sha256.Sum256([]byte(url))
	return hex.EncodeToString(hash[:])[:16]
}
