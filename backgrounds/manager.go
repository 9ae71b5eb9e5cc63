// Package backgrounds manages the looping visual assets behind captions.
// Each emotion maps to a synthetic loop recipe; assets are generated on
// demand and cached only by their presence on disk.
package backgrounds

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/vanzic/Project-Rivo/media"
)

// loopSeconds is the length of each generated background loop.
const loopSeconds = 10.0

// Info describes one background recipe.
type Info struct {
	Desc string
	// Filter is the lavfi recipe used to generate the loop.
	Filter string
	// Motion is "low" or "high"; high-motion loops are swapped out under
	// dense captions for readability.
	Motion string
}

// Catalog is the fixed emotion → background table.
var Catalog = map[string]Info{
	"curiosity": {
		Desc:   "Deep Purple/Blue Fractal",
		Filter: "mandelbrot=s=1080x1920:r=30:start_scale=2.5:end_scale=2.0:end_pts=300, hue=h=280:s=2",
		Motion: "low",
	},
	"tension": {
		Desc:   "Dark Red Pulsing Noise",
		Filter: "color=c=black:s=1080x1920:r=30, noise=alls=50:allf=t+u, eq=contrast=1.5, colorbalance=rs=0.3:gs=-0.3:bs=-0.3",
		Motion: "high",
	},
	"clarity": {
		Desc:   "Smooth Blue Gradient",
		Filter: "color=c=#001f3f:s=1080x1920:r=30, vignette=angle=PI/4",
		Motion: "low",
	},
	"payoff": {
		Desc:   "Gold Shimmer",
		Filter: "testsrc=s=1080x1920:r=30, drawgrid=w=100:h=100:t=2:c=gold",
		Motion: "high",
	},
	"urgency": {
		Desc:   "Fast Red Strobe/Noise",
		Filter: "color=c=red:s=1080x1920:r=30, drawbox=w=1080:h=1920:color=black@0.5:t=fill",
		Motion: "high",
	},
	"neutral": {
		Desc:   "Basic Grey",
		Filter: "color=c=gray:s=1080x1920:r=30",
		Motion: "low",
	},
}

// Manager resolves emotions to on-disk loop assets, generating missing ones
// through the media backend. It holds no in-memory cache; presence on disk is
// re-checked every call.
type Manager struct {
	backend  media.Backend
	assetDir string
}

func NewManager(backend media.Backend, assetDir string) *Manager {
	return &Manager{backend: backend, assetDir: assetDir}
}

// Get returns the asset path for an emotion, generating the loop if it does
// not exist yet. Unknown emotions fall back to neutral with a warning.
func (m *Manager) Get(emotion string) (string, error) {
	emotion = strings.ToLower(emotion)
	info, ok := Catalog[emotion]
	if !ok {
		log.Printf("Warning: unknown emotion %q, falling back to neutral", emotion)
		emotion = "neutral"
		info = Catalog[emotion]
	}

	path := filepath.Join(m.assetDir, emotion+".mp4")
	if _, err := os.Stat(path); err == nil {
		return path, nil
	}

	log.Printf("Background asset missing for %q, generating...", emotion)
	if err := os.MkdirAll(m.assetDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create asset dir: %w", err)
	}
	if err := m.backend.GenerateLoop(info.Filter, loopSeconds, path); err != nil {
		return "", fmt.Errorf("failed to generate background for %q: %w", emotion, err)
	}
	return path, nil
}

// Select picks a background for a beat. Readability rule: dense captions
// (more than five words) must not sit over a high-motion loop, so the emotion
// is overridden to neutral before lookup.
func (m *Manager) Select(emotion string, wordCount int) (string, error) {
	emotion = strings.ToLower(emotion)
	if wordCount > 5 {
		info, ok := Catalog[emotion]
		if !ok {
			info = Catalog["neutral"]
		}
		if info.Motion == "high" {
			log.Printf("Text heavy (%d words): overriding %q (high motion) -> neutral", wordCount, emotion)
			return m.Get("neutral")
		}
	}
	return m.Get(emotion)
}

// EnsureAll pre-generates every catalog asset.
func (m *Manager) EnsureAll() error {
	for emotion := range Catalog {
		if _, err := m.Get(emotion); err != nil {
			return err
		}
	}
	return nil
}
