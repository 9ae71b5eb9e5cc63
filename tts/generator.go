package tts

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/vanzic/Project-Rivo/types"
)

// Generator converts a full script into a single voiceover file using the
// configured provider.
type Generator struct {
	provider  Provider
	outputDir string
}

func NewGenerator(provider Provider, outputDir string) *Generator {
	return &Generator{provider: provider, outputDir: outputDir}
}

// GenerateAudio speaks the concatenated sections and returns the output path.
func (g *Generator) GenerateAudio(ctx context.Context, script *types.Script) (string, error) {
	if err := os.MkdirAll(g.outputDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create audio dir: %w", err)
	}
	filename := fmt.Sprintf("%s_%d.wav", sanitizeFilename(script.TrendKey), script.Score)
	outputPath := filepath.Join(g.outputDir, filename)

	log.Printf("Generating audio for trend %q using %s", script.TrendKey, g.provider.Name())
	if err := g.provider.Synthesize(ctx, script.FullText(), outputPath); err != nil {
		return "", fmt.Errorf("audio generation failed for %q: %w", script.TrendKey, err)
	}
	return outputPath, nil
}

// sanitizeFilename builds a safe lowercase filename token from a trend key.
func sanitizeFilename(key string) string {
	var b strings.Builder
	for _, r := range strings.ReplaceAll(key, " ", "_") {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || r == '-' {
			b.WriteRune(unicode.ToLower(r))
		}
	}
	s := b.String()
	if len(s) > 50 {
		s = s[:50]
	}
	return s
}
