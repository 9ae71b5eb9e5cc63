package tts

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// Piper drives the offline piper binary. Text is fed over stdin; piper
// writes a wav at the requested path.
type Piper struct {
	binaryPath string
	modelPath  string
}

func NewPiper(binaryPath, modelPath string) *Piper {
	if modelPath != "" {
		if _, err := os.Stat(modelPath); err != nil {
			log.Printf("Warning: piper model not found at %s", modelPath)
		}
	}
	return &Piper{binaryPath: binaryPath, modelPath: modelPath}
}

func (p *Piper) Name() string { return "piper" }

func (p *Piper) Synthesize(ctx context.Context, text, outputPath string) error {
	if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
		return fmt.Errorf("failed to create audio dir: %w", err)
	}

	args := []string{"--output_file", outputPath}
	if p.modelPath != "" {
		args = append([]string{"--model", p.modelPath}, args...)
	}

	cmd := exec.CommandContext(ctx, p.binaryPath, args...)
	cmd.Stdin = strings.NewReader(text)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return fmt.Errorf("piper binary not found at %s: %w", p.binaryPath, err)
		}
		return fmt.Errorf("piper synthesis failed: %s: %w", strings.TrimSpace(stderr.String()), err)
	}
	return nil
}
