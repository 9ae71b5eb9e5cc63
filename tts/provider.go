// Package tts abstracts the speech-synthesis backends. The rendering core
// never speaks text itself; it only consumes the duration of the file a
// provider writes.
package tts

import (
	"context"
	"fmt"
	"log"
	"os"
)

// Provider converts text to an audio file at outputPath, or fails.
type Provider interface {
	Synthesize(ctx context.Context, text, outputPath string) error
	Name() string
}

// NewProviderFromEnv selects a provider by the TTS_BACKEND environment
// variable. Unknown backends fall back to piper with a warning.
func NewProviderFromEnv() Provider {
	backend := os.Getenv("TTS_BACKEND")
	switch backend {
	case "", "piper":
		return NewPiper(getenvDefault("PIPER_BINARY_PATH", "piper"), os.Getenv("PIPER_MODEL_PATH"))
	case "elevenlabs":
		return &ElevenLabs{}
	default:
		log.Printf("Unknown TTS backend %q, falling back to piper", backend)
		return NewPiper(getenvDefault("PIPER_BINARY_PATH", "piper"), os.Getenv("PIPER_MODEL_PATH"))
	}
}

// ElevenLabs is a placeholder for the hosted backend; it is wired for
// selection but not enabled.
type ElevenLabs struct{}

func (e *ElevenLabs) Name() string { return "elevenlabs" }

func (e *ElevenLabs) Synthesize(ctx context.Context, text, outputPath string) error {
	return fmt.Errorf("elevenlabs backend is not enabled; use piper")
}

func getenvDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
