package assembler

import (
	"crypto/md5"
	"encoding/binary"
	"fmt"
	"math/rand"

	"github.com/vanzic/Project-Rivo/presets"
)

// animParams are the per-beat slam constants: ephemeral, derived, never
// persisted.
type animParams struct {
	ZoomStart float64
	ZoomDecay float64
	JitterX   int
	JitterY   int
}

// beatSeed derives a deterministic seed from a beat's text and index, so the
// same blueprint regenerates pixel-identical animation while distinct beats
// (even with identical text) diverge.
func beatSeed(text string, index int) int64 {
	sum := md5.Sum([]byte(fmt.Sprintf("%s_%d", text, index)))
	return int64(binary.BigEndian.Uint64(sum[:8]))
}

// animationFor samples the slam parameters uniformly within the preset's
// ranges using a PRNG scoped to this single beat.
func animationFor(text string, index int, preset presets.VisualPreset) animParams {
	rng := rand.New(rand.NewSource(beatSeed(text, index)))

	p := animParams{
		ZoomStart: preset.ZoomRange.Min + rng.Float64()*(preset.ZoomRange.Max-preset.ZoomRange.Min),
		ZoomDecay: preset.ZoomDecayRange.Min + rng.Float64()*(preset.ZoomDecayRange.Max-preset.ZoomDecayRange.Min),
	}
	if j := preset.JitterAmount; j > 0 {
		p.JitterX = rng.Intn(2*j+1) - j
		p.JitterY = rng.Intn(2*j+1) - j
	}
	return p
}

// layoutFor maps a caption layout tag to drawtext font size and position
// expressions. "minimal" never reaches here; its caption is already empty.
func layoutFor(layout string) (fontSize int, xExpr, yExpr string) {
	xExpr = "(w-text_w)/2"
	switch layout {
	case "bottom":
		return 60, xExpr, "h-(h/3)"
	case "top":
		return 90, xExpr, "h/5"
	default: // center
		return 80, xExpr, "(h-text_h)/2"
	}
}
