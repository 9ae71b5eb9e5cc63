// Package presets holds the named bundles of pacing and animation constants
// that control how aggressively a video is cut and animated. Presets are
// pure data; selection is a function of the trend's popularity score.
package presets

// Range is an inclusive min/max pair for sampling animation parameters.
type Range struct {
	Min float64
	Max float64
}

// VisualPreset bundles the pacing constants for one rendering style.
type VisualPreset struct {
	Name string
	// WordLimit caps how many words a caption may show.
	WordLimit int
	// ZoomRange is the starting magnification of the caption slam.
	ZoomRange Range
	// ZoomDecayRange is the per-frame shrink rate back toward 1.0.
	ZoomDecayRange Range
	// JitterAmount is the max pixel offset applied to the composite.
	JitterAmount int
}

var (
	Aggressive = VisualPreset{
		Name:           "aggressive",
		WordLimit:      2,
		ZoomRange:      Range{1.30, 1.50},
		ZoomDecayRange: Range{0.06, 0.10},
		JitterAmount:   20,
	}

	Balanced = VisualPreset{
		Name:           "balanced",
		WordLimit:      3,
		ZoomRange:      Range{1.15, 1.30},
		ZoomDecayRange: Range{0.04, 0.08},
		JitterAmount:   15,
	}

	Calm = VisualPreset{
		Name:           "calm",
		WordLimit:      5,
		ZoomRange:      Range{1.05, 1.15},
		ZoomDecayRange: Range{0.01, 0.03},
		JitterAmount:   5,
	}
)

var all = map[string]VisualPreset{
	"aggressive": Aggressive,
	"balanced":   Balanced,
	"calm":       Calm,
}

// Get returns the preset for name, falling back to balanced for unknown names.
func Get(name string) VisualPreset {
	if p, ok := all[name]; ok {
		return p
	}
	return Balanced
}

// ForScore selects a preset from a popularity score: hot topics get cut hard,
// slow burners get room to breathe.
func ForScore(score int) VisualPreset {
	switch {
	case score > 85:
		return Aggressive
	case score < 50:
		return Calm
	default:
		return Balanced
	}
}
