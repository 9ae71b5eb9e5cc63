// Package blueprint turns a five-section script into an ordered sequence of
// timed beats: per-fragment durations, captions, emotions, visual intents
// and pattern breaks, ready for the assembler to render against real audio.
package blueprint

import (
	"strings"

	"github.com/vanzic/Project-Rivo/presets"
	"github.com/vanzic/Project-Rivo/types"
)

const (
	// WordsPerSecond models average speech pace; it is the single source
	// of timing truth before the assembler rescales against real audio.
	WordsPerSecond = 2.5

	// PatternBreakThreshold is the longest a visual run may sustain before
	// a break is forced.
	PatternBreakThreshold = 2.0

	// MinBeatDuration floors the estimate for very short fragments.
	MinBeatDuration = 0.5
)

// sectionEmotions maps each script section to its fixed emotional register.
var sectionEmotions = map[string]string{
	"hook":      "curiosity",
	"context":   "tension",
	"core_info": "clarity",
	"payoff":    "payoff",
	"cta":       "urgency",
}

// Generator owns the pacing state machine for one blueprint at a time.
// It is stateless between calls; each Generate builds fresh rotations.
type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

// Generate builds a blueprint with the preset chosen by the script's score.
func (g *Generator) Generate(script *types.Script) *types.Blueprint {
	return g.GenerateWithPreset(script, presets.ForScore(script.Score))
}

// GenerateWithPreset builds a blueprint with a caller-forced preset.
//
// The pacing timer persists across fragments and sections: a break is forced
// on the first fragment of a section, or when the running time since the last
// break would exceed the threshold. A break advances both the visual-pattern
// and caption-layout rotations and restarts the timer at the breaking
// fragment's own duration.
func (g *Generator) GenerateWithPreset(script *types.Script, preset presets.VisualPreset) *types.Blueprint {
	bp := &types.Blueprint{
		TrendKey:    script.TrendKey,
		VisualStyle: preset.Name,
	}

	visuals := newRotation("cut", "zoom", "text_overlay", "broll")
	layouts := newRotation("center", "bottom", "top", "minimal")
	maxFragmentWords := max(4, preset.WordLimit*2)

	timeSinceBreak := 0.0
	hookOpened := false

	for _, section := range script.Sections() {
		fragments := splitOverlong(tokenizeSection(section.Text), maxFragmentWords)
		emotion, ok := sectionEmotions[section.Name]
		if !ok {
			emotion = "neutral"
		}

		for i, fragment := range fragments {
			duration := estimateDuration(fragment)

			var visual, layout string
			breaking := i == 0 || timeSinceBreak+duration > PatternBreakThreshold
			if breaking {
				visual = visuals.Next()
				layout = layouts.Next()
				timeSinceBreak = duration
			} else {
				visual = "sustain"
				layout = layouts.Current()
				timeSinceBreak += duration
			}

			caption := synthesizeCaption(fragment, preset.WordLimit)
			if section.Name == "hook" && !hookOpened {
				// Hook opener: maximal intrigue framing, two words max,
				// pinned to the top of the frame.
				hookOpened = true
				layout = "top"
				caption = strings.Join(truncateWords(strings.Fields(caption), 2), " ")
			} else if layout == "minimal" {
				caption = ""
			}

			bp.Beats = append(bp.Beats, types.Beat{
				Section:           section.Name,
				Text:              fragment,
				Caption:           caption,
				EstimatedDuration: duration,
				Emotion:           emotion,
				VisualIntent:      visual,
				PatternBreak:      breaking,
				CaptionLayout:     layout,
			})
		}
	}

	closeLoop(bp)
	return bp
}

// closeLoop applies the visual echo: the final cta beat returns to the
// opening's curiosity register and a centered layout so the ending loops back
// to the hook's color identity. The generated caption is kept unchanged.
func closeLoop(bp *types.Blueprint) {
	if len(bp.Beats) == 0 {
		return
	}
	last := &bp.Beats[len(bp.Beats)-1]
	if last.Section != "cta" {
		return
	}
	last.Emotion = "curiosity"
	last.CaptionLayout = "center"
}

func estimateDuration(text string) float64 {
	d := float64(len(strings.Fields(text))) / WordsPerSecond
	if d < MinBeatDuration {
		return MinBeatDuration
	}
	return d
}
