package types

// Beat is one timed unit of a blueprint: a spoken fragment plus the visual
// and caption directives for it. Beats are created once by the blueprint
// generator and never mutated; the assembler derives a separate effective
// duration when rescaling against real audio.
type Beat struct {
	Section           string  `json:"section"`
	Text              string  `json:"text"`
	Caption           string  `json:"caption"`
	EstimatedDuration float64 `json:"estimated_duration"`
	Emotion           string  `json:"emotion"`
	VisualIntent      string  `json:"visual_intent"`
	PatternBreak      bool    `json:"pattern_break"`
	CaptionLayout     string  `json:"caption_layout"`
}

// Blueprint is the ordered edit plan for one trend's video.
type Blueprint struct {
	TrendKey    string `json:"trend_key"`
	VisualStyle string `json:"visual_style"`
	Beats       []Beat `json:"beats"`
}

// TotalEstimatedDuration sums the pre-rescale beat durations.
func (b *Blueprint) TotalEstimatedDuration() float64 {
	total := 0.0
	for _, beat := range b.Beats {
		total += beat.EstimatedDuration
	}
	return total
}
