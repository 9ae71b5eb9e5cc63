// Package media defines the narrow composition interface the rendering core
// drives, plus the production FFmpeg implementation. The engine is treated as
// a black box invoked through one-shot blocking calls; swapping the backend
// (e.g. for tests) swaps every external invocation at once.
package media

// SegmentSpec describes one short visual segment: a slice of a looping
// background composited with an optional slam-animated caption layer.
type SegmentSpec struct {
	// BackgroundPath is the looping asset to slice.
	BackgroundPath string
	// Offset is where in the loop this slice starts, for continuity with
	// the previous segment.
	Offset float64
	// Duration is the segment length in seconds.
	Duration float64

	// Caption text; empty means pure background, no caption layer.
	Caption  string
	FontSize int
	// XExpr/YExpr position the caption in ffmpeg drawtext expressions.
	XExpr string
	YExpr string

	// Slam animation: start oversized at ZoomStart, shrink by ZoomDecay
	// per frame toward 1.0, with a constant pixel jitter on the composite.
	ZoomStart float64
	ZoomDecay float64
	JitterX   int
	JitterY   int

	OutputPath string
}

// Backend is the media-composition engine the core drives. Implementations
// block for the duration of real encoding; callers needing cancellation must
// kill the underlying process themselves.
type Backend interface {
	// Probe returns the exact duration of a media file in seconds.
	Probe(path string) (float64, error)
	// RenderSegment composes one background-plus-caption segment.
	RenderSegment(spec SegmentSpec) error
	// Concat joins pre-encoded segments, in order, into one silent track.
	Concat(segments []string, outputPath string) error
	// Mux combines a visual track with an audio track, truncated to the
	// shorter of the two.
	Mux(videoPath, audioPath, outputPath string) error
	// GenerateLoop renders a synthetic looping clip from a filter recipe.
	GenerateLoop(filter string, seconds float64, outputPath string) error
}
