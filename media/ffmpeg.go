package media

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	ffmpeg "github.com/u2takey/ffmpeg-go"
)

const (
	frameWidth  = 1080
	frameHeight = 1920
	frameRate   = 30
)

// FFmpeg drives the ffmpeg/ffprobe binaries through one-shot blocking
// invocations. It is stateless; every call is independent.
type FFmpeg struct{}

func NewFFmpeg() *FFmpeg {
	return &FFmpeg{}
}

type probeFormat struct {
	Format struct {
		Duration string `json:"duration"`
	} `json:"format"`
}

// Probe returns the container duration reported by ffprobe.
func (f *FFmpeg) Probe(path string) (float64, error) {
	out, err := ffmpeg.Probe(path)
	if err != nil {
		return 0, fmt.Errorf("ffprobe failed for %s: %w", path, err)
	}

	var info probeFormat
	if err := json.Unmarshal([]byte(out), &info); err != nil {
		return 0, fmt.Errorf("failed to parse ffprobe output: %w", err)
	}

	duration, err := strconv.ParseFloat(strings.TrimSpace(info.Format.Duration), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid duration %q from ffprobe: %w", info.Format.Duration, err)
	}
	return duration, nil
}

// RenderSegment composes a single beat segment: the looping background is
// sliced at the requested offset, cropped to the vertical frame, softened and
// darkened for caption legibility, then (if a caption is present) overlaid
// with a slam-animated caption layer at a constant jitter offset.
func (f *FFmpeg) RenderSegment(spec SegmentSpec) error {
	bg := ffmpeg.Input(spec.BackgroundPath, ffmpeg.KwArgs{
		"stream_loop": -1,
		"ss":          fmt.Sprintf("%.3f", spec.Offset),
	}).
		Filter("scale", ffmpeg.Args{fmt.Sprintf("%d:%d", frameWidth, frameHeight)}, ffmpeg.KwArgs{
			"force_original_aspect_ratio": "increase",
		}).
		Filter("crop", ffmpeg.Args{fmt.Sprintf("%d:%d", frameWidth, frameHeight)}).
		Filter("boxblur", ffmpeg.Args{"20:1"}).
		Filter("drawbox", ffmpeg.Args{}, ffmpeg.KwArgs{
			"x": 0, "y": 0, "w": frameWidth, "h": frameHeight,
			"color": "black@0.4", "t": "fill",
		})

	out := bg
	if spec.Caption != "" {
		// The caption is drawn on a transparent layer so the zoompan slam
		// animates the text alone, not the background.
		txt := ffmpeg.Input(
			fmt.Sprintf("color=c=0x00000000:s=%dx%d:r=%d", frameWidth, frameHeight, frameRate),
			ffmpeg.KwArgs{"f": "lavfi", "t": fmt.Sprintf("%.3f", spec.Duration)},
		).
			Filter("drawtext", ffmpeg.Args{}, ffmpeg.KwArgs{
				"text":        escapeDrawText(spec.Caption),
				"fontcolor":   "white",
				"fontsize":    spec.FontSize,
				"x":           spec.XExpr,
				"y":           spec.YExpr,
				"borderw":     3,
				"bordercolor": "black",
			}).
			Filter("zoompan", ffmpeg.Args{}, ffmpeg.KwArgs{
				"z":   fmt.Sprintf("if(eq(on,1),%.2f,max(1.0,zoom-%.3f))", spec.ZoomStart, spec.ZoomDecay),
				"d":   1,
				"fps": frameRate,
				"s":   fmt.Sprintf("%dx%d", frameWidth, frameHeight),
			})

		out = ffmpeg.Filter([]*ffmpeg.Stream{bg, txt}, "overlay", ffmpeg.Args{}, ffmpeg.KwArgs{
			"x":      spec.JitterX,
			"y":      spec.JitterY,
			"format": "auto",
		})
	}

	err := out.Output(spec.OutputPath, ffmpeg.KwArgs{
		"t":       fmt.Sprintf("%.3f", spec.Duration),
		"c:v":     "libx264",
		"pix_fmt": "yuv420p",
		"r":       frameRate,
	}).OverWriteOutput().Run()
	if err != nil {
		return fmt.Errorf("ffmpeg segment render failed: %w", err)
	}
	return nil
}

// Concat joins pre-encoded segments via the concat demuxer without
// re-encoding. The list file lives next to the output so it shares the
// caller's temporary namespace.
func (f *FFmpeg) Concat(segments []string, outputPath string) error {
	listPath := outputPath + ".txt"
	var list strings.Builder
	for _, seg := range segments {
		fmt.Fprintf(&list, "file '%s'\n", filepath.ToSlash(seg))
	}
	if err := os.WriteFile(listPath, []byte(list.String()), 0o644); err != nil {
		return fmt.Errorf("failed to write concat list: %w", err)
	}
	defer os.Remove(listPath)

	err := ffmpeg.Input(listPath, ffmpeg.KwArgs{"f": "concat", "safe": "0"}).
		Output(outputPath, ffmpeg.KwArgs{"c": "copy"}).
		OverWriteOutput().Run()
	if err != nil {
		return fmt.Errorf("ffmpeg concat failed: %w", err)
	}
	return nil
}

// Mux combines the silent visual track with the voiceover, truncating to the
// shorter of the two. The video is already encoded; only audio is converted.
func (f *FFmpeg) Mux(videoPath, audioPath, outputPath string) error {
	video := ffmpeg.Input(videoPath)
	audio := ffmpeg.Input(audioPath)

	err := ffmpeg.Output([]*ffmpeg.Stream{video, audio}, outputPath, ffmpeg.KwArgs{
		"c:v":      "copy",
		"c:a":      "aac",
		"b:a":      "192k",
		"shortest": "",
	}).OverWriteOutput().Run()
	if err != nil {
		return fmt.Errorf("ffmpeg mux failed: %w", err)
	}
	return nil
}

// GenerateLoop renders a synthetic background clip from an lavfi recipe.
func (f *FFmpeg) GenerateLoop(filter string, seconds float64, outputPath string) error {
	err := ffmpeg.Input(filter, ffmpeg.KwArgs{"f": "lavfi"}).
		Output(outputPath, ffmpeg.KwArgs{
			"t":       fmt.Sprintf("%.1f", seconds),
			"c:v":     "libx264",
			"pix_fmt": "yuv420p",
		}).OverWriteOutput().Run()
	if err != nil {
		return fmt.Errorf("ffmpeg loop generation failed: %w", err)
	}
	return nil
}

// escapeDrawText strips characters that break drawtext quoting.
func escapeDrawText(s string) string {
	r := strings.NewReplacer("'", "", ":", "", "\"", "", "\\", "")
	return r.Replace(s)
}
