package blueprint

import (
	"regexp"
	"strings"
)

var punctRun = regexp.MustCompile(`[.?!,;]+`)

// tokenizeSection splits section text into spoken fragments on punctuation
// runs, attaching each run to the fragment before it. A trailing fragment
// without terminal punctuation is kept as-is.
func tokenizeSection(text string) []string {
	matches := punctRun.FindAllStringIndex(text, -1)

	var fragments []string
	prev := 0
	for _, m := range matches {
		fragment := strings.TrimSpace(text[prev:m[0]]) + text[m[0]:m[1]]
		if fragment != "" {
			fragments = append(fragments, fragment)
		}
		prev = m[1]
	}
	if tail := strings.TrimSpace(text[prev:]); tail != "" {
		fragments = append(fragments, tail)
	}
	return fragments
}

// splitOverlong bisects fragments longer than maxWords at the midpoint word
// boundary. The split is applied once per fragment, not recursively; a
// fragment far beyond twice the threshold keeps its coarser granularity.
func splitOverlong(fragments []string, maxWords int) []string {
	out := make([]string, 0, len(fragments))
	for _, fragment := range fragments {
		words := strings.Fields(fragment)
		if len(words) <= maxWords {
			out = append(out, fragment)
			continue
		}
		mid := len(words) / 2
		out = append(out,
			strings.Join(words[:mid], " "),
			strings.Join(words[mid:], " "))
	}
	return out
}
