package types

import (
	"strings"
	"unicode"
)

// TrendOutput is a ranked topic produced by the poller and consumed by the
// script generator. Field names are stable; blueprints and downstream JSON
// artifacts reference trends by TrendKey.
type TrendOutput struct {
	TrendKey     string   `json:"trend_key"`
	Score        int      `json:"score"`
	Sources      []string `json:"sources"`
	SampleTitles []string `json:"sample_titles"`
	FirstSeen    string   `json:"first_seen"`
	LastSeen     string   `json:"last_seen"`
}

// NormalizeText lowercases, strips non-alphanumeric runes (keeping spaces)
// and collapses whitespace. Used to build stable trend keys.
func NormalizeText(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == ' ' {
			b.WriteRune(r)
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// ParseTrendString extracts the bare title from a raw trend string of the
// form "Title [score] | Source". Both suffixes are optional.
func ParseTrendString(raw string) string {
	title := raw
	if i := strings.Index(title, "|"); i >= 0 {
		title = title[:i]
	}
	if i := strings.Index(title, "["); i >= 0 {
		title = title[:i]
	}
	return strings.TrimSpace(title)
}

// SafeKey converts a trend key into a filesystem-safe token.
func SafeKey(key string) string {
	var b strings.Builder
	for _, r := range key {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		} else {
			b.WriteRune('_')
		}
	}
	return b.String()
}
