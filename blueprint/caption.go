package blueprint

import "strings"

// stopWords are dropped from captions so the few words a viewer gets are the
// subject/action words that front-load a spoken fragment.
var stopWords = map[string]bool{
	"a": true, "an": true, "the": true,
	"is": true, "are": true, "was": true, "were": true, "be": true,
	"to": true, "of": true, "in": true, "on": true, "for": true,
	"and": true, "or": true, "but": true,
	"it": true, "its": true, "this": true, "that": true,
	"with": true, "at": true, "by": true, "from": true,
}

// synthesizeCaption turns a spoken fragment into on-screen caption text:
// punctuation stripped, uppercased, stop words dropped, truncated to limit
// words. If filtering removes everything it falls back to the unfiltered
// words truncated the same way.
func synthesizeCaption(text string, limit int) string {
	words := strings.Fields(text)

	var kept []string
	var unfiltered []string
	for _, w := range words {
		clean := strings.Trim(w, ".?!,;:'\"")
		if clean == "" {
			continue
		}
		unfiltered = append(unfiltered, strings.ToUpper(clean))
		if stopWords[strings.ToLower(clean)] {
			continue
		}
		kept = append(kept, strings.ToUpper(clean))
	}

	if len(kept) == 0 {
		kept = unfiltered
	}
	return strings.Join(truncateWords(kept, limit), " ")
}

func truncateWords(words []string, limit int) []string {
	if limit > 0 && len(words) > limit {
		return words[:limit]
	}
	return words
}
