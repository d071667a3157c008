package search

import "strings"

// Marker is the pair of delimiters wrapped around each highlighted span.
type Marker struct {
	Open  string
	Close string
}

// DefaultMarker wraps matches in HTML mark tags.
var DefaultMarker = Marker{Open: "<mark>", Close: "</mark>"}

// Highlight wraps every match of m in text with DefaultMarker.
func Highlight(text string, m Matcher) string {
	return HighlightWith(text, m, DefaultMarker)
}

// HighlightWith wraps every non-overlapping match of m in text with marker.
// A nil matcher returns text unchanged.
func HighlightWith(text string, m Matcher, marker Marker) string {
	if m == nil {
		return text
	}
	spans := m.FindAllIndex(text)
	if len(spans) == 0 {
		return text
	}

	var b strings.Builder
	last := 0
	for _, span := range spans {
		b.WriteString(text[last:span[0]])
		b.WriteString(marker.Open)
		b.WriteString(text[span[0]:span[1]])
		b.WriteString(marker.Close)
		last = span[1]
	}
	b.WriteString(text[last:])
	return b.String()
}
