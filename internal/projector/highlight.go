package projector

import "strings"

// Segment is a run of text that either matches the search term or not.
type Segment struct {
	Text  string `json:"text"`
	Match bool   `json:"match"`
}

// Highlight splits text into matching and non-matching segments, case-insensitively.
// Text whose lowercase form changes byte length is returned as a single unmatched segment.
func Highlight(text, term string) []Segment {
	if text == "" {
		return nil
	}
	if term == "" {
		return []Segment{{Text: text}}
	}

	lowerText, lowerTerm := strings.ToLower(text), strings.ToLower(term)
	if len(lowerText) != len(text) {
		return []Segment{{Text: text}}
	}

	var out []Segment
	start := 0
	for {
		i := strings.Index(lowerText[start:], lowerTerm)
		if i < 0 {
			break
		}
		i += start
		if i > start {
			out = append(out, Segment{Text: text[start:i]})
		}
		end := i + len(lowerTerm)
		out = append(out, Segment{Text: text[i:end], Match: true})
		start = end
	}
	if start < len(text) {
		out = append(out, Segment{Text: text[start:]})
	}
	return out
}
