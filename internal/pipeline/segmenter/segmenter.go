// Package segmenter splits normalized utterance text into ordered clinical
// clause segments. Spoken input carries no reliable punctuation, so the
// split cues are tuned for spoken clinical Hindi: the danda, commas,
// newlines, question/exclamation marks and the coordinating conjunction और.
package segmenter

import (
	"regexp"
	"strings"
)

// boundary matches sentence-final markers, pause-equivalent delimiters and
// the standalone conjunction और (never और inside a longer word, which the
// surrounding-whitespace requirement rules out).
var boundary = regexp.MustCompile(`[,，।?!;\n]|\s+और\s+`)

// Split returns the non-empty clause segments of text in original order.
// Input with no boundary cue comes back as a single segment equal to the
// whole (trimmed) input. Empty or whitespace-only input yields nil.
func Split(text string) []string {
	parts := boundary.Split(text, -1)
	segments := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		segments = append(segments, p)
	}
	if len(segments) == 0 {
		return nil
	}
	return segments
}
