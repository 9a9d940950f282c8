package util

import (
	"strings"

	"questscribe/pkg/corpus"
)

// SpeakerSeparator joins speaker and text on a transcript line (U+FF1A).
// Its presence distinguishes dialogue lines from banner and header lines.
const SpeakerSeparator = "："

// NonBlankLines splits content into lines, dropping blank ones.
func NonBlankLines(content string) []string {
	var out []string
	for _, line := range strings.Split(content, "\n") {
		if strings.TrimSpace(line) != "" {
			out = append(out, line)
		}
	}
	return out
}

// IsDialogueLine reports whether a transcript line is a speaker/text line.
func IsDialogueLine(line string) bool {
	return strings.Contains(line, SpeakerSeparator)
}

// HasMissingMarker reports whether a transcript line contains a missing-text
// placeholder.
func HasMissingMarker(line string) bool {
	return strings.Contains(line, corpus.MissingPrefix)
}
