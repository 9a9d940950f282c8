package corpus

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
)

// MissingPrefix tags text whose hash has no entry in the text table. The
// reporter counts lines carrying this marker as extraction defects.
const MissingPrefix = "[Missing:"

// TextMap maps string-encoded text hashes to localized strings for one
// language variant.
type TextMap map[string]string

// Resolve converts a text hash to its localized string. A zero hash means
// "no text" and resolves to the empty string. An unknown hash resolves to a
// visible placeholder instead of failing, so missing text never aborts
// extraction.
func (m TextMap) Resolve(hash int64) string {
	if hash == 0 {
		return ""
	}
	if text, ok := m[strconv.FormatInt(hash, 10)]; ok {
		return text
	}
	return fmt.Sprintf("%s%d]", MissingPrefix, hash)
}

// IsMissing reports whether text is a missing-hash placeholder.
func IsMissing(text string) bool {
	return strings.HasPrefix(text, MissingPrefix)
}

// ParseTextMap parses a text table document ({"<hash>": "<text>", ...}).
func ParseTextMap(doc gjson.Result) TextMap {
	m := make(TextMap)
	doc.ForEach(func(key, value gjson.Result) bool {
		m[key.String()] = value.String()
		return true
	})
	return m
}
