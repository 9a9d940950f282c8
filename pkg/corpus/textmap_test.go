package corpus

import (
	"testing"

	"github.com/tidwall/gjson"
)

func TestTextMapResolve(t *testing.T) {
	m := TextMap{
		"100": "Hello",
		"200": "",
	}

	tests := []struct {
		name string
		hash int64
		want string
	}{
		{name: "zero hash means no text", hash: 0, want: ""},
		{name: "known hash", hash: 100, want: "Hello"},
		{name: "known hash with empty text", hash: 200, want: ""},
		{name: "unknown hash yields placeholder", hash: 999, want: "[Missing:999]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := m.Resolve(tt.hash); got != tt.want {
				t.Errorf("Resolve(%d) = %q, want %q", tt.hash, got, tt.want)
			}
		})
	}
}

func TestIsMissing(t *testing.T) {
	tests := []struct {
		name string
		text string
		want bool
	}{
		{name: "placeholder", text: "[Missing:999]", want: true},
		{name: "regular text", text: "Hello", want: false},
		{name: "empty", text: "", want: false},
		{name: "marker not at start", text: "x [Missing:1]", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsMissing(tt.text); got != tt.want {
				t.Errorf("IsMissing(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestParseTextMap(t *testing.T) {
	doc := gjson.Parse(`{"100":"Hello","200":"World"}`)
	m := ParseTextMap(doc)

	if len(m) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(m))
	}
	if m["100"] != "Hello" || m["200"] != "World" {
		t.Errorf("unexpected entries: %v", m)
	}
}
