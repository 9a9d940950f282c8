package util

import (
	"reflect"
	"testing"
)

func TestNonBlankLines(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []string
	}{
		{
			name:    "empty content",
			content: "",
			want:    nil,
		},
		{
			name:    "blank lines dropped",
			content: "a\n\n  \nb\n",
			want:    []string{"a", "b"},
		},
		{
			name:    "single line without newline",
			content: "only",
			want:    []string{"only"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NonBlankLines(tt.content); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("NonBlankLines(%q) = %v, want %v", tt.content, got, tt.want)
			}
		})
	}
}

func TestIsDialogueLine(t *testing.T) {
	tests := []struct {
		name string
		line string
		want bool
	}{
		{name: "dialogue line", line: "narrator：Hello", want: true},
		{name: "banner line", line: "Chapter ID: 101", want: false},
		{name: "ascii colon is not a separator", line: "speaker: text", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsDialogueLine(tt.line); got != tt.want {
				t.Errorf("IsDialogueLine(%q) = %v, want %v", tt.line, got, tt.want)
			}
		})
	}
}

func TestHasMissingMarker(t *testing.T) {
	if !HasMissingMarker("narrator：[Missing:999]") {
		t.Error("placeholder not detected")
	}
	if HasMissingMarker("narrator：Hello") {
		t.Error("false positive on regular line")
	}
}
