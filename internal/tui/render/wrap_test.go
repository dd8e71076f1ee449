package render

import (
	"slices"
	"testing"

	"github.com/mattn/go-runewidth"
)

func TestWrapTextWithWideRunes(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		width int
		want  []string
	}{
		{
			name:  "pure wide runes",
			text:  "你好世界",
			width: 4,
			want:  []string{"你好", "世界"},
		},
		{
			name:  "mix wide and ascii",
			text:  "你好 hello",
			width: 4,
			want:  []string{"你好", "hell", "o"},
		},
		{
			name:  "keeps blank lines",
			text:  "a\n\nb",
			width: 10,
			want:  []string{"a", "", "b"},
		},
		{
			name:  "words",
			text:  "the quick brown fox",
			width: 10,
			want:  []string{"the quick", "brown fox"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := WrapText(tt.text, tt.width)
			if !slices.Equal(got, tt.want) {
				t.Fatalf("WrapText(%q,%d)=%v want %v", tt.text, tt.width, got, tt.want)
			}
		})
	}
}

func TestClampLines(t *testing.T) {
	t.Parallel()

	got := ClampLines("one two three four five six", 9, 2)
	want := []string{"one two", "three…"}
	if !slices.Equal(got, want) {
		t.Fatalf("ClampLines = %q, want %q", got, want)
	}
	for _, line := range got {
		if w := runewidth.StringWidth(line); w > 9 {
			t.Fatalf("line %q is %d columns wide", line, w)
		}
	}

	short := ClampLines("  hi  ", 9, 2)
	if !slices.Equal(short, []string{"hi"}) {
		t.Fatalf("short ClampLines = %q", short)
	}
}

func TestTruncateToWidth(t *testing.T) {
	t.Parallel()

	if got := TruncateToWidth("你好世界", 5); got != "你好" {
		t.Fatalf("TruncateToWidth = %q", got)
	}
	if got := TruncateToWidth("abc", 0); got != "" {
		t.Fatalf("TruncateToWidth zero = %q", got)
	}
}
