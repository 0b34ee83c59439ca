package rendering

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runeMeasurer treats every rune as one unit wide, independent of size.
type runeMeasurer struct{}

func (runeMeasurer) Width(text string, _ float64, _ bool) float64 {
	return float64(utf8.RuneCountInString(text))
}

func runeWidth(s string) float64 { return float64(utf8.RuneCountInString(s)) }

func TestWrap(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		width float64
		want  []string
	}{
		{
			name:  "fits on one line",
			text:  "short text",
			width: 20,
			want:  []string{"short text"},
		},
		{
			name:  "word boundaries",
			text:  "the quick brown fox jumps",
			width: 10,
			want:  []string{"the quick", "brown fox", "jumps"},
		},
		{
			name:  "exact width",
			text:  "abcde fghij",
			width: 5,
			want:  []string{"abcde", "fghij"},
		},
		{
			name:  "forced break of long word",
			text:  "go supercalifragilistic ok",
			width: 6,
			want:  []string{"go", "superc", "alifra", "gilist", "ic ok"},
		},
		{
			name:  "explicit newlines and blank input",
			text:  "one\n\ntwo  three",
			width: 40,
			want:  []string{"one", "two three"},
		},
		{
			name:  "multibyte runes",
			text:  "ééééé",
			width: 2,
			want:  []string{"éé", "éé", "é"},
		},
		{
			name:  "empty",
			text:  "   ",
			width: 10,
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Wrap(tt.text, tt.width, runeWidth)
			assert.Equal(t, tt.want, got)
			for _, line := range got {
				assert.LessOrEqual(t, runeWidth(line), tt.width)
			}
		})
	}
}

func TestWrap_WidthSmallerThanRune(t *testing.T) {
	got := Wrap("abc", 0.5, runeWidth)
	assert.Equal(t, []string{"a", "b", "c"}, got)
}

func TestLayout_PlacesLinesAndBreaksPages(t *testing.T) {
	// 10 pt text advances 3.5 units; a 50-unit page with 10-unit margins
	// holds lines at y = 10, 13.5, ... 34.5.
	l := NewLayout(100, 50, 10, runeMeasurer{})
	assert.Equal(t, 80.0, l.ContentWidth())

	for i := 0; i < 10; i++ {
		l.Text("line", styleBody)
	}

	pages := l.Pages()
	require.Len(t, pages, 2)
	assert.Len(t, pages[0].Lines, 8)
	assert.Len(t, pages[1].Lines, 2)
	assert.InDelta(t, 10.0, pages[0].Lines[0].Y, 1e-9)
	assert.InDelta(t, 13.5, pages[0].Lines[1].Y, 1e-9)
	assert.InDelta(t, 10.0, pages[1].Lines[0].Y, 1e-9)
	for _, p := range pages {
		for _, line := range p.Lines {
			assert.LessOrEqual(t, line.Y+LineHeight(10), 40.0+1e-9)
		}
	}
}

func TestLayout_EnsureSpaceKeepsBlockTogether(t *testing.T) {
	l := NewLayout(100, 100, 10, runeMeasurer{})
	l.Space(60)

	l.EnsureSpace(40)
	assert.Len(t, l.Pages(), 2)
	assert.Equal(t, 10.0, l.Y())

	l.EnsureSpace(40)
	assert.Len(t, l.Pages(), 2, "block that fits does not break")
}

func TestLayout_IndentAndCenter(t *testing.T) {
	l := NewLayout(100, 100, 10, runeMeasurer{})

	l.Text("• "+strings.Repeat("x", 80), styleBullet)
	l.Text("abcd", Style{Size: 10, Align: AlignCenter})

	lines := l.Pages()[0].Lines
	require.Len(t, lines, 4)
	assert.Equal(t, 15.0, lines[0].X)
	assert.Equal(t, "•", lines[0].Text)
	assert.Equal(t, strings.Repeat("x", 75), lines[1].Text)
	assert.Equal(t, strings.Repeat("x", 5), lines[2].Text)
	assert.Equal(t, 48.0, lines[3].X)
}
