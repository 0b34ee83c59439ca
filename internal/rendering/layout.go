package rendering

import (
	"strings"
	"unicode/utf8"
)

// Measurer reports the rendered width of text at a font size.
type Measurer interface {
	Width(text string, size float64, bold bool) float64
}

// Align is the horizontal alignment of a line.
type Align int

// Alignments
const (
	AlignLeft Align = iota
	AlignCenter
)

// Style describes how a block of text is drawn.
type Style struct {
	Size   float64
	Bold   bool
	Accent bool // draw in the accent color
	Indent float64
	Align  Align
}

// PlacedLine is one wrapped line at its final position. Y is the baseline.
type PlacedLine struct {
	Text  string
	X, Y  float64
	Style Style
}

// Page holds the lines placed on one page.
type Page struct {
	Lines []PlacedLine
}

// lineHeightFactor converts a font size in points to a line advance in
// page units (millimetres).
const lineHeightFactor = 0.35

// LineHeight returns the vertical advance of one line at size.
func LineHeight(size float64) float64 {
	return size * lineHeightFactor
}

// Layout places wrapped text on fixed-size pages, tracking a running
// vertical cursor and starting a new page when the next line or block
// does not fit above the bottom margin.
type Layout struct {
	pageWidth  float64
	pageHeight float64
	margin     float64
	measure    Measurer
	pages      []Page
	y          float64
}

// NewLayout returns a layout with one empty page.
func NewLayout(pageWidth, pageHeight, margin float64, m Measurer) *Layout {
	return &Layout{
		pageWidth:  pageWidth,
		pageHeight: pageHeight,
		margin:     margin,
		measure:    m,
		pages:      []Page{{}},
		y:          margin,
	}
}

// ContentWidth is the page width minus both margins.
func (l *Layout) ContentWidth() float64 {
	return l.pageWidth - 2*l.margin
}

// Y returns the cursor position.
func (l *Layout) Y() float64 {
	return l.y
}

// EnsureSpace starts a new page unless height fits below the cursor.
func (l *Layout) EnsureSpace(height float64) {
	if l.y+height > l.pageHeight-l.margin {
		l.pages = append(l.pages, Page{})
		l.y = l.margin
	}
}

// Space advances the cursor.
func (l *Layout) Space(height float64) {
	l.y += height
}

// Text wraps s to the content width (less the style indent) and places
// each line, breaking pages as needed.
func (l *Layout) Text(s string, st Style) {
	width := l.ContentWidth() - st.Indent
	lh := LineHeight(st.Size)
	widthOf := func(t string) float64 { return l.measure.Width(t, st.Size, st.Bold) }

	for _, line := range Wrap(s, width, widthOf) {
		l.EnsureSpace(lh)
		x := l.margin + st.Indent
		if st.Align == AlignCenter {
			x = (l.pageWidth - widthOf(line)) / 2
		}
		page := &l.pages[len(l.pages)-1]
		page.Lines = append(page.Lines, PlacedLine{Text: line, X: x, Y: l.y, Style: st})
		l.y += lh
	}
}

// Pages returns the laid out pages.
func (l *Layout) Pages() []Page {
	return l.pages
}

// Wrap splits text into lines no wider than width, breaking at word
// boundaries. A word wider than width on its own is broken by character.
// Explicit newlines are kept.
func Wrap(text string, width float64, widthOf func(string) float64) []string {
	var out []string
	for _, para := range strings.Split(text, "\n") {
		words := strings.Fields(para)
		if len(words) == 0 {
			continue
		}
		current := ""
		for _, word := range words {
			candidate := word
			if current != "" {
				candidate = current + " " + word
			}
			if widthOf(candidate) <= width {
				current = candidate
				continue
			}
			if current != "" {
				out = append(out, current)
				current = ""
			}
			if widthOf(word) <= width {
				current = word
				continue
			}
			pieces := breakWord(word, width, widthOf)
			out = append(out, pieces[:len(pieces)-1]...)
			current = pieces[len(pieces)-1]
		}
		if current != "" {
			out = append(out, current)
		}
	}
	return out
}

// breakWord splits a word into chunks that each fit width. Every chunk
// holds at least one rune so progress is guaranteed.
func breakWord(word string, width float64, widthOf func(string) float64) []string {
	var out []string
	for word != "" {
		end := 0
		for i := range word {
			if i == 0 {
				continue
			}
			if widthOf(word[:i]) > width {
				break
			}
			end = i
		}
		if widthOf(word) <= width {
			end = len(word)
		}
		if end == 0 {
			_, size := utf8.DecodeRuneInString(word)
			end = size
		}
		out = append(out, word[:end])
		word = word[end:]
	}
	return out
}
