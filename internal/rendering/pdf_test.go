package rendering

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/ledongthuc/pdf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-builder/internal/types"
)

func readPDF(t *testing.T, data []byte) (int, string) {
	t.Helper()
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)

	var text strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		content, err := page.GetPlainText(nil)
		require.NoError(t, err)
		text.WriteString(content)
	}
	return reader.NumPage(), text.String()
}

func longResume() types.Resume {
	r := testResume()
	r.Experiences = nil
	for i := 0; i < 25; i++ {
		r.Experiences = append(r.Experiences, types.Experience{
			ID:          fmt.Sprintf("e%d", i),
			Company:     fmt.Sprintf("Company %d", i),
			Position:    "Engineer",
			StartDate:   "2010-01",
			EndDate:     "2011-01",
			Description: strings.Repeat("Worked on distributed systems and data pipelines. ", 4),
			Highlights:  []string{"Shipped features", "Reduced latency", "Mentored engineers"},
		})
	}
	return r
}

func TestRenderPDF(t *testing.T) {
	data, err := RenderPDF(testResume(), PDFOptions{})
	require.NoError(t, err)
	require.True(t, bytes.HasPrefix(data, []byte("%PDF-")))

	pages, text := readPDF(t, data)
	assert.Equal(t, 1, pages)
	assert.Contains(t, text, "Johnson")
	assert.Contains(t, text, "Experience")
	assert.Contains(t, text, "Technical Skills")
}

func TestRenderPDF_LongResumePaginates(t *testing.T) {
	data, err := RenderPDF(longResume(), PDFOptions{MarginMM: 15})
	require.NoError(t, err)

	pages, _ := readPDF(t, data)
	assert.GreaterOrEqual(t, pages, 2)
}

func TestRenderPDF_MarginTooLarge(t *testing.T) {
	_, err := RenderPDF(testResume(), PDFOptions{MarginMM: 200})
	require.Error(t, err)

	var renderErr *Error
	require.ErrorAs(t, err, &renderErr)
	assert.Equal(t, FormatPDF, renderErr.Format)
}

func TestRenderPDF_NarrowContentColumn(t *testing.T) {
	_, err := RenderPDF(testResume(), PDFOptions{MarginMM: 104})

	var renderErr *Error
	require.ErrorAs(t, err, &renderErr)
	assert.Equal(t, FormatPDF, renderErr.Format)
	assert.Contains(t, renderErr.Message, "40mm")
}

func TestRenderPDF_Latin1Accents(t *testing.T) {
	r := testResume()
	r.PersonalInfo.FirstName = "Zoë"
	r.PersonalInfo.LastName = "Núñez"

	data, err := RenderPDF(r, PDFOptions{})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF-")))
}

func TestRenderPDF_UnsupportedCharacters(t *testing.T) {
	tests := []struct {
		name  string
		apply func(r *types.Resume)
		char  string
	}{
		{
			name:  "name outside Windows-1252",
			apply: func(r *types.Resume) { r.PersonalInfo.FirstName = "Łukasz" },
			char:  "Ł",
		},
		{
			name:  "CJK in summary",
			apply: func(r *types.Resume) { r.PersonalInfo.Summary = "Built systems in 東京" },
			char:  "東",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := testResume()
			tt.apply(&r)

			data, err := RenderPDF(r, PDFOptions{})
			assert.Nil(t, data)

			var renderErr *Error
			require.ErrorAs(t, err, &renderErr)
			assert.Equal(t, FormatPDF, renderErr.Format)
			assert.Contains(t, renderErr.Message, tt.char)
		})
	}
}

func TestLayoutResume_Placeholders(t *testing.T) {
	l := NewLayout(210, 297, DefaultMarginMM, runeMeasurer{})
	LayoutResume(types.Resume{}, l)

	var texts []string
	for _, line := range l.Pages()[0].Lines {
		texts = append(texts, line.Text)
	}
	assert.Equal(t, "Name", texts[0])
	assert.Contains(t, texts, "No experience listed")
	assert.Contains(t, texts, "No education listed")
	assert.Contains(t, texts, "No skills listed")
	assert.NotContains(t, texts, "Projects")
	assert.NotContains(t, texts, "Summary")
}

func TestLayoutResume_SectionsAndBounds(t *testing.T) {
	l := NewLayout(210, 297, DefaultMarginMM, runeMeasurer{})
	LayoutResume(longResume(), l)

	pages := l.Pages()
	require.Greater(t, len(pages), 1)

	var headers []string
	for _, p := range pages {
		for _, line := range p.Lines {
			assert.LessOrEqual(t, line.Y+LineHeight(line.Style.Size), 297.0-DefaultMarginMM+1e-9)
			if line.Style.Accent {
				headers = append(headers, line.Text)
			}
		}
	}
	assert.Equal(t, []string{"Summary", "Experience", "Education", "Technical Skills", "Projects", "Certifications", "Languages"}, headers)
}

func TestParseHexColor(t *testing.T) {
	r, g, b := parseHexColor("#10b981")
	assert.Equal(t, []int{16, 185, 129}, []int{r, g, b})

	r, g, b = parseHexColor("blue")
	assert.Equal(t, []int{0, 0, 0}, []int{r, g, b})
}

func TestCoreFont(t *testing.T) {
	assert.Equal(t, "Helvetica", coreFont(""))
	assert.Equal(t, "Helvetica", coreFont("Open Sans"))
	assert.Equal(t, "Times", coreFont("Georgia"))
	assert.Equal(t, "Times", coreFont("Merriweather Serif"))
	assert.Equal(t, "Courier", coreFont("Fira Mono"))
}
