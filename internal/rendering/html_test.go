package rendering

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseHTML(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)
	return doc
}

func TestRenderHTML(t *testing.T) {
	html, err := RenderHTML(testResume())
	require.NoError(t, err)
	doc := parseHTML(t, html)

	assert.Equal(t, "Alex Johnson", doc.Find("h1").Text())
	assert.Equal(t, "Senior Software Engineer", doc.Find("header h2").Text())
	assert.Contains(t, doc.Find("style").Text(), "color: #10b981")

	headers := doc.Find("section h3").Map(func(_ int, s *goquery.Selection) string { return s.Text() })
	assert.Equal(t, []string{"Professional Summary", "Experience", "Education", "Skills", "Projects", "Certifications", "Languages"}, headers)

	first := doc.Find("section.experience .entry").First()
	assert.Equal(t, "2020-03 - Present", first.Find(".dates").Text())
	assert.Equal(t, []string{"Built the API", "Cut costs <30%>"}, first.Find("li").Map(func(_ int, s *goquery.Selection) string { return s.Text() }))
	assert.Equal(t, 0, doc.Find("section.experience .entry").Eq(1).Find("ul").Length())

	assert.Equal(t, "BSc in Computer Science", doc.Find("section.education h4").Text())
	assert.Equal(t, "Go •••••", strings.Join(strings.Fields(doc.Find("section.skills .badge").First().Text()), " "))
	href, ok := doc.Find("section.projects h4 a").Attr("href")
	assert.True(t, ok)
	assert.Equal(t, "https://example.com/budget", href)
}

func TestRenderHTML_EscapesText(t *testing.T) {
	r := testResume()
	r.PersonalInfo.Summary = "<script>alert(1)</script>"

	html, err := RenderHTML(r)
	require.NoError(t, err)

	assert.NotContains(t, html, "<script>")
	assert.Equal(t, "<script>alert(1)</script>", parseHTML(t, html).Find("section.summary p").Text())
}

func TestRenderHTML_UnknownColorFallsBack(t *testing.T) {
	r := testResume()
	r.TemplateColor = "not-a-color"

	html, err := RenderHTML(r)
	require.NoError(t, err)
	assert.Contains(t, html, "color: #2563eb")
}

func TestExecute_MissingTemplate(t *testing.T) {
	_, err := execute("missing.tmpl", nil)
	var renderErr *Error
	require.ErrorAs(t, err, &renderErr)
	assert.Equal(t, FormatHTML, renderErr.Format)
	assert.Contains(t, err.Error(), `no template named "missing.tmpl"`)
}
