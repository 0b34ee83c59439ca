package rendering

import (
	htmltemplate "html/template"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/jonathan/resume-builder/internal/types"
)

// unsafeElements are removed from cover letter content before rendering.
const unsafeElements = "script, style, iframe, object, embed, link, meta"

// sanitizeContent strips executable markup from a cover letter fragment.
func sanitizeContent(content string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(content))
	if err != nil {
		return "", &Error{Message: "failed to parse cover letter content", Cause: err}
	}
	body := doc.Find("body")
	body.Find(unsafeElements).Remove()
	body.Find("*").Each(func(_ int, s *goquery.Selection) {
		for _, node := range s.Nodes {
			kept := node.Attr[:0]
			for _, a := range node.Attr {
				if strings.HasPrefix(strings.ToLower(a.Key), "on") {
					continue
				}
				if a.Key == "href" && strings.HasPrefix(strings.ToLower(strings.TrimSpace(a.Val)), "javascript:") {
					continue
				}
				kept = append(kept, a)
			}
			node.Attr = kept
		}
	})
	html, err := body.Html()
	if err != nil {
		return "", &Error{Message: "failed to serialize cover letter content", Cause: err}
	}
	return strings.TrimSpace(html), nil
}

type coverLetterData struct {
	Title    string
	Company  string
	Position string
	Color    string
	Font     string
	Content  htmltemplate.HTML
}

// RenderCoverLetterHTML renders a cover letter as a standalone HTML
// document. The stored content is sanitized first.
func RenderCoverLetterHTML(c types.CoverLetter) (string, error) {
	content, err := sanitizeContent(c.Content)
	if err != nil {
		return "", err
	}
	return execute("cover_letter.html.tmpl", coverLetterData{
		Title:    or(c.Title, "Cover Letter"),
		Company:  c.Company,
		Position: c.Position,
		Color:    accentColor(c.TemplateColor),
		Font:     c.TemplateFont,
		Content:  htmltemplate.HTML(content), //nolint:gosec // sanitized above
	})
}

// CoverLetterText returns the letter with markup stripped: one paragraph
// per block, separated by blank lines, with <br> kept as a line break.
func CoverLetterText(c types.CoverLetter) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(c.Content))
	if err != nil {
		return "", &Error{Message: "failed to parse cover letter content", Cause: err}
	}
	body := doc.Find("body")
	body.Find(unsafeElements).Remove()
	body.Find("br").ReplaceWithHtml("\n")

	var paragraphs []string
	blocks := body.Find("p, li, h1, h2, h3, h4, div:not(:has(p, li, div))")
	if blocks.Length() == 0 {
		blocks = body
	}
	blocks.Each(func(_ int, s *goquery.Selection) {
		var kept []string
		for _, line := range strings.Split(s.Text(), "\n") {
			if line = strings.Join(strings.Fields(line), " "); line != "" {
				kept = append(kept, line)
			}
		}
		if len(kept) > 0 {
			paragraphs = append(paragraphs, strings.Join(kept, "\n"))
		}
	})
	return strings.Join(paragraphs, "\n\n"), nil
}
