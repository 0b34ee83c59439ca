package jobs

import (
	"bytes"
	"encoding/json"
	"io"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/jonathan/resume-builder/internal/types"
)

// requirementHeadings mark the section of a posting that lists requirements.
var requirementHeadings = []string{
	"requirement", "qualification", "what you'll need", "what you will need",
	"what you bring", "you have", "must have", "skills",
}

const headingSelector = "h1, h2, h3, h4, h5, h6"

// maxDescriptionParagraphs bounds the description taken from page content.
const maxDescriptionParagraphs = 3

// ParsePostingHTML reads a saved job posting page. A schema.org JobPosting
// block is preferred when the page has one; missing fields fall back to
// meta tags and the page content. Fields that cannot be found stay empty.
func ParsePostingHTML(r io.Reader, sourceURL string) (types.Job, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return types.Job{}, &ImportError{Source: or(sourceURL, "html"), Message: "failed to parse HTML", Cause: err}
	}

	platform := DetectPlatform(sourceURL)
	job := types.Job{URL: strings.TrimSpace(sourceURL), Source: platform.Source()}

	if ld, ok := findJobPosting(doc); ok {
		ld.fill(&job)
		if ld.Description != "" {
			if desc, err := goquery.NewDocumentFromReader(strings.NewReader(ld.Description)); err == nil {
				job.Description = descriptionIn(desc.Selection, 0)
				job.Requirements = requirementsIn(desc.Selection)
			}
		}
	}

	if job.Title == "" {
		job.Title = firstNonEmpty(
			firstText(doc.Selection, "h1"),
			metaContent(doc, "og:title"),
			collapse(doc.Find("title").First().Text()),
		)
	}
	if job.Company == "" {
		job.Company = firstNonEmpty(
			metaContent(doc, "og:site_name"),
			firstText(doc.Selection, "[class*='company']"),
		)
	}

	doc.Find(strings.Join(noiseSelectors(platform), ", ")).Remove()
	content := selectContent(doc, platform)

	if job.Location == "" {
		job.Location = firstText(doc.Selection, "[class*='location']")
	}
	if len(job.Requirements) == 0 {
		job.Requirements = requirementsIn(content)
	}
	if job.Description == "" {
		job.Description = descriptionIn(content, maxDescriptionParagraphs)
	}
	if job.Requirements == nil {
		job.Requirements = []string{}
	}
	return job, nil
}

// selectContent returns the first platform content block that has text.
func selectContent(doc *goquery.Document, p Platform) *goquery.Selection {
	for _, sel := range contentSelectors(p) {
		if s := doc.Find(sel).First(); s.Length() > 0 && collapse(s.Text()) != "" {
			return s
		}
	}
	return doc.Selection
}

// requirementsIn returns the items of the list that follows a requirements
// heading, or every list item in s when there is no such heading.
func requirementsIn(s *goquery.Selection) []string {
	var out []string
	s.Find(headingSelector + ", strong, b").EachWithBreak(func(_ int, h *goquery.Selection) bool {
		if !isRequirementHeading(h.Text()) {
			return true
		}
		anchor := h
		if h.Is("strong, b") && !h.Parent().Is("body, div, section, article") {
			anchor = h.Parent()
		}
		if list := listAfter(anchor); list != nil {
			out = listItems(list)
		}
		return len(out) == 0
	})
	if len(out) > 0 {
		return out
	}
	return listItems(s)
}

func isRequirementHeading(text string) bool {
	lower := strings.ToLower(collapse(text))
	if lower == "" || len(lower) > 60 {
		return false
	}
	for _, h := range requirementHeadings {
		if strings.Contains(lower, h) {
			return true
		}
	}
	return false
}

// listAfter finds the first list following s before the next heading.
func listAfter(s *goquery.Selection) *goquery.Selection {
	for n := s.Next(); n.Length() > 0; n = n.Next() {
		if n.Is("ul, ol") {
			return n
		}
		if n.Is(headingSelector) {
			return nil
		}
		if l := n.Find("ul, ol"); l.Length() > 0 {
			return l.First()
		}
	}
	return nil
}

func listItems(s *goquery.Selection) []string {
	seen := map[string]bool{}
	var out []string
	s.Find("li").Each(func(_ int, li *goquery.Selection) {
		text := collapse(li.Text())
		if text == "" || seen[text] {
			return
		}
		seen[text] = true
		out = append(out, text)
	})
	return out
}

// descriptionIn joins the paragraphs of s. limit <= 0 keeps them all.
func descriptionIn(s *goquery.Selection, limit int) string {
	var paragraphs []string
	s.Find("p").EachWithBreak(func(_ int, p *goquery.Selection) bool {
		text := collapse(p.Text())
		if text != "" && !isRequirementHeading(text) {
			paragraphs = append(paragraphs, text)
		}
		return limit <= 0 || len(paragraphs) < limit
	})
	if len(paragraphs) == 0 {
		return collapse(s.Text())
	}
	return strings.Join(paragraphs, "\n\n")
}

func firstText(s *goquery.Selection, selector string) string {
	var out string
	s.Find(selector).EachWithBreak(func(_ int, el *goquery.Selection) bool {
		out = collapse(el.Text())
		return out == ""
	})
	return out
}

func metaContent(doc *goquery.Document, property string) string {
	v, _ := doc.Find(`meta[property="` + property + `"]`).Attr("content")
	return collapse(v)
}

func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func or(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}

// ldPosting is the subset of a schema.org JobPosting read from JSON-LD.
type ldPosting struct {
	Type               json.RawMessage   `json:"@type"`
	Graph              []json.RawMessage `json:"@graph"`
	Title              string            `json:"title"`
	Description        string            `json:"description"`
	DatePosted         string            `json:"datePosted"`
	HiringOrganization json.RawMessage   `json:"hiringOrganization"`
	JobLocation        json.RawMessage   `json:"jobLocation"`
	JobLocationType    string            `json:"jobLocationType"`
	BaseSalary         *ldSalary         `json:"baseSalary"`
}

type ldSalary struct {
	Currency string          `json:"currency"`
	Value    json.RawMessage `json:"value"`
}

type ldQuantity struct {
	Value    *float64 `json:"value"`
	MinValue *float64 `json:"minValue"`
	MaxValue *float64 `json:"maxValue"`
	UnitText string   `json:"unitText"`
}

type ldPlace struct {
	Address struct {
		Locality string `json:"addressLocality"`
		Region   string `json:"addressRegion"`
	} `json:"address"`
}

// findJobPosting returns the first JobPosting in the page's JSON-LD blocks.
func findJobPosting(doc *goquery.Document) (ldPosting, bool) {
	var found ldPosting
	ok := false
	doc.Find(`script[type="application/ld+json"]`).EachWithBreak(func(_ int, s *goquery.Selection) bool {
		for _, p := range postingsIn([]byte(s.Text())) {
			found, ok = p, true
			return false
		}
		return true
	})
	return found, ok
}

func postingsIn(raw []byte) []ldPosting {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return nil
	}
	if raw[0] == '[' {
		var items []json.RawMessage
		if json.Unmarshal(raw, &items) != nil {
			return nil
		}
		var out []ldPosting
		for _, item := range items {
			out = append(out, postingsIn(item)...)
		}
		return out
	}
	var p ldPosting
	if json.Unmarshal(raw, &p) != nil {
		return nil
	}
	var out []ldPosting
	if hasType(p.Type, "JobPosting") {
		out = append(out, p)
	}
	for _, item := range p.Graph {
		out = append(out, postingsIn(item)...)
	}
	return out
}

func hasType(raw json.RawMessage, want string) bool {
	var one string
	if json.Unmarshal(raw, &one) == nil {
		return one == want
	}
	var many []string
	if json.Unmarshal(raw, &many) == nil {
		for _, t := range many {
			if t == want {
				return true
			}
		}
	}
	return false
}

func (p ldPosting) fill(job *types.Job) {
	job.Title = collapse(p.Title)
	job.DatePosted = strings.TrimSpace(p.DatePosted)
	job.Company = organizationName(p.HiringOrganization)
	job.Location = placeName(p.JobLocation)
	if strings.EqualFold(p.JobLocationType, "TELECOMMUTE") {
		if job.Location == "" {
			job.Location = "Remote"
		} else {
			job.Location += " (Remote)"
		}
	}
	if p.BaseSalary != nil {
		job.Salary = p.BaseSalary.String()
	}
}

func organizationName(raw json.RawMessage) string {
	var name string
	if json.Unmarshal(raw, &name) == nil {
		return collapse(name)
	}
	var org struct {
		Name string `json:"name"`
	}
	if json.Unmarshal(raw, &org) == nil {
		return collapse(org.Name)
	}
	return ""
}

func placeName(raw json.RawMessage) string {
	var places []ldPlace
	var one ldPlace
	if json.Unmarshal(raw, &one) == nil {
		places = []ldPlace{one}
	} else if json.Unmarshal(raw, &places) != nil {
		return ""
	}
	for _, pl := range places {
		parts := []string{}
		for _, s := range []string{pl.Address.Locality, pl.Address.Region} {
			if s = collapse(s); s != "" {
				parts = append(parts, s)
			}
		}
		if len(parts) > 0 {
			return strings.Join(parts, ", ")
		}
	}
	return ""
}

// String formats the salary as "USD 120000 - 150000 per year".
func (s ldSalary) String() string {
	var q ldQuantity
	if json.Unmarshal(s.Value, &q) != nil {
		var v float64
		if json.Unmarshal(s.Value, &v) != nil {
			return ""
		}
		q.Value = &v
	}

	var amount string
	switch {
	case q.MinValue != nil && q.MaxValue != nil:
		amount = formatAmount(*q.MinValue) + " - " + formatAmount(*q.MaxValue)
	case q.Value != nil:
		amount = formatAmount(*q.Value)
	case q.MinValue != nil:
		amount = formatAmount(*q.MinValue) + "+"
	default:
		return ""
	}
	if s.Currency != "" {
		amount = s.Currency + " " + amount
	}
	if q.UnitText != "" {
		amount += " per " + strings.ToLower(q.UnitText)
	}
	return amount
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
