package rendering

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-pdf/fpdf"
	"golang.org/x/text/encoding/charmap"

	"github.com/jonathan/resume-builder/internal/types"
)

// DefaultMarginMM is the page margin used when none is configured.
const DefaultMarginMM = 20

// MinContentWidthMM is the narrowest text column the margins may leave.
const MinContentWidthMM = 40

// PDFOptions tunes the paginated export.
type PDFOptions struct {
	MarginMM float64
}

// Text styles of the paginated export.
var (
	styleName    = Style{Size: 16, Bold: true, Align: AlignCenter}
	styleTitle   = Style{Size: 12, Bold: true, Align: AlignCenter}
	styleContact = Style{Size: 10, Align: AlignCenter}
	styleHeader  = Style{Size: 12, Bold: true, Accent: true}
	styleEntry   = Style{Size: 11, Bold: true}
	styleBody    = Style{Size: 10}
	styleBullet  = Style{Size: 10, Indent: 5}
)

// fpdfMeasurer measures text with the core font metrics of a document.
type fpdfMeasurer struct {
	pdf    *fpdf.Fpdf
	family string
	tr     func(string) string
}

func (m fpdfMeasurer) Width(text string, size float64, bold bool) float64 {
	m.pdf.SetFont(m.family, fontStyle(bold), size)
	return m.pdf.GetStringWidth(m.tr(text))
}

func fontStyle(bold bool) string {
	if bold {
		return "B"
	}
	return ""
}

// coreFont maps a resume font name to one of the PDF core families.
func coreFont(name string) string {
	lower := strings.ToLower(name)
	switch {
	case strings.Contains(lower, "mono") || strings.Contains(lower, "courier"):
		return "Courier"
	case strings.Contains(lower, "serif") && !strings.Contains(lower, "sans"),
		strings.Contains(lower, "times"), strings.Contains(lower, "georgia"), strings.Contains(lower, "garamond"):
		return "Times"
	default:
		return "Helvetica"
	}
}

// parseHexColor converts #rrggbb to RGB components.
func parseHexColor(hex string) (int, int, int) {
	v, err := strconv.ParseUint(strings.TrimPrefix(hex, "#"), 16, 32)
	if err != nil || len(hex) != 7 {
		return 0, 0, 0
	}
	return int(v >> 16 & 0xff), int(v >> 8 & 0xff), int(v & 0xff)
}

// LayoutResume places every section of the resume on pages.
func LayoutResume(r types.Resume, l *Layout) {
	d := buildTemplateData(r)

	l.Text(or(d.Name, "Name"), styleName)
	l.Space(2)
	if d.JobTitle != "" {
		l.Text(d.JobTitle, styleTitle)
		l.Space(2)
	}
	var contact []string
	for _, part := range []string{d.Phone, d.Email, d.Location, d.LinkedIn, d.Website} {
		if part != "" {
			contact = append(contact, part)
		}
	}
	if len(contact) > 0 {
		l.Text(strings.Join(contact, " | "), styleContact)
	}
	l.Space(8)

	header := func(title string) {
		l.EnsureSpace(20)
		l.Text(title, styleHeader)
		l.Space(4)
	}
	empty := func(msg string) {
		l.Text(msg, styleBody)
		l.Space(8)
	}

	if d.Summary != "" {
		header("Summary")
		l.Text(d.Summary, styleBody)
		l.Space(8)
	}

	header("Experience")
	if len(d.Experiences) == 0 {
		empty("No experience listed")
	}
	for _, e := range d.Experiences {
		l.EnsureSpace(40)
		l.Text(or(e.Position, "Position")+" at "+or(e.Company, "Company"), styleEntry)
		l.Space(2)
		for _, s := range []string{e.Dates, e.Location, e.Description} {
			if s != "" {
				l.Text(s, styleBody)
				l.Space(2)
			}
		}
		for _, h := range e.Highlights {
			l.EnsureSpace(10)
			l.Text("• "+h, styleBullet)
			l.Space(2)
		}
		l.Space(4)
	}

	header("Education")
	if len(d.Education) == 0 {
		empty("No education listed")
	}
	for _, e := range d.Education {
		l.EnsureSpace(20)
		l.Text(or(e.Institution, "Institution"), styleEntry)
		l.Space(2)
		for _, s := range []string{e.Degree, e.Dates, e.Location, e.Description} {
			if s != "" {
				l.Text(s, styleBody)
				l.Space(2)
			}
		}
		l.Space(4)
	}

	header("Technical Skills")
	if len(d.SkillGroups) == 0 {
		empty("No skills listed")
	}
	for _, g := range d.SkillGroups {
		l.EnsureSpace(15)
		l.Text(g.Category, styleEntry)
		l.Space(2)
		l.Text(strings.Join(g.Names, ", "), styleBody)
		l.Space(4)
	}

	if len(d.Projects) > 0 {
		header("Projects")
		for _, p := range d.Projects {
			l.EnsureSpace(30)
			line := p.Name
			if len(p.Technologies) > 0 {
				line += " (" + strings.Join(p.Technologies, ", ") + ")"
			}
			l.Text(line, styleEntry)
			l.Space(2)
			if p.Description != "" {
				l.Text(p.Description, styleBody)
				l.Space(2)
			}
			if p.URL != "" {
				l.Text("URL: "+p.URL, styleBody)
				l.Space(2)
			}
			l.Space(4)
		}
	}

	if len(d.Certificates) > 0 {
		header("Certifications")
		for _, c := range d.Certificates {
			l.EnsureSpace(20)
			l.Text(c.Name+" - "+or(c.Issuer, "Issuer"), styleEntry)
			l.Space(2)
			l.Text("Issued: "+or(c.Issued, "Unknown"), styleBody)
			l.Space(4)
		}
	}

	if len(d.Languages) > 0 {
		header("Languages")
		l.Text(strings.Join(d.Languages, ", "), styleBody)
		l.Space(8)
	}
}

// RenderPDF renders the resume as an A4 paginated document.
func RenderPDF(r types.Resume, opts PDFOptions) ([]byte, error) {
	margin := opts.MarginMM
	if margin <= 0 {
		margin = DefaultMarginMM
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetMargins(margin, margin, margin)
	pdf.SetTitle(strings.TrimSpace(r.PersonalInfo.FullName()+" Resume"), true)
	pdf.SetCreator("resume-builder", true)

	family := coreFont(r.TemplateFont)
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pageWidth, pageHeight := pdf.GetPageSize()
	if pageWidth-margin*2 < MinContentWidthMM {
		return nil, &Error{Format: FormatPDF, Message: fmt.Sprintf("page margin of %gmm leaves less than %dmm for content", margin, MinContentWidthMM)}
	}

	layout := NewLayout(pageWidth, pageHeight, margin, fpdfMeasurer{pdf: pdf, family: family, tr: tr})
	LayoutResume(r, layout)

	pages := layout.Pages()
	if err := checkEncodable(pages); err != nil {
		return nil, err
	}

	ar, ag, ab := parseHexColor(accentColor(r.TemplateColor))
	for _, page := range pages {
		pdf.AddPage()
		for _, line := range page.Lines {
			pdf.SetFont(family, fontStyle(line.Style.Bold), line.Style.Size)
			if line.Style.Accent {
				pdf.SetTextColor(ar, ag, ab)
			} else {
				pdf.SetTextColor(0, 0, 0)
			}
			pdf.Text(line.X, line.Y, tr(line.Text))
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, &Error{Format: FormatPDF, Message: "failed to write PDF", Cause: err}
	}
	return buf.Bytes(), nil
}

// checkEncodable rejects text the core fonts cannot show. They only cover
// the Windows-1252 character set; fpdf would print anything else as a dot.
func checkEncodable(pages []Page) error {
	for _, page := range pages {
		for _, line := range page.Lines {
			for _, c := range line.Text {
				if _, ok := charmap.Windows1252.EncodeRune(c); !ok {
					return &Error{
						Format:  FormatPDF,
						Message: fmt.Sprintf("character %q in %q is not supported by the PDF fonts", c, line.Text),
					}
				}
			}
		}
	}
	return nil
}

func or(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
