package rendering

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-builder/internal/types"
)

// Format is an export format.
type Format string

// Export formats
const (
	FormatText Format = "txt"
	FormatATS  Format = "ats"
	FormatHTML Format = "html"
	FormatPDF  Format = "pdf"
)

// Formats lists every export format in bundle order.
var Formats = []Format{FormatText, FormatATS, FormatHTML, FormatPDF}

// ParseFormat validates a format name. "all" is not a format; callers
// expand it to Formats.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Formats {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown export format %q (want txt, ats, html, or pdf)", s)
}

// Artifact is one rendered export.
type Artifact struct {
	Format      Format
	Filename    string
	ContentType string
	Data        []byte
}

// Filename returns First_Last_Resume.<ext>, or Resume.<ext> when the
// resume has no name.
func Filename(r types.Resume, ext string) string {
	name := EscapeFilename(r.PersonalInfo.FirstName + " " + r.PersonalInfo.LastName)
	if name == "" {
		return "Resume." + ext
	}
	return name + "_Resume." + ext
}

// CoverLetterFilename returns Cover_Letter_<Company>_<Position>.html.
func CoverLetterFilename(c types.CoverLetter) string {
	parts := []string{"Cover_Letter"}
	for _, p := range []string{c.Company, c.Position} {
		if e := EscapeFilename(p); e != "" {
			parts = append(parts, e)
		}
	}
	return strings.Join(parts, "_") + ".html"
}

// Export renders one format.
func Export(r types.Resume, format Format, opts PDFOptions) (Artifact, error) {
	a := Artifact{Format: format}
	var (
		text string
		err  error
	)
	switch format {
	case FormatText:
		a.Filename, a.ContentType = Filename(r, "txt"), "text/plain; charset=utf-8"
		text, err = RenderText(r)
	case FormatATS:
		a.Filename, a.ContentType = strings.TrimSuffix(Filename(r, "txt"), ".txt")+"_ATS.txt", "text/plain; charset=utf-8"
		text, err = RenderATS(r)
	case FormatHTML:
		a.Filename, a.ContentType = Filename(r, "html"), "text/html; charset=utf-8"
		text, err = RenderHTML(r)
	case FormatPDF:
		a.Filename, a.ContentType = Filename(r, "pdf"), "application/pdf"
		a.Data, err = RenderPDF(r, opts)
		if err != nil {
			return Artifact{}, err
		}
		return a, nil
	default:
		return Artifact{}, &Error{Format: format, Message: fmt.Sprintf("unsupported format %q", format)}
	}
	if err != nil {
		return Artifact{}, err
	}
	a.Data = []byte(text)
	return a, nil
}

// ExportBundle renders several formats concurrently. Artifacts come back in
// the order of formats; the first failure cancels the rest.
func ExportBundle(ctx context.Context, r types.Resume, formats []Format, opts PDFOptions) ([]Artifact, error) {
	out := make([]Artifact, len(formats))
	g, ctx := errgroup.WithContext(ctx)
	for i, f := range formats {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			a, err := Export(r, f, opts)
			if err != nil {
				return fmt.Errorf("export %s: %w", f, err)
			}
			out[i] = a
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
