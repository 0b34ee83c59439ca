package jobs

import (
	"bytes"
	"encoding/xml"
	"errors"
	"io"
	"path/filepath"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

// DocumentKind is how a posting file is read.
type DocumentKind string

// Document kinds
const (
	KindHTML DocumentKind = "html"
	KindPDF  DocumentKind = "pdf"
	KindDOCX DocumentKind = "docx"
	KindText DocumentKind = "text"
)

// KindOf picks the document kind from a file name's extension.
func KindOf(name string) (DocumentKind, error) {
	switch ext := strings.ToLower(filepath.Ext(name)); ext {
	case ".html", ".htm":
		return KindHTML, nil
	case ".pdf":
		return KindPDF, nil
	case ".docx":
		return KindDOCX, nil
	case ".txt", ".md", ".text", "":
		return KindText, nil
	default:
		return "", &ImportError{Source: name, Message: "unsupported file type " + ext}
	}
}

// ExtractText returns the plain text of a posting document.
func ExtractText(name string, data []byte) (string, error) {
	kind, err := KindOf(name)
	if err != nil {
		return "", err
	}
	var text string
	switch kind {
	case KindHTML:
		text, err = htmlText(data)
	case KindPDF:
		text, err = pdfText(data)
	case KindDOCX:
		text, err = docxText(data)
	default:
		text = string(data)
	}
	if err != nil {
		return "", &ImportError{Source: name, Message: "failed to read " + string(kind) + " document", Cause: err}
	}
	return CleanText(text), nil
}

func htmlText(data []byte) (string, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(data))
	if err != nil {
		return "", err
	}
	doc.Find(strings.Join(noiseSelectors(PlatformUnknown), ", ")).Remove()
	var lines []string
	doc.Find(headingSelector + ", p, li").Each(func(_ int, s *goquery.Selection) {
		text := collapse(s.Text())
		if text == "" {
			return
		}
		if s.Is("li") {
			text = "- " + text
		}
		lines = append(lines, text)
	})
	if len(lines) == 0 {
		return collapse(doc.Text()), nil
	}
	return strings.Join(lines, "\n"), nil
}

func pdfText(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}
	var sb strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		rows, err := page.GetTextByRow()
		if err != nil {
			return "", err
		}
		for _, row := range rows {
			for j, run := range row.Content {
				if j > 0 && separated(row.Content[j-1], run) {
					sb.WriteByte(' ')
				}
				sb.WriteString(run.S)
			}
			sb.WriteByte('\n')
		}
		sb.WriteByte('\n')
	}
	return sb.String(), nil
}

// separated reports whether two text runs on one row need a space between
// them: neither carries whitespace and there is a visible gap.
func separated(prev, next pdf.Text) bool {
	if strings.HasSuffix(prev.S, " ") || strings.HasPrefix(next.S, " ") {
		return false
	}
	return next.X-(prev.X+prev.W) > prev.FontSize*0.2
}

func docxText(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}
	defer func() { _ = doc.Close() }()
	return wordXMLText(doc.Editable().GetContent())
}

// wordXMLText flattens WordprocessingML into text: one line per paragraph,
// with tabs and breaks kept.
func wordXMLText(content string) (string, error) {
	dec := xml.NewDecoder(strings.NewReader(content))
	var (
		sb     strings.Builder
		inText bool
	)
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return "", err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "t":
				inText = true
			case "tab":
				sb.WriteByte('\t')
			case "br", "cr":
				sb.WriteByte('\n')
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inText = false
			case "p":
				sb.WriteByte('\n')
			}
		case xml.CharData:
			if inText {
				sb.Write(t)
			}
		}
	}
	return sb.String(), nil
}
