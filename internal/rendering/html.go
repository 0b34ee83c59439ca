package rendering

import (
	"embed"
	"fmt"
	htmltemplate "html/template"
	"strings"
	"sync"

	"github.com/jonathan/resume-builder/internal/types"
)

//go:embed templates/*.tmpl
var templateFiles embed.FS

// loadTemplates parses every embedded template once; each is named by its
// file name.
var loadTemplates = sync.OnceValues(func() (*htmltemplate.Template, error) {
	return htmltemplate.New("").
		Funcs(htmltemplate.FuncMap{"join": strings.Join}).
		ParseFS(templateFiles, "templates/*.tmpl")
})

func execute(name string, data any) (string, error) {
	root, err := loadTemplates()
	if err != nil {
		return "", &Error{Format: FormatHTML, Message: "failed to parse templates", Cause: err}
	}
	tmpl := root.Lookup(name)
	if tmpl == nil {
		return "", &Error{Format: FormatHTML, Message: fmt.Sprintf("no template named %q", name)}
	}

	var out strings.Builder
	if err := tmpl.Execute(&out, data); err != nil {
		return "", &Error{Format: FormatHTML, Message: "failed to execute " + name, Cause: err}
	}
	return out.String(), nil
}

// RenderHTML renders the styled visual preview of a resume as a complete
// HTML document, using the resume's accent color and font.
func RenderHTML(r types.Resume) (string, error) {
	return execute("resume.html.tmpl", buildTemplateData(r))
}
