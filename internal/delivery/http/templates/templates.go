// Package templates embeds the server-rendered HTML pages and adapts them to
// Echo's Renderer interface.
package templates

import (
	"embed"
	"html/template"
	"io"

	"github.com/labstack/echo/v4"
)

//go:embed *.html
var files embed.FS

// Renderer implements echo.Renderer over the embedded page templates.
type Renderer struct {
	templates *template.Template
}

// New parses the embedded templates. It panics on a malformed template since
// that is a build-time defect, not a runtime condition.
func New() *Renderer {
	return &Renderer{
		templates: template.Must(template.ParseFS(files, "*.html")),
	}
}

// Render writes the named template with the given data.
func (r *Renderer) Render(w io.Writer, name string, data any, _ echo.Context) error {
	return r.templates.ExecuteTemplate(w, name, data)
}
