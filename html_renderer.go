package beerfest

import (
	"context"
	"html/template"
	"io"
	"io/fs"

	"github.com/a-h/templ"
)

// HtmlRenderer renders named html/template templates as components.
type HtmlRenderer struct {
	Template *template.Template
}

func (renderer HtmlRenderer) Component(name string, data any) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return renderer.Template.ExecuteTemplate(w, name, data)
	})
}

// Html parses the matching templates from fsys. It panics on a parse error since
// templates are loaded once at startup.
func Html(fsys fs.FS, funcs template.FuncMap, patterns ...string) HtmlRenderer {
	tmpl, err := template.New("").Funcs(funcs).ParseFS(fsys, patterns...)
	if err != nil {
		panic("beerfest: " + err.Error())
	}
	return HtmlRenderer{Template: tmpl}
}
