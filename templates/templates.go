// Package templates holds the server-rendered pages. Every page template
// defines a "content" block that the shared layout wraps with the sidebar
// and the flash toast.
package templates

import (
	"embed"
	"fmt"
	"html/template"
	"io"
)

//go:embed layout.tmpl pages/*.tmpl
var files embed.FS

var pageNames = []string{
	"login",
	"home",
	"products_list",
	"product_detail",
	"product_form",
	"faqs_list",
	"faq_form",
	"users",
	"reviews",
	"analytics",
}

var pages = parseAll()

func parseAll() map[string]*template.Template {
	out := make(map[string]*template.Template, len(pageNames))
	for _, name := range pageNames {
		out[name] = template.Must(template.ParseFS(files, "layout.tmpl", "pages/"+name+".tmpl"))
	}
	return out
}

// Render executes one page into w with the shared layout.
func Render(w io.Writer, page string, data any) error {
	t, ok := pages[page]
	if !ok {
		return fmt.Errorf("templates: unknown page %q", page)
	}
	return t.ExecuteTemplate(w, "layout", data)
}
