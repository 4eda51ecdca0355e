package pages

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
)

const (
	TemplateHome     = "home"
	TemplateServices = "services"
	TemplateProjects = "projects"
	TemplateProject  = "project"
	TemplateContact  = "contact"
	TemplateNotFound = "notfound"
)

//go:embed templates/*.html
var templateFS embed.FS

// Templates holds one parsed set per page, each sharing the layout and partials.
type Templates struct {
	sets map[string]*template.Template
}

// ParseTemplates parses the embedded page templates.
func ParseTemplates() (*Templates, error) {
	pages := []string{TemplateHome, TemplateServices, TemplateProjects, TemplateProject, TemplateContact, TemplateNotFound}
	t := &Templates{sets: make(map[string]*template.Template, len(pages))}
	for _, name := range pages {
		set, err := template.New(name).ParseFS(templateFS,
			"templates/layout.html",
			"templates/partials.html",
			"templates/"+name+".html",
		)
		if err != nil {
			return nil, fmt.Errorf("pages: parse %s template: %w", name, err)
		}
		t.sets[name] = set
	}
	return t, nil
}

// MustParseTemplates is ParseTemplates that panics on error.
func MustParseTemplates() *Templates {
	t, err := ParseTemplates()
	if err != nil {
		panic(err)
	}
	return t
}

// Render writes page with the named template. Output is buffered so a
// template error never leaves a half-written response.
func (t *Templates) Render(w io.Writer, name string, page Page) error {
	set, ok := t.sets[name]
	if !ok {
		return fmt.Errorf("pages: unknown template %q", name)
	}
	var buf bytes.Buffer
	if err := set.ExecuteTemplate(&buf, "layout", page); err != nil {
		return fmt.Errorf("pages: render %s: %w", name, err)
	}
	_, err := buf.WriteTo(w)
	return err
}
