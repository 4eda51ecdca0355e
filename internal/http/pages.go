package http

import (
	"bytes"
	"errors"
	"net/http"

	"github.com/goliatone/socialsync/internal/i18n"
	"github.com/goliatone/socialsync/internal/pages"
)

const notFoundTitle = "Project Not Found"

func (site *Site) handleHome(w http.ResponseWriter, r *http.Request) {
	snap := site.session(w, r).Start(r.Context())
	body := site.renderer.Home(r.Context(), snap)
	site.render(w, r, http.StatusOK, pages.TemplateHome, snap, site.themeOf(r), "", body)
}

func (site *Site) handleServices(w http.ResponseWriter, r *http.Request) {
	snap := site.session(w, r).Start(r.Context())
	body := site.renderer.Services(r.Context(), snap)
	site.render(w, r, http.StatusOK, pages.TemplateServices, snap, site.themeOf(r), "", body)
}

func (site *Site) handleProjects(w http.ResponseWriter, r *http.Request) {
	snap := site.session(w, r).Start(r.Context())
	body := site.renderer.Projects(r.Context(), snap, r.URL.Query().Get("category"))
	theme := site.themeOf(r)
	if body.ForceLight {
		theme.Enter(pages.SectionPhotographyFilter)
	}
	site.render(w, r, http.StatusOK, pages.TemplateProjects, snap, theme, "", body)
}

func (site *Site) handleProject(w http.ResponseWriter, r *http.Request) {
	snap := site.session(w, r).Start(r.Context())
	body, err := site.renderer.Project(r.Context(), snap, r.PathValue("slug"))
	if errors.Is(err, pages.ErrProjectNotFound) {
		site.renderNotFound(w, r, snap)
		return
	}
	if err != nil {
		site.logger.Error("http.project.failed", "slug", r.PathValue("slug"), "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	site.render(w, r, http.StatusOK, pages.TemplateProject, snap, site.themeOf(r), body.PageTitle, body)
}

func (site *Site) handleContact(w http.ResponseWriter, r *http.Request) {
	snap := site.session(w, r).Start(r.Context())
	body := site.renderer.Contact(snap)
	site.render(w, r, http.StatusOK, pages.TemplateContact, snap, site.themeOf(r), "", body)
}

func (site *Site) handleNotFound(w http.ResponseWriter, r *http.Request) {
	site.renderNotFound(w, r, site.session(w, r).Start(r.Context()))
}

func (site *Site) renderNotFound(w http.ResponseWriter, r *http.Request, snap i18n.Snapshot) {
	body := pages.ProjectView{BackURL: site.renderer.Routes().Projects("")}
	site.render(w, r, http.StatusNotFound, pages.TemplateNotFound, snap, site.themeOf(r), notFoundTitle, body)
}

// render executes a page template into a buffer so a failure can still be
// reported with a clean 500.
func (site *Site) render(w http.ResponseWriter, r *http.Request, status int, name string, snap i18n.Snapshot, theme *pages.ThemeState, title string, body any) {
	page := pages.Page{
		Layout: site.renderer.Layout(snap, theme, r.URL.Path, title),
		Body:   body,
	}
	var buf bytes.Buffer
	if err := site.templates.Render(&buf, name, page); err != nil {
		site.logger.Error("http.render.failed", "template", name, "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Content-Language", snap.Language.String())
	w.Header().Set("Vary", "Cookie")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}
