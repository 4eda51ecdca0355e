package http

import (
	"net/http"

	"github.com/goliatone/socialsync/internal/media"
)

func (site *Site) handlePlaceholder(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	width, height := media.PlaceholderSize(query.Get("width"), query.Get("height"))
	w.Header().Set("Content-Type", "image/svg+xml")
	w.Header().Set("Cache-Control", "public, max-age=86400")
	_, _ = w.Write(media.PlaceholderSVG(width, height))
}

func (site *Site) handleSitemap(w http.ResponseWriter, r *http.Request) {
	data, err := site.renderer.Routes().Sitemap(site.renderer.ProjectSlugs(r.Context()))
	if err != nil {
		site.logger.Error("http.sitemap.failed", "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/xml; charset=utf-8")
	_, _ = w.Write(data)
}

func (site *Site) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, statusResponse{Status: "ok"})
}
