package http

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/goliatone/socialsync/internal/contact"
	"github.com/goliatone/socialsync/internal/i18n"
	"github.com/goliatone/socialsync/internal/logging"
	"github.com/goliatone/socialsync/internal/pages"
	"github.com/goliatone/socialsync/pkg/interfaces"
	"github.com/google/uuid"
)

var (
	ErrMuxRequired       = errors.New("http: mux is required")
	ErrRendererRequired  = errors.New("http: page renderer is required")
	ErrTemplatesRequired = errors.New("http: templates are required")
	ErrContactRequired   = errors.New("http: contact service is required")
)

// ContactService accepts contact form submissions.
type ContactService interface {
	Submit(ctx context.Context, sub contact.Submission) (contact.Result, error)
}

// SiteOption configures a Site.
type SiteOption func(*Site)

// Site serves the public pages and the contact endpoint.
type Site struct {
	renderer        *pages.Renderer
	templates       *pages.Templates
	translations    i18n.Loader
	contact         ContactService
	defaultLanguage i18n.Language
	secureCookies   bool
	logger          interfaces.Logger
}

// NewSite constructs a site handler set with the provided options.
func NewSite(opts ...SiteOption) *Site {
	site := &Site{
		defaultLanguage: i18n.DefaultLanguage,
		logger:          logging.NoOp(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(site)
		}
	}
	return site
}

// WithRenderer sets the page view-model builder.
func WithRenderer(renderer *pages.Renderer) SiteOption {
	return func(site *Site) {
		if site != nil {
			site.renderer = renderer
		}
	}
}

// WithTemplates sets the parsed page templates.
func WithTemplates(templates *pages.Templates) SiteOption {
	return func(site *Site) {
		if site != nil {
			site.templates = templates
		}
	}
}

// WithTranslations sets the loader backing each visitor session. Without
// one, sessions use the built-in translations.
func WithTranslations(loader i18n.Loader) SiteOption {
	return func(site *Site) {
		if site != nil {
			site.translations = loader
		}
	}
}

// WithContactService sets the service behind POST /api/contact.
func WithContactService(service ContactService) SiteOption {
	return func(site *Site) {
		if site != nil {
			site.contact = service
		}
	}
}

// WithDefaultLanguage sets the language used for visitors without a cookie.
func WithDefaultLanguage(lang i18n.Language) SiteOption {
	return func(site *Site) {
		if site != nil && (lang == i18n.Portuguese || lang == i18n.English) {
			site.defaultLanguage = lang
		}
	}
}

// WithSecureCookies marks preference cookies as Secure.
func WithSecureCookies(secure bool) SiteOption {
	return func(site *Site) {
		if site != nil {
			site.secureCookies = secure
		}
	}
}

// WithLogger sets the request logger.
func WithLogger(logger interfaces.Logger) SiteOption {
	return func(site *Site) {
		if site != nil && logger != nil {
			site.logger = logger
		}
	}
}

// Register attaches the site endpoints to the provided mux.
func (site *Site) Register(mux *http.ServeMux) error {
	if mux == nil {
		return ErrMuxRequired
	}
	if site == nil || site.renderer == nil {
		return ErrRendererRequired
	}
	if site.templates == nil {
		return ErrTemplatesRequired
	}
	if site.contact == nil {
		return ErrContactRequired
	}

	mux.HandleFunc("GET /{$}", site.handleHome)
	mux.HandleFunc("GET /services", site.handleServices)
	mux.HandleFunc("GET /projects", site.handleProjects)
	mux.HandleFunc("GET /projects/{slug}", site.handleProject)
	mux.HandleFunc("GET /contact", site.handleContact)
	mux.HandleFunc("POST /api/contact", site.handleContactSubmit)
	mux.HandleFunc("GET /language/{code}", site.handleLanguage)
	mux.HandleFunc("GET /theme/{mode}", site.handleTheme)
	mux.HandleFunc("GET /placeholder.svg", site.handlePlaceholder)
	mux.HandleFunc("GET /sitemap.xml", site.handleSitemap)
	mux.HandleFunc("GET /healthz", site.handleHealth)
	mux.HandleFunc("GET /", site.handleNotFound)
	return nil
}

// Handler returns a mux with every site route registered, wrapped with
// request logging.
func (site *Site) Handler() (http.Handler, error) {
	mux := http.NewServeMux()
	if err := site.Register(mux); err != nil {
		return nil, err
	}
	return site.logRequests(mux), nil
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func (site *Site) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		started := time.Now()
		fields := map[string]any{
			"request_id": uuid.NewString(),
			"method":     r.Method,
			"path":       r.URL.Path,
		}
		ctx := logging.ContextWithFields(r.Context(), fields)
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r.WithContext(ctx))

		logger := logging.WithFields(site.logger, fields)
		args := []any{"status", rec.status, "duration_ms", time.Since(started).Milliseconds()}
		if rec.status >= http.StatusInternalServerError {
			logger.Error("http.request.failed", args...)
			return
		}
		logger.Debug("http.request.completed", args...)
	})
}
