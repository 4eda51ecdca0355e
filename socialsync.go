package socialsync

import (
	"context"
	"net/http"

	"github.com/goliatone/socialsync/internal/contact"
	"github.com/goliatone/socialsync/internal/content"
	"github.com/goliatone/socialsync/internal/di"
	"github.com/goliatone/socialsync/internal/i18n"
	"github.com/goliatone/socialsync/internal/pages"
	"github.com/goliatone/socialsync/pkg/interfaces"
)

// Fetcher exports the content fetch contract.
type Fetcher = content.Fetcher

// ContactService exports the contact submission service.
type ContactService = *contact.Service

// Submission exports the contact form input.
type Submission = contact.Submission

// SubmitResult exports the contact form response.
type SubmitResult = contact.Result

// Translations exports the translation tree.
type Translations = i18n.Translations

// Language exports the site language type.
type Language = i18n.Language

// Module represents the top level site runtime façade.
type Module struct {
	container *di.Container
}

// New constructs a site module using the provided configuration and optional DI overrides.
func New(cfg Config, opts ...di.Option) (*Module, error) {
	container, err := di.NewContainer(cfg, opts...)
	if err != nil {
		return nil, err
	}
	return &Module{container: container}, nil
}

// Container exposes the underlying DI container for advanced integrations.
func (m *Module) Container() *di.Container {
	return m.container
}

// Handler returns the HTTP handler serving the site.
func (m *Module) Handler() (http.Handler, error) {
	return m.container.Handler()
}

// Migrate creates the SQL tables used by the local content backend.
func (m *Module) Migrate(ctx context.Context) error {
	return m.container.Migrate(ctx)
}

// Import loads markdown content from dir into the local content store.
func (m *Module) Import(ctx context.Context, dir string) (content.ImportResult, error) {
	importer, err := m.container.Importer()
	if err != nil {
		return content.ImportResult{}, err
	}
	return importer.ImportDir(ctx, dir)
}

// Content returns the configured content fetcher.
func (m *Module) Content() Fetcher {
	return m.container.Fetcher()
}

// Contact returns the contact submission service.
func (m *Module) Contact() ContactService {
	return m.container.ContactService()
}

// Pages returns the page view-model builder.
func (m *Module) Pages() *pages.Renderer {
	return m.container.Renderer()
}

// Translations loads the translation tree for lang, remote first.
func (m *Module) Translations(ctx context.Context, lang Language) Translations {
	tree, _ := m.container.Translations().Load(ctx, lang)
	return tree
}

// Logger returns the root site logger.
func (m *Module) Logger() interfaces.Logger {
	return m.container.Logger()
}

// Close releases resources opened by the module.
func (m *Module) Close() error {
	if m == nil || m.container == nil {
		return nil
	}
	return m.container.Close()
}
