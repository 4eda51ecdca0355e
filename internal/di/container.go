package di

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	repocache "github.com/goliatone/go-repository-cache/cache"
	"github.com/goliatone/socialsync/internal/commands"
	"github.com/goliatone/socialsync/internal/contact"
	"github.com/goliatone/socialsync/internal/content"
	sitehttp "github.com/goliatone/socialsync/internal/http"
	"github.com/goliatone/socialsync/internal/i18n"
	"github.com/goliatone/socialsync/internal/logging"
	"github.com/goliatone/socialsync/internal/logging/console"
	"github.com/goliatone/socialsync/internal/logging/gologger"
	"github.com/goliatone/socialsync/internal/media"
	"github.com/goliatone/socialsync/internal/pages"
	"github.com/goliatone/socialsync/internal/routes"
	"github.com/goliatone/socialsync/internal/runtimeconfig"
	"github.com/goliatone/socialsync/internal/storage"
	"github.com/goliatone/socialsync/pkg/interfaces"
	"github.com/uptrace/bun"
)

// ErrLocalStoreUnavailable is returned by operations that need the SQL
// content mirror when the sanity backend is configured.
var ErrLocalStoreUnavailable = errors.New("di: local content store requires CONTENT_BACKEND=local")

// Container wires module dependencies from a runtime configuration.
type Container struct {
	Config runtimeconfig.Config

	loggerProvider interfaces.LoggerProvider
	logger         interfaces.Logger

	bunDB         *bun.DB
	ownsDB        bool
	cacheService  repocache.CacheService
	keySerializer repocache.KeySerializer
	httpClient    *http.Client

	sanity   *content.SanityClient
	local    *content.LocalStore
	fetcher  content.Fetcher
	messages *contact.BunStore

	contactStore contact.Store
	notifier     contact.Notifier
	telemetry    commands.Telemetry

	routes       *routes.Routes
	images       *media.Resolver
	translations *i18n.Store
	renderer     *pages.Renderer
	templates    *pages.Templates
	contactSvc   *contact.Service
	site         *sitehttp.Site
}

// Option mutates the container before it is finalised.
type Option func(*Container)

// WithLoggerProvider overrides the provider selected by Logging.Provider.
func WithLoggerProvider(provider interfaces.LoggerProvider) Option {
	return func(c *Container) {
		c.loggerProvider = provider
	}
}

// WithBunDB supplies the SQL database instead of opening Storage.DSN. The
// caller keeps ownership of db.
func WithBunDB(db *bun.DB) Option {
	return func(c *Container) {
		c.bunDB = db
	}
}

// WithCache overrides the repository cache used by the local content store.
func WithCache(service repocache.CacheService, serializer repocache.KeySerializer) Option {
	return func(c *Container) {
		c.cacheService = service
		c.keySerializer = serializer
	}
}

// WithHTTPClient sets the client used for Sanity API calls.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Container) {
		c.httpClient = client
	}
}

// WithFetcher replaces the configured content backend for reads.
func WithFetcher(fetcher content.Fetcher) Option {
	return func(c *Container) {
		c.fetcher = fetcher
	}
}

// WithContactStore replaces the configured contact persistence.
func WithContactStore(store contact.Store) Option {
	return func(c *Container) {
		c.contactStore = store
	}
}

// WithNotifier replaces the SMTP notifier.
func WithNotifier(notifier contact.Notifier) Option {
	return func(c *Container) {
		c.notifier = notifier
	}
}

// WithTelemetry receives contact command execution reports.
func WithTelemetry(fn commands.Telemetry) Option {
	return func(c *Container) {
		c.telemetry = fn
	}
}

// NewContainer validates cfg and wires every service.
func NewContainer(cfg runtimeconfig.Config, opts ...Option) (*Container, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := &Container{Config: cfg}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}

	steps := []func() error{
		c.configureLoggerProvider,
		c.configureStorage,
		c.configureContent,
		c.configureContact,
		c.configurePages,
		c.configureSite,
	}
	for _, step := range steps {
		if err := step(); err != nil {
			_ = c.Close()
			return nil, err
		}
	}

	c.logger.Info("container.configured",
		"content_backend", strings.ToLower(cfg.Content.Backend),
		"revalidate", cfg.Content.Revalidate.String(),
		"mail_configured", cfg.Mail.Configured(),
	)
	return c, nil
}

func (c *Container) configureLoggerProvider() error {
	if c.loggerProvider == nil {
		switch strings.ToLower(strings.TrimSpace(c.Config.Logging.Provider)) {
		case runtimeconfig.LoggingProviderConsole:
			level := console.ParseLevel(c.Config.Logging.Level)
			c.loggerProvider = console.NewProvider(console.Options{MinLevel: &level})
		default:
			provider, err := gologger.NewProvider(gologger.Config{
				Level:     c.Config.Logging.Level,
				Format:    c.Config.Logging.Format,
				AddSource: c.Config.Logging.AddSource,
				Focus:     c.Config.Logging.Focus,
			})
			if err != nil {
				return err
			}
			c.loggerProvider = provider
		}
	}
	c.logger = logging.ModuleLogger(c.loggerProvider, "site")
	return nil
}

func (c *Container) configureStorage() error {
	if !c.Config.UsesStorage() {
		return nil
	}
	if c.bunDB == nil {
		db, err := storage.Open(storage.Config{
			Driver: c.Config.Storage.Driver,
			DSN:    c.Config.Storage.DSN,
		})
		if err != nil {
			return err
		}
		c.bunDB = db
		c.ownsDB = true
	}
	c.configureCacheDefaults()
	return nil
}

func (c *Container) configureCacheDefaults() {
	if !c.Config.Cache.Enabled {
		return
	}

	if c.cacheService == nil {
		cfg := repocache.DefaultConfig()
		if c.Config.Cache.TTL > 0 {
			cfg.TTL = c.Config.Cache.TTL
		}
		service, err := repocache.NewCacheService(cfg)
		if err != nil {
			c.logger.Warn("cache.disabled", "error", err)
			return
		}
		c.cacheService = service
	}

	if c.cacheService != nil && c.keySerializer == nil {
		c.keySerializer = repocache.NewDefaultKeySerializer()
	}
}

func (c *Container) configureContent() error {
	contentLogger := logging.ContentLogger(c.loggerProvider)

	switch strings.ToLower(strings.TrimSpace(c.Config.Content.Backend)) {
	case runtimeconfig.ContentBackendLocal:
		c.local = content.NewLocalStore(c.bunDB,
			content.WithDocumentCache(c.cacheService, c.keySerializer),
			content.WithLocalLogger(contentLogger),
		)
	default:
		client, err := content.NewSanityClient(content.SanityConfig{
			ProjectID:  c.Config.Content.ProjectID,
			Dataset:    c.Config.Content.Dataset,
			Token:      c.Config.Content.Token,
			APIVersion: c.Config.Content.APIVersion,
			UseCDN:     c.Config.Content.UseCDN,
		}, content.WithHTTPClient(c.httpClient), content.WithLogger(contentLogger))
		if err != nil {
			return err
		}
		c.sanity = client
	}

	if c.fetcher == nil {
		if c.local != nil {
			c.fetcher = c.local
		} else {
			c.fetcher = c.sanity
		}
		if ttl := c.Config.Content.Revalidate; ttl > 0 {
			service, err := repocache.NewCacheService(content.RevalidateCacheConfig(ttl))
			if err != nil {
				return fmt.Errorf("di: revalidation cache: %w", err)
			}
			c.fetcher = content.NewRevalidating(c.fetcher, ttl,
				content.WithRevalidateCache(service, repocache.NewDefaultKeySerializer()),
			)
		}
	}
	return nil
}

func (c *Container) configureContact() error {
	if c.contactStore == nil {
		if c.bunDB != nil {
			c.messages = contact.NewBunStore(c.bunDB)
			c.contactStore = c.messages
		} else {
			c.contactStore = contact.NewSanityStore(c.sanity)
		}
	}
	if c.notifier == nil {
		mail := c.Config.Mail
		c.notifier = contact.NewMailNotifier(contact.MailConfig{
			Host:     mail.Host,
			Port:     mail.Port,
			User:     mail.User,
			Password: mail.Password,
			From:     mail.From,
			To:       mail.To,
		})
		if !mail.Configured() {
			c.logger.Warn("mail.unconfigured", "host_set", mail.Host != "", "to_set", mail.To != "")
		}
	}

	svc, err := contact.NewService(c.contactStore,
		contact.WithLogger(logging.ContactLogger(c.loggerProvider)),
		contact.WithCommandLogger(commands.CommandLogger(c.loggerProvider, "contact")),
		contact.WithNotifier(c.notifier),
		contact.WithTelemetry(c.telemetry),
	)
	if err != nil {
		return err
	}
	c.contactSvc = svc
	return nil
}

func (c *Container) configurePages() error {
	urls, err := routes.New(c.Config.Site.URL)
	if err != nil {
		return err
	}
	c.routes = urls
	c.images = media.NewResolver(c.Config.Content.ProjectID, c.Config.Content.Dataset)
	c.translations = i18n.NewStore(c.fetcher, i18n.WithLogger(logging.I18NLogger(c.loggerProvider)))
	c.renderer = pages.NewRenderer(c.fetcher, c.images, c.routes,
		pages.WithLogger(logging.PagesLogger(c.loggerProvider)),
		pages.WithSiteName(c.Config.Site.Name),
	)
	templates, err := pages.ParseTemplates()
	if err != nil {
		return err
	}
	c.templates = templates
	return nil
}

func (c *Container) configureSite() error {
	lang, err := i18n.ParseLanguage(c.Config.I18N.DefaultLanguage)
	if err != nil {
		return fmt.Errorf("di: %w", err)
	}
	c.site = sitehttp.NewSite(
		sitehttp.WithRenderer(c.renderer),
		sitehttp.WithTemplates(c.templates),
		sitehttp.WithTranslations(c.translations),
		sitehttp.WithContactService(c.contactSvc),
		sitehttp.WithDefaultLanguage(lang),
		sitehttp.WithSecureCookies(strings.HasPrefix(c.Config.Site.URL, "https://")),
		sitehttp.WithLogger(logging.HTTPLogger(c.loggerProvider)),
	)
	return nil
}

// Migrate creates the SQL tables of the local backend. It is a no-op for
// the sanity backend.
func (c *Container) Migrate(ctx context.Context) error {
	if c.local != nil {
		if err := c.local.Migrate(ctx); err != nil {
			return err
		}
	}
	if c.messages != nil {
		if err := c.messages.Migrate(ctx); err != nil {
			return err
		}
	}
	return nil
}

// Importer returns a markdown importer over the local content store. Cached
// query results are purged after each import.
func (c *Container) Importer() (*content.Importer, error) {
	if c.local == nil {
		return nil, ErrLocalStoreUnavailable
	}
	opts := []content.ImporterOption{content.WithImportLogger(logging.ContentLogger(c.loggerProvider))}
	if purger, ok := c.fetcher.(content.Purger); ok {
		opts = append(opts, content.WithImportPurger(purger))
	}
	return content.NewImporter(c.local, opts...), nil
}

// Handler returns the site HTTP handler.
func (c *Container) Handler() (http.Handler, error) {
	return c.site.Handler()
}

// Close releases the database when the container opened it.
func (c *Container) Close() error {
	if c.ownsDB && c.bunDB != nil {
		err := c.bunDB.Close()
		c.bunDB = nil
		return err
	}
	return nil
}

func (c *Container) LoggerProvider() interfaces.LoggerProvider {
	return c.loggerProvider
}

func (c *Container) Logger() interfaces.Logger {
	return c.logger
}

func (c *Container) Fetcher() content.Fetcher {
	return c.fetcher
}

func (c *Container) Translations() *i18n.Store {
	return c.translations
}

func (c *Container) Renderer() *pages.Renderer {
	return c.renderer
}

func (c *Container) ContactService() *contact.Service {
	return c.contactSvc
}

func (c *Container) Routes() *routes.Routes {
	return c.routes
}

// ShutdownTimeout is the grace period for in-flight requests.
func (c *Container) ShutdownTimeout() time.Duration {
	if c.Config.Server.ShutdownTimeout > 0 {
		return c.Config.Server.ShutdownTimeout
	}
	return 10 * time.Second
}
