package runtimeconfig

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"
)

var (
	ErrSiteURLInvalid          = errors.New("site config: site url must be an absolute http(s) url")
	ErrDefaultLanguageInvalid  = errors.New("site config: default language must be pt or en")
	ErrContentBackendUnknown   = errors.New("site config: content backend is invalid")
	ErrSanityProjectIDRequired = errors.New("site config: sanity project id is required for the sanity backend")
	ErrStorageDriverUnknown    = errors.New("site config: storage driver is invalid")
	ErrStorageDSNRequired      = errors.New("site config: storage dsn is required")
	ErrRevalidateNegative      = errors.New("site config: content revalidate interval must be zero or positive")
	ErrMailPortInvalid         = errors.New("site config: mail port must be between 1 and 65535")
	ErrServerAddrRequired      = errors.New("site config: server address is required")
	ErrLoggingProviderUnknown  = errors.New("site config: logging provider is invalid")
	ErrLoggingLevelInvalid     = errors.New("site config: logging level is invalid")
	ErrLoggingFormatInvalid    = errors.New("site config: logging format is invalid")
)

const (
	ContentBackendSanity = "sanity"
	ContentBackendLocal  = "local"

	StorageDriverSQLite   = "sqlite"
	StorageDriverPostgres = "postgres"

	LoggingProviderConsole  = "console"
	LoggingProviderGoLogger = "gologger"

	DefaultSanityAPIVersion = "2023-05-03"
	DefaultSanityDataset    = "production"
)

// Config aggregates every runtime setting. Environment variable names follow
// the `env` tags and are loaded by FromEnv on top of DefaultConfig.
type Config struct {
	Site    SiteConfig
	Content ContentConfig
	Storage StorageConfig
	Cache   CacheConfig
	Mail    MailConfig
	Server  ServerConfig
	Logging LoggingConfig
	I18N    I18NConfig
}

// SiteConfig describes the public site.
type SiteConfig struct {
	Name string `env:"SITE_NAME"`
	URL  string `env:"SITE_URL"`
}

// ContentConfig selects and configures the content store.
type ContentConfig struct {
	Backend    string        `env:"CONTENT_BACKEND"`
	ProjectID  string        `env:"SANITY_PROJECT_ID"`
	Dataset    string        `env:"SANITY_DATASET"`
	Token      string        `env:"SANITY_API_TOKEN"`
	APIVersion string        `env:"SANITY_API_VERSION"`
	UseCDN     bool          `env:"SANITY_USE_CDN"`
	Revalidate time.Duration `env:"CONTENT_REVALIDATE"`
	ImportDir  string        `env:"CONTENT_IMPORT_DIR"`
}

// StorageConfig configures the SQL database used by the local backend and by
// contact persistence when the local backend is active.
type StorageConfig struct {
	Driver string `env:"DATABASE_DRIVER"`
	DSN    string `env:"DATABASE_DSN"`
}

// CacheConfig toggles the repository read cache.
type CacheConfig struct {
	Enabled bool          `env:"CACHE_ENABLED"`
	TTL     time.Duration `env:"CACHE_TTL"`
}

// MailConfig carries the SMTP transport settings. Missing values are not a
// startup error; sending fails instead.
type MailConfig struct {
	Host     string `env:"EMAIL_SERVER_HOST"`
	Port     int    `env:"EMAIL_SERVER_PORT"`
	User     string `env:"EMAIL_SERVER_USER"`
	Password string `env:"EMAIL_SERVER_PASSWORD"`
	From     string `env:"EMAIL_FROM"`
	To       string `env:"EMAIL_TO"`
}

// Configured reports whether the transport has enough settings to send.
func (m MailConfig) Configured() bool {
	return strings.TrimSpace(m.Host) != "" && strings.TrimSpace(m.From) != "" && strings.TrimSpace(m.To) != ""
}

// ServerConfig configures the HTTP listener.
type ServerConfig struct {
	Addr              string        `env:"HTTP_ADDR"`
	ReadHeaderTimeout time.Duration `env:"HTTP_READ_HEADER_TIMEOUT"`
	ShutdownTimeout   time.Duration `env:"SHUTDOWN_TIMEOUT"`
}

// LoggingConfig captures provider-specific options for runtime logging.
type LoggingConfig struct {
	Provider  string   `env:"LOG_PROVIDER"`
	Level     string   `env:"LOG_LEVEL"`
	Format    string   `env:"LOG_FORMAT"`
	AddSource bool     `env:"LOG_ADD_SOURCE"`
	Focus     []string `env:"LOG_FOCUS" envSeparator:","`
}

// I18NConfig selects the language used when a visitor has no preference.
type I18NConfig struct {
	DefaultLanguage string `env:"DEFAULT_LANGUAGE"`
}

// DefaultConfig returns the configuration used when no environment is set.
func DefaultConfig() Config {
	return Config{
		Site: SiteConfig{
			Name: "Social Sync",
			URL:  "http://localhost:3000",
		},
		Content: ContentConfig{
			Backend:    ContentBackendSanity,
			Dataset:    DefaultSanityDataset,
			APIVersion: DefaultSanityAPIVersion,
			Revalidate: time.Hour,
		},
		Storage: StorageConfig{
			Driver: StorageDriverSQLite,
			DSN:    "file:socialsync.db?cache=shared",
		},
		Cache: CacheConfig{
			Enabled: true,
			TTL:     time.Minute,
		},
		Mail: MailConfig{
			Port: 587,
		},
		Server: ServerConfig{
			Addr:              ":3000",
			ReadHeaderTimeout: 5 * time.Second,
			ShutdownTimeout:   10 * time.Second,
		},
		Logging: LoggingConfig{
			Provider: LoggingProviderGoLogger,
			Level:    "info",
			Format:   "json",
		},
		I18N: I18NConfig{
			DefaultLanguage: "pt",
		},
	}
}

// Validate reports the first inconsistency found.
func (cfg Config) Validate() error {
	site, err := url.Parse(strings.TrimSpace(cfg.Site.URL))
	if err != nil || (site.Scheme != "http" && site.Scheme != "https") || site.Host == "" {
		return ErrSiteURLInvalid
	}

	switch strings.ToLower(strings.TrimSpace(cfg.I18N.DefaultLanguage)) {
	case "pt", "en":
	default:
		return fmt.Errorf("%w: %s", ErrDefaultLanguageInvalid, cfg.I18N.DefaultLanguage)
	}

	switch normalize(cfg.Content.Backend) {
	case ContentBackendSanity:
		if strings.TrimSpace(cfg.Content.ProjectID) == "" {
			return ErrSanityProjectIDRequired
		}
	case ContentBackendLocal:
	default:
		return fmt.Errorf("%w: %s", ErrContentBackendUnknown, cfg.Content.Backend)
	}
	if cfg.Content.Revalidate < 0 {
		return ErrRevalidateNegative
	}

	if cfg.UsesStorage() {
		switch normalize(cfg.Storage.Driver) {
		case StorageDriverSQLite, StorageDriverPostgres:
		default:
			return fmt.Errorf("%w: %s", ErrStorageDriverUnknown, cfg.Storage.Driver)
		}
		if strings.TrimSpace(cfg.Storage.DSN) == "" {
			return ErrStorageDSNRequired
		}
	}

	if cfg.Mail.Port < 1 || cfg.Mail.Port > 65535 {
		return fmt.Errorf("%w: %d", ErrMailPortInvalid, cfg.Mail.Port)
	}

	if strings.TrimSpace(cfg.Server.Addr) == "" {
		return ErrServerAddrRequired
	}

	if provider := normalize(cfg.Logging.Provider); provider != LoggingProviderConsole && provider != LoggingProviderGoLogger {
		return fmt.Errorf("%w: %s", ErrLoggingProviderUnknown, cfg.Logging.Provider)
	}
	if !isSupportedLevel(cfg.Logging.Level) {
		return fmt.Errorf("%w: %s", ErrLoggingLevelInvalid, cfg.Logging.Level)
	}
	if normalize(cfg.Logging.Provider) == LoggingProviderGoLogger && !isSupportedFormat(cfg.Logging.Format) {
		return fmt.Errorf("%w: %s", ErrLoggingFormatInvalid, cfg.Logging.Format)
	}
	return nil
}

// UsesStorage reports whether a SQL database is required.
func (cfg Config) UsesStorage() bool {
	return normalize(cfg.Content.Backend) == ContentBackendLocal
}

func normalize(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}

func isSupportedLevel(level string) bool {
	switch normalize(level) {
	case "", "trace", "debug", "info", "warn", "warning", "error", "fatal":
		return true
	}
	return false
}

func isSupportedFormat(format string) bool {
	switch normalize(format) {
	case "", "json", "console", "pretty":
		return true
	}
	return false
}
