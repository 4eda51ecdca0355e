package socialsync

import "github.com/goliatone/socialsync/internal/runtimeconfig"

var (
	ErrSiteURLInvalid          = runtimeconfig.ErrSiteURLInvalid
	ErrDefaultLanguageInvalid  = runtimeconfig.ErrDefaultLanguageInvalid
	ErrContentBackendUnknown   = runtimeconfig.ErrContentBackendUnknown
	ErrSanityProjectIDRequired = runtimeconfig.ErrSanityProjectIDRequired
	ErrStorageDriverUnknown    = runtimeconfig.ErrStorageDriverUnknown
	ErrStorageDSNRequired      = runtimeconfig.ErrStorageDSNRequired
	ErrRevalidateNegative      = runtimeconfig.ErrRevalidateNegative
	ErrMailPortInvalid         = runtimeconfig.ErrMailPortInvalid
	ErrServerAddrRequired      = runtimeconfig.ErrServerAddrRequired
	ErrLoggingProviderUnknown  = runtimeconfig.ErrLoggingProviderUnknown
	ErrLoggingLevelInvalid     = runtimeconfig.ErrLoggingLevelInvalid
	ErrLoggingFormatInvalid    = runtimeconfig.ErrLoggingFormatInvalid
)

type (
	Config        = runtimeconfig.Config
	SiteConfig    = runtimeconfig.SiteConfig
	ContentConfig = runtimeconfig.ContentConfig
	StorageConfig = runtimeconfig.StorageConfig
	CacheConfig   = runtimeconfig.CacheConfig
	MailConfig    = runtimeconfig.MailConfig
	ServerConfig  = runtimeconfig.ServerConfig
	LoggingConfig = runtimeconfig.LoggingConfig
	I18NConfig    = runtimeconfig.I18NConfig
	LoadOptions   = runtimeconfig.LoadOptions
)

// DefaultConfig returns the configuration used when no environment is set.
func DefaultConfig() Config {
	return runtimeconfig.DefaultConfig()
}

// ConfigFromEnv loads configuration from the environment and optional .env files.
func ConfigFromEnv(opts LoadOptions) (Config, error) {
	return runtimeconfig.FromEnv(opts)
}
