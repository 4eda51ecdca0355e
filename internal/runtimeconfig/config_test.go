package runtimeconfig_test

import (
	"errors"
	"testing"
	"time"

	"github.com/goliatone/socialsync/internal/runtimeconfig"
)

func validConfig() runtimeconfig.Config {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Content.ProjectID = "abc123"
	return cfg
}

func TestDefaultConfigRequiresSanityProject(t *testing.T) {
	err := runtimeconfig.DefaultConfig().Validate()
	if !errors.Is(err, runtimeconfig.ErrSanityProjectIDRequired) {
		t.Fatalf("expected ErrSanityProjectIDRequired, got %v", err)
	}
	if err := validConfig().Validate(); err != nil {
		t.Fatalf("expected valid config, got %v", err)
	}
}

func TestValidateLocalBackendNeedsStorage(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Content.Backend = "local"
	cfg.Storage.DSN = " "

	if err := cfg.Validate(); !errors.Is(err, runtimeconfig.ErrStorageDSNRequired) {
		t.Fatalf("expected ErrStorageDSNRequired, got %v", err)
	}

	cfg.Storage.DSN = "file::memory:"
	cfg.Storage.Driver = "mysql"
	if err := cfg.Validate(); !errors.Is(err, runtimeconfig.ErrStorageDriverUnknown) {
		t.Fatalf("expected ErrStorageDriverUnknown, got %v", err)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*runtimeconfig.Config)
		want   error
	}{
		{"site url", func(c *runtimeconfig.Config) { c.Site.URL = "localhost" }, runtimeconfig.ErrSiteURLInvalid},
		{"language", func(c *runtimeconfig.Config) { c.I18N.DefaultLanguage = "es" }, runtimeconfig.ErrDefaultLanguageInvalid},
		{"backend", func(c *runtimeconfig.Config) { c.Content.Backend = "contentful" }, runtimeconfig.ErrContentBackendUnknown},
		{"revalidate", func(c *runtimeconfig.Config) { c.Content.Revalidate = -time.Second }, runtimeconfig.ErrRevalidateNegative},
		{"mail port", func(c *runtimeconfig.Config) { c.Mail.Port = 0 }, runtimeconfig.ErrMailPortInvalid},
		{"addr", func(c *runtimeconfig.Config) { c.Server.Addr = "" }, runtimeconfig.ErrServerAddrRequired},
		{"provider", func(c *runtimeconfig.Config) { c.Logging.Provider = "syslog" }, runtimeconfig.ErrLoggingProviderUnknown},
		{"level", func(c *runtimeconfig.Config) { c.Logging.Level = "loud" }, runtimeconfig.ErrLoggingLevelInvalid},
		{"format", func(c *runtimeconfig.Config) { c.Logging.Format = "xml" }, runtimeconfig.ErrLoggingFormatInvalid},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := validConfig()
			tc.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestFromEnvOverlaysDefaults(t *testing.T) {
	cfg, err := runtimeconfig.FromEnv(runtimeconfig.LoadOptions{
		Environment: map[string]string{
			"NEXT_PUBLIC_SANITY_PROJECT_ID": "legacy-id",
			"NEXT_PUBLIC_SANITY_DATASET":    "staging",
			"EMAIL_SERVER_HOST":             "smtp.example.com",
			"EMAIL_SERVER_PORT":             "465",
			"CONTENT_REVALIDATE":            "30m",
			"LOG_FOCUS":                     "site.contact,site.http",
		},
	})
	if err != nil {
		t.Fatalf("FromEnv: %v", err)
	}

	if cfg.Content.ProjectID != "legacy-id" {
		t.Fatalf("expected legacy project id, got %q", cfg.Content.ProjectID)
	}
	if cfg.Content.Dataset != "staging" {
		t.Fatalf("expected legacy dataset, got %q", cfg.Content.Dataset)
	}
	if cfg.Content.APIVersion != runtimeconfig.DefaultSanityAPIVersion {
		t.Fatalf("expected default api version, got %q", cfg.Content.APIVersion)
	}
	if cfg.Mail.Host != "smtp.example.com" || cfg.Mail.Port != 465 {
		t.Fatalf("unexpected mail config %+v", cfg.Mail)
	}
	if cfg.Content.Revalidate != 30*time.Minute {
		t.Fatalf("expected 30m revalidate, got %s", cfg.Content.Revalidate)
	}
	if len(cfg.Logging.Focus) != 2 || cfg.Logging.Focus[1] != "site.http" {
		t.Fatalf("unexpected focus %v", cfg.Logging.Focus)
	}
	if cfg.Server.Addr != ":3000" {
		t.Fatalf("expected default addr, got %q", cfg.Server.Addr)
	}
}

func TestMailConfigured(t *testing.T) {
	mail := runtimeconfig.MailConfig{Host: "smtp", From: "a@x.com"}
	if mail.Configured() {
		t.Fatal("expected unconfigured without recipient")
	}
	mail.To = "b@x.com"
	if !mail.Configured() {
		t.Fatal("expected configured")
	}
}
