package socialsync_test

import (
	"context"
	"errors"
	"testing"

	"github.com/goliatone/socialsync"
)

func TestConfigValidateRequiresSanityProjectID(t *testing.T) {
	cfg := socialsync.DefaultConfig()
	if err := cfg.Validate(); !errors.Is(err, socialsync.ErrSanityProjectIDRequired) {
		t.Fatalf("expected ErrSanityProjectIDRequired, got %v", err)
	}
}

func TestConfigValidateLocalBackendRequiresDSN(t *testing.T) {
	cfg := socialsync.DefaultConfig()
	cfg.Content.Backend = "local"
	cfg.Storage.DSN = ""
	if err := cfg.Validate(); !errors.Is(err, socialsync.ErrStorageDSNRequired) {
		t.Fatalf("expected ErrStorageDSNRequired, got %v", err)
	}
}

func TestConfigFromEnvReadsLegacyNames(t *testing.T) {
	cfg, err := socialsync.ConfigFromEnv(socialsync.LoadOptions{
		Environment: map[string]string{
			"NEXT_PUBLIC_SANITY_PROJECT_ID": "abc123",
			"NEXT_PUBLIC_SANITY_DATASET":    "staging",
			"EMAIL_SERVER_PORT":             "465",
		},
	})
	if err != nil {
		t.Fatalf("ConfigFromEnv: %v", err)
	}
	if cfg.Content.ProjectID != "abc123" || cfg.Content.Dataset != "staging" {
		t.Fatalf("unexpected content config %+v", cfg.Content)
	}
	if cfg.Mail.Port != 465 {
		t.Fatalf("expected mail port 465, got %d", cfg.Mail.Port)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

func TestModuleTranslationsFallBackToDefaults(t *testing.T) {
	cfg := socialsync.DefaultConfig()
	cfg.Content.Backend = "local"
	cfg.Storage.DSN = "file:module_translations?mode=memory&cache=shared"
	cfg.Logging.Provider = "console"
	cfg.Logging.Level = "fatal"

	module, err := socialsync.New(cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(func() { _ = module.Close() })
	if err := module.Migrate(context.Background()); err != nil {
		t.Fatalf("Migrate: %v", err)
	}

	tree := module.Translations(context.Background(), "en")
	if !tree.Complete() {
		t.Fatal("expected a complete translation tree")
	}
	if tree.Navigation.Home == "" {
		t.Fatal("expected navigation labels")
	}
}
