package di

import (
	"testing"

	"github.com/goliatone/socialsync/internal/logging/gologger"
	"github.com/goliatone/socialsync/internal/runtimeconfig"
)

func TestConfigureLoggerProviderUsesGoLoggerAdapter(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Content.ProjectID = "proj"
	cfg.Logging.Provider = "gologger"
	cfg.Logging.Level = "debug"
	cfg.Logging.Format = "json"

	container, err := NewContainer(cfg)
	if err != nil {
		t.Fatalf("NewContainer returned error: %v", err)
	}

	provider, ok := container.loggerProvider.(*gologger.Provider)
	if !ok {
		t.Fatalf("expected go-logger provider, got %T", container.loggerProvider)
	}
	if logger := provider.GetLogger("site.test"); logger == nil {
		t.Fatal("expected logger from go-logger provider, got nil")
	}
}

func TestNewContainerRejectsInvalidConfig(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	if _, err := NewContainer(cfg); err == nil {
		t.Fatal("expected missing sanity project id to be rejected")
	}
}
