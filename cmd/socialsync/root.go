package main

import (
	"fmt"

	"github.com/goliatone/socialsync"
	"github.com/spf13/cobra"
)

// moduleBuilder is swapped in tests.
var moduleBuilder = buildModule

func buildModule(envFiles []string) (*socialsync.Module, error) {
	cfg, err := socialsync.ConfigFromEnv(socialsync.LoadOptions{DotEnvFiles: envFiles})
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	module, err := socialsync.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("bootstrap module: %w", err)
	}
	return module, nil
}

func newRootCmd() *cobra.Command {
	var envFiles []string

	root := &cobra.Command{
		Use:           "socialsync",
		Short:         "Social Sync marketing site",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringSliceVar(&envFiles, "env-file", []string{".env"}, "Dotenv files loaded before the environment")

	root.AddCommand(
		newServeCmd(&envFiles),
		newImportCmd(&envFiles),
		newMigrateCmd(&envFiles),
	)
	return root
}
