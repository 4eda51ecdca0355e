package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newImportCmd(envFiles *[]string) *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import markdown content into the local content store",
		RunE: func(cmd *cobra.Command, _ []string) error {
			module, err := moduleBuilder(*envFiles)
			if err != nil {
				return err
			}
			defer module.Close()

			if strings.TrimSpace(dir) == "" {
				dir = module.Container().Config.Content.ImportDir
			}
			if strings.TrimSpace(dir) == "" {
				dir = "content"
			}

			if err := module.Migrate(cmd.Context()); err != nil {
				return fmt.Errorf("migrate: %w", err)
			}
			result, err := module.Import(cmd.Context(), dir)
			if err != nil {
				return fmt.Errorf("import %s: %w", dir, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "imported %d documents, skipped %d files\n", len(result.Imported), len(result.Skipped))
			return nil
		},
	}
	cmd.Flags().StringVar(&dir, "dir", "", "Markdown content directory (defaults to CONTENT_IMPORT_DIR, then ./content)")
	return cmd
}
