package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newMigrateCmd(envFiles *[]string) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create the SQL tables used by the local backend",
		RunE: func(cmd *cobra.Command, _ []string) error {
			module, err := moduleBuilder(*envFiles)
			if err != nil {
				return err
			}
			defer module.Close()

			if err := module.Migrate(cmd.Context()); err != nil {
				return fmt.Errorf("migrate: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "migrations applied")
			return nil
		},
	}
}
