package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/feral-file/founder-scout/internal/bootstrap"
)

func newMigrateCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		Long:  "Create or update every table. On postgres the pgvector extension is enabled first.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.load()
			if err != nil {
				return err
			}
			defer flushLogger()

			db, _, err := bootstrap.OpenStore(cmd.Context(), cfg.Database, cfg.Debug)
			if err != nil {
				return err
			}
			defer bootstrap.CloseDB(db)

			fmt.Fprintf(cmd.OutOrStdout(), "Migrated %s database\n", cfg.Database.Driver)
			return nil
		},
	}
}
