package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/feral-file/founder-scout/internal/bootstrap"
)

func newThemesCmd(opts *rootOptions) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "themes",
		Short: "List themes by emergence score",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.load()
			if err != nil {
				return err
			}
			defer flushLogger()

			ctx := cmd.Context()
			db, st, err := bootstrap.OpenStore(ctx, cfg.Database, cfg.Debug)
			if err != nil {
				return err
			}
			defer bootstrap.CloseDB(db)

			themes, err := st.ListThemes(ctx)
			if err != nil {
				return err
			}
			if limit > 0 && len(themes) > limit {
				themes = themes[:limit]
			}

			out := cmd.OutOrStdout()
			if len(themes) == 0 {
				fmt.Fprintln(out, "No themes detected yet")
				return nil
			}

			w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tEMERGENCE\tBUILDERS\tWEEKLY\tSECTOR")
			for _, t := range themes {
				fmt.Fprintf(w, "%d\t%s\t%d\t%d\t%+.0f%%\t%s\n",
					t.ID, t.Name, t.EmergenceScore, t.BuilderCount, t.WeeklyVelocity*100, t.Sector)
			}
			return w.Flush()
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 0, "Maximum number of themes to print (0 prints all)")
	return cmd
}
