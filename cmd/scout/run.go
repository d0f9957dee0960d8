package main

import (
	"encoding/json"
	"fmt"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/feral-file/founder-scout/internal/bootstrap"
)

func newRunCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Run the pipeline once and print the aggregate counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.load()
			if err != nil {
				return err
			}
			defer flushLogger()

			ctx := cmd.Context()
			services, err := bootstrap.Build(ctx, &cfg.PipelineConfig, nil)
			if err != nil {
				return err
			}
			defer services.Close()

			run, err := services.Pipeline.Run(ctx)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Run %s %s\n", run.ID, run.Status)

			w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintf(w, "  founders embedded\t%d\n", run.FoundersEmbedded)
			fmt.Fprintf(w, "  themes upserted\t%d\n", run.ThemesUpserted)
			fmt.Fprintf(w, "  founders scored\t%d\n", run.FoundersScored)
			fmt.Fprintf(w, "  alerts sent\t%d\n", run.AlertsSent)
			fmt.Fprintf(w, "  events fired\t%d\n", run.EventsFired)
			if err := w.Flush(); err != nil {
				return err
			}

			if len(run.PhaseErrors) == 0 {
				return nil
			}
			var phaseErrors map[string]string
			if err := json.Unmarshal(run.PhaseErrors, &phaseErrors); err != nil {
				return fmt.Errorf("failed to decode phase errors: %w", err)
			}
			phases := make([]string, 0, len(phaseErrors))
			for phase := range phaseErrors {
				phases = append(phases, phase)
			}
			sort.Strings(phases)
			for _, phase := range phases {
				fmt.Fprintf(out, "  %s failed: %s\n", phase, phaseErrors[phase])
			}
			return nil
		},
	}
}
