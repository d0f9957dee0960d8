package main

import (
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/feral-file/founder-scout/internal/adapter"
	"github.com/feral-file/founder-scout/internal/bootstrap"
	"github.com/feral-file/founder-scout/internal/domain"
	"github.com/feral-file/founder-scout/internal/heuristics"
)

func newScoreCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "score <founder-id>",
		Short: "Score one founder without persisting the result",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil || id == 0 {
				return fmt.Errorf("invalid founder id: %q", args[0])
			}

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

			engine, err := bootstrap.NewScoreEngine(cfg.Scoring, heuristics.Default(), adapter.NewClock())
			if err != nil {
				return err
			}

			founder, err := st.GetFounder(ctx, id)
			if err != nil {
				return err
			}
			if founder == nil {
				return fmt.Errorf("founder %d: %w", id, domain.ErrFounderNotFound)
			}

			b, err := engine.Evaluate(ctx, st, *founder)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s (%s)\n", founder.Name, founder.Handle)

			w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintf(w, "  founder quality\t%.1f\n", b.FounderQuality)
			fmt.Fprintf(w, "  execution velocity\t%.1f\n", b.ExecutionVelocity)
			fmt.Fprintf(w, "  market conviction\t%.1f\n", b.MarketConviction)
			fmt.Fprintf(w, "  early traction\t%.1f\n", b.EarlyTraction)
			fmt.Fprintf(w, "  deal availability\t%.1f\n", b.DealAvailability)
			fmt.Fprintf(w, "  composite\t%d\n", b.Composite)
			if inc := b.Incubator.String(); inc != "" {
				fmt.Fprintf(w, "  incubator\t%s\n", inc)
			}
			return w.Flush()
		},
	}
}
