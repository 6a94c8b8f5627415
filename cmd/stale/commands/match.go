package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/stale/internal/adapters/telemetry/progrock"
	"go.trai.ch/stale/internal/app"
)

func (c *CLI) newMatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "match",
		Short: "Replay a change journal and evaluate staleness queries",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			journalPath, _ := cmd.Flags().GetString("journal")
			queryPath, _ := cmd.Flags().GetString("queries")
			parallelism, _ := cmd.Flags().GetInt("parallelism")
			progress, _ := cmd.Flags().GetBool("progress")

			if progress {
				recorder := progrock.New()
				defer func() { _ = recorder.Close() }()
				c.app.WithTelemetry(recorder)
			}

			results, err := c.app.Run(cmd.Context(), app.RunOptions{
				JournalPath: journalPath,
				QueryPath:   queryPath,
				Parallelism: parallelism,
			})
			if err != nil {
				return err
			}
			for _, r := range results {
				cmd.Printf("%s: %s\n", r.Name, r.Result)
			}
			return nil
		},
	}
	cmd.Flags().StringP("journal", "j", "journal.yaml", "Path to the change journal file")
	cmd.Flags().StringP("queries", "q", "queries.yaml", "Path to the query file")
	cmd.Flags().IntP("parallelism", "p", 0, "Concurrent query evaluations (0 = number of CPUs)")
	cmd.Flags().Bool("progress", false, "Render query progress on a terminal tape")
	return cmd
}
