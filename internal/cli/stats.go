package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewStatsCommand creates the stats command.
func NewStatsCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show reading progress for the collection",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStats(rootOpts, cmd)
		},
	}

	return cmd
}

func runStats(opts *RootOptions, cmd *cobra.Command) error {
	st, err := opts.openStore()
	if err != nil {
		return err
	}

	stats := st.Stats()
	fmt.Fprintf(cmd.OutOrStdout(), "Total books in collection: %d\n", stats.Total)
	fmt.Fprintf(cmd.OutOrStdout(), "Books read: %d\n", stats.Read)
	fmt.Fprintf(cmd.OutOrStdout(), "Reading Progress: %.2f%%\n", stats.CompletionRate)
	return nil
}
