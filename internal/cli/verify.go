package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewVerifyCommand creates the verify command.
func NewVerifyCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Check that every recorded attachment file exists on disk",
		Long: `Check that every recorded attachment file exists on disk.

Records whose attachment file has gone missing are listed. The collection
itself is never modified; re-attach a file with "bookshelf update --pdf".`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVerify(rootOpts, cmd)
		},
	}

	return cmd
}

func runVerify(opts *RootOptions, cmd *cobra.Command) error {
	st, err := opts.openStore()
	if err != nil {
		return err
	}

	missing, err := st.VerifyAttachments(cmd.Context())
	if err != nil {
		return err
	}

	if len(missing) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "All attachments present.")
		return nil
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%d attachment(s) missing:\n", len(missing))
	for _, m := range missing {
		fmt.Fprintf(cmd.OutOrStdout(), "  %s: %s\n", m.Book.Title, m.Path)
	}
	return fmt.Errorf("%d attachment(s) missing", len(missing))
}
