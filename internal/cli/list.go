package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewListCommand creates the list command.
func NewListCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Show all books in the collection",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(rootOpts, cmd)
		},
	}

	return cmd
}

func runList(opts *RootOptions, cmd *cobra.Command) error {
	st, err := opts.openStore()
	if err != nil {
		return err
	}

	books := st.ListAll()
	if len(books) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "Your collection is empty!")
		return nil
	}

	fmt.Fprintln(cmd.OutOrStdout(), "Your Book Collection:")
	writeBooks(cmd.OutOrStdout(), books)
	return nil
}
