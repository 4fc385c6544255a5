package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewRemoveCommand creates the remove command.
func NewRemoveCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remove <title>",
		Short: "Remove a book from the collection",
		Long: `Remove a book from the collection by its title.

The title is matched case-insensitively. When duplicate titles exist,
the first match in collection order is removed. The book's attachment
file, if any, is deleted from disk.

Example:
  bookshelf remove "Dune"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRemove(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runRemove(opts *RootOptions, title string, cmd *cobra.Command) error {
	st, err := opts.openStore()
	if err != nil {
		return err
	}

	removed, err := st.Remove(title)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), "Book removed successfully!")
	if removed.HasAttachment() {
		fmt.Fprintf(cmd.OutOrStdout(), "Deleted attachment %s\n", removed.AttachmentPath())
	}
	return nil
}
