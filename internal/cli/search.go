package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/handiism/bookshelf/internal/store"
)

// SearchOptions holds flags for the search command.
type SearchOptions struct {
	*RootOptions
	By string
}

// NewSearchCommand creates the search command.
func NewSearchCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &SearchOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search for books by title or author",
		Long: `Search for books whose title or author contains the query,
case-insensitively. Matches are printed in collection order.

Example:
  bookshelf search dune --by title`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearch(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.By, "by", "any", "field to search (title|author|any)")

	return cmd
}

func runSearch(opts *SearchOptions, query string, cmd *cobra.Command) error {
	field, err := store.ParseSearchField(opts.By)
	if err != nil {
		return err
	}

	st, err := opts.openStore()
	if err != nil {
		return err
	}

	found := st.Find(query, field)
	if len(found) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No matching books found!")
		return nil
	}

	fmt.Fprintln(cmd.OutOrStdout(), "Matching Books:")
	writeBooks(cmd.OutOrStdout(), found)
	return nil
}
