package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/handiism/bookshelf/internal/model"
	"github.com/handiism/bookshelf/internal/store"
)

// UpdateOptions holds flags for the update command.
type UpdateOptions struct {
	*RootOptions
	Title  string
	Author string
	Year   string
	Genre  string
	Read   bool
	PDF    string
}

// NewUpdateCommand creates the update command.
func NewUpdateCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &UpdateOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "update <title>",
		Short: "Update the details of an existing book",
		Long: `Update the details of an existing book.

The book is located by case-insensitive title match (first match wins for
duplicate titles). Only the fields given as flags are changed; everything
else keeps its current value. A new --pdf replaces the stored attachment,
deleting the old file.

Example:
  bookshelf update "Dune" --year 1965 --read`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUpdate(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Title, "title", "", "new title")
	cmd.Flags().StringVar(&opts.Author, "author", "", "new author name")
	cmd.Flags().StringVar(&opts.Year, "year", "", "new publication year")
	cmd.Flags().StringVar(&opts.Genre, "genre", "", "new genre")
	cmd.Flags().BoolVar(&opts.Read, "read", false, "read status (true/false)")
	cmd.Flags().StringVar(&opts.PDF, "pdf", "", "path of a document file to attach, replacing the old one")

	return cmd
}

func runUpdate(opts *UpdateOptions, title string, cmd *cobra.Command) error {
	st, err := opts.openStore()
	if err != nil {
		return err
	}

	// Only flags the user actually set become part of the update.
	var changes store.Changes
	flags := cmd.Flags()
	if flags.Changed("title") {
		changes.Title = &opts.Title
	}
	if flags.Changed("author") {
		changes.Author = &opts.Author
	}
	if flags.Changed("year") {
		changes.Year = &opts.Year
	}
	if flags.Changed("genre") {
		changes.Genre = &opts.Genre
	}
	if flags.Changed("read") {
		changes.Read = &opts.Read
	}
	if opts.PDF != "" {
		data, err := os.ReadFile(opts.PDF)
		if err != nil {
			return fmt.Errorf("reading attachment: %w", err)
		}
		changes.Attachment = &store.Upload{Name: filepath.Base(opts.PDF), Data: data}
	}

	updated, err := st.Update(title, changes)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), "Book updated successfully!")
	writeBooks(cmd.OutOrStdout(), []model.Book{updated})
	return nil
}
