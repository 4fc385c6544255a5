package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/handiism/bookshelf/internal/model"
	"github.com/handiism/bookshelf/internal/store"
)

// AddOptions holds flags for the add command.
type AddOptions struct {
	*RootOptions
	Author string
	Year   string
	Genre  string
	Read   bool
	PDF    string
}

// NewAddCommand creates the add command.
func NewAddCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &AddOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a new book to the collection",
		Long: `Add a new book to the collection.

Duplicate titles are allowed. The optional --pdf flag attaches a document:
the file is copied into the uploads directory and referenced by the record.

Example:
  bookshelf add "Dune" --author "Frank Herbert" --year 1965 --genre "Science Fiction" --read --pdf ~/dune.pdf`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdd(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Author, "author", "", "author name")
	cmd.Flags().StringVar(&opts.Year, "year", "", "publication year")
	cmd.Flags().StringVar(&opts.Genre, "genre", "", "book genre")
	cmd.Flags().BoolVar(&opts.Read, "read", false, "mark the book as read")
	cmd.Flags().StringVar(&opts.PDF, "pdf", "", "path of a document file to attach")

	return cmd
}

func runAdd(opts *AddOptions, title string, cmd *cobra.Command) error {
	st, err := opts.openStore()
	if err != nil {
		return err
	}

	var upload *store.Upload
	if opts.PDF != "" {
		data, err := os.ReadFile(opts.PDF)
		if err != nil {
			return fmt.Errorf("reading attachment: %w", err)
		}
		upload = &store.Upload{Name: filepath.Base(opts.PDF), Data: data}
	}

	book := model.Book{
		Title:  title,
		Author: opts.Author,
		Year:   opts.Year,
		Genre:  opts.Genre,
		Read:   opts.Read,
	}

	added, err := st.Add(book, upload)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), "Book added successfully!")
	if added.HasAttachment() {
		fmt.Fprintf(cmd.OutOrStdout(), "Attachment stored at %s\n", added.AttachmentPath())
	}
	return nil
}
