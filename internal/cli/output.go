package cli

import (
	"fmt"
	"io"

	"github.com/handiism/bookshelf/internal/model"
)

// writeBooks prints books as a numbered list, one entry per book:
//
//	1. Dune by Frank Herbert (1965) - Read
//	   attachment: /library/uploaded_books/dune.pdf
//
// The attachment line appears only for books with a stored file; it is
// the terminal's download affordance.
func writeBooks(w io.Writer, books []model.Book) {
	for i, book := range books {
		fmt.Fprintf(w, "%d. %s by %s (%s) - %s\n",
			i+1, book.Title, book.Author, book.Year, book.ReadingStatus())
		if book.HasAttachment() {
			fmt.Fprintf(w, "   attachment: %s\n", book.AttachmentPath())
		}
	}
}
