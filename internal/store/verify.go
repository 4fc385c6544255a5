package store

import (
	"context"
	"os"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/handiism/bookshelf/internal/model"
)

// verifyConcurrency limits how many attachment files are stat'ed at once.
const verifyConcurrency = 8

// MissingAttachment reports a book whose recorded attachment file no
// longer exists on disk.
type MissingAttachment struct {
	// Book is the affected record.
	Book model.Book

	// Path is the attachment path that could not be found.
	Path string
}

// VerifyAttachments checks every non-null attachment path against the
// file system and returns the books whose file is missing, in collection
// order. The collection itself is not modified.
//
// Files are checked concurrently with a bounded fan-out. Any error other
// than a missing file (for example a permission failure) aborts the
// audit.
func (s *Store) VerifyAttachments(ctx context.Context) ([]MissingAttachment, error) {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(verifyConcurrency)

	var mu sync.Mutex
	missing := make(map[int]MissingAttachment)

	for i, book := range s.books {
		if !book.HasAttachment() {
			continue
		}

		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			_, err := os.Stat(book.AttachmentPath())
			if err == nil {
				return nil
			}
			if !os.IsNotExist(err) {
				return err
			}

			mu.Lock()
			missing[i] = MissingAttachment{Book: book, Path: book.AttachmentPath()}
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	// Report in collection order.
	var out []MissingAttachment
	for i := range s.books {
		if m, ok := missing[i]; ok {
			out = append(out, m)
		}
	}
	return out, nil
}
