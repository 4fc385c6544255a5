package store

import (
	"fmt"
	"slices"
	"strings"

	"github.com/handiism/bookshelf/internal/model"
)

// Attachments is the collaborator that stores and deletes attachment
// files alongside record mutations. The attach package provides the real
// implementation; tests inject a fake.
type Attachments interface {
	// Store writes data under a suggested name and returns the stored path.
	Store(data []byte, name string) (string, error)

	// Delete removes the file at path. A missing file is a no-op.
	Delete(path string) error
}

// Upload is a pending attachment payload supplied with an Add or Update.
type Upload struct {
	// Name is the suggested filename, usually the original upload name.
	Name string

	// Data is the file content.
	Data []byte
}

// SearchField selects which record field Find matches against.
type SearchField int

const (
	// FieldAny matches the query against title or author. This is what
	// the search has always done regardless of the selected field label.
	FieldAny SearchField = iota

	// FieldTitle matches against the title only.
	FieldTitle

	// FieldAuthor matches against the author only.
	FieldAuthor
)

// ParseSearchField converts a user-supplied field name to a SearchField.
// Recognized values are "title", "author", "any" and "" (meaning any).
func ParseSearchField(s string) (SearchField, error) {
	switch strings.ToLower(s) {
	case "", "any":
		return FieldAny, nil
	case "title":
		return FieldTitle, nil
	case "author":
		return FieldAuthor, nil
	}
	return FieldAny, fmt.Errorf("unknown search field %q: must be title, author or any", s)
}

// String returns the field name as accepted by ParseSearchField.
func (f SearchField) String() string {
	switch f {
	case FieldTitle:
		return "title"
	case FieldAuthor:
		return "author"
	default:
		return "any"
	}
}

// Changes describes a partial update to a book. Nil fields keep the
// book's current value.
type Changes struct {
	Title  *string
	Author *string
	Year   *string
	Genre  *string
	Read   *bool

	// Attachment, when non-nil, replaces the book's attachment: the old
	// file is deleted from disk and the new payload is stored.
	Attachment *Upload
}

// Stats summarizes reading progress across the collection.
type Stats struct {
	// Total is the number of books in the collection.
	Total int

	// Read is the number of books marked as read.
	Read int

	// CompletionRate is Read/Total as a percentage, 0 for an empty
	// collection.
	CompletionRate float64
}

// Store owns the in-memory book sequence and its durable mirror.
//
// Mutating operations append/remove/overwrite in memory and then persist
// the full collection before returning. Insertion order is preserved
// across all operations.
type Store struct {
	books       []model.Book
	persistence Persistence
	attachments Attachments
}

// New loads the persisted collection and returns a Store over it.
func New(p Persistence, a Attachments) (*Store, error) {
	books, err := p.Load()
	if err != nil {
		return nil, fmt.Errorf("loading collection: %w", err)
	}

	return &Store{
		books:       books,
		persistence: p,
		attachments: a,
	}, nil
}

// Add appends book to the collection and persists. When upload is
// non-nil its payload is stored first and the book's attachment path is
// set to the stored location.
//
// There is no duplicate-title check: adding a second "Dune" is allowed.
func (s *Store) Add(book model.Book, upload *Upload) (model.Book, error) {
	if upload != nil {
		path, err := s.attachments.Store(upload.Data, upload.Name)
		if err != nil {
			return model.Book{}, fmt.Errorf("storing attachment: %w", err)
		}
		book.SetAttachment(path)
	}

	s.books = append(s.books, book)
	if err := s.save(); err != nil {
		return model.Book{}, err
	}

	return book, nil
}

// Remove deletes the first book whose title matches title
// case-insensitively, deletes its attachment file if it has one, and
// persists. Returns the removed book, or ErrBookNotFound with the
// collection untouched when nothing matches.
func (s *Store) Remove(title string) (model.Book, error) {
	i := s.indexOf(title)
	if i < 0 {
		return model.Book{}, fmt.Errorf("%w: %q", ErrBookNotFound, title)
	}

	removed := s.books[i]
	if removed.HasAttachment() {
		if err := s.attachments.Delete(removed.AttachmentPath()); err != nil {
			return model.Book{}, fmt.Errorf("deleting attachment: %w", err)
		}
	}

	s.books = slices.Delete(s.books, i, i+1)
	if err := s.save(); err != nil {
		return model.Book{}, err
	}

	return removed, nil
}

// Find returns all books whose selected field contains query,
// case-insensitively, in collection order. An empty result means no
// matches; it is not an error.
func (s *Store) Find(query string, field SearchField) []model.Book {
	q := strings.ToLower(query)

	var found []model.Book
	for _, book := range s.books {
		title := strings.Contains(strings.ToLower(book.Title), q)
		author := strings.Contains(strings.ToLower(book.Author), q)

		match := false
		switch field {
		case FieldTitle:
			match = title
		case FieldAuthor:
			match = author
		default:
			match = title || author
		}

		if match {
			found = append(found, book)
		}
	}

	return found
}

// Update locates the first book whose title matches title
// case-insensitively, overwrites the fields provided in changes, and
// persists. A new attachment replaces the old one on disk. Returns the
// updated book, or ErrBookNotFound with the collection untouched when
// nothing matches.
func (s *Store) Update(title string, changes Changes) (model.Book, error) {
	i := s.indexOf(title)
	if i < 0 {
		return model.Book{}, fmt.Errorf("%w: %q", ErrBookNotFound, title)
	}

	book := s.books[i]
	if changes.Title != nil {
		book.Title = *changes.Title
	}
	if changes.Author != nil {
		book.Author = *changes.Author
	}
	if changes.Year != nil {
		book.Year = *changes.Year
	}
	if changes.Genre != nil {
		book.Genre = *changes.Genre
	}
	if changes.Read != nil {
		book.Read = *changes.Read
	}

	if changes.Attachment != nil {
		if book.HasAttachment() {
			if err := s.attachments.Delete(book.AttachmentPath()); err != nil {
				return model.Book{}, fmt.Errorf("deleting old attachment: %w", err)
			}
		}
		path, err := s.attachments.Store(changes.Attachment.Data, changes.Attachment.Name)
		if err != nil {
			return model.Book{}, fmt.Errorf("storing attachment: %w", err)
		}
		book.SetAttachment(path)
	}

	s.books[i] = book
	if err := s.save(); err != nil {
		return model.Book{}, err
	}

	return book, nil
}

// ListAll returns the full collection in insertion order.
func (s *Store) ListAll() []model.Book {
	return slices.Clone(s.books)
}

// Stats returns reading-progress statistics. The completion rate is 0
// for an empty collection.
func (s *Store) Stats() Stats {
	st := Stats{Total: len(s.books)}
	for _, book := range s.books {
		if book.Read {
			st.Read++
		}
	}
	if st.Total > 0 {
		st.CompletionRate = float64(st.Read) / float64(st.Total) * 100
	}
	return st
}

// indexOf returns the index of the first case-insensitive title match,
// or -1.
func (s *Store) indexOf(title string) int {
	return slices.IndexFunc(s.books, func(b model.Book) bool {
		return b.TitleMatches(title)
	})
}

func (s *Store) save() error {
	if err := s.persistence.Save(s.books); err != nil {
		return fmt.Errorf("saving collection: %w", err)
	}
	return nil
}
