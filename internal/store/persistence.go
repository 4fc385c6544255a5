package store

import (
	"encoding/json"
	"os"
	"path/filepath"
	"slices"

	"github.com/handiism/bookshelf/internal/model"
)

// Persistence is the durable mirror of the book collection.
//
// Save receives the full collection on every mutation and must replace
// whatever was persisted before; there is no incremental persistence.
type Persistence interface {
	// Load returns the persisted collection in its stored order.
	Load() ([]model.Book, error)

	// Save persists the full collection, replacing the previous state.
	Save(books []model.Book) error
}

// FilePersistence mirrors the collection to a single JSON file: an
// indented array of book objects, insertion order preserved.
type FilePersistence struct {
	// Path is the location of the backing file.
	Path string
}

// Load reads the backing file.
//
// A missing file and a malformed file both load as an empty collection
// with no error; this is deliberate (see the package documentation).
// Books persisted without the pdf_file key come back with a nil
// attachment, so every loaded book carries all fields.
func (p *FilePersistence) Load() ([]model.Book, error) {
	data, err := os.ReadFile(p.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var books []model.Book
	if err := json.Unmarshal(data, &books); err != nil {
		// Corrupt file: start over with an empty collection.
		return nil, nil
	}

	return books, nil
}

// Save serializes the full collection to the backing file, overwriting
// it in place. The parent directory is created if absent. There is no
// temp-file rename and no backup; a write that fails midway leaves a
// truncated file, which the next Load treats as empty.
func (p *FilePersistence) Save(books []model.Book) error {
	if err := os.MkdirAll(filepath.Dir(p.Path), 0755); err != nil {
		return err
	}

	if books == nil {
		books = []model.Book{}
	}
	data, err := json.MarshalIndent(books, "", "    ")
	if err != nil {
		return err
	}

	return os.WriteFile(p.Path, data, 0644)
}

// MemoryPersistence keeps the collection in memory. It exists for tests
// and for running the store without a backing file.
type MemoryPersistence struct {
	// Books is the persisted state. Load and Save copy it, so callers
	// can inspect it without aliasing the store's internal slice.
	Books []model.Book

	// Saves counts Save calls.
	Saves int
}

// Load returns a copy of the persisted collection.
func (p *MemoryPersistence) Load() ([]model.Book, error) {
	return slices.Clone(p.Books), nil
}

// Save replaces the persisted collection with a copy of books.
func (p *MemoryPersistence) Save(books []model.Book) error {
	p.Books = slices.Clone(books)
	p.Saves++
	return nil
}
