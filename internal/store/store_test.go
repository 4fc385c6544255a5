package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/handiism/bookshelf/internal/model"
)

// fakeAttachments records attachment operations without touching disk.
type fakeAttachments struct {
	stored  map[string][]byte
	deleted []string
}

func newFakeAttachments() *fakeAttachments {
	return &fakeAttachments{stored: make(map[string][]byte)}
}

func (f *fakeAttachments) Store(data []byte, name string) (string, error) {
	path := "uploaded_books/" + name
	f.stored[path] = data
	return path, nil
}

func (f *fakeAttachments) Delete(path string) error {
	f.deleted = append(f.deleted, path)
	delete(f.stored, path)
	return nil
}

func newTestStore(t *testing.T, books ...model.Book) (*Store, *MemoryPersistence, *fakeAttachments) {
	t.Helper()
	p := &MemoryPersistence{Books: books}
	a := newFakeAttachments()
	st, err := New(p, a)
	require.NoError(t, err)
	return st, p, a
}

func strptr(s string) *string { return &s }
func boolptr(b bool) *bool    { return &b }

func TestAdd_AppendsAndPersists(t *testing.T) {
	st, p, _ := newTestStore(t)

	added, err := st.Add(model.Book{Title: "Dune", Author: "Frank Herbert", Year: "1965", Read: true}, nil)
	require.NoError(t, err)
	assert.Equal(t, "Dune", added.Title)
	assert.Nil(t, added.PDFFile)

	require.Len(t, p.Books, 1)
	assert.Equal(t, 1, p.Saves)
	assert.Equal(t, added, p.Books[0])
}

func TestAdd_DuplicateTitlesAllowed(t *testing.T) {
	st, p, _ := newTestStore(t)

	_, err := st.Add(model.Book{Title: "Dune", Author: "Herbert"}, nil)
	require.NoError(t, err)
	_, err = st.Add(model.Book{Title: "dune", Author: "X"}, nil)
	require.NoError(t, err)

	assert.Len(t, p.Books, 2)
}

func TestAdd_WithUploadStoresAttachment(t *testing.T) {
	st, p, a := newTestStore(t)

	added, err := st.Add(model.Book{Title: "Dune"}, &Upload{Name: "dune.pdf", Data: []byte("pdf")})
	require.NoError(t, err)
	assert.Equal(t, "uploaded_books/dune.pdf", added.AttachmentPath())
	assert.Equal(t, []byte("pdf"), a.stored["uploaded_books/dune.pdf"])
	assert.Equal(t, added, p.Books[0])
}

func TestRemove_FirstMatchOnly(t *testing.T) {
	// Two books that differ only in title case; remove must take the
	// first in sequence order and leave the second alone.
	st, p, _ := newTestStore(t,
		model.Book{Title: "Dune", Author: "Herbert", Read: true},
		model.Book{Title: "dune", Author: "X", Read: false},
	)

	removed, err := st.Remove("DUNE")
	require.NoError(t, err)
	assert.Equal(t, "Herbert", removed.Author)

	remaining := st.ListAll()
	require.Len(t, remaining, 1)
	assert.Equal(t, "X", remaining[0].Author)
	assert.Equal(t, remaining, p.Books)
}

func TestRemove_DeletesAttachmentFile(t *testing.T) {
	st, _, a := newTestStore(t)
	_, err := st.Add(model.Book{Title: "Dune"}, &Upload{Name: "dune.pdf", Data: []byte("pdf")})
	require.NoError(t, err)

	_, err = st.Remove("dune")
	require.NoError(t, err)
	assert.Equal(t, []string{"uploaded_books/dune.pdf"}, a.deleted)
	assert.Empty(t, a.stored)
}

func TestRemove_NotFoundLeavesStateUnchanged(t *testing.T) {
	st, p, a := newTestStore(t, model.Book{Title: "Dune"})
	savesBefore := p.Saves

	_, err := st.Remove("Neuromancer")
	require.ErrorIs(t, err, ErrBookNotFound)

	assert.Len(t, st.ListAll(), 1)
	assert.Equal(t, savesBefore, p.Saves)
	assert.Empty(t, a.deleted)
}

func TestFind(t *testing.T) {
	books := []model.Book{
		{Title: "Dune", Author: "Herbert", Read: true},
		{Title: "dune", Author: "X", Read: false},
		{Title: "Neuromancer", Author: "Gibson"},
	}

	tests := []struct {
		name  string
		query string
		field SearchField
		want  []string // expected titles, in order
	}{
		{"title substring matches both dunes", "dun", FieldTitle, []string{"Dune", "dune"}},
		{"author field", "gibson", FieldAuthor, []string{"Neuromancer"}},
		{"any matches either field", "x", FieldAny, []string{"dune"}},
		{"case insensitive query", "DUNE", FieldTitle, []string{"Dune", "dune"}},
		{"no matches is empty not error", "tolkien", FieldAny, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st, _, _ := newTestStore(t, books...)

			found := st.Find(tt.query, tt.field)
			var titles []string
			for _, b := range found {
				titles = append(titles, b.Title)
			}
			assert.Equal(t, tt.want, titles)
		})
	}
}

func TestUpdate_OverwritesOnlyProvidedFields(t *testing.T) {
	st, p, _ := newTestStore(t, model.Book{
		Title: "Dune", Author: "Frank Herbert", Year: "", Genre: "Science Fiction", Read: false,
	})

	updated, err := st.Update("dune", Changes{Year: strptr("1965")})
	require.NoError(t, err)

	want := model.Book{Title: "Dune", Author: "Frank Herbert", Year: "1965", Genre: "Science Fiction", Read: false}
	if diff := cmp.Diff(want, updated); diff != "" {
		t.Errorf("updated book mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, []model.Book{want}, p.Books)
}

func TestUpdate_FirstMatchWins(t *testing.T) {
	st, _, _ := newTestStore(t,
		model.Book{Title: "Dune", Author: "Herbert"},
		model.Book{Title: "dune", Author: "X"},
	)

	_, err := st.Update("DUNE", Changes{Read: boolptr(true)})
	require.NoError(t, err)

	books := st.ListAll()
	assert.True(t, books[0].Read)
	assert.False(t, books[1].Read)
}

func TestUpdate_ReplacesAttachment(t *testing.T) {
	st, _, a := newTestStore(t)
	_, err := st.Add(model.Book{Title: "Dune"}, &Upload{Name: "old.pdf", Data: []byte("v1")})
	require.NoError(t, err)

	updated, err := st.Update("Dune", Changes{Attachment: &Upload{Name: "new.pdf", Data: []byte("v2")}})
	require.NoError(t, err)

	assert.Equal(t, "uploaded_books/new.pdf", updated.AttachmentPath())
	assert.Equal(t, []string{"uploaded_books/old.pdf"}, a.deleted)
	assert.Equal(t, []byte("v2"), a.stored["uploaded_books/new.pdf"])
}

func TestUpdate_NotFound(t *testing.T) {
	st, p, _ := newTestStore(t, model.Book{Title: "Dune"})
	savesBefore := p.Saves

	_, err := st.Update("Neuromancer", Changes{Year: strptr("1984")})
	require.ErrorIs(t, err, ErrBookNotFound)
	assert.Equal(t, savesBefore, p.Saves)
}

func TestStats(t *testing.T) {
	tests := []struct {
		name  string
		books []model.Book
		want  Stats
	}{
		{"empty collection has zero rate", nil, Stats{}},
		{
			"two of three read",
			[]model.Book{{Title: "a", Read: true}, {Title: "b", Read: true}, {Title: "c"}},
			Stats{Total: 3, Read: 2, CompletionRate: 200.0 / 3.0},
		},
		{
			"all unread",
			[]model.Book{{Title: "a"}, {Title: "b"}},
			Stats{Total: 2, Read: 0, CompletionRate: 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st, _, _ := newTestStore(t, tt.books...)
			assert.InDelta(t, tt.want.CompletionRate, st.Stats().CompletionRate, 1e-9)
			assert.Equal(t, tt.want.Total, st.Stats().Total)
			assert.Equal(t, tt.want.Read, st.Stats().Read)
		})
	}
}

func TestListAll_ReturnsCopy(t *testing.T) {
	st, _, _ := newTestStore(t, model.Book{Title: "Dune"})

	books := st.ListAll()
	books[0].Title = "mutated"

	assert.Equal(t, "Dune", st.ListAll()[0].Title)
}

func TestParseSearchField(t *testing.T) {
	for _, s := range []string{"title", "Author", "any", ""} {
		_, err := ParseSearchField(s)
		assert.NoError(t, err, s)
	}

	_, err := ParseSearchField("genre")
	assert.Error(t, err)
}

// failingPersistence always fails on Save.
type failingPersistence struct{ MemoryPersistence }

func (p *failingPersistence) Save([]model.Book) error {
	return errors.New("disk full")
}

func TestAdd_SaveFailurePropagates(t *testing.T) {
	st, err := New(&failingPersistence{}, newFakeAttachments())
	require.NoError(t, err)

	_, err = st.Add(model.Book{Title: "Dune"}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
}

func ExampleStore_Stats() {
	st, _ := New(&MemoryPersistence{Books: []model.Book{
		{Title: "Dune", Read: true},
		{Title: "Neuromancer"},
	}}, nil)

	s := st.Stats()
	fmt.Printf("Total books in collection: %d\n", s.Total)
	fmt.Printf("Reading Progress: %.2f%%\n", s.CompletionRate)
	// Output:
	// Total books in collection: 2
	// Reading Progress: 50.00%
}
