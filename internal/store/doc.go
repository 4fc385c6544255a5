// Package store implements the book record store: an in-memory ordered
// collection of books mirrored to a persistence strategy on every
// mutation.
//
// # Store
//
// The Store owns the collection and exposes the record operations:
//
//	p := &store.FilePersistence{Path: "/library/books_data.json"}
//	st, err := store.New(p, attach.NewManager("/library/uploaded_books"))
//
//	added, err := st.Add(model.Book{Title: "Dune"}, nil)
//	books := st.Find("dun", store.FieldTitle)
//	removed, err := st.Remove("DUNE")
//
// Every mutating operation (Add, Remove, Update) rewrites the full
// collection through the persistence strategy before returning. There is
// no partial or incremental persistence.
//
// # Persistence
//
// Persistence is an injected strategy. FilePersistence mirrors the
// collection to a single JSON file; MemoryPersistence keeps it in memory
// for tests. A missing or malformed backing file loads as an empty
// collection by design: the original data is never worth more than a
// fresh start for this tool, and surfacing a parse error would block
// every operation.
//
// # Attachments
//
// Attachment file handling is behind the Attachments interface so the
// record logic can be tested without real file I/O. The attach package
// provides the production implementation.
//
// # Concurrency
//
// The Store is single-threaded: callers run one operation to completion
// before the next. There is no locking, and concurrent multi-process
// access to the backing file is unsupported.
package store
