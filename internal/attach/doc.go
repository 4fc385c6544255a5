// Package attach manages the attachment files stored alongside book
// records.
//
// Attachments live in a single flat directory (the uploads directory),
// named after their original filename. The directory is created on
// demand. Storing a file under a name that already exists silently
// overwrites the previous file; the collection keeps at most one file
// per name.
//
// # Usage
//
//	mgr := attach.NewManager("/library/uploaded_books")
//
//	// Store raw bytes under a suggested name
//	path, err := mgr.Store(data, "dune.pdf")
//
//	// Copy an existing file from disk into the uploads directory
//	path, err := mgr.StoreFrom("/tmp/downloads/dune.pdf")
//
//	// Delete is a no-op for files that are already gone
//	err := mgr.Delete(path)
package attach
