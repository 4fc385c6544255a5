// Package model defines the core data structures used throughout
// the bookshelf application.
//
// # Book
//
// Book represents a single record in the collection:
//
//	book := model.Book{
//	    Title:  "Dune",
//	    Author: "Frank Herbert",
//	    Year:   "1965",
//	    Genre:  "Science Fiction",
//	    Read:   true,
//	}
//	fmt.Println(book.ReadingStatus()) // "Read"
//
// # Persisted form
//
// Books serialize to the collection file as a JSON array of objects with
// the keys title, author, year, genre, read and pdf_file. The pdf_file
// key is null for books without an attachment, and older collection files
// that predate attachments may omit the key entirely; decoding such a file
// yields books with a nil PDFFile, which re-serializes as null.
//
// # Identity
//
// Books have no generated identifier. The title is the lookup key for
// remove and update operations, compared case-insensitively, and it is
// deliberately not unique: adding two books with the same title is
// allowed, and title lookups resolve to the first match in collection
// order.
package model
