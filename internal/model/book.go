package model

import "strings"

// Book represents a single book in the collection.
//
// All fields are free-form text except Read and PDFFile. Year in
// particular is not validated or parsed; it is stored and displayed
// exactly as entered.
//
// The zero value is a valid (empty) book.
type Book struct {
	// Title is the book title. It doubles as the lookup key for remove
	// and update operations: matched case-insensitively, not unique,
	// first match in collection order wins.
	Title string `json:"title"`

	// Author is the author name.
	Author string `json:"author"`

	// Year is the publication year as free-form text, e.g. "1965".
	Year string `json:"year"`

	// Genre is the book genre.
	Genre string `json:"genre"`

	// Read reports whether the book has been read.
	Read bool `json:"read"`

	// PDFFile is the path of the stored attachment file, or nil when the
	// book has none. It serializes as the pdf_file JSON key, null when nil.
	// Collection files written before attachments existed may omit the key;
	// decoding leaves PDFFile nil, which is equivalent.
	PDFFile *string `json:"pdf_file"`
}

// HasAttachment reports whether the book has an attachment file on record.
func (b Book) HasAttachment() bool {
	return b.PDFFile != nil && *b.PDFFile != ""
}

// AttachmentPath returns the stored attachment path, or "" when the book
// has no attachment.
func (b Book) AttachmentPath() string {
	if b.PDFFile == nil {
		return ""
	}
	return *b.PDFFile
}

// SetAttachment records path as the book's attachment. An empty path
// clears the attachment back to null.
func (b *Book) SetAttachment(path string) {
	if path == "" {
		b.PDFFile = nil
		return
	}
	b.PDFFile = &path
}

// ReadingStatus returns the display label for the read flag:
// "Read" or "Unread".
func (b Book) ReadingStatus() string {
	if b.Read {
		return "Read"
	}
	return "Unread"
}

// TitleMatches reports whether title equals the book's title under
// case-insensitive comparison.
func (b Book) TitleMatches(title string) bool {
	return strings.EqualFold(b.Title, title)
}
