// Package ioutils provides file system utilities for bookshelf.
//
// This package contains functions for:
//   - File copying and writing
//   - Filename sanitization for cross-platform compatibility
//   - Directory creation
//
// # File Operations
//
//	// Copy a file
//	err := ioutils.CopyFile("/tmp/dune.pdf", "/library/uploaded_books/dune.pdf")
//
//	// Write data to file
//	err := ioutils.WriteFile("/library/uploaded_books/dune.pdf", data)
//
//	// Ensure directory exists
//	err := ioutils.EnsureDir("/library/uploaded_books")
//
// # Filename Sanitization
//
// Use SanitizeFileName to remove invalid characters from upload filenames:
//
//	safe := ioutils.SanitizeFileName("Dune: Part 1/2.pdf") // "Dune_ Part 1_2.pdf"
package ioutils
