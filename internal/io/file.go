package ioutils

import (
	"io"
	"os"
	"regexp"
	"strings"
)

var (
	// Invalid path/file characters: < > : " / \ | ? * and control
	// characters (0x00-0x1f). Windows has the most restrictive rules.
	invalidChars = regexp.MustCompile(`[<>:"/\\|?*\x00-\x1f]`)

	trailingDots = regexp.MustCompile(`\.+$`)

	multiSpace = regexp.MustCompile(`\s+`)
)

// CopyFile copies a file from source to destination.
//
// The destination file is created with mode 0644 if it doesn't exist,
// or truncated if it does. The source file must exist and be readable.
//
// Returns an error if:
//   - Source file cannot be opened
//   - Destination file cannot be created
//   - Copy operation fails
func CopyFile(src, dst string) error {
	sourceFile, err := os.Open(src)
	if err != nil {
		return err
	}
	defer sourceFile.Close()

	destFile, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer destFile.Close()

	_, err = io.Copy(destFile, sourceFile)
	return err
}

// WriteFile writes data to a file, creating it if necessary.
//
// The file is created with mode 0644. If the file already exists,
// it is truncated before writing.
func WriteFile(path string, data []byte) error {
	return os.WriteFile(path, data, 0644)
}

// SanitizeFileName removes or replaces characters that are invalid in
// file/folder names.
//
// This function ensures upload filenames are valid across different
// operating systems, particularly Windows which has the most restrictive
// naming rules.
//
// The following transformations are applied:
//   - Invalid characters (<>:"/\|?* and control chars 0x00-0x1f) → underscore
//   - Trailing dots → removed (Windows limitation)
//   - Multiple whitespace → single space
//   - Trailing whitespace → removed
//
// Example:
//
//	SanitizeFileName("Dune: Part 1/2.pdf")  // Returns "Dune_ Part 1_2.pdf"
//	SanitizeFileName("notes...")            // Returns "notes"
func SanitizeFileName(name string) string {
	name = invalidChars.ReplaceAllString(name, "_")

	// Windows doesn't allow filenames ending with dots
	name = trailingDots.ReplaceAllString(name, "")

	name = multiSpace.ReplaceAllString(name, " ")

	return strings.TrimRight(name, " ")
}

// EnsureDir creates a directory and all parent directories if they don't exist.
//
// Directories are created with mode 0755 (rwxr-xr-x).
// If the directory already exists, no error is returned.
func EnsureDir(path string) error {
	return os.MkdirAll(path, 0755)
}
