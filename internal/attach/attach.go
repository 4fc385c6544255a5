package attach

import (
	"os"
	"path/filepath"

	ioutils "github.com/handiism/bookshelf/internal/io"
)

// Manager stores attachment files in a flat uploads directory.
type Manager struct {
	dir string
}

// NewManager creates a Manager rooted at dir. The directory is not
// created until the first Store call.
func NewManager(dir string) *Manager {
	return &Manager{dir: dir}
}

// Dir returns the uploads directory path.
func (m *Manager) Dir() string {
	return m.dir
}

// Store writes data into the uploads directory under a sanitized version
// of name and returns the stored path.
//
// A file already stored under the same name is overwritten.
func (m *Manager) Store(data []byte, name string) (string, error) {
	if err := ioutils.EnsureDir(m.dir); err != nil {
		return "", err
	}

	path := filepath.Join(m.dir, ioutils.SanitizeFileName(name))
	if err := ioutils.WriteFile(path, data); err != nil {
		return "", err
	}

	return path, nil
}

// StoreFrom copies the file at src into the uploads directory, keeping
// its base name, and returns the stored path.
func (m *Manager) StoreFrom(src string) (string, error) {
	if err := ioutils.EnsureDir(m.dir); err != nil {
		return "", err
	}

	path := filepath.Join(m.dir, ioutils.SanitizeFileName(filepath.Base(src)))
	if err := ioutils.CopyFile(src, path); err != nil {
		return "", err
	}

	return path, nil
}

// Delete removes the attachment file at path. A missing file or an empty
// path is a no-op, not an error.
func (m *Manager) Delete(path string) error {
	if path == "" {
		return nil
	}

	err := os.Remove(path)
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
