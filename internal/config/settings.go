package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Settings holds all configuration options.
type Settings struct {
	// DataFile is the path of the JSON file holding the book collection.
	DataFile string `json:"data_file"`

	// UploadsDir is the directory where attachment files are stored.
	UploadsDir string `json:"uploads_dir"`
}

// DefaultSettings returns settings with default values.
func DefaultSettings() *Settings {
	homeDir, _ := os.UserHomeDir()
	return &Settings{
		DataFile:   filepath.Join(homeDir, "Bookshelf", "books_data.json"),
		UploadsDir: filepath.Join(homeDir, "Bookshelf", "uploaded_books"),
	}
}

// DefaultPath returns the default location of the config file itself.
func DefaultPath() string {
	homeDir, _ := os.UserHomeDir()
	return filepath.Join(homeDir, "Bookshelf", "config.json")
}

// Load reads settings from a JSON file.
//
// A missing file is not an error: defaults are returned so first runs
// work without any setup.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultSettings(), nil
		}
		return nil, err
	}

	settings := DefaultSettings()
	if err := json.Unmarshal(data, settings); err != nil {
		return nil, err
	}

	return settings, nil
}

// Save writes settings to a JSON file.
func (s *Settings) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}
