// Package config provides configuration management for bookshelf.
//
// This package handles:
//   - Loading and saving settings from JSON files
//   - Default configuration values
//
// # Default Settings
//
// Use DefaultSettings() to get sensible defaults:
//
//	settings := config.DefaultSettings()
//	// Collection stored in ~/Bookshelf/books_data.json
//	// Attachments stored in ~/Bookshelf/uploaded_books
//
// # Loading from File
//
//	settings, err := config.Load("/path/to/config.json")
//	if err != nil {
//	    // Uses defaults if file doesn't exist
//	}
//
// # Saving Settings
//
//	settings.DataFile = "/custom/path/books_data.json"
//	err := settings.Save("/path/to/config.json")
package config
