// Package cli implements the bookshelf command line interface.
//
// Each record-store operation is a subcommand: add, remove, search,
// update, list, stats and verify. Commands resolve their settings from
// the config file (or defaults) plus the global --data and --uploads
// overrides, open the store, run one operation and print the result.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/handiism/bookshelf/internal/attach"
	"github.com/handiism/bookshelf/internal/config"
	"github.com/handiism/bookshelf/internal/store"
)

// RootOptions holds global flags shared by all commands.
type RootOptions struct {
	ConfigPath string
	DataFile   string
	UploadsDir string
}

// NewRootCommand creates the root command for the bookshelf CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:           "bookshelf",
		Short:         "Track your personal book collection",
		Long:          "Bookshelf tracks a personal book collection: add, remove, search,\nupdate and review books, with optional attached document files.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&opts.ConfigPath, "config", "", "path to config file")
	cmd.PersistentFlags().StringVar(&opts.DataFile, "data", "", "path to the collection file (overrides config)")
	cmd.PersistentFlags().StringVar(&opts.UploadsDir, "uploads", "", "directory for attachment files (overrides config)")

	cmd.AddCommand(NewAddCommand(opts))
	cmd.AddCommand(NewRemoveCommand(opts))
	cmd.AddCommand(NewSearchCommand(opts))
	cmd.AddCommand(NewUpdateCommand(opts))
	cmd.AddCommand(NewListCommand(opts))
	cmd.AddCommand(NewStatsCommand(opts))
	cmd.AddCommand(NewVerifyCommand(opts))

	return cmd
}

// settings resolves the effective settings: config file (or defaults)
// with flag overrides applied.
func (o *RootOptions) settings() (*config.Settings, error) {
	path := o.ConfigPath
	if path == "" {
		path = config.DefaultPath()
	}

	settings, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	if o.DataFile != "" {
		settings.DataFile = o.DataFile
	}
	if o.UploadsDir != "" {
		settings.UploadsDir = o.UploadsDir
	}
	return settings, nil
}

// openStore loads the collection using the resolved settings.
func (o *RootOptions) openStore() (*store.Store, error) {
	settings, err := o.settings()
	if err != nil {
		return nil, err
	}

	persistence := &store.FilePersistence{Path: settings.DataFile}
	attachments := attach.NewManager(settings.UploadsDir)
	return store.New(persistence, attachments)
}
