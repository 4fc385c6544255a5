package cli

import (
	"bytes"
	"path/filepath"
	"testing"
)

// testEnv points a command invocation at throwaway storage.
type testEnv struct {
	dataFile   string
	uploadsDir string
	configPath string
}

func newTestEnv(t *testing.T) testEnv {
	t.Helper()
	dir := t.TempDir()
	return testEnv{
		dataFile:   filepath.Join(dir, "books_data.json"),
		uploadsDir: filepath.Join(dir, "uploaded_books"),
		configPath: filepath.Join(dir, "config.json"), // intentionally absent
	}
}

// execute runs the CLI once against env and returns its combined output.
func execute(t *testing.T, env testEnv, args ...string) (string, error) {
	t.Helper()
	buf := &bytes.Buffer{}
	cmd := NewRootCommand()
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(append([]string{
		"--config", env.configPath,
		"--data", env.dataFile,
		"--uploads", env.uploadsDir,
	}, args...))

	err := cmd.Execute()
	return buf.String(), err
}
