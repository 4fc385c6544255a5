package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/handiism/bookshelf/internal/store"
)

func TestRemoveCommand(t *testing.T) {
	env := newTestEnv(t)
	_, err := execute(t, env, "add", "Dune", "--author", "Frank Herbert")
	require.NoError(t, err)

	out, err := execute(t, env, "remove", "dune")
	require.NoError(t, err)
	assert.Contains(t, out, "Book removed successfully!")

	out, err = execute(t, env, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Your collection is empty!")
}

func TestRemoveCommand_NotFound(t *testing.T) {
	env := newTestEnv(t)
	_, err := execute(t, env, "add", "Dune")
	require.NoError(t, err)

	_, err = execute(t, env, "remove", "Neuromancer")
	require.ErrorIs(t, err, store.ErrBookNotFound)

	// Collection unchanged.
	out, err := execute(t, env, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Dune")
}

func TestRemoveCommand_FirstMatchKeepsSecondDuplicate(t *testing.T) {
	env := newTestEnv(t)
	_, err := execute(t, env, "add", "Dune", "--author", "Herbert", "--read")
	require.NoError(t, err)
	_, err = execute(t, env, "add", "dune", "--author", "X")
	require.NoError(t, err)

	_, err = execute(t, env, "remove", "DUNE")
	require.NoError(t, err)

	out, err := execute(t, env, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "1. dune by X")
	assert.NotContains(t, out, "Herbert")
}

func TestRemoveCommand_DeletesAttachmentFromDisk(t *testing.T) {
	env := newTestEnv(t)
	pdf := filepath.Join(t.TempDir(), "dune.pdf")
	require.NoError(t, os.WriteFile(pdf, []byte("%PDF-1.4"), 0644))
	_, err := execute(t, env, "add", "Dune", "--pdf", pdf)
	require.NoError(t, err)

	stored := filepath.Join(env.uploadsDir, "dune.pdf")
	_, err = os.Stat(stored)
	require.NoError(t, err)

	out, err := execute(t, env, "remove", "Dune")
	require.NoError(t, err)
	assert.Contains(t, out, "Deleted attachment")

	_, err = os.Stat(stored)
	assert.True(t, os.IsNotExist(err))
}
