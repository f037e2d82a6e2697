package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"imgfs/internal/fs"
)

func TestRealExists(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "store.imgfs")

	real := fs.NewReal()

	exists, err := real.Exists(path)
	require.NoError(t, err)
	require.False(t, exists)

	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))

	exists, err = real.Exists(path)
	require.NoError(t, err)
	require.True(t, exists)
}

func TestRealOpenReadWriteRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "store.imgfs")
	require.NoError(t, os.WriteFile(path, make([]byte, 16), 0o644))

	real := fs.NewReal()

	f, err := real.OpenReadWrite(path)
	require.NoError(t, err)
	defer f.Close()

	_, err = f.WriteAt([]byte("hello"), 4)
	require.NoError(t, err)

	buf := make([]byte, 5)
	_, err = f.ReadAt(buf, 4)
	require.NoError(t, err)
	require.Equal(t, "hello", string(buf))
}

func TestRealRemove(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "store.imgfs")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))

	real := fs.NewReal()
	require.NoError(t, real.Remove(path))

	exists, err := real.Exists(path)
	require.NoError(t, err)
	require.False(t, exists)
}
