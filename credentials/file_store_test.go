package credentials_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/abiy5791/RobelStudio-sub001/credentials"
)

func TestFileStore(t *testing.T) {
	t.Run("round trips values through the file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "credentials.json")

		s := credentials.NewFileStore(path)
		s.Set(credentials.AccessTokenKey, "access-abc")
		s.Set(credentials.RefreshTokenKey, "refresh-def")

		reloaded := credentials.NewFileStore(path)
		require.Equal(t, "access-abc", reloaded.Get(credentials.AccessTokenKey))
		require.Equal(t, "refresh-def", reloaded.Get(credentials.RefreshTokenKey))
	})

	t.Run("missing file starts empty", func(t *testing.T) {
		s := credentials.NewFileStore(filepath.Join(t.TempDir(), "nope.json"))
		require.Equal(t, "", s.Get(credentials.AccessTokenKey))
	})

	t.Run("corrupted file starts empty", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "credentials.json")
		require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

		s := credentials.NewFileStore(path)
		require.Equal(t, "", s.Get(credentials.AccessTokenKey))

		s.Set(credentials.AccessTokenKey, "fresh")
		require.Equal(t, "fresh", credentials.NewFileStore(path).Get(credentials.AccessTokenKey))
	})

	t.Run("clear removes the value and persists", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "credentials.json")

		s := credentials.NewFileStore(path)
		s.Set(credentials.AccessTokenKey, "access-abc")
		s.Clear(credentials.AccessTokenKey)

		require.Equal(t, "", s.Get(credentials.AccessTokenKey))
		require.Equal(t, "", credentials.NewFileStore(path).Get(credentials.AccessTokenKey))
	})

	t.Run("clearing an absent key is a no-op", func(t *testing.T) {
		s := credentials.NewFileStore(filepath.Join(t.TempDir(), "credentials.json"))
		s.Clear(credentials.RefreshTokenKey)
		require.Equal(t, "", s.Get(credentials.RefreshTokenKey))
	})

	t.Run("unwritable path never surfaces an error", func(t *testing.T) {
		// A directory where the file should be makes every write fail.
		dir := t.TempDir()
		path := filepath.Join(dir, "credentials.json")
		require.NoError(t, os.Mkdir(path, 0o700))

		s := credentials.NewFileStore(path)
		s.Set(credentials.AccessTokenKey, "in-memory-only")

		// The in-memory copy still serves the process.
		require.Equal(t, "in-memory-only", s.Get(credentials.AccessTokenKey))
	})
}
