package albums_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/abiy5791/RobelStudio-sub001/albums"
)

func TestImageURL(t *testing.T) {
	const base = "http://localhost:8000"

	t.Run("absolute URLs pass through", func(t *testing.T) {
		require.Equal(t, "https://cdn.example.com/p.jpg",
			albums.ImageURL(base, "https://cdn.example.com/p.jpg"))
	})

	t.Run("media paths join the base", func(t *testing.T) {
		require.Equal(t, "http://localhost:8000/media/albums/p.jpg",
			albums.ImageURL(base, "/media/albums/p.jpg"))
	})

	t.Run("bare paths get the media prefix", func(t *testing.T) {
		require.Equal(t, "http://localhost:8000/media/albums/p.jpg",
			albums.ImageURL(base, "albums/p.jpg"))
		require.Equal(t, "http://localhost:8000/media/albums/p.jpg",
			albums.ImageURL(base, "/albums/p.jpg"))
	})

	t.Run("trailing slash on the base is tolerated", func(t *testing.T) {
		require.Equal(t, "http://localhost:8000/media/p.jpg",
			albums.ImageURL(base+"/", "p.jpg"))
	})

	t.Run("empty input yields nothing", func(t *testing.T) {
		require.Equal(t, "", albums.ImageURL(base, ""))
	})
}
