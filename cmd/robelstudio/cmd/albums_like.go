package cmd

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/abiy5791/RobelStudio-sub001/albums"
)

var albumsLikeCmd = &cobra.Command{
	Use:   "like <slug> <photo-id>",
	Short: "Toggle your like on a photo",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return protect(cmd, func(cmd *cobra.Command) error {
			slug := args[0]
			if !albums.ValidSlug(slug) {
				return errors.Errorf("invalid album identifier %q", slug)
			}
			var photoID int
			if _, err := fmt.Sscanf(args[1], "%d", &photoID); err != nil {
				return errors.Errorf("invalid photo id %q", args[1])
			}

			album, err := client.GetAlbum(cmd.Context(), slug)
			if err != nil {
				return err
			}
			photo := findPhoto(album.Photos, photoID)
			if photo == nil {
				return errors.Errorf("album %s has no photo %d", slug, photoID)
			}

			toggler := albums.NewLikeToggler(func(ctx context.Context, id int) (albums.LikeResult, error) {
				return client.TogglePhotoLike(ctx, slug, id)
			})
			if _, err := toggler.Toggle(cmd.Context(), photo); err != nil {
				return err
			}

			if photo.IsLiked {
				fmt.Printf("Liked photo %d (%s likes)\n", photo.ID, albums.FormatCount(photo.LikesCount))
			} else {
				fmt.Printf("Unliked photo %d (%s likes)\n", photo.ID, albums.FormatCount(photo.LikesCount))
			}
			return nil
		})
	},
}

func findPhoto(photos []albums.Photo, id int) *albums.Photo {
	for i := range photos {
		if photos[i].ID == id {
			return &photos[i]
		}
	}
	return nil
}

func init() {
	albumsCmd.AddCommand(albumsLikeCmd)
}
