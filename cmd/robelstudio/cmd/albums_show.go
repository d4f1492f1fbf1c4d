package cmd

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/abiy5791/RobelStudio-sub001/albums"
	"github.com/abiy5791/RobelStudio-sub001/themes"
)

var showPhotos bool

var albumsShowCmd = &cobra.Command{
	Use:   "show <slug>",
	Short: "Show one album",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		slug := args[0]
		if !albums.ValidSlug(slug) {
			return errors.Errorf("invalid album identifier %q", slug)
		}

		// An anonymous fetch still works; initializing first lets the
		// server mark ownership and like state when tokens are stored.
		sess.Initialize(cmd.Context())

		album, err := client.GetAlbum(cmd.Context(), slug)
		if err != nil {
			return err
		}

		category := themes.Parse(album.Category)
		theme := themes.For(category)
		accent := category.Accent()

		fmt.Printf("%s%s %s%s\n", accent, theme.Icon, album.Names, themes.ResetColor)
		if album.Date != "" {
			fmt.Printf("Date:     %s\n", album.Date)
		}
		fmt.Printf("Theme:    %s\n", theme.Name)
		if album.Description != "" {
			fmt.Printf("About:    %s\n", album.Description)
		}
		fmt.Printf("Photos:   %d\n", len(album.Photos))
		if album.AllowDownloads {
			fmt.Println("Download: allowed")
		}
		if album.IsOwner {
			fmt.Println("Owner:    you")
		} else if album.OwnerUsername != "" {
			fmt.Printf("Owner:    %s\n", album.OwnerUsername)
		}
		if share := albums.ShareURL(cfg.GetFrontendBaseURL(), album.Slug); share != "" {
			fmt.Printf("Share:    %s\n", share)
		}

		if showPhotos {
			fmt.Println()
			for _, p := range album.Photos {
				heart := themes.Gray + "♡" + themes.ResetColor
				if p.IsLiked {
					heart = themes.Red + "♥" + themes.ResetColor
				}
				fmt.Printf("  [%d] %s %s %s\n", p.ID, heart,
					albums.FormatCount(p.LikesCount),
					albums.ImageURL(cfg.GetMediaBaseURL(), p.URL))
			}
		}

		if len(album.Messages) > 0 {
			fmt.Println("\nGuestbook:")
			for _, m := range album.Messages {
				fmt.Printf("  %s: %s\n", m.Name, m.Message)
			}
		}
		return nil
	},
}

func init() {
	albumsShowCmd.Flags().BoolVar(&showPhotos, "photos", false, "list every photo with its like count")
	albumsCmd.AddCommand(albumsShowCmd)
}
