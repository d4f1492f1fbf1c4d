package cmd

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/abiy5791/RobelStudio-sub001/albums"
	"github.com/abiy5791/RobelStudio-sub001/api"
	"github.com/abiy5791/RobelStudio-sub001/themes"
)

var (
	draftNames          string
	draftDate           string
	draftDescription    string
	draftCategory       string
	draftAllowDownloads bool
	draftPhotoPaths     []string
	deleteYes           bool
)

var albumsCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create an album",
	RunE: func(cmd *cobra.Command, args []string) error {
		return protect(cmd, func(cmd *cobra.Command) error {
			photos, err := uploadPhotoFiles(cmd, draftPhotoPaths)
			if err != nil {
				return err
			}

			album, err := client.CreateAlbum(cmd.Context(), albums.Draft{
				Names:          draftNames,
				Date:           draftDate,
				Description:    draftDescription,
				Category:       string(themes.Parse(draftCategory)),
				AllowDownloads: &draftAllowDownloads,
				Photos:         photos,
			})
			if err != nil {
				return err
			}

			fmt.Printf("Created album %s\n", album.Slug)
			if share := albums.ShareURL(cfg.GetFrontendBaseURL(), album.Slug); share != "" {
				fmt.Printf("Share: %s\n", share)
			}
			return nil
		})
	},
}

var albumsEditCmd = &cobra.Command{
	Use:   "edit <slug>",
	Short: "Update an album's details or add photos",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return protect(cmd, func(cmd *cobra.Command) error {
			slug := args[0]
			if !albums.ValidSlug(slug) {
				return errors.Errorf("invalid album identifier %q", slug)
			}

			draft := albums.Draft{
				Names:       draftNames,
				Date:        draftDate,
				Description: draftDescription,
			}
			if cmd.Flags().Changed("category") {
				draft.Category = string(themes.Parse(draftCategory))
			}
			if cmd.Flags().Changed("allow-downloads") {
				draft.AllowDownloads = &draftAllowDownloads
			}

			var onProgress func(int)
			if len(draftPhotoPaths) > 0 {
				uploaded, err := uploadPhotoFiles(cmd, draftPhotoPaths)
				if err != nil {
					return err
				}
				// The server replaces the photo list wholesale, so merge
				// the uploads with what the album already has.
				existing, err := client.GetAlbum(cmd.Context(), slug)
				if err != nil {
					return err
				}
				for _, p := range existing.Photos {
					draft.Photos = append(draft.Photos, albums.UploadedImage{
						URL:          p.URL,
						ThumbnailURL: p.ThumbnailURL,
						MediumURL:    p.MediumURL,
						Width:        p.Width,
						Height:       p.Height,
					})
				}
				draft.Photos = append(draft.Photos, uploaded...)
				onProgress = printProgress("Saving")
			}

			album, err := client.UpdateAlbum(cmd.Context(), slug, draft, onProgress)
			if err != nil {
				return err
			}
			if onProgress != nil {
				fmt.Println()
			}
			fmt.Printf("Updated album %s\n", album.Slug)
			return nil
		})
	},
}

var albumsDeleteCmd = &cobra.Command{
	Use:   "delete <slug>",
	Short: "Delete an album",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return protect(cmd, func(cmd *cobra.Command) error {
			slug := args[0]
			if !albums.ValidSlug(slug) {
				return errors.Errorf("invalid album identifier %q", slug)
			}

			if !deleteYes {
				fmt.Printf("Delete album %s? [y/N] ", slug)
				answer, _ := bufio.NewReader(os.Stdin).ReadString('\n')
				if a := strings.ToLower(strings.TrimSpace(answer)); a != "y" && a != "yes" {
					fmt.Println("Aborted")
					return nil
				}
			}

			deleted, err := client.DeleteAlbum(cmd.Context(), slug)
			if err != nil {
				return err
			}
			if deleted {
				fmt.Printf("Deleted album %s\n", slug)
			}
			return nil
		})
	},
}

// uploadPhotoFiles uploads the given local files and returns their stored
// descriptors, printing progress as the body streams.
func uploadPhotoFiles(cmd *cobra.Command, paths []string) ([]albums.UploadedImage, error) {
	if len(paths) == 0 {
		return nil, nil
	}

	files := make([]api.File, 0, len(paths))
	handles := make([]*os.File, 0, len(paths))
	defer func() {
		for _, h := range handles {
			h.Close()
		}
	}()

	for _, path := range paths {
		f, err := os.Open(path)
		if err != nil {
			return nil, errors.Wrapf(err, "[uploadPhotoFiles] open %s", path)
		}
		handles = append(handles, f)
		files = append(files, api.File{Name: filepath.Base(path), Reader: f})
	}

	uploaded, err := client.UploadImages(cmd.Context(), files, printProgress("Uploading"))
	if err != nil {
		return nil, err
	}
	fmt.Printf("\nUploaded %d photo(s)\n", len(uploaded))
	return uploaded, nil
}

func printProgress(verb string) func(int) {
	return func(pct int) {
		fmt.Printf("\r%s... %3d%%", verb, pct)
	}
}

func init() {
	for _, c := range []*cobra.Command{albumsCreateCmd, albumsEditCmd} {
		c.Flags().StringVar(&draftNames, "names", "", "names on the album cover")
		c.Flags().StringVar(&draftDate, "date", "", "event date (YYYY-MM-DD)")
		c.Flags().StringVar(&draftDescription, "description", "", "album description")
		c.Flags().StringVar(&draftCategory, "category", string(themes.DefaultCategory), "album category")
		c.Flags().BoolVar(&draftAllowDownloads, "allow-downloads", false, "let visitors download photos")
		c.Flags().StringSliceVar(&draftPhotoPaths, "photo", nil, "photo file to upload (repeatable)")
	}
	_ = albumsCreateCmd.MarkFlagRequired("names")

	albumsDeleteCmd.Flags().BoolVarP(&deleteYes, "yes", "y", false, "skip the confirmation prompt")

	albumsCmd.AddCommand(albumsCreateCmd)
	albumsCmd.AddCommand(albumsEditCmd)
	albumsCmd.AddCommand(albumsDeleteCmd)
}
