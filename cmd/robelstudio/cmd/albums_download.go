package cmd

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/abiy5791/RobelStudio-sub001/albums"
)

var (
	downloadIndex  int
	downloadOutput string
)

var albumsDownloadCmd = &cobra.Command{
	Use:   "download <slug>",
	Short: "Download an album as a zip, or one photo with --index",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		slug := args[0]
		if !albums.ValidSlug(slug) {
			return errors.Errorf("invalid album identifier %q", slug)
		}

		rawURL := client.DownloadAlbumZipURL(slug)
		out := downloadOutput
		if cmd.Flags().Changed("index") {
			rawURL = client.DownloadPhotoURL(slug, downloadIndex)
			if out == "" {
				out = fmt.Sprintf("%s-%d.jpg", slug, downloadIndex)
			}
		} else if out == "" {
			out = slug + ".zip"
		}

		f, err := os.Create(out)
		if err != nil {
			return errors.Wrap(err, "[download] create file")
		}
		defer f.Close()

		if err := client.Download(cmd.Context(), rawURL, f); err != nil {
			os.Remove(out)
			return err
		}

		fmt.Printf("Saved %s\n", out)
		return nil
	},
}

func init() {
	albumsDownloadCmd.Flags().IntVar(&downloadIndex, "index", 0, "photo index to download instead of the zip")
	albumsDownloadCmd.Flags().StringVarP(&downloadOutput, "output", "o", "", "output file")
	albumsCmd.AddCommand(albumsDownloadCmd)
}
