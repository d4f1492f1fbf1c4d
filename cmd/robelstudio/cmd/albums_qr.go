package cmd

import (
	"fmt"

	"github.com/pkg/errors"
	qrcode "github.com/skip2/go-qrcode"
	"github.com/spf13/cobra"

	"github.com/abiy5791/RobelStudio-sub001/albums"
)

var qrOutput string

var albumsQRCmd = &cobra.Command{
	Use:   "qr <slug>",
	Short: "Write the album's share link as a QR code PNG",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		slug := args[0]
		share := albums.ShareURL(cfg.GetFrontendBaseURL(), slug)
		if share == "" {
			return errors.Errorf("invalid album identifier %q", slug)
		}

		out := qrOutput
		if out == "" {
			out = slug + ".png"
		}
		if err := qrcode.WriteFile(share, qrcode.Medium, 256, out); err != nil {
			return errors.Wrap(err, "[qr] write png")
		}

		fmt.Printf("Wrote %s -> %s\n", out, share)
		return nil
	},
}

func init() {
	albumsQRCmd.Flags().StringVarP(&qrOutput, "output", "o", "", "output file (default <slug>.png)")
	albumsCmd.AddCommand(albumsQRCmd)
}
