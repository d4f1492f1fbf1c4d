package cmd

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/abiy5791/RobelStudio-sub001/albums"
)

var (
	messageName string
	messageText string
)

var albumsMessageCmd = &cobra.Command{
	Use:   "message <slug>",
	Short: "Leave a guestbook message on an album",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		slug := args[0]
		if !albums.ValidSlug(slug) {
			return errors.Errorf("invalid album identifier %q", slug)
		}

		msg, err := client.CreateGuestMessage(cmd.Context(), slug, albums.GuestMessage{
			Name:    messageName,
			Message: messageText,
		})
		if err != nil {
			return err
		}

		fmt.Printf("Thanks, %s — your message was added\n", msg.Name)
		return nil
	},
}

func init() {
	albumsMessageCmd.Flags().StringVar(&messageName, "name", "", "your name")
	albumsMessageCmd.Flags().StringVar(&messageText, "message", "", "the message")
	_ = albumsMessageCmd.MarkFlagRequired("name")
	_ = albumsMessageCmd.MarkFlagRequired("message")
	albumsCmd.AddCommand(albumsMessageCmd)
}
