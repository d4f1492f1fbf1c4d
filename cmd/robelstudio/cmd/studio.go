package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/abiy5791/RobelStudio-sub001/api"
)

const (
	studioTimeout = 12 * time.Second
	studioRetries = 2
	studioBackoff = 800 * time.Millisecond
)

var studioCmd = &cobra.Command{
	Use:   "studio",
	Short: "Show the studio's public landing-page data",
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := fetchStudioData(cmd.Context())
		if err != nil {
			return err
		}

		printSection("Content", data.Content)
		printSection("Services", data.Services)
		printSection("Portfolio", data.Portfolio)
		printSection("Testimonials", data.Testimonials)
		printSection("Contact", data.ContactInfo)
		printSection("Social", data.SocialLinks)
		return nil
	},
}

// fetchStudioData wraps the single-shot client call with the landing
// page's resilience policy: a deadline per attempt and a couple of
// retries with growing backoff.
func fetchStudioData(ctx context.Context) (*api.StudioData, error) {
	var lastErr error
	for attempt := 0; attempt <= studioRetries; attempt++ {
		if attempt > 0 {
			wait := studioBackoff * time.Duration(attempt+1)
			log.Debug().Int("attempt", attempt).Dur("backoff", wait).Msg("retrying studio fetch")
			select {
			case <-time.After(wait):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}

		attemptCtx, cancel := context.WithTimeout(ctx, studioTimeout)
		data, err := client.GetStudioData(attemptCtx)
		cancel()
		if err == nil {
			return data, nil
		}
		lastErr = err
	}
	return nil, lastErr
}

func printSection(title string, raw json.RawMessage) {
	if len(raw) == 0 || string(raw) == "null" {
		return
	}
	pretty, err := json.MarshalIndent(json.RawMessage(raw), "  ", "  ")
	if err != nil {
		return
	}
	fmt.Printf("%s:\n  %s\n", title, pretty)
}

var (
	contactName  string
	contactEmail string
	contactPhone string
	contactText  string
)

var contactCmd = &cobra.Command{
	Use:   "contact",
	Short: "Send an enquiry to the studio",
	RunE: func(cmd *cobra.Command, args []string) error {
		err := client.SubmitContactMessage(cmd.Context(), api.ContactMessage{
			Name:    contactName,
			Email:   contactEmail,
			Phone:   contactPhone,
			Message: contactText,
		})
		if err != nil {
			return err
		}
		fmt.Println("Message sent")
		return nil
	},
}

func init() {
	contactCmd.Flags().StringVar(&contactName, "name", "", "your name")
	contactCmd.Flags().StringVar(&contactEmail, "email", "", "your email address")
	contactCmd.Flags().StringVar(&contactPhone, "phone", "", "your phone number")
	contactCmd.Flags().StringVar(&contactText, "message", "", "the enquiry")
	_ = contactCmd.MarkFlagRequired("name")
	_ = contactCmd.MarkFlagRequired("message")

	rootCmd.AddCommand(studioCmd)
	rootCmd.AddCommand(contactCmd)
}
