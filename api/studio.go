package api

import (
	"context"
	"encoding/json"
	"net/http"
)

// StudioData is the public landing-page payload. The sections are kept
// raw: callers render them as-is and their shapes churn with the studio's
// content model.
type StudioData struct {
	Content      json.RawMessage `json:"content,omitempty"`
	Services     json.RawMessage `json:"services,omitempty"`
	Testimonials json.RawMessage `json:"testimonials,omitempty"`
	Portfolio    json.RawMessage `json:"portfolio,omitempty"`
	Categories   json.RawMessage `json:"categories,omitempty"`
	MediaItems   json.RawMessage `json:"media_items,omitempty"`
	Videos       json.RawMessage `json:"videos,omitempty"`
	ContactInfo  json.RawMessage `json:"contact_info,omitempty"`
	SocialLinks  json.RawMessage `json:"social_links,omitempty"`
}

// ContactMessage is a visitor's note to the studio.
type ContactMessage struct {
	Name    string `json:"name"`
	Email   string `json:"email,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Message string `json:"message"`
}

// GetStudioData fetches the landing-page data. A single round trip:
// timeout and retry policy belong to the caller via ctx.
func (c *Client) GetStudioData(ctx context.Context) (*StudioData, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/api/studio/", nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	var out StudioData
	err = c.do(req, &out, func(resp *http.Response) error {
		return &FetchError{Message: "Studio API responded with an error", Status: resp.StatusCode}
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// SubmitContactMessage sends a visitor enquiry to the studio.
func (c *Client) SubmitContactMessage(ctx context.Context, msg ContactMessage) error {
	req, err := c.newRequest(ctx, http.MethodPost, "/api/contact/", msg)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	return c.do(req, nil, func(resp *http.Response) error {
		return &FetchError{Message: "Failed to send message", Status: resp.StatusCode}
	})
}
