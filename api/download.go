package api

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/pkg/errors"
)

// Downloads are plain GETs with no JSON envelope. The builders produce
// shareable URLs for callers that only need a link; Download streams one
// into a writer.

// DownloadPhotoURL is the direct link for a single photo download.
func (c *Client) DownloadPhotoURL(slug string, index int) string {
	return fmt.Sprintf("%s/api/albums/%s/download/%d/", c.baseURL, url.PathEscape(slug), index)
}

// DownloadAlbumZipURL is the direct link for the whole album as a zip.
func (c *Client) DownloadAlbumZipURL(slug string) string {
	return fmt.Sprintf("%s/api/albums/%s/download-zip/", c.baseURL, url.PathEscape(slug))
}

// Download streams rawURL into w.
func (c *Client) Download(ctx context.Context, rawURL string, w io.Writer) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return errors.Wrap(err, "[Download] build request")
	}
	c.setCommonHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "[Download] perform request")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &FetchError{Message: "Download failed", Status: resp.StatusCode}
	}
	if _, err := io.Copy(w, resp.Body); err != nil {
		return errors.Wrap(err, "[Download] copy body")
	}
	return nil
}
