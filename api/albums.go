package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/pkg/errors"

	"github.com/abiy5791/RobelStudio-sub001/albums"
)

const (
	defaultPage     = 1
	defaultPageSize = 20
)

func normalisePaging(page, pageSize int) (int, int) {
	if page <= 0 {
		page = defaultPage
	}
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	return page, pageSize
}

func albumPath(slug string, suffix string) string {
	return "/api/albums/" + url.PathEscape(slug) + "/" + suffix
}

// ListAlbums fetches the public recent-albums listing.
func (c *Client) ListAlbums(ctx context.Context, page, pageSize int) (*albums.Page, error) {
	page, pageSize = normalisePaging(page, pageSize)
	req, err := c.newRequest(ctx, http.MethodGet,
		fmt.Sprintf("/api/albums/?page=%d&page_size=%d", page, pageSize), nil)
	if err != nil {
		return nil, err
	}

	var out albums.Page
	err = c.do(req, &out, func(resp *http.Response) error {
		return &FetchError{Message: "Failed to load albums", Status: resp.StatusCode}
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// GetMyAlbums fetches the signed-in user's albums.
func (c *Client) GetMyAlbums(ctx context.Context, page, pageSize int) (*albums.Page, error) {
	page, pageSize = normalisePaging(page, pageSize)
	req, err := c.newRequest(ctx, http.MethodGet,
		fmt.Sprintf("/api/albums/my/?page=%d&page_size=%d", page, pageSize), nil)
	if err != nil {
		return nil, err
	}

	var out albums.Page
	err = c.do(req, &out, func(resp *http.Response) error {
		return &FetchError{Message: "Failed to load albums", Status: resp.StatusCode}
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// GetAlbum fetches one album. A stored token, when present, lets the
// server mark ownership and per-user like state; the endpoint itself is
// public.
func (c *Client) GetAlbum(ctx context.Context, slug string) (*albums.Detail, error) {
	req, err := c.newRequest(ctx, http.MethodGet, albumPath(slug, ""), nil)
	if err != nil {
		return nil, err
	}

	var out albums.Detail
	err = c.do(req, &out, func(resp *http.Response) error {
		return &NotFoundError{Slug: slug, Status: resp.StatusCode}
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateAlbum creates an album from the draft and returns the stored
// detail, slug included.
func (c *Client) CreateAlbum(ctx context.Context, payload albums.Draft) (*albums.Detail, error) {
	req, err := c.newRequest(ctx, http.MethodPost, "/api/albums/", payload)
	if err != nil {
		return nil, err
	}

	var out albums.Detail
	err = c.do(req, &out, func(resp *http.Response) error {
		return &FetchError{Message: "Failed to create album", Status: resp.StatusCode}
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateAlbum patches an album with the draft's non-zero fields. When
// onProgress is given, it receives a monotone integer percentage of the
// request body as it uploads; useful when the draft carries a large photo
// list.
func (c *Client) UpdateAlbum(ctx context.Context, slug string, payload albums.Draft, onProgress func(int)) (*albums.Detail, error) {
	var (
		req *http.Request
		err error
	)
	if onProgress == nil {
		req, err = c.newRequest(ctx, http.MethodPatch, albumPath(slug, ""), payload)
	} else {
		req, err = c.newProgressRequest(ctx, http.MethodPatch, albumPath(slug, ""), payload, onProgress)
	}
	if err != nil {
		return nil, err
	}

	var out albums.Detail
	err = c.do(req, &out, func(resp *http.Response) error {
		return &FetchError{Message: "Failed to update album", Status: resp.StatusCode}
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteAlbum removes an album. It returns true exactly when the server
// answered 204; any other status, 2xx included, is reported as an error
// rather than a differently-flavoured success.
func (c *Client) DeleteAlbum(ctx context.Context, slug string) (bool, error) {
	req, err := c.newRequest(ctx, http.MethodDelete, albumPath(slug, ""), nil)
	if err != nil {
		return false, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false, errors.Wrap(err, "[DeleteAlbum] perform request")
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNoContent {
		return true, nil
	}
	return false, &FetchError{Message: "Failed to delete album", Status: resp.StatusCode}
}

// CreateGuestMessage posts a guestbook entry. Deliberately anonymous: the
// visitor scanned a QR code and has no account.
func (c *Client) CreateGuestMessage(ctx context.Context, slug string, msg albums.GuestMessage) (*albums.GuestMessage, error) {
	req, err := c.newRequest(ctx, http.MethodPost, albumPath(slug, "messages/"), msg)
	if err != nil {
		return nil, err
	}

	var out albums.GuestMessage
	err = c.do(req, &out, func(resp *http.Response) error {
		return &FetchError{Message: "Failed to submit message", Status: resp.StatusCode}
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// TogglePhotoLike flips the caller's like on a photo and returns the
// authoritative state.
func (c *Client) TogglePhotoLike(ctx context.Context, slug string, photoID int) (albums.LikeResult, error) {
	req, err := c.newRequest(ctx, http.MethodPost, albumPath(slug, fmt.Sprintf("photos/%d/like/", photoID)), nil)
	if err != nil {
		return albums.LikeResult{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	var out albums.LikeResult
	err = c.do(req, &out, func(resp *http.Response) error {
		return &FetchError{Message: "Failed to toggle like", Status: resp.StatusCode}
	})
	if err != nil {
		return albums.LikeResult{}, err
	}
	return out, nil
}
