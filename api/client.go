package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/abiy5791/RobelStudio-sub001/credentials"
)

// Client talks to the album backend. It holds no session state of its
// own: the bearer token is read from the credential store on every
// request, so concurrent reads are safe and a login elsewhere takes
// effect immediately. The client never retries; the one refresh-and-retry
// cycle lives in the session manager.
type Client struct {
	baseURL    string
	creds      credentials.Store
	httpClient *http.Client
}

type Option func(*Client)

// WithHTTPClient overrides the underlying HTTP client, primarily for
// custom timeouts.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// New creates a client for the API at baseURL. An empty baseURL produces
// origin-relative requests, which only makes sense behind a proxy.
func New(baseURL string, creds credentials.Store, options ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		creds:      creds,
		httpClient: &http.Client{},
	}
	for _, opt := range options {
		opt(c)
	}
	return c
}

// BaseURL returns the configured backend origin.
func (c *Client) BaseURL() string { return c.baseURL }

func (c *Client) accessToken() string {
	if c.creds == nil {
		return ""
	}
	return c.creds.Get(credentials.AccessTokenKey)
}

// newRequest builds a JSON request. The bearer token is attached whenever
// the store holds one, including on anonymous endpoints, where the server
// uses it to personalise the response (ownership, per-user like state).
func (c *Client) newRequest(ctx context.Context, method, path string, body any) (*http.Request, error) {
	var bodyReader io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return nil, errors.Wrap(err, "[newRequest] marshal body")
		}
		bodyReader = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return nil, errors.Wrap(err, "[newRequest] build request")
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	c.setCommonHeaders(req)
	return req, nil
}

func (c *Client) setCommonHeaders(req *http.Request) {
	req.Header.Set("X-Request-ID", uuid.New().String())
	if token := c.accessToken(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
}

// do runs the request and decodes a 2xx JSON body into v. A non-2xx
// status is translated by errFor; a 2xx body that fails to decode is a
// ParseError so callers can tell the two apart.
func (c *Client) do(req *http.Request, v any, errFor func(resp *http.Response) error) error {
	log.Debug().Str("method", req.Method).Str("url", req.URL.String()).Msg("api request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "[do] perform request")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return errFor(resp)
	}
	if v == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return &ParseError{Op: req.URL.Path, Err: err}
	}
	return nil
}

// decodeServerError reads whatever error body the server sent. Decode
// failures are fine here, the caller falls back to a generic message.
func decodeServerError(resp *http.Response) serverError {
	var se serverError
	_ = json.NewDecoder(resp.Body).Decode(&se)
	return se
}
