package api

import "fmt"

// The client never swallows a failure: every error path surfaces one of
// these types so callers can tell "server said no" apart from "response
// was malformed" and from "credentials rejected".

// ValidationError is a 4xx rejection of the request content, carrying the
// most specific field error the server offered.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// AuthError is a credential or session failure on login, profile fetch,
// or token refresh. The session manager reacts to it; everyone else just
// surfaces it.
type AuthError struct {
	Message string
	Status  int
}

func (e *AuthError) Error() string { return e.Message }

// FetchError is a generic non-2xx response on a data operation.
type FetchError struct {
	Message string
	Status  int
}

func (e *FetchError) Error() string { return fmt.Sprintf("%s (%d)", e.Message, e.Status) }

// NotFoundError reports an album that could not be fetched.
type NotFoundError struct {
	Slug   string
	Status int
}

func (e *NotFoundError) Error() string { return fmt.Sprintf("Album not found (%d)", e.Status) }

// ParseError is a malformed body on an otherwise successful response.
type ParseError struct {
	Op  string
	Err error
}

func (e *ParseError) Error() string { return fmt.Sprintf("Failed to parse response from %s", e.Op) }
func (e *ParseError) Unwrap() error { return e.Err }

// UploadError is a transport-level or malformed-response failure during an
// image upload.
type UploadError struct {
	Message string
	Err     error
}

func (e *UploadError) Error() string { return e.Message }
func (e *UploadError) Unwrap() error { return e.Err }

// serverError is the common Django error body. Field errors arrive as
// lists keyed by field name; detail is the catch-all.
type serverError struct {
	Detail   string   `json:"detail"`
	Username []string `json:"username"`
	Email    []string `json:"email"`
}

// firstMessage picks the most specific message available.
func (se serverError) firstMessage(fallback string) string {
	switch {
	case se.Detail != "":
		return se.Detail
	case len(se.Username) > 0:
		return se.Username[0]
	case len(se.Email) > 0:
		return se.Email[0]
	}
	return fallback
}
