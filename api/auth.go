package api

import (
	"context"
	"net/http"

	"github.com/abiy5791/RobelStudio-sub001/users"
)

// TokenPair carries the short-lived access token and the long-lived
// refresh token issued together at login.
type TokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

// AuthResponse is the login/register payload: the user plus a fresh token
// pair.
type AuthResponse struct {
	User   users.Profile `json:"user"`
	Tokens TokenPair     `json:"tokens"`
}

// Credentials is the login form.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// RegisterRequest mirrors the registration form. Creating accounts is an
// admin-only operation server side; this client just relays rejections.
type RegisterRequest struct {
	Username  string `json:"username"`
	Password  string `json:"password"`
	Email     string `json:"email,omitempty"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
}

// Register creates a new account and signs it in. Non-2xx responses
// surface as a ValidationError carrying the most specific field error
// available.
func (c *Client) Register(ctx context.Context, userData RegisterRequest) (*AuthResponse, error) {
	req, err := c.newRequest(ctx, http.MethodPost, "/api/auth/register/", userData)
	if err != nil {
		return nil, err
	}

	var out AuthResponse
	err = c.do(req, &out, func(resp *http.Response) error {
		return &ValidationError{Message: decodeServerError(resp).firstMessage("Registration failed")}
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Login exchanges credentials for a profile and a token pair.
func (c *Client) Login(ctx context.Context, creds Credentials) (*AuthResponse, error) {
	req, err := c.newRequest(ctx, http.MethodPost, "/api/auth/login/", creds)
	if err != nil {
		return nil, err
	}

	var out AuthResponse
	err = c.do(req, &out, func(resp *http.Response) error {
		return &AuthError{
			Message: decodeServerError(resp).firstMessage("Login failed"),
			Status:  resp.StatusCode,
		}
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// GetUserProfile fetches the profile belonging to the stored access token.
func (c *Client) GetUserProfile(ctx context.Context) (*users.Profile, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/api/auth/profile/", nil)
	if err != nil {
		return nil, err
	}

	var out users.Profile
	err = c.do(req, &out, func(resp *http.Response) error {
		return &AuthError{Message: "Failed to get profile", Status: resp.StatusCode}
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// RefreshToken trades a refresh token for a new access token.
func (c *Client) RefreshToken(ctx context.Context, refreshToken string) (string, error) {
	req, err := c.newRequest(ctx, http.MethodPost, "/api/auth/token/refresh/", map[string]string{
		"refresh": refreshToken,
	})
	if err != nil {
		return "", err
	}

	var out struct {
		Access string `json:"access"`
	}
	err = c.do(req, &out, func(resp *http.Response) error {
		return &AuthError{Message: "Token refresh failed", Status: resp.StatusCode}
	})
	if err != nil {
		return "", err
	}
	return out.Access, nil
}
