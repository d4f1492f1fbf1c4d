package session

import (
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"

	"github.com/abiy5791/RobelStudio-sub001/credentials"
)

// AccessTokenExpiresAt peeks at the stored access token's exp claim
// without verifying the signature: the backend holds the key, this is
// display information only. Zero time when there is no token or no claim.
func (m *Manager) AccessTokenExpiresAt() time.Time {
	raw := m.creds.Get(credentials.AccessTokenKey)
	if raw == "" {
		return time.Time{}
	}

	token, _, err := jwtlib.NewParser().ParseUnverified(raw, jwtlib.MapClaims{})
	if err != nil {
		return time.Time{}
	}
	exp, err := token.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}
	}
	return exp.Time
}
