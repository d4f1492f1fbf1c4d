package credentials

// Names of the two well-known credential entries. Absence of both is the
// canonical logged-out representation.
const (
	AccessTokenKey  = "access_token"
	RefreshTokenKey = "refresh_token"
)

// Store persists small string credentials under well-known names.
//
// Every operation is best-effort: a failing backend (missing file,
// read-only disk, quota) looks like an absent value on read and a no-op on
// write. Losing a token write is recoverable, the user logs in again;
// crashing the caller is not.
type Store interface {
	// Get returns the stored value, or "" when absent or unreadable.
	Get(name string) string
	// Set stores the value. Failures are swallowed.
	Set(name, value string)
	// Clear removes the value. Failures are swallowed.
	Clear(name string)
}
