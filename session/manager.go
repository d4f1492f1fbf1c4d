package session

import (
	"context"
	"sync"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/abiy5791/RobelStudio-sub001/api"
	"github.com/abiy5791/RobelStudio-sub001/credentials"
	"github.com/abiy5791/RobelStudio-sub001/users"
)

// State of the session resolution machine.
type State int

const (
	Uninitialized State = iota
	Resolving
	Authenticated
	Anonymous
)

func (s State) String() string {
	switch s {
	case Uninitialized:
		return "uninitialized"
	case Resolving:
		return "resolving"
	case Authenticated:
		return "authenticated"
	case Anonymous:
		return "anonymous"
	}
	return "unknown"
}

// AuthAPI is the slice of the API client the session manager needs.
type AuthAPI interface {
	Login(ctx context.Context, creds api.Credentials) (*api.AuthResponse, error)
	Register(ctx context.Context, userData api.RegisterRequest) (*api.AuthResponse, error)
	GetUserProfile(ctx context.Context) (*users.Profile, error)
	RefreshToken(ctx context.Context, refreshToken string) (string, error)
}

// Manager owns the current user and the startup resolution sequence:
// token presence → profile fetch → single refresh-and-retry → token
// invalidation. It is constructed once at application root and injected
// into consumers; a stored access token with no resolvable profile always
// loses to the server's opinion.
type Manager struct {
	api   AuthAPI
	creds credentials.Store

	mu       sync.RWMutex
	state    State
	user     *users.Profile
	loading  bool
	resolved bool
}

// NewManager wires the session manager to its API slice and credential
// store.
func NewManager(authAPI AuthAPI, creds credentials.Store) (*Manager, error) {
	if authAPI == nil {
		return nil, errors.New("[NewManager] auth API is required")
	}
	if creds == nil {
		return nil, errors.New("[NewManager] credential store is required")
	}
	return &Manager{
		api:   authAPI,
		creds: creds,
		state: Uninitialized,
	}, nil
}

// Initialize reconciles the in-memory session with the persisted tokens.
// The resolution sequence runs at most once per process; later calls
// return the already resolved state. Loading is true only while this
// sequence is in flight, never during login, register, or logout.
func (m *Manager) Initialize(ctx context.Context) State {
	m.mu.Lock()
	if m.resolved {
		state := m.state
		m.mu.Unlock()
		return state
	}
	m.resolved = true
	m.state = Resolving
	m.loading = true
	m.mu.Unlock()

	user := m.resolveUser(ctx)

	m.mu.Lock()
	defer m.mu.Unlock()
	m.loading = false
	if user != nil {
		m.user = user
		m.state = Authenticated
	} else {
		m.user = nil
		m.state = Anonymous
	}
	return m.state
}

// resolveUser walks the startup sequence. A nil result means anonymous.
func (m *Manager) resolveUser(ctx context.Context) *users.Profile {
	if m.creds.Get(credentials.AccessTokenKey) == "" {
		return nil
	}

	user, err := m.api.GetUserProfile(ctx)
	if err == nil {
		return user
	}

	// The access token may merely be expired: one refresh, one retry.
	refresh := m.creds.Get(credentials.RefreshTokenKey)
	if refresh == "" {
		return nil
	}

	access, err := m.api.RefreshToken(ctx, refresh)
	if err == nil {
		m.creds.Set(credentials.AccessTokenKey, access)
		if user, err := m.api.GetUserProfile(ctx); err == nil {
			return user
		}
	}

	// Refresh failed, or the retried fetch did: the pair is dead.
	log.Debug().Msg("session refresh failed, clearing tokens")
	m.creds.Clear(credentials.AccessTokenKey)
	m.creds.Clear(credentials.RefreshTokenKey)
	return nil
}

// Login authenticates, persists the token pair, and flips the session to
// Authenticated. On failure the session is left untouched and the error
// propagates.
func (m *Manager) Login(ctx context.Context, creds api.Credentials) (*api.AuthResponse, error) {
	data, err := m.api.Login(ctx, creds)
	if err != nil {
		return nil, err
	}
	m.adopt(data)
	return data, nil
}

// Register creates an account with the same persistence and transition
// contract as Login. The server limits registration to admin sessions;
// gating non-admin attempts happens at the view layer, not here.
func (m *Manager) Register(ctx context.Context, userData api.RegisterRequest) (*api.AuthResponse, error) {
	data, err := m.api.Register(ctx, userData)
	if err != nil {
		return nil, err
	}
	m.adopt(data)
	return data, nil
}

func (m *Manager) adopt(data *api.AuthResponse) {
	m.creds.Set(credentials.AccessTokenKey, data.Tokens.Access)
	m.creds.Set(credentials.RefreshTokenKey, data.Tokens.Refresh)

	m.mu.Lock()
	defer m.mu.Unlock()
	user := data.User
	m.user = &user
	m.state = Authenticated
	m.resolved = true
	m.loading = false
}

// Logout clears both tokens and resets the session, unconditionally and
// synchronously. Safe from any state, repeatedly.
func (m *Manager) Logout() {
	m.creds.Clear(credentials.AccessTokenKey)
	m.creds.Clear(credentials.RefreshTokenKey)

	m.mu.Lock()
	defer m.mu.Unlock()
	m.user = nil
	m.state = Anonymous
	m.resolved = true
	m.loading = false
}

// State returns the current machine state.
func (m *Manager) State() State {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.state
}

// Loading reports whether the startup resolution is still in flight.
func (m *Manager) Loading() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.loading
}

// IsAuthenticated reports whether a user is signed in.
func (m *Manager) IsAuthenticated() bool {
	return m.State() == Authenticated
}

// User returns the resolved profile, nil when anonymous or unresolved.
func (m *Manager) User() *users.Profile {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.user
}
