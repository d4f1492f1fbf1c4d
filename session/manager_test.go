package session_test

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github.com/abiy5791/RobelStudio-sub001/api"
	"github.com/abiy5791/RobelStudio-sub001/credentials"
	"github.com/abiy5791/RobelStudio-sub001/credentials/storefakes"
	"github.com/abiy5791/RobelStudio-sub001/session"
	"github.com/abiy5791/RobelStudio-sub001/users"
)

// fakeAuthAPI scripts the session manager's API slice.
type fakeAuthAPI struct {
	loginResponse    *api.AuthResponse
	loginErr         error
	registerResponse *api.AuthResponse
	registerErr      error

	profile      *users.Profile
	profileErrs  []error
	profileCalls int

	refreshedAccess string
	refreshErr      error
	refreshCalls    int
}

func (f *fakeAuthAPI) Login(ctx context.Context, creds api.Credentials) (*api.AuthResponse, error) {
	return f.loginResponse, f.loginErr
}

func (f *fakeAuthAPI) Register(ctx context.Context, userData api.RegisterRequest) (*api.AuthResponse, error) {
	return f.registerResponse, f.registerErr
}

func (f *fakeAuthAPI) GetUserProfile(ctx context.Context) (*users.Profile, error) {
	call := f.profileCalls
	f.profileCalls++
	if call < len(f.profileErrs) && f.profileErrs[call] != nil {
		return nil, f.profileErrs[call]
	}
	return f.profile, nil
}

func (f *fakeAuthAPI) RefreshToken(ctx context.Context, refreshToken string) (string, error) {
	f.refreshCalls++
	if f.refreshErr != nil {
		return "", f.refreshErr
	}
	return f.refreshedAccess, nil
}

type testFixture struct {
	api     *fakeAuthAPI
	store   *storefakes.FakeStore
	manager *session.Manager
}

func setupTestFixture(t *testing.T, authAPI *fakeAuthAPI) *testFixture {
	t.Helper()

	store := storefakes.NewFakeStore()
	manager, err := session.NewManager(authAPI, store)
	require.NoError(t, err)

	return &testFixture{api: authAPI, store: store, manager: manager}
}

func TestNewManager(t *testing.T) {
	t.Run("requires an API", func(t *testing.T) {
		_, err := session.NewManager(nil, storefakes.NewFakeStore())
		require.Error(t, err)
	})

	t.Run("requires a store", func(t *testing.T) {
		_, err := session.NewManager(&fakeAuthAPI{}, nil)
		require.Error(t, err)
	})
}

func TestInitialize(t *testing.T) {
	t.Run("no stored token resolves anonymous without a profile call", func(t *testing.T) {
		f := setupTestFixture(t, &fakeAuthAPI{})

		state := f.manager.Initialize(context.Background())

		require.Equal(t, session.Anonymous, state)
		require.Zero(t, f.api.profileCalls)
		require.False(t, f.manager.Loading())
		require.Nil(t, f.manager.User())
	})

	t.Run("valid access token resolves the user", func(t *testing.T) {
		f := setupTestFixture(t, &fakeAuthAPI{
			profile: &users.Profile{Username: "robel"},
		})
		f.store.Set(credentials.AccessTokenKey, "good-access")

		state := f.manager.Initialize(context.Background())

		require.Equal(t, session.Authenticated, state)
		require.Equal(t, "robel", f.manager.User().Username)
		require.Equal(t, 1, f.api.profileCalls)
		require.Zero(t, f.api.refreshCalls)
	})

	t.Run("expired access token refreshes once and retries", func(t *testing.T) {
		f := setupTestFixture(t, &fakeAuthAPI{
			profile:         &users.Profile{Username: "robel"},
			profileErrs:     []error{&api.AuthError{Message: "expired", Status: 401}},
			refreshedAccess: "new-access",
		})
		f.store.Set(credentials.AccessTokenKey, "stale-access")
		f.store.Set(credentials.RefreshTokenKey, "good-refresh")

		state := f.manager.Initialize(context.Background())

		require.Equal(t, session.Authenticated, state)
		require.Equal(t, 1, f.api.refreshCalls)
		require.Equal(t, 2, f.api.profileCalls)
		require.Equal(t, "new-access", f.store.Get(credentials.AccessTokenKey))
		require.Equal(t, "good-refresh", f.store.Get(credentials.RefreshTokenKey))
	})

	t.Run("failed refresh clears both tokens", func(t *testing.T) {
		f := setupTestFixture(t, &fakeAuthAPI{
			profileErrs: []error{&api.AuthError{Message: "expired", Status: 401}},
			refreshErr:  &api.AuthError{Message: "refresh dead", Status: 401},
		})
		f.store.Set(credentials.AccessTokenKey, "stale-access")
		f.store.Set(credentials.RefreshTokenKey, "dead-refresh")

		state := f.manager.Initialize(context.Background())

		require.Equal(t, session.Anonymous, state)
		require.Empty(t, f.store.Get(credentials.AccessTokenKey))
		require.Empty(t, f.store.Get(credentials.RefreshTokenKey))
	})

	t.Run("failed retry after refresh clears both tokens", func(t *testing.T) {
		f := setupTestFixture(t, &fakeAuthAPI{
			profileErrs: []error{
				&api.AuthError{Message: "expired", Status: 401},
				&api.AuthError{Message: "still no", Status: 401},
			},
			refreshedAccess: "new-access",
		})
		f.store.Set(credentials.AccessTokenKey, "stale-access")
		f.store.Set(credentials.RefreshTokenKey, "good-refresh")

		state := f.manager.Initialize(context.Background())

		require.Equal(t, session.Anonymous, state)
		require.Equal(t, 2, f.api.profileCalls)
		require.Empty(t, f.store.Get(credentials.AccessTokenKey))
		require.Empty(t, f.store.Get(credentials.RefreshTokenKey))
	})

	t.Run("profile failure without a refresh token leaves tokens alone", func(t *testing.T) {
		f := setupTestFixture(t, &fakeAuthAPI{
			profileErrs: []error{errors.New("network down")},
		})
		f.store.Set(credentials.AccessTokenKey, "maybe-fine")

		state := f.manager.Initialize(context.Background())

		require.Equal(t, session.Anonymous, state)
		require.Zero(t, f.api.refreshCalls)
		require.Equal(t, "maybe-fine", f.store.Get(credentials.AccessTokenKey))
	})

	t.Run("runs at most once", func(t *testing.T) {
		f := setupTestFixture(t, &fakeAuthAPI{
			profile: &users.Profile{Username: "robel"},
		})
		f.store.Set(credentials.AccessTokenKey, "good-access")

		f.manager.Initialize(context.Background())
		f.manager.Initialize(context.Background())

		require.Equal(t, 1, f.api.profileCalls)
	})
}

func TestLogin(t *testing.T) {
	t.Run("persists tokens and authenticates", func(t *testing.T) {
		f := setupTestFixture(t, &fakeAuthAPI{
			loginResponse: &api.AuthResponse{
				User:   users.Profile{Username: "robel"},
				Tokens: api.TokenPair{Access: "a1", Refresh: "r1"},
			},
		})

		data, err := f.manager.Login(context.Background(), api.Credentials{Username: "robel"})
		require.NoError(t, err)
		require.Equal(t, "robel", data.User.Username)
		require.Equal(t, "a1", f.store.Get(credentials.AccessTokenKey))
		require.Equal(t, "r1", f.store.Get(credentials.RefreshTokenKey))
		require.True(t, f.manager.IsAuthenticated())
		require.False(t, f.manager.Loading())
	})

	t.Run("failure leaves the session untouched", func(t *testing.T) {
		f := setupTestFixture(t, &fakeAuthAPI{
			loginErr: &api.AuthError{Message: "Login failed", Status: 401},
		})

		_, err := f.manager.Login(context.Background(), api.Credentials{})
		require.Error(t, err)
		require.Equal(t, session.Uninitialized, f.manager.State())
		require.Empty(t, f.store.Get(credentials.AccessTokenKey))
	})

	t.Run("skips the startup resolution afterwards", func(t *testing.T) {
		f := setupTestFixture(t, &fakeAuthAPI{
			loginResponse: &api.AuthResponse{
				User:   users.Profile{Username: "robel"},
				Tokens: api.TokenPair{Access: "a1", Refresh: "r1"},
			},
		})

		_, err := f.manager.Login(context.Background(), api.Credentials{})
		require.NoError(t, err)

		require.Equal(t, session.Authenticated, f.manager.Initialize(context.Background()))
		require.Zero(t, f.api.profileCalls)
	})
}

func TestRegister(t *testing.T) {
	f := setupTestFixture(t, &fakeAuthAPI{
		registerResponse: &api.AuthResponse{
			User:   users.Profile{Username: "newbie"},
			Tokens: api.TokenPair{Access: "a2", Refresh: "r2"},
		},
	})

	data, err := f.manager.Register(context.Background(), api.RegisterRequest{Username: "newbie"})
	require.NoError(t, err)
	require.Equal(t, "newbie", data.User.Username)
	require.Equal(t, "a2", f.store.Get(credentials.AccessTokenKey))
	require.True(t, f.manager.IsAuthenticated())
}

func TestLogout(t *testing.T) {
	t.Run("clears tokens and resets the session", func(t *testing.T) {
		f := setupTestFixture(t, &fakeAuthAPI{
			profile: &users.Profile{Username: "robel"},
		})
		f.store.Set(credentials.AccessTokenKey, "good-access")
		f.store.Set(credentials.RefreshTokenKey, "good-refresh")
		f.manager.Initialize(context.Background())

		f.manager.Logout()

		require.Equal(t, session.Anonymous, f.manager.State())
		require.Nil(t, f.manager.User())
		require.Empty(t, f.store.Get(credentials.AccessTokenKey))
		require.Empty(t, f.store.Get(credentials.RefreshTokenKey))
	})

	t.Run("safe from any state, repeatedly", func(t *testing.T) {
		f := setupTestFixture(t, &fakeAuthAPI{})

		f.manager.Logout()
		f.manager.Logout()

		require.Equal(t, session.Anonymous, f.manager.State())
	})
}

func TestStateString(t *testing.T) {
	require.Equal(t, "uninitialized", session.Uninitialized.String())
	require.Equal(t, "resolving", session.Resolving.String())
	require.Equal(t, "authenticated", session.Authenticated.String())
	require.Equal(t, "anonymous", session.Anonymous.String())
	require.Equal(t, "unknown", session.State(42).String())
}
