package guard_test

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github.com/abiy5791/RobelStudio-sub001/api"
	"github.com/abiy5791/RobelStudio-sub001/credentials"
	"github.com/abiy5791/RobelStudio-sub001/credentials/storefakes"
	"github.com/abiy5791/RobelStudio-sub001/guard"
	"github.com/abiy5791/RobelStudio-sub001/session"
	"github.com/abiy5791/RobelStudio-sub001/users"
)

// scriptedAPI drives the session manager from guard tests.
type scriptedAPI struct {
	profile    *users.Profile
	profileErr error
	login      *api.AuthResponse
}

func (s *scriptedAPI) Login(ctx context.Context, creds api.Credentials) (*api.AuthResponse, error) {
	return s.login, nil
}

func (s *scriptedAPI) Register(ctx context.Context, userData api.RegisterRequest) (*api.AuthResponse, error) {
	return nil, errors.New("not scripted")
}

func (s *scriptedAPI) GetUserProfile(ctx context.Context) (*users.Profile, error) {
	if s.profileErr != nil {
		return nil, s.profileErr
	}
	return s.profile, nil
}

func (s *scriptedAPI) RefreshToken(ctx context.Context, refreshToken string) (string, error) {
	return "", errors.New("not scripted")
}

func authenticatedSession(t *testing.T) *session.Manager {
	t.Helper()

	store := storefakes.NewFakeStore()
	store.Set(credentials.AccessTokenKey, "good-access")
	sess, err := session.NewManager(&scriptedAPI{profile: &users.Profile{Username: "robel"}}, store)
	require.NoError(t, err)
	return sess
}

func anonymousSession(t *testing.T, authAPI *scriptedAPI) *session.Manager {
	t.Helper()

	sess, err := session.NewManager(authAPI, storefakes.NewFakeStore())
	require.NoError(t, err)
	return sess
}

func TestNew(t *testing.T) {
	t.Run("requires a session manager", func(t *testing.T) {
		_, err := guard.New(nil, nil)
		require.Error(t, err)
	})

	t.Run("prompt is optional", func(t *testing.T) {
		g, err := guard.New(authenticatedSession(t), nil)
		require.NoError(t, err)
		require.NotNil(t, g)
	})
}

func TestProtect(t *testing.T) {
	t.Run("authenticated caller runs the action with the user", func(t *testing.T) {
		g, err := guard.New(authenticatedSession(t), nil)
		require.NoError(t, err)

		var got *users.Profile
		err = g.Protect(context.Background(), func(ctx context.Context, user *users.Profile) error {
			got = user
			return nil
		})
		require.NoError(t, err)
		require.Equal(t, "robel", got.Username)
	})

	t.Run("anonymous caller without a prompt is turned away", func(t *testing.T) {
		g, err := guard.New(anonymousSession(t, &scriptedAPI{}), nil)
		require.NoError(t, err)

		err = g.Protect(context.Background(), func(ctx context.Context, user *users.Profile) error {
			t.Fatal("action must not run")
			return nil
		})
		require.ErrorIs(t, err, guard.ErrAuthenticationRequired)
	})

	t.Run("prompt signs in and the original action still runs", func(t *testing.T) {
		authAPI := &scriptedAPI{
			login: &api.AuthResponse{
				User:   users.Profile{Username: "robel"},
				Tokens: api.TokenPair{Access: "a1", Refresh: "r1"},
			},
		}
		sess := anonymousSession(t, authAPI)

		prompted := false
		g, err := guard.New(sess, func(ctx context.Context) error {
			prompted = true
			_, err := sess.Login(ctx, api.Credentials{Username: "robel", Password: "pw"})
			return err
		})
		require.NoError(t, err)

		ran := false
		err = g.Protect(context.Background(), func(ctx context.Context, user *users.Profile) error {
			ran = true
			require.Equal(t, "robel", user.Username)
			return nil
		})
		require.NoError(t, err)
		require.True(t, prompted)
		require.True(t, ran)
	})

	t.Run("prompt error abandons the action", func(t *testing.T) {
		promptErr := errors.New("ctrl-c")
		g, err := guard.New(anonymousSession(t, &scriptedAPI{}), func(ctx context.Context) error {
			return promptErr
		})
		require.NoError(t, err)

		err = g.Protect(context.Background(), func(ctx context.Context, user *users.Profile) error {
			t.Fatal("action must not run")
			return nil
		})
		require.ErrorIs(t, err, promptErr)
	})

	t.Run("prompt that finishes without a session is still turned away", func(t *testing.T) {
		g, err := guard.New(anonymousSession(t, &scriptedAPI{}), func(ctx context.Context) error {
			return nil
		})
		require.NoError(t, err)

		err = g.Protect(context.Background(), func(ctx context.Context, user *users.Profile) error {
			t.Fatal("action must not run")
			return nil
		})
		require.ErrorIs(t, err, guard.ErrAuthenticationRequired)
	})

	t.Run("action errors propagate", func(t *testing.T) {
		g, err := guard.New(authenticatedSession(t), nil)
		require.NoError(t, err)

		actionErr := errors.New("boom")
		err = g.Protect(context.Background(), func(ctx context.Context, user *users.Profile) error {
			return actionErr
		})
		require.ErrorIs(t, err, actionErr)
	})
}
