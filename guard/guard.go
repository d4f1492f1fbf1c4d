package guard

import (
	"context"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/abiy5791/RobelStudio-sub001/session"
	"github.com/abiy5791/RobelStudio-sub001/users"
)

// ErrAuthenticationRequired is returned when an anonymous caller reaches
// a protected action and no login prompt is available, or the prompt
// finished without producing a session.
var ErrAuthenticationRequired = errors.New("authentication required, please log in")

// Action is a protected piece of work, handed the resolved user.
type Action func(ctx context.Context, user *users.Profile) error

// LoginPrompt authenticates an anonymous visitor, typically by collecting
// credentials and calling the session manager's Login. Returning an error
// abandons the protected action.
type LoginPrompt func(ctx context.Context) error

// Guard gates protected actions on the session state. An anonymous caller
// is sent through the login prompt first and, when that succeeds, the
// originally requested action still runs; nothing is lost to the detour.
type Guard struct {
	session *session.Manager
	prompt  LoginPrompt
}

// New builds a guard around the session manager. prompt may be nil, in
// which case anonymous callers are turned away.
func New(sess *session.Manager, prompt LoginPrompt) (*Guard, error) {
	if sess == nil {
		return nil, errors.New("[guard.New] session manager is required")
	}
	return &Guard{session: sess, prompt: prompt}, nil
}

// Protect resolves the session if needed and runs action for an
// authenticated user.
func (g *Guard) Protect(ctx context.Context, action Action) error {
	if g.session.State() == session.Uninitialized {
		log.Debug().Msg("resolving session")
		g.session.Initialize(ctx)
	}

	if !g.session.IsAuthenticated() {
		if g.prompt == nil {
			return ErrAuthenticationRequired
		}
		if err := g.prompt(ctx); err != nil {
			return err
		}
		if !g.session.IsAuthenticated() {
			return ErrAuthenticationRequired
		}
	}

	return action(ctx, g.session.User())
}
