package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/sellerdesk/sellerdesk/internal/core/domain"
	"github.com/sellerdesk/sellerdesk/internal/core/port"
)

var _ port.Authenticator = (*AuthService)(nil)

// AuthService implements the sign-in/sign-out flow: one POST to the login
// endpoint, the session written on success, nothing retried automatically.
type AuthService struct {
	api      port.SellerAPI
	sessions port.SessionStore
}

func NewAuth(api port.SellerAPI, sessions port.SessionStore) AuthService {
	return AuthService{api: api, sessions: sessions}
}

// SignIn validates the credentials locally, then performs the login call
// and persists the returned session. Empty fields are rejected before any
// network round-trip.
func (s AuthService) SignIn(
	ctx context.Context, username, password string,
) (domain.StoreProfile, error) {
	const op = "AuthService.SignIn"

	username = strings.TrimSpace(username)
	if username == "" {
		return domain.StoreProfile{}, &domain.ValidationError{
			Field: "username", Reason: "required",
		}
	}
	if password == "" {
		return domain.StoreProfile{}, &domain.ValidationError{
			Field: "password", Reason: "required",
		}
	}

	sess, err := s.api.Login(ctx, username, password)
	if err != nil {
		return domain.StoreProfile{}, fmt.Errorf("%s: %w", op, err)
	}

	if err := s.sessions.Save(sess); err != nil {
		return domain.StoreProfile{}, fmt.Errorf("%s: %w", op, err)
	}
	return sess.Store, nil
}

// SignOut removes the persisted session. Authenticated requests must not
// be attempted afterwards; every entry point re-reads the store.
func (s AuthService) SignOut(context.Context) error {
	const op = "AuthService.SignOut"

	if err := s.sessions.Clear(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// Session exposes the current persisted session to the shell, which picks
// the visible panel from its presence.
func (s AuthService) Session() (domain.Session, bool, error) {
	return s.sessions.Load()
}
