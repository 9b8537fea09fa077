package service

import (
	"fmt"

	"github.com/sellerdesk/sellerdesk/internal/core/domain"
	"github.com/sellerdesk/sellerdesk/internal/core/port"
)

// requireSession loads the persisted session for an authenticated
// operation. Absence surfaces as domain.ErrNotAuthenticated so every
// panel signals "must re-authenticate" instead of failing silently.
func requireSession(sessions port.SessionStore) (domain.Session, error) {
	sess, ok, err := sessions.Load()
	if err != nil {
		return domain.Session{}, fmt.Errorf("load session: %w", err)
	}
	if !ok {
		return domain.Session{}, domain.ErrNotAuthenticated
	}
	return sess, nil
}
