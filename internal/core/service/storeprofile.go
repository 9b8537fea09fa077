package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/sellerdesk/sellerdesk/internal/core/domain"
	"github.com/sellerdesk/sellerdesk/internal/core/port"
)

var _ port.StoreProfiler = (*StoreService)(nil)

// StoreService reads and edits the seller's store profile. Edits are
// committed to the server first; only then is the session snapshot
// refreshed, so a failed save leaves the last committed values in place.
type StoreService struct {
	api      port.SellerAPI
	sessions port.SessionStore
}

func NewStore(api port.SellerAPI, sessions port.SessionStore) StoreService {
	return StoreService{api: api, sessions: sessions}
}

func (s StoreService) Profile(ctx context.Context) (domain.StoreProfile, error) {
	const op = "StoreService.Profile"

	sess, err := requireSession(s.sessions)
	if err != nil {
		return domain.StoreProfile{}, fmt.Errorf("%s: %w", op, err)
	}

	profile, err := s.api.StoreProfile(ctx, sess.Token)
	if err != nil {
		return domain.StoreProfile{}, fmt.Errorf("%s: %w", op, err)
	}
	return profile, nil
}

// UpdateProfile commits the draft's editable fields (owner name and
// address; the store name is immutable post-creation), refetches the
// profile and rewrites the session snapshot with the committed values.
func (s StoreService) UpdateProfile(
	ctx context.Context, draft domain.StoreDraft,
) (domain.StoreProfile, error) {
	const op = "StoreService.UpdateProfile"
	log := slog.With("op", op)

	draft.OwnerName = strings.TrimSpace(draft.OwnerName)
	draft.Address = strings.TrimSpace(draft.Address)
	if draft.OwnerName == "" {
		return domain.StoreProfile{}, &domain.ValidationError{
			Field: "owner_name", Reason: "required",
		}
	}
	if draft.Address == "" {
		return domain.StoreProfile{}, &domain.ValidationError{
			Field: "address", Reason: "required",
		}
	}

	sess, err := requireSession(s.sessions)
	if err != nil {
		return domain.StoreProfile{}, fmt.Errorf("%s: %w", op, err)
	}

	if err := s.api.UpdateStoreProfile(ctx, sess.Token, draft); err != nil {
		return domain.StoreProfile{}, fmt.Errorf("%s: %w", op, err)
	}

	profile, err := s.api.StoreProfile(ctx, sess.Token)
	if err != nil {
		return domain.StoreProfile{}, fmt.Errorf("%s: %w", op, err)
	}

	sess.Store = profile
	if err := s.sessions.Save(sess); err != nil {
		// The server already accepted the edit; a stale snapshot is
		// corrected on the next successful save or re-login.
		log.Warn("failed to refresh session snapshot", "err", err)
	}
	return profile, nil
}
