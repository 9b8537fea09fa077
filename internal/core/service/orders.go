package service

import (
	"context"
	"fmt"

	"github.com/sellerdesk/sellerdesk/internal/core/domain"
	"github.com/sellerdesk/sellerdesk/internal/core/port"
)

var _ port.OrdersDesk = (*OrdersService)(nil)

// OrdersService handles the order-confirmation panel and the statistics
// derived from the same transaction history fetch. Confirm and cancel are
// irreversible requests against distinct endpoints; the server owns the
// status machine and the client reconciles by refetching.
type OrdersService struct {
	api      port.SellerAPI
	sessions port.SessionStore
}

func NewOrders(api port.SellerAPI, sessions port.SessionStore) OrdersService {
	return OrdersService{api: api, sessions: sessions}
}

func (s OrdersService) history(ctx context.Context) ([]domain.Transaction, error) {
	sess, err := requireSession(s.sessions)
	if err != nil {
		return nil, err
	}
	return s.api.TransactionHistory(ctx, sess.Token)
}

// PendingOrders returns the actionable subset of the full history.
func (s OrdersService) PendingOrders(ctx context.Context) ([]domain.Transaction, error) {
	const op = "OrdersService.PendingOrders"

	ts, err := s.history(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return domain.PendingOnly(ts), nil
}

// Statistics sums revenue over successful transactions and counts pending
// ones, all client-side from the history fetch.
func (s OrdersService) Statistics(ctx context.Context) (domain.Statistics, error) {
	const op = "OrdersService.Statistics"

	ts, err := s.history(ctx)
	if err != nil {
		return domain.Statistics{}, fmt.Errorf("%s: %w", op, err)
	}
	return domain.ComputeStatistics(ts), nil
}

func (s OrdersService) Confirm(
	ctx context.Context, transactionID int64, confirmed bool,
) error {
	const op = "OrdersService.Confirm"

	if !confirmed {
		return domain.ErrNotConfirmed
	}

	sess, err := requireSession(s.sessions)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := s.api.ConfirmTransaction(ctx, sess.Token, transactionID); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (s OrdersService) Cancel(
	ctx context.Context, transactionID int64, confirmed bool,
) error {
	const op = "OrdersService.Cancel"

	if !confirmed {
		return domain.ErrNotConfirmed
	}

	sess, err := requireSession(s.sessions)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := s.api.CancelTransaction(ctx, sess.Token, transactionID); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
