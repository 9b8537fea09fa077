package sellerapi

import (
	"context"
	"fmt"
	"net/http"

	"github.com/sellerdesk/sellerdesk/internal/core/domain"
)

func (c *Client) TransactionHistory(
	ctx context.Context, token string,
) ([]domain.Transaction, error) {
	const op = "sellerapi.TransactionHistory"

	req, err := c.newRequest(ctx, http.MethodGet, "/transaction/history", token, nil)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var resp struct {
		Transaction []transactionJSON `json:"Transaction"`
	}
	if err := c.do(req, &resp); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	ts := make([]domain.Transaction, 0, len(resp.Transaction))
	for _, t := range resp.Transaction {
		ts = append(ts, t.toDomain())
	}
	return ts, nil
}

func (c *Client) ConfirmTransaction(
	ctx context.Context, token string, transactionID int64,
) error {
	const op = "sellerapi.ConfirmTransaction"
	return c.transition(ctx, op, "/transaction/confirm", token, transactionID)
}

func (c *Client) CancelTransaction(
	ctx context.Context, token string, transactionID int64,
) error {
	const op = "sellerapi.CancelTransaction"
	return c.transition(ctx, op, "/transaction/cancel-by-seller", token, transactionID)
}

// transition posts a status-change request. The two actions differ only
// in endpoint; both are irreversible on the server side.
func (c *Client) transition(
	ctx context.Context, op, path, token string, transactionID int64,
) error {
	payload := struct {
		TransactionID int64 `json:"transaction_id"`
	}{transactionID}

	req, err := c.newJSONRequest(ctx, http.MethodPost, path, token, payload)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if err := c.do(req, nil); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
