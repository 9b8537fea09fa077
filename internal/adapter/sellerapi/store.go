package sellerapi

import (
	"context"
	"fmt"
	"net/http"

	"github.com/sellerdesk/sellerdesk/internal/core/domain"
)

func (c *Client) StoreProfile(
	ctx context.Context, token string,
) (domain.StoreProfile, error) {
	const op = "sellerapi.StoreProfile"

	req, err := c.newRequest(ctx, http.MethodGet, "/store/mystore", token, nil)
	if err != nil {
		return domain.StoreProfile{}, fmt.Errorf("%s: %w", op, err)
	}

	var resp struct {
		Store storeJSON `json:"store"`
	}
	if err := c.do(req, &resp); err != nil {
		return domain.StoreProfile{}, fmt.Errorf("%s: %w", op, err)
	}
	return resp.Store.toDomain(), nil
}

// UpdateStoreProfile commits the editable fields. The store name is not
// part of the payload; it cannot change after creation.
func (c *Client) UpdateStoreProfile(
	ctx context.Context, token string, draft domain.StoreDraft,
) error {
	const op = "sellerapi.UpdateStoreProfile"

	payload := struct {
		OwnerName string `json:"owner_name"`
		Address   string `json:"address"`
	}{draft.OwnerName, draft.Address}

	req, err := c.newJSONRequest(ctx, http.MethodPut, "/store/mystore/edit", token, payload)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if err := c.do(req, nil); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
