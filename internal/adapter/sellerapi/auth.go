package sellerapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/sellerdesk/sellerdesk/internal/core/domain"
)

// Login posts the credentials and unpacks the response into a session.
// The canonical response shape is the flat {"token": ..., "store": {...}};
// the legacy nested responsData envelope the older backend emitted is
// handled by a decode fallback, not a second code path.
func (c *Client) Login(
	ctx context.Context, username, password string,
) (domain.Session, error) {
	const op = "sellerapi.Login"

	payload := struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}{username, password}

	req, err := c.newJSONRequest(ctx, http.MethodPost, "/auth/seller/login", "", payload)
	if err != nil {
		return domain.Session{}, fmt.Errorf("%s: %w", op, err)
	}

	body, err := c.doRaw(req)
	if err != nil {
		// On the login endpoint a 401 means bad credentials, not an
		// expired session.
		if IsAuthError(err) {
			return domain.Session{}, domain.ErrInvalidCredentials
		}
		return domain.Session{}, fmt.Errorf("%s: %w", op, err)
	}

	sess, err := decodeLoginResponse(body)
	if err != nil {
		return domain.Session{}, fmt.Errorf("%s: %w", op, err)
	}
	return sess, nil
}

type loginResponse struct {
	Token string    `json:"token"`
	Store storeJSON `json:"store"`
}

// legacyLoginResponse is the envelope of the previous backend revision:
// responsData.Token plus the store as the first element of a data.store
// array. Kept as a versioned compatibility decode only.
type legacyLoginResponse struct {
	ResponsData struct {
		Token string `json:"Token"`
		Data  struct {
			Store []storeJSON `json:"store"`
		} `json:"data"`
	} `json:"responsData"`
}

func decodeLoginResponse(body []byte) (domain.Session, error) {
	var canonical loginResponse
	if err := json.Unmarshal(body, &canonical); err == nil && canonical.Token != "" {
		return domain.Session{
			Token: canonical.Token,
			Store: canonical.Store.toDomain(),
		}, nil
	}

	var legacy legacyLoginResponse
	if err := json.Unmarshal(body, &legacy); err == nil &&
		legacy.ResponsData.Token != "" {
		sess := domain.Session{Token: legacy.ResponsData.Token}
		if stores := legacy.ResponsData.Data.Store; len(stores) > 0 {
			sess.Store = stores[0].toDomain()
		}
		return sess, nil
	}

	return domain.Session{}, fmt.Errorf(
		"%w: login response carries no token", domain.ErrUnexpectedResponse,
	)
}
