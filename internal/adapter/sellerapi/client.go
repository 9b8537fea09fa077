// Package sellerapi is the HTTP client for the remote seller REST API.
// It owns the wire contract: bearer auth, the observed JSON envelopes and
// the mapping from transport failures onto the domain error taxonomy.
package sellerapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/sellerdesk/sellerdesk/internal/core/domain"
	"github.com/sellerdesk/sellerdesk/internal/core/port"
)

var _ port.SellerAPI = (*Client)(nil)

type Client struct {
	baseURL string
	http    *http.Client
}

// New builds a client for the given base URL. The timeout bounds every
// request; a hung call must not hang a panel forever.
func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

func (c *Client) newRequest(
	ctx context.Context, method, path, token string, body io.Reader,
) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("X-Request-Id", uuid.NewString())
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req, nil
}

func (c *Client) newJSONRequest(
	ctx context.Context, method, path, token string, payload any,
) (*http.Request, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	req, err := c.newRequest(ctx, method, path, token, bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	return req, nil
}

// do executes the request and decodes a 2xx body into out (which may be
// nil). Failures map onto the domain taxonomy: no HTTP response at all
// becomes ErrNoServerResponse, 401 becomes ErrNotAuthenticated, any other
// non-2xx surfaces the server's message, and an undecodable 2xx body
// becomes ErrUnexpectedResponse.
func (c *Client) do(req *http.Request, out any) error {
	body, err := c.doRaw(req)
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrUnexpectedResponse, err)
	}
	return nil
}

func (c *Client) doRaw(req *http.Request) ([]byte, error) {
	const op = "sellerapi.do"
	log := slog.With("op", op, "method", req.Method, "url", req.URL.Path)

	resp, err := c.http.Do(req)
	if err != nil {
		if ctxErr := req.Context().Err(); ctxErr != nil {
			// The originating panel is gone or timed out; keep the
			// context error visible for errors.Is checks.
			return nil, fmt.Errorf("%w: %w", domain.ErrNoServerResponse, ctxErr)
		}
		log.Warn("request failed", "err", err)
		return nil, fmt.Errorf("%w: %v", domain.ErrNoServerResponse, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUnexpectedResponse, err)
	}

	if resp.StatusCode == http.StatusUnauthorized {
		return nil, domain.ErrNotAuthenticated
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Warn("server error", "status", resp.StatusCode)
		return nil, &domain.ServerError{
			StatusCode: resp.StatusCode,
			Message:    serverMessage(body),
		}
	}
	return body, nil
}

// serverMessage pulls the human-readable message out of an error body.
// The backend is inconsistent about casing ("message" vs "Message");
// encoding/json matches field names case-insensitively, which covers both.
func serverMessage(body []byte) string {
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}
	return payload.Message
}

// IsAuthError reports whether err means the user must sign in again.
func IsAuthError(err error) bool {
	return errors.Is(err, domain.ErrNotAuthenticated)
}
