package webui

import (
	"embed"
	"errors"
	"html/template"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/shopspring/decimal"

	"github.com/sellerdesk/sellerdesk/internal/core/domain"
)

//go:embed templates/*.html
var templateFS embed.FS

func parseTemplates() (*template.Template, error) {
	funcs := template.FuncMap{
		"usd": func(d decimal.Decimal) string {
			return "$" + d.StringFixed(2)
		},
	}
	return template.New("").Funcs(funcs).ParseFS(templateFS, "templates/*.html")
}

func (h *Handler) render(w http.ResponseWriter, name string, data any) {
	const op = "webui.render"

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.tmpl.ExecuteTemplate(w, name, data); err != nil {
		slog.With("op", op, "template", name).Error("render failed", "err", err)
	}
}

// Flash messages carry one success or error note across the
// POST-redirect-GET hop, the shell's stand-in for the SPA's inline
// banners. One cookie, consumed on the next page render.

const flashCookie = "sellerdesk_flash"

type flash struct {
	Kind string // "success" or "error"
	Text string
}

func setFlash(w http.ResponseWriter, kind, text string) {
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookie,
		Value:    url.QueryEscape(kind + "|" + text),
		Path:     "/",
		HttpOnly: true,
	})
}

func popFlash(w http.ResponseWriter, r *http.Request) *flash {
	c, err := r.Cookie(flashCookie)
	if err != nil {
		return nil
	}
	http.SetCookie(w, &http.Cookie{
		Name: flashCookie, Value: "", Path: "/", MaxAge: -1, HttpOnly: true,
	})

	raw, err := url.QueryUnescape(c.Value)
	if err != nil {
		return nil
	}
	for i := 0; i < len(raw); i++ {
		if raw[i] == '|' {
			return &flash{Kind: raw[:i], Text: raw[i+1:]}
		}
	}
	return nil
}

// userMessage maps the domain error taxonomy onto the inline message the
// user sees. Nothing here is retried or logged durably; the user may
// simply try the action again.
func userMessage(err error) string {
	var (
		validationErr *domain.ValidationError
		serverErr     *domain.ServerError
	)
	switch {
	case errors.As(err, &validationErr):
		return validationErr.Error()
	case errors.Is(err, domain.ErrInvalidCredentials):
		return "Invalid username or password."
	case errors.Is(err, domain.ErrNotAuthenticated):
		return "Your session has expired. Please sign in again."
	case errors.Is(err, domain.ErrNoServerResponse):
		return "No server response. Check your network connection."
	case errors.Is(err, domain.ErrNotConfirmed):
		return "The action was not confirmed, nothing was changed."
	case errors.As(err, &serverErr):
		if serverErr.Message != "" {
			return serverErr.Message
		}
		return "The server rejected the request. Please try again."
	case errors.Is(err, domain.ErrUnexpectedResponse):
		return "The server sent an unexpected response."
	default:
		return "Something went wrong. Please try again."
	}
}
