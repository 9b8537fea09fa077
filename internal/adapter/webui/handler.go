// Package webui is the dashboard shell: a chi router and server-rendered
// pages for sign-in, the store profile, the product catalog and the
// orders/statistics view. Which panel is reachable depends solely on
// session presence; every data call runs on the request context, so an
// abandoned page tears down its in-flight API calls.
package webui

import (
	"errors"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/sellerdesk/sellerdesk/internal/core/domain"
	"github.com/sellerdesk/sellerdesk/internal/core/port"
)

type Handler struct {
	auth    port.Authenticator
	store   port.StoreProfiler
	catalog port.Cataloger
	orders  port.OrdersDesk
	// assetBase is the remote server's base URL; product image paths
	// are relative to it.
	assetBase string
	tmpl      *template.Template
}

func NewHandler(
	auth port.Authenticator,
	store port.StoreProfiler,
	catalog port.Cataloger,
	orders port.OrdersDesk,
	assetBase string,
) (*Handler, error) {
	tmpl, err := parseTemplates()
	if err != nil {
		return nil, err
	}
	return &Handler{
		auth:      auth,
		store:     store,
		catalog:   catalog,
		orders:    orders,
		assetBase: assetBase,
		tmpl:      tmpl,
	}, nil
}

// NewRouter builds the shell's routing table.
func NewRouter(h *Handler) *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Recoverer)

	r.Get("/signin", h.signInPage)
	r.Post("/signin", h.signIn)
	r.Post("/signout", h.signOut)

	r.Group(func(r chi.Router) {
		r.Use(h.requireSession)

		r.Get("/", h.home)
		r.Post("/store", h.updateStore)

		r.Get("/products", h.productsPage)
		r.Post("/products", h.addProduct)
		r.Post("/products/{id}", h.updateProduct)
		r.Get("/products/{id}/delete", h.deleteProductPage)
		r.Post("/products/{id}/delete", h.deleteProduct)

		r.Get("/orders", h.ordersPage)
		r.Get("/orders/{id}/confirm", h.confirmOrderPage)
		r.Post("/orders/{id}/confirm", h.confirmOrder)
		r.Get("/orders/{id}/cancel", h.cancelOrderPage)
		r.Post("/orders/{id}/cancel", h.cancelOrder)
	})

	return r
}

// requireSession gates the authenticated pages. Absence of a session is
// an explicit redirect to sign-in, never a silently empty panel.
func (h *Handler) requireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, ok, err := h.auth.Session()
		if err != nil {
			slog.Error("failed to read session", "err", err)
			http.Error(w, "session storage unavailable", http.StatusInternalServerError)
			return
		}
		if !ok {
			http.Redirect(w, r, "/signin", http.StatusSeeOther)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// redirectOnAuthErr sends the user back to sign-in when a data call
// reports an expired session. Returns true when it handled the error.
func redirectOnAuthErr(w http.ResponseWriter, r *http.Request, err error) bool {
	if errors.Is(err, domain.ErrNotAuthenticated) {
		http.Redirect(w, r, "/signin", http.StatusSeeOther)
		return true
	}
	return false
}

type signInData struct {
	Flash *flash
	Error string
}

func (h *Handler) signInPage(w http.ResponseWriter, r *http.Request) {
	if _, ok, _ := h.auth.Session(); ok {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	h.render(w, "signin.html", signInData{Flash: popFlash(w, r)})
}

func (h *Handler) signIn(w http.ResponseWriter, r *http.Request) {
	const op = "Handler.signIn"
	log := slog.With("op", op)

	if err := r.ParseForm(); err != nil {
		h.render(w, "signin.html", signInData{Error: "invalid form submission"})
		return
	}

	username := r.PostFormValue("username")
	password := r.PostFormValue("password")

	profile, err := h.auth.SignIn(r.Context(), username, password)
	if err != nil {
		log.Warn("sign-in failed", "err", err)
		h.render(w, "signin.html", signInData{Error: userMessage(err)})
		return
	}

	log.Info("signed in", "store", profile.StoreName)
	setFlash(w, "success", "Welcome back, "+profile.StoreName+".")
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *Handler) signOut(w http.ResponseWriter, r *http.Request) {
	const op = "Handler.signOut"

	if err := h.auth.SignOut(r.Context()); err != nil {
		slog.With("op", op).Error("sign-out failed", "err", err)
	}
	http.Redirect(w, r, "/signin", http.StatusSeeOther)
}

type homeData struct {
	Flash   *flash
	Error   string
	Profile domain.StoreProfile
}

// home is the store-profile panel: the committed profile plus the edit
// form for the two mutable fields.
func (h *Handler) home(w http.ResponseWriter, r *http.Request) {
	data := homeData{Flash: popFlash(w, r)}

	profile, err := h.store.Profile(r.Context())
	if err != nil {
		if redirectOnAuthErr(w, r, err) {
			return
		}
		data.Error = userMessage(err)
		h.render(w, "home.html", data)
		return
	}

	data.Profile = profile
	h.render(w, "home.html", data)
}

// updateStore commits the profile draft. Success and failure both land
// back on the profile page, which refetches the committed values; a
// failed save therefore reverts the form to the last committed state.
func (h *Handler) updateStore(w http.ResponseWriter, r *http.Request) {
	const op = "Handler.updateStore"
	log := slog.With("op", op)

	if err := r.ParseForm(); err != nil {
		setFlash(w, "error", "invalid form submission")
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	draft := domain.StoreDraft{
		OwnerName: r.PostFormValue("owner_name"),
		Address:   r.PostFormValue("address"),
	}

	if _, err := h.store.UpdateProfile(r.Context(), draft); err != nil {
		if redirectOnAuthErr(w, r, err) {
			return
		}
		log.Warn("profile update failed", "err", err)
		setFlash(w, "error", userMessage(err))
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	setFlash(w, "success", "Store profile saved.")
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
