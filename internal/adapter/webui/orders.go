package webui

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/sellerdesk/sellerdesk/internal/core/domain"
)

type ordersData struct {
	Flash   *flash
	Error   string
	Stats   domain.Statistics
	Pending []domain.Transaction
}

// ordersPage is the statistics view plus the actionable pending list,
// both derived from the transaction history.
func (h *Handler) ordersPage(w http.ResponseWriter, r *http.Request) {
	data := ordersData{Flash: popFlash(w, r)}

	stats, err := h.orders.Statistics(r.Context())
	if err != nil {
		if redirectOnAuthErr(w, r, err) {
			return
		}
		data.Error = userMessage(err)
		h.render(w, "orders.html", data)
		return
	}
	data.Stats = stats

	pending, err := h.orders.PendingOrders(r.Context())
	if err != nil {
		if redirectOnAuthErr(w, r, err) {
			return
		}
		data.Error = userMessage(err)
		h.render(w, "orders.html", data)
		return
	}
	data.Pending = pending

	h.render(w, "orders.html", data)
}

type orderActionData struct {
	Action string // "confirm" or "cancel"
	Order  domain.Transaction
}

// Confirmation interstitials. Both transitions are irreversible, so the
// POST that performs them only ever comes from these pages.

func (h *Handler) confirmOrderPage(w http.ResponseWriter, r *http.Request) {
	h.orderActionPage(w, r, "confirm")
}

func (h *Handler) cancelOrderPage(w http.ResponseWriter, r *http.Request) {
	h.orderActionPage(w, r, "cancel")
}

func (h *Handler) orderActionPage(w http.ResponseWriter, r *http.Request, action string) {
	id, err := transactionID(r)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	order, err := h.pendingOrder(r.Context(), id)
	if err != nil {
		if redirectOnAuthErr(w, r, err) {
			return
		}
		setFlash(w, "error", userMessage(err))
		http.Redirect(w, r, "/orders", http.StatusSeeOther)
		return
	}

	h.render(w, "order_action.html", orderActionData{Action: action, Order: order})
}

func (h *Handler) confirmOrder(w http.ResponseWriter, r *http.Request) {
	h.orderAction(w, r, "confirm", h.orders.Confirm)
}

func (h *Handler) cancelOrder(w http.ResponseWriter, r *http.Request) {
	h.orderAction(w, r, "cancel", h.orders.Cancel)
}

// orderAction performs a status-transition request and then always lands
// back on the refetched orders page. The interstitial closes on success
// and on failure alike; a failure is carried over as a flash message
// rather than silently discarded.
func (h *Handler) orderAction(
	w http.ResponseWriter, r *http.Request,
	action string,
	fn func(context.Context, int64, bool) error,
) {
	const op = "Handler.orderAction"
	log := slog.With("op", op, "action", action)

	id, err := transactionID(r)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	if err := r.ParseForm(); err != nil {
		setFlash(w, "error", "invalid form submission")
		http.Redirect(w, r, "/orders", http.StatusSeeOther)
		return
	}
	confirmed := r.PostFormValue("confirmed") == "yes"

	if err := fn(r.Context(), id, confirmed); err != nil {
		if redirectOnAuthErr(w, r, err) {
			return
		}
		if !errors.Is(err, domain.ErrNotConfirmed) {
			log.Warn("order action failed", "id", id, "err", err)
		}
		setFlash(w, "error", userMessage(err))
		http.Redirect(w, r, "/orders", http.StatusSeeOther)
		return
	}

	log.Info("order action done", "id", id)
	setFlash(w, "success", "Order #"+strconv.FormatInt(id, 10)+" "+pastTense(action)+".")
	http.Redirect(w, r, "/orders", http.StatusSeeOther)
}

func (h *Handler) pendingOrder(ctx context.Context, id int64) (domain.Transaction, error) {
	pending, err := h.orders.PendingOrders(ctx)
	if err != nil {
		return domain.Transaction{}, err
	}
	for _, t := range pending {
		if t.ID == id {
			return t, nil
		}
	}
	return domain.Transaction{}, &domain.ServerError{
		StatusCode: http.StatusNotFound,
		Message:    "order is no longer pending",
	}
}

func pastTense(action string) string {
	if action == "cancel" {
		return "cancelled"
	}
	return "confirmed"
}

func transactionID(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}
