package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionStatus is server-authoritative; the client only requests
// transitions and reconciles by refetching the history.
type TransactionStatus string

const (
	StatusPending   TransactionStatus = "pending"
	StatusSuccess   TransactionStatus = "success"
	StatusCancelled TransactionStatus = "cancelled"
)

// Terminal reports whether no further transition is possible.
func (s TransactionStatus) Terminal() bool {
	return s == StatusSuccess || s == StatusCancelled
}

// CanTransitionTo reports whether the seller may request the transition.
// Only pending orders move: confirm makes them success, cancel-by-seller
// makes them cancelled.
func (s TransactionStatus) CanTransitionTo(next TransactionStatus) bool {
	return s == StatusPending && (next == StatusSuccess || next == StatusCancelled)
}

type (
	LineItem struct {
		ProductName string
		Quantity    int
		Price       decimal.Decimal
	}

	Transaction struct {
		ID         int64
		Buyer      string
		CreatedAt  time.Time
		Items      []LineItem
		TotalPrice decimal.Decimal
		Status     TransactionStatus
	}
)

// Statistics is derived client-side from the full transaction history;
// there is no dedicated aggregation endpoint.
type Statistics struct {
	TotalRevenue decimal.Decimal
	PendingCount int
}

// PendingOnly filters the history down to the actionable orders.
func PendingOnly(ts []Transaction) []Transaction {
	var out []Transaction
	for _, t := range ts {
		if t.Status == StatusPending {
			out = append(out, t)
		}
	}
	return out
}

// ComputeStatistics sums TotalPrice over successful transactions and
// counts the pending ones. Cancelled transactions never contribute to
// revenue.
func ComputeStatistics(ts []Transaction) Statistics {
	s := Statistics{TotalRevenue: decimal.Zero}
	for _, t := range ts {
		switch t.Status {
		case StatusSuccess:
			s.TotalRevenue = s.TotalRevenue.Add(t.TotalPrice)
		case StatusPending:
			s.PendingCount++
		}
	}
	return s
}
