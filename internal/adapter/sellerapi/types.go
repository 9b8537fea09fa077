package sellerapi

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/sellerdesk/sellerdesk/internal/core/domain"
)

// Wire types mirror the backend's JSON field names; the adapter converts
// them to and from domain values at the boundary.

type (
	storeJSON struct {
		ID        int64  `json:"id"`
		StoreName string `json:"store_name"`
		OwnerName string `json:"owner_name"`
		Address   string `json:"address"`
	}

	productJSON struct {
		ID          int64           `json:"id"`
		ProductName string          `json:"product_name"`
		Price       decimal.Decimal `json:"price"`
		Description string          `json:"description"`
		Stock       int             `json:"stock"`
		CategoryID  int64           `json:"category_id"`
		Image       string          `json:"image"`
	}

	categoryJSON struct {
		ID           int64  `json:"id"`
		CategoryName string `json:"category_name"`
	}

	transactionJSON struct {
		ID         int64             `json:"id"`
		CreatedAt  string            `json:"created_at"`
		TotalPrice decimal.Decimal   `json:"total_price"`
		Status     string            `json:"transaction_status"`
		User       buyerJSON         `json:"user"`
		Details    []orderDetailJSON `json:"details"`
	}

	buyerJSON struct {
		Username string `json:"username"`
	}

	orderDetailJSON struct {
		Quantity int             `json:"quantity"`
		Price    decimal.Decimal `json:"price"`
		Product  struct {
			ProductName string `json:"product_name"`
		} `json:"product"`
	}
)

func (p productJSON) toDomain() domain.Product {
	return domain.Product{
		ID:          p.ID,
		Name:        p.ProductName,
		Price:       p.Price,
		Description: p.Description,
		Stock:       p.Stock,
		CategoryID:  p.CategoryID,
		ImageRef:    normalizeImageRef(p.Image),
	}
}

func (s storeJSON) toDomain() domain.StoreProfile {
	return domain.StoreProfile{
		StoreID:   s.ID,
		StoreName: s.StoreName,
		OwnerName: s.OwnerName,
		Address:   s.Address,
	}
}

func (t transactionJSON) toDomain() domain.Transaction {
	tx := domain.Transaction{
		ID:         t.ID,
		Buyer:      t.User.Username,
		TotalPrice: t.TotalPrice,
		Status:     domain.TransactionStatus(t.Status),
	}
	// The backend is not strict about its timestamp format; an
	// unparseable value renders as a zero time instead of failing the
	// whole history fetch.
	if ts, err := time.Parse(time.RFC3339, t.CreatedAt); err == nil {
		tx.CreatedAt = ts
	}
	for _, d := range t.Details {
		tx.Items = append(tx.Items, domain.LineItem{
			ProductName: d.Product.ProductName,
			Quantity:    d.Quantity,
			Price:       d.Price,
		})
	}
	return tx
}

// normalizeImageRef repairs stored image paths: the backend saves them
// with OS-specific separators and a "public/" prefix that is not part of
// the public URL.
func normalizeImageRef(ref string) string {
	if ref == "" {
		return ""
	}
	ref = strings.ReplaceAll(ref, `\`, "/")
	return strings.TrimPrefix(ref, "public/")
}
