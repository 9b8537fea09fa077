package port

import (
	"context"

	"github.com/sellerdesk/sellerdesk/internal/core/domain"
)

// SessionStore owns the single persisted session record. All operations
// are synchronous; the record is read-modify-written within one request
// handler, never concurrently.
type SessionStore interface {
	// Save persists the full session, overwriting any prior value.
	Save(domain.Session) error
	// Load returns the session, or false when none is persisted.
	// Absence is a valid state, not an error.
	Load() (domain.Session, bool, error)
	// Clear removes the record. Clearing an absent record is a no-op.
	Clear() error
}

// SellerAPI is the outbound contract against the remote seller REST API.
// Every call takes the bearer token explicitly; the adapter attaches it
// and maps transport failures onto the domain error taxonomy.
type SellerAPI interface {
	Login(ctx context.Context, username, password string) (domain.Session, error)

	StoreProfile(ctx context.Context, token string) (domain.StoreProfile, error)
	UpdateStoreProfile(ctx context.Context, token string, draft domain.StoreDraft) error

	Products(ctx context.Context, token string, storeID int64) ([]domain.Product, error)
	Categories(ctx context.Context, token string) ([]domain.Category, error)
	AddProduct(ctx context.Context, token string, storeID int64, form domain.ProductForm) error
	UpdateProduct(ctx context.Context, token string, storeID, productID int64, form domain.ProductForm) error
	DeleteProduct(ctx context.Context, token string, productID int64) error

	TransactionHistory(ctx context.Context, token string) ([]domain.Transaction, error)
	ConfirmTransaction(ctx context.Context, token string, transactionID int64) error
	CancelTransaction(ctx context.Context, token string, transactionID int64) error
}

// Inbound ports consumed by the web shell.

type Authenticator interface {
	SignIn(ctx context.Context, username, password string) (domain.StoreProfile, error)
	SignOut(ctx context.Context) error
	Session() (domain.Session, bool, error)
}

type StoreProfiler interface {
	Profile(ctx context.Context) (domain.StoreProfile, error)
	UpdateProfile(ctx context.Context, draft domain.StoreDraft) (domain.StoreProfile, error)
}

type Cataloger interface {
	Products(ctx context.Context) ([]domain.Product, error)
	Product(ctx context.Context, productID int64) (domain.Product, error)
	Categories(ctx context.Context) ([]domain.Category, error)
	AddProduct(ctx context.Context, form domain.ProductForm) error
	UpdateProduct(ctx context.Context, productID int64, form domain.ProductForm) error
	DeleteProduct(ctx context.Context, productID int64, confirmed bool) error
}

type OrdersDesk interface {
	PendingOrders(ctx context.Context) ([]domain.Transaction, error)
	Statistics(ctx context.Context) (domain.Statistics, error)
	Confirm(ctx context.Context, transactionID int64, confirmed bool) error
	Cancel(ctx context.Context, transactionID int64, confirmed bool) error
}
