package service_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/sellerdesk/sellerdesk/internal/core/domain"
	"github.com/sellerdesk/sellerdesk/internal/core/service"
)

type MockSellerAPI struct {
	mock.Mock
}

func (m *MockSellerAPI) Login(
	ctx context.Context, username, password string,
) (domain.Session, error) {
	args := m.Called(ctx, username, password)
	return args.Get(0).(domain.Session), args.Error(1)
}

func (m *MockSellerAPI) StoreProfile(
	ctx context.Context, token string,
) (domain.StoreProfile, error) {
	args := m.Called(ctx, token)
	return args.Get(0).(domain.StoreProfile), args.Error(1)
}

func (m *MockSellerAPI) UpdateStoreProfile(
	ctx context.Context, token string, draft domain.StoreDraft,
) error {
	return m.Called(ctx, token, draft).Error(0)
}

func (m *MockSellerAPI) Products(
	ctx context.Context, token string, storeID int64,
) ([]domain.Product, error) {
	args := m.Called(ctx, token, storeID)
	return args.Get(0).([]domain.Product), args.Error(1)
}

func (m *MockSellerAPI) Categories(
	ctx context.Context, token string,
) ([]domain.Category, error) {
	args := m.Called(ctx, token)
	return args.Get(0).([]domain.Category), args.Error(1)
}

func (m *MockSellerAPI) AddProduct(
	ctx context.Context, token string, storeID int64, form domain.ProductForm,
) error {
	return m.Called(ctx, token, storeID, form).Error(0)
}

func (m *MockSellerAPI) UpdateProduct(
	ctx context.Context, token string, storeID, productID int64, form domain.ProductForm,
) error {
	return m.Called(ctx, token, storeID, productID, form).Error(0)
}

func (m *MockSellerAPI) DeleteProduct(
	ctx context.Context, token string, productID int64,
) error {
	return m.Called(ctx, token, productID).Error(0)
}

func (m *MockSellerAPI) TransactionHistory(
	ctx context.Context, token string,
) ([]domain.Transaction, error) {
	args := m.Called(ctx, token)
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockSellerAPI) ConfirmTransaction(
	ctx context.Context, token string, transactionID int64,
) error {
	return m.Called(ctx, token, transactionID).Error(0)
}

func (m *MockSellerAPI) CancelTransaction(
	ctx context.Context, token string, transactionID int64,
) error {
	return m.Called(ctx, token, transactionID).Error(0)
}

type MockSessionStore struct {
	mock.Mock
}

func (m *MockSessionStore) Save(sess domain.Session) error {
	return m.Called(sess).Error(0)
}

func (m *MockSessionStore) Load() (domain.Session, bool, error) {
	args := m.Called()
	return args.Get(0).(domain.Session), args.Bool(1), args.Error(2)
}

func (m *MockSessionStore) Clear() error {
	return m.Called().Error(0)
}

func testSession() domain.Session {
	return domain.Session{
		Token: "tok-1",
		Store: domain.StoreProfile{
			StoreID: 7, StoreName: "Widget World",
			OwnerName: "Ayu", Address: "Jl. Melati 1",
		},
	}
}

func loadedSessions(t *testing.T) *MockSessionStore {
	t.Helper()
	sessions := new(MockSessionStore)
	sessions.On("Load").Return(testSession(), true, nil)
	return sessions
}

func emptySessions(t *testing.T) *MockSessionStore {
	t.Helper()
	sessions := new(MockSessionStore)
	sessions.On("Load").Return(domain.Session{}, false, nil)
	return sessions
}

func money(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestAuthService(t *testing.T) {
	t.Run("SignInPersistsSession", func(t *testing.T) {
		api := new(MockSellerAPI)
		sessions := new(MockSessionStore)
		api.On("Login", context.Background(), "seller", "hunter2").Return(testSession(), nil)
		sessions.On("Save", testSession()).Return(nil)

		auth := service.NewAuth(api, sessions)
		profile, err := auth.SignIn(context.Background(), "seller", "hunter2")
		require.NoError(t, err)
		assert.Equal(t, "Widget World", profile.StoreName)
		sessions.AssertCalled(t, "Save", testSession())
	})

	t.Run("EmptyUsernameNeverHitsNetwork", func(t *testing.T) {
		api := new(MockSellerAPI)
		auth := service.NewAuth(api, new(MockSessionStore))

		_, err := auth.SignIn(context.Background(), "   ", "hunter2")
		assert.ErrorIs(t, err, domain.ErrValidation)
		api.AssertNotCalled(t, "Login")
	})

	t.Run("EmptyPasswordNeverHitsNetwork", func(t *testing.T) {
		api := new(MockSellerAPI)
		auth := service.NewAuth(api, new(MockSessionStore))

		_, err := auth.SignIn(context.Background(), "seller", "")
		assert.ErrorIs(t, err, domain.ErrValidation)
		api.AssertNotCalled(t, "Login")
	})

	t.Run("FailedLoginWritesNoSession", func(t *testing.T) {
		api := new(MockSellerAPI)
		sessions := new(MockSessionStore)
		api.On("Login", context.Background(), "seller", "nope").
			Return(domain.Session{}, domain.ErrInvalidCredentials)

		auth := service.NewAuth(api, sessions)
		_, err := auth.SignIn(context.Background(), "seller", "nope")
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
		sessions.AssertNotCalled(t, "Save")
	})

	t.Run("SignOutClears", func(t *testing.T) {
		sessions := new(MockSessionStore)
		sessions.On("Clear").Return(nil)

		auth := service.NewAuth(new(MockSellerAPI), sessions)
		require.NoError(t, auth.SignOut(context.Background()))
		sessions.AssertCalled(t, "Clear")
	})
}

func TestStoreService(t *testing.T) {
	draft := domain.StoreDraft{OwnerName: "Budi", Address: "Jl. Anggrek 2"}

	t.Run("UpdateRefreshesSessionSnapshot", func(t *testing.T) {
		committed := testSession().Store
		committed.OwnerName = draft.OwnerName
		committed.Address = draft.Address

		api := new(MockSellerAPI)
		sessions := loadedSessions(t)
		api.On("UpdateStoreProfile", context.Background(), "tok-1", draft).Return(nil)
		api.On("StoreProfile", context.Background(), "tok-1").Return(committed, nil)

		refreshed := testSession()
		refreshed.Store = committed
		sessions.On("Save", refreshed).Return(nil)

		store := service.NewStore(api, sessions)
		profile, err := store.UpdateProfile(context.Background(), draft)
		require.NoError(t, err)
		assert.Equal(t, "Budi", profile.OwnerName)
		sessions.AssertCalled(t, "Save", refreshed)
	})

	t.Run("FailedUpdateLeavesSessionUntouched", func(t *testing.T) {
		api := new(MockSellerAPI)
		sessions := loadedSessions(t)
		api.On("UpdateStoreProfile", context.Background(), "tok-1", draft).
			Return(&domain.ServerError{StatusCode: 500, Message: "boom"})

		store := service.NewStore(api, sessions)
		_, err := store.UpdateProfile(context.Background(), draft)
		require.Error(t, err)
		sessions.AssertNotCalled(t, "Save")
	})

	t.Run("EmptyDraftFieldsRejected", func(t *testing.T) {
		api := new(MockSellerAPI)
		store := service.NewStore(api, loadedSessions(t))

		_, err := store.UpdateProfile(context.Background(), domain.StoreDraft{OwnerName: "Budi"})
		assert.ErrorIs(t, err, domain.ErrValidation)
		api.AssertNotCalled(t, "UpdateStoreProfile")
	})

	t.Run("NoSessionSignalsReauthenticate", func(t *testing.T) {
		store := service.NewStore(new(MockSellerAPI), emptySessions(t))

		_, err := store.Profile(context.Background())
		assert.ErrorIs(t, err, domain.ErrNotAuthenticated)
	})
}

func TestCatalogService(t *testing.T) {
	t.Run("ProductsUsesSessionStoreID", func(t *testing.T) {
		api := new(MockSellerAPI)
		api.On("Products", context.Background(), "tok-1", int64(7)).
			Return([]domain.Product{{ID: 1, Name: "Widget"}}, nil)

		catalog := service.NewCatalog(api, loadedSessions(t))
		ps, err := catalog.Products(context.Background())
		require.NoError(t, err)
		require.Len(t, ps, 1)
		assert.Equal(t, "Widget", ps[0].Name)
	})

	t.Run("NoSessionSignalsReauthenticate", func(t *testing.T) {
		api := new(MockSellerAPI)
		catalog := service.NewCatalog(api, emptySessions(t))

		_, err := catalog.Products(context.Background())
		assert.ErrorIs(t, err, domain.ErrNotAuthenticated)
		api.AssertNotCalled(t, "Products")
	})

	t.Run("InvalidFormNeverHitsNetwork", func(t *testing.T) {
		api := new(MockSellerAPI)
		catalog := service.NewCatalog(api, loadedSessions(t))

		err := catalog.AddProduct(context.Background(), domain.ProductForm{Name: "Widget"})
		assert.ErrorIs(t, err, domain.ErrValidation)
		api.AssertNotCalled(t, "AddProduct")
	})

	t.Run("DeleteWithoutConfirmationSendsNothing", func(t *testing.T) {
		api := new(MockSellerAPI)
		catalog := service.NewCatalog(api, loadedSessions(t))

		err := catalog.DeleteProduct(context.Background(), 42, false)
		assert.ErrorIs(t, err, domain.ErrNotConfirmed)
		api.AssertNotCalled(t, "DeleteProduct")
	})

	t.Run("ConfirmedDelete", func(t *testing.T) {
		api := new(MockSellerAPI)
		api.On("DeleteProduct", context.Background(), "tok-1", int64(42)).Return(nil)

		catalog := service.NewCatalog(api, loadedSessions(t))
		require.NoError(t, catalog.DeleteProduct(context.Background(), 42, true))
		api.AssertCalled(t, "DeleteProduct", context.Background(), "tok-1", int64(42))
	})

	t.Run("ProductFindsListing", func(t *testing.T) {
		api := new(MockSellerAPI)
		api.On("Products", context.Background(), "tok-1", int64(7)).
			Return([]domain.Product{{ID: 1}, {ID: 2, Name: "Widget"}}, nil)

		catalog := service.NewCatalog(api, loadedSessions(t))
		p, err := catalog.Product(context.Background(), 2)
		require.NoError(t, err)
		assert.Equal(t, "Widget", p.Name)

		_, err = catalog.Product(context.Background(), 99)
		require.Error(t, err)
	})
}

func TestOrdersService(t *testing.T) {
	history := []domain.Transaction{
		{ID: 1, TotalPrice: money("10.00"), Status: domain.StatusSuccess},
		{ID: 2, TotalPrice: money("42.50"), Status: domain.StatusPending},
		{ID: 3, TotalPrice: money("5.00"), Status: domain.StatusCancelled},
	}

	t.Run("PendingOrdersFiltersHistory", func(t *testing.T) {
		api := new(MockSellerAPI)
		api.On("TransactionHistory", context.Background(), "tok-1").Return(history, nil)

		orders := service.NewOrders(api, loadedSessions(t))
		pending, err := orders.PendingOrders(context.Background())
		require.NoError(t, err)
		require.Len(t, pending, 1)
		assert.Equal(t, int64(2), pending[0].ID)
	})

	t.Run("StatisticsFromSameHistoryFetch", func(t *testing.T) {
		api := new(MockSellerAPI)
		api.On("TransactionHistory", context.Background(), "tok-1").Return(history, nil)

		orders := service.NewOrders(api, loadedSessions(t))
		stats, err := orders.Statistics(context.Background())
		require.NoError(t, err)
		assert.True(t, stats.TotalRevenue.Equal(money("10.00")))
		assert.Equal(t, 1, stats.PendingCount)
	})

	t.Run("UnconfirmedActionsSendNothing", func(t *testing.T) {
		api := new(MockSellerAPI)
		orders := service.NewOrders(api, loadedSessions(t))

		assert.ErrorIs(t, orders.Confirm(context.Background(), 2, false), domain.ErrNotConfirmed)
		assert.ErrorIs(t, orders.Cancel(context.Background(), 2, false), domain.ErrNotConfirmed)
		api.AssertNotCalled(t, "ConfirmTransaction")
		api.AssertNotCalled(t, "CancelTransaction")
	})

	t.Run("ConfirmedActions", func(t *testing.T) {
		api := new(MockSellerAPI)
		api.On("ConfirmTransaction", context.Background(), "tok-1", int64(2)).Return(nil)
		api.On("CancelTransaction", context.Background(), "tok-1", int64(2)).Return(nil)

		orders := service.NewOrders(api, loadedSessions(t))
		require.NoError(t, orders.Confirm(context.Background(), 2, true))
		require.NoError(t, orders.Cancel(context.Background(), 2, true))
	})

	t.Run("NoSessionSignalsReauthenticate", func(t *testing.T) {
		orders := service.NewOrders(new(MockSellerAPI), emptySessions(t))

		_, err := orders.PendingOrders(context.Background())
		assert.ErrorIs(t, err, domain.ErrNotAuthenticated)
	})
}
