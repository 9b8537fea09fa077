package domain_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sellerdesk/sellerdesk/internal/core/domain"
)

func money(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestTransactionStatus(t *testing.T) {
	t.Run("PendingMayConfirmOrCancel", func(t *testing.T) {
		assert.True(t, domain.StatusPending.CanTransitionTo(domain.StatusSuccess))
		assert.True(t, domain.StatusPending.CanTransitionTo(domain.StatusCancelled))
	})

	t.Run("TerminalStatesNeverTransition", func(t *testing.T) {
		for _, s := range []domain.TransactionStatus{
			domain.StatusSuccess, domain.StatusCancelled,
		} {
			assert.True(t, s.Terminal())
			assert.False(t, s.CanTransitionTo(domain.StatusSuccess))
			assert.False(t, s.CanTransitionTo(domain.StatusCancelled))
			assert.False(t, s.CanTransitionTo(domain.StatusPending))
		}
	})

	t.Run("PendingIsNotTerminal", func(t *testing.T) {
		assert.False(t, domain.StatusPending.Terminal())
	})
}

func TestComputeStatistics(t *testing.T) {
	history := []domain.Transaction{
		{ID: 1, TotalPrice: money("10.00"), Status: domain.StatusSuccess},
		{ID: 2, TotalPrice: money("42.50"), Status: domain.StatusPending},
		{ID: 3, TotalPrice: money("99.99"), Status: domain.StatusCancelled},
		{ID: 4, TotalPrice: money("0.01"), Status: domain.StatusSuccess},
	}

	t.Run("RevenueSumsSuccessOnly", func(t *testing.T) {
		stats := domain.ComputeStatistics(history)
		assert.True(t, stats.TotalRevenue.Equal(money("10.01")),
			"got %s", stats.TotalRevenue)
	})

	t.Run("PendingCount", func(t *testing.T) {
		stats := domain.ComputeStatistics(history)
		assert.Equal(t, 1, stats.PendingCount)
	})

	t.Run("ConfirmedOrderMovesIntoRevenue", func(t *testing.T) {
		before := domain.ComputeStatistics(history)

		// The server moved #2 to success; the client refetched.
		refetched := make([]domain.Transaction, len(history))
		copy(refetched, history)
		refetched[1].Status = domain.StatusSuccess

		after := domain.ComputeStatistics(refetched)
		assert.True(t,
			after.TotalRevenue.Sub(before.TotalRevenue).Equal(money("42.50")),
			"revenue delta = %s", after.TotalRevenue.Sub(before.TotalRevenue))
		assert.Equal(t, 0, after.PendingCount)
	})

	t.Run("CancelledNeverCounts", func(t *testing.T) {
		stats := domain.ComputeStatistics([]domain.Transaction{
			{TotalPrice: money("99.99"), Status: domain.StatusCancelled},
		})
		assert.True(t, stats.TotalRevenue.IsZero())
	})

	t.Run("EmptyHistory", func(t *testing.T) {
		stats := domain.ComputeStatistics(nil)
		assert.True(t, stats.TotalRevenue.IsZero())
		assert.Zero(t, stats.PendingCount)
	})
}

func TestPendingOnly(t *testing.T) {
	history := []domain.Transaction{
		{ID: 1, Status: domain.StatusSuccess},
		{ID: 2, Status: domain.StatusPending},
		{ID: 3, Status: domain.StatusCancelled},
		{ID: 4, Status: domain.StatusPending},
	}

	pending := domain.PendingOnly(history)
	require.Len(t, pending, 2)
	assert.Equal(t, int64(2), pending[0].ID)
	assert.Equal(t, int64(4), pending[1].ID)
}
