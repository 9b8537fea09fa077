package sessionfile_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sellerdesk/sellerdesk/internal/adapter/sessionfile"
	"github.com/sellerdesk/sellerdesk/internal/core/domain"
)

func testSession() domain.Session {
	return domain.Session{
		Token: "token-123",
		Store: domain.StoreProfile{
			StoreID:   7,
			StoreName: "Widget World",
			OwnerName: "Ayu",
			Address:   "Jl. Melati 1",
		},
	}
}

func TestSessionStore(t *testing.T) {
	newStore := func(t *testing.T) sessionfile.Store {
		t.Helper()
		return sessionfile.New(filepath.Join(t.TempDir(), "session.json"))
	}

	t.Run("AbsentByDefault", func(t *testing.T) {
		s := newStore(t)

		_, ok, err := s.Load()
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("SaveLoadRoundTrip", func(t *testing.T) {
		s := newStore(t)
		require.NoError(t, s.Save(testSession()))

		got, ok, err := s.Load()
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, testSession(), got)
	})

	t.Run("SaveOverwritesWholesale", func(t *testing.T) {
		s := newStore(t)
		require.NoError(t, s.Save(testSession()))

		next := testSession()
		next.Token = "token-456"
		next.Store.OwnerName = "Budi"
		require.NoError(t, s.Save(next))

		got, ok, err := s.Load()
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, next, got)
	})

	t.Run("RefusesEmptyToken", func(t *testing.T) {
		s := newStore(t)

		sess := testSession()
		sess.Token = ""
		require.Error(t, s.Save(sess))

		_, ok, err := s.Load()
		require.NoError(t, err)
		assert.False(t, ok, "nothing may be persisted for an invalid session")
	})

	t.Run("Clear", func(t *testing.T) {
		s := newStore(t)
		require.NoError(t, s.Save(testSession()))
		require.NoError(t, s.Clear())

		_, ok, err := s.Load()
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("ClearAbsentIsNoOp", func(t *testing.T) {
		s := newStore(t)
		require.NoError(t, s.Clear())
	})

	t.Run("CreatesParentDir", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "nested", "dir", "session.json")
		s := sessionfile.New(path)
		require.NoError(t, s.Save(testSession()))

		_, err := os.Stat(path)
		require.NoError(t, err)
	})

	t.Run("CorruptRecordIsAnError", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "session.json")
		require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

		s := sessionfile.New(path)
		_, _, err := s.Load()
		require.Error(t, err)
	})

	t.Run("TokenlessRecordIsAbsent", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "session.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"token":""}`), 0o600))

		s := sessionfile.New(path)
		_, ok, err := s.Load()
		require.NoError(t, err)
		assert.False(t, ok)
	})
}
