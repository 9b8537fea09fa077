// Package sessionfile persists the single session record as one JSON file,
// the desktop analogue of the browser's localStorage key.
package sessionfile

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/sellerdesk/sellerdesk/internal/core/domain"
	"github.com/sellerdesk/sellerdesk/internal/core/port"
)

var _ port.SessionStore = (*Store)(nil)

type sessionRecord struct {
	Token string      `json:"token"`
	Store storeRecord `json:"store"`
}

type storeRecord struct {
	ID        int64  `json:"id"`
	StoreName string `json:"store_name"`
	OwnerName string `json:"owner_name"`
	Address   string `json:"address"`
}

type Store struct {
	path string
}

func New(path string) Store {
	return Store{path: path}
}

// Save overwrites the persisted session wholesale. The write goes through
// a temp file and rename so no intermediate state is ever observable.
// Sessions without a token are refused: the record is either absent or
// holds a non-empty token.
func (s Store) Save(sess domain.Session) error {
	const op = "sessionfile.Save"

	if !sess.Valid() {
		return fmt.Errorf("%s: refusing to persist session without token", op)
	}

	rec := sessionRecord{
		Token: sess.Token,
		Store: storeRecord{
			ID:        sess.Store.StoreID,
			StoreName: sess.Store.StoreName,
			OwnerName: sess.Store.OwnerName,
			Address:   sess.Store.Address,
		},
	}
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	tmp, err := os.CreateTemp(dir, "session-*.json")
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("%s: %w", op, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%s: %w", op, err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// Load returns the persisted session, or false when none exists. A record
// that somehow lost its token is reported as absent rather than handed to
// callers as a half-valid session.
func (s Store) Load() (domain.Session, bool, error) {
	const op = "sessionfile.Load"

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return domain.Session{}, false, nil
		}
		return domain.Session{}, false, fmt.Errorf("%s: %w", op, err)
	}

	var rec sessionRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return domain.Session{}, false, fmt.Errorf("%s: %w", op, err)
	}
	if rec.Token == "" {
		slog.With("op", op).Warn("persisted session has no token, treating as absent")
		return domain.Session{}, false, nil
	}

	sess := domain.Session{
		Token: rec.Token,
		Store: domain.StoreProfile{
			StoreID:   rec.Store.ID,
			StoreName: rec.Store.StoreName,
			OwnerName: rec.Store.OwnerName,
			Address:   rec.Store.Address,
		},
	}
	return sess, true, nil
}

// Clear removes the record. A missing file is fine.
func (s Store) Clear() error {
	const op = "sessionfile.Clear"

	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
