package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
)

// StateStore is a small named-integer key/value table used for process
// state such as the sweeper cursor.
type StateStore struct {
	db *sqlx.DB
}

func NewStateStore(db *sqlx.DB) *StateStore {
	return &StateStore{db: db}
}

// GetInt returns the stored value for key, or 0 when the key has never
// been set.
func (s *StateStore) GetInt(ctx context.Context, key string) (int64, error) {
	var value int64
	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &value,
		"SELECT value FROM tracker_state WHERE name = $1", key)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return value, nil
}

func (s *StateStore) SetInt(ctx context.Context, key string, value int64) error {
	query := `
		INSERT INTO tracker_state (name, value)
		VALUES ($1, $2)
		ON CONFLICT (name) DO UPDATE SET value = EXCLUDED.value`

	_, err := GetExecutor(ctx, s.db).ExecContext(ctx, query, key, value)
	return err
}
