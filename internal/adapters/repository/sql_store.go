package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/comitanigiacomo/habitpal/internal/core/domain"
)

var _ domain.KVStore = (*SQLStore)(nil)

const kvSchema = `
	CREATE TABLE IF NOT EXISTS kv_store (
		kv_key     TEXT PRIMARY KEY,
		kv_value   TEXT NOT NULL,
		updated_at TIMESTAMP NOT NULL
	)`

// SQLStore keeps every key as one row of kv_store. It works on any sqlx
// driver whose dialect supports INSERT ... ON CONFLICT.
type SQLStore struct {
	db *sqlx.DB
	// mapErr translates driver-specific errors; may be nil.
	mapErr func(error) error
}

func NewSQLStore(db *sqlx.DB) *SQLStore {
	return &SQLStore{db: db}
}

// Migrate creates the kv_store table if needed.
func (s *SQLStore) Migrate(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, kvSchema); err != nil {
		return fmt.Errorf("migrate kv_store: %w", s.translate(err))
	}
	return nil
}

func (s *SQLStore) Get(ctx context.Context, key string) (string, error) {
	var value string
	query := s.db.Rebind(`SELECT kv_value FROM kv_store WHERE kv_key = ?`)

	err := s.db.GetContext(ctx, &value, query, key)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", domain.ErrKeyNotFound
		}
		return "", s.translate(err)
	}
	return value, nil
}

func (s *SQLStore) Set(ctx context.Context, key string, value string) error {
	query := s.db.Rebind(`
		INSERT INTO kv_store (kv_key, kv_value, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT (kv_key) DO UPDATE
		SET kv_value = excluded.kv_value,
		    updated_at = excluded.updated_at`)

	if _, err := s.db.ExecContext(ctx, query, key, value, time.Now().UTC()); err != nil {
		return s.translate(err)
	}
	return nil
}

func (s *SQLStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *SQLStore) Close() error {
	return s.db.Close()
}

func (s *SQLStore) translate(err error) error {
	if s.mapErr == nil {
		return err
	}
	return s.mapErr(err)
}
