package repository

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	_ "github.com/jackc/pgx/v5/stdlib"
)

const (
	pgUndefinedTable            = "42P01"
	pgInsufficientPriv          = "42501"
	pgConnectionFailure         = "08006"
	pgStringDataRightTruncation = "22001"
)

// NewPostgresStore wraps an open PostgreSQL handle. The handle may come from
// either the pgx stdlib driver or lib/pq. Call Migrate before first use.
func NewPostgresStore(db *sqlx.DB) *SQLStore {
	return &SQLStore{db: db, mapErr: mapPostgresError}
}

func mapPostgresError(err error) error {
	code := ""
	msg := ""

	var pgErr *pgconn.PgError
	var pqErr *pq.Error
	switch {
	case errors.As(err, &pgErr):
		code, msg = pgErr.Code, pgErr.Message
	case errors.As(err, &pqErr):
		code, msg = string(pqErr.Code), pqErr.Message
	default:
		return err
	}

	switch code {
	case pgUndefinedTable:
		return fmt.Errorf("kv_store table missing, run migrations: %s: %w", msg, err)
	case pgInsufficientPriv:
		return fmt.Errorf("insufficient privileges on kv_store: %s: %w", msg, err)
	case pgConnectionFailure:
		return fmt.Errorf("postgres connection failure: %s: %w", msg, err)
	case pgStringDataRightTruncation:
		return fmt.Errorf("value too long for kv_store: %s: %w", msg, err)
	default:
		return err
	}
}
