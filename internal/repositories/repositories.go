package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/course-platform/internal/logger"
)

// PostgreSQL error codes translated by this package.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

var (
	// ErrUniqueViolation is returned when an insert hits a UNIQUE constraint.
	ErrUniqueViolation = errors.New("unique constraint violation")
	// ErrForeignKeyViolation is returned when an insert references a missing row.
	ErrForeignKeyViolation = errors.New("foreign key violation")
)

// TxGetter returns the transaction bound to ctx, or nil.
type TxGetter func(ctx context.Context) *sqlx.Tx

// executor picks the request transaction when one is present.
func executor(ctx context.Context, db *sqlx.DB, txGetter TxGetter) sqlx.ExtContext {
	if txGetter != nil {
		if tx := txGetter(ctx); tx != nil {
			return tx
		}
	}
	return db
}

// translateError maps driver errors onto the package sentinels.
func translateError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return errors.Join(ErrUniqueViolation, err)
		case pgForeignKeyViolation:
			return errors.Join(ErrForeignKeyViolation, err)
		}
	}
	return err
}

// logQuery logs query in single line along with its args, result and error.
func logQuery(query string, args []any, result any, err error) {
	if errors.Is(err, sql.ErrNoRows) {
		err = nil
	}
	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", result,
		"error", err,
	)
}
