package pgdb

import (
	"context"
	"errors"

	"github.com/DRSN-tech/pricing-backend/pkg/tr"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// querierIface — общий набор операций pgx.Tx и pgxpool.Pool.
type querierIface interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// querier возвращает транзакцию из контекста, если она есть, иначе пул.
func querier(ctx context.Context, pool *pgxpool.Pool) querierIface {
	if tx, err := tr.TxFromCtx(ctx); err == nil {
		return tx
	}
	return pool
}

// postgresDuplicate определяет нарушение уникального ограничения.
func postgresDuplicate(err error) bool {
	const uniqueViolation = "23505"

	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}
