package postgres

import (
	"context"
	"database/sql"
)

type Tx interface {
	NamedExecContext(ctx context.Context, query string, arg any) (sql.Result, error)
	Commit() error
	Rollback() error
}

type DB interface {
	BeginTx(ctx context.Context) (Tx, error)
}
