package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"
)

type sqlDB struct {
	db *sqlx.DB
}

// NewSQLDB adapts a sqlx handle to DB. *sqlx.Rows already satisfies
// RowScanner.
func NewSQLDB(db *sqlx.DB) DB {
	return &sqlDB{db: db}
}

func (s *sqlDB) QueryContext(ctx context.Context, query string, args ...any) (RowScanner, error) {
	rows, err := s.db.QueryxContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return rows, nil
}
