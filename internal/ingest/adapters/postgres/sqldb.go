package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"
)

type sqlDB struct {
	db *sqlx.DB
}

func NewSQLDB(db *sqlx.DB) DB {
	return &sqlDB{db: db}
}

func (s *sqlDB) BeginTx(ctx context.Context) (Tx, error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	return tx, nil
}
