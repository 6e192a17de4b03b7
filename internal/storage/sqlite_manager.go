package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	_ "modernc.org/sqlite"

	"github.com/dmitrijs2005/usermanager/internal/migrations"
	"github.com/dmitrijs2005/usermanager/internal/users"
)

// An in-memory SQLite database lives as long as its connection, so the pool
// is pinned to a single connection that is never recycled.
const sqliteDSN = ":memory:"

type SQLiteRepositoryManager struct {
	db    *sql.DB
	users users.Repository
}

func NewSQLiteRepositoryManager(ctx context.Context, reg prometheus.Registerer) (*SQLiteRepositoryManager, error) {
	db, err := sql.Open("sqlite", sqliteDSN)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := migrations.Up(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration error: %w", err)
	}

	return &SQLiteRepositoryManager{
		db:    db,
		users: users.NewInstrumentedRepository(users.NewSQLiteRepository(db), reg),
	}, nil
}

func (m *SQLiteRepositoryManager) Users() users.Repository {
	return m.users
}

func (m *SQLiteRepositoryManager) Close() error {
	return m.db.Close()
}
