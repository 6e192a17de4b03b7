package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/usermanager/internal/common"
	"github.com/dmitrijs2005/usermanager/internal/dbx"
)

// SQLiteRepository stores users in a SQLite database. The schema comes from
// the migrations package.
type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Add(ctx context.Context, user *User) error {
	if user == nil {
		return common.ErrorValidation
	}

	return dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		exists, err := dbx.Exists(ctx, tx, `SELECT COUNT(*) FROM users WHERE username = ?`, user.UserName)
		if err != nil {
			return fmt.Errorf("failed to check user[%s]: %w", user.UserName, err)
		}
		if exists {
			return &DuplicateKeyError{UserName: user.UserName}
		}

		_, err = tx.ExecContext(ctx, `INSERT INTO users (username, email, age) VALUES (?, ?, ?)`,
			user.UserName, user.Email, user.Age)
		if err != nil {
			return fmt.Errorf("failed to insert user[%s]: %w", user.UserName, err)
		}

		return nil
	})
}

func (r *SQLiteRepository) Find(ctx context.Context, userName string) (*User, error) {
	u := &User{}
	err := r.db.QueryRowContext(ctx, `SELECT username, email, age FROM users WHERE username = ?`, userName).
		Scan(&u.UserName, &u.Email, &u.Age)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, &NotFoundError{UserName: userName}
		}
		return nil, fmt.Errorf("failed to get user[%s]: %w", userName, err)
	}
	return u, nil
}

func (r *SQLiteRepository) Remove(ctx context.Context, userName string) error {
	n, err := dbx.Affected(ctx, r.db, `DELETE FROM users WHERE username = ?`, userName)
	if err != nil {
		return fmt.Errorf("failed to delete user[%s]: %w", userName, err)
	}
	if n == 0 {
		return &NotFoundError{UserName: userName}
	}

	return nil
}

func (r *SQLiteRepository) List(ctx context.Context) ([]*User, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT username, email, age FROM users ORDER BY username`)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	result := make([]*User, 0)
	for rows.Next() {
		u := &User{}
		if err := rows.Scan(&u.UserName, &u.Email, &u.Age); err != nil {
			return nil, fmt.Errorf("failed to scan user row: %w", err)
		}
		result = append(result, u)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate user rows: %w", err)
	}

	return result, nil
}

func (r *SQLiteRepository) Len(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count users: %w", err)
	}
	return n, nil
}
