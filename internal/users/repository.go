package users

import (
	"context"
)

// Repository is a registry of users unique by username.
//
// Add fails with *DuplicateKeyError, Find and Remove fail with *NotFoundError.
// A failed call leaves the registry unchanged.
type Repository interface {
	Add(ctx context.Context, user *User) error
	Find(ctx context.Context, userName string) (*User, error)
	Remove(ctx context.Context, userName string) error
	List(ctx context.Context) ([]*User, error)
	Len(ctx context.Context) (int, error)
}
