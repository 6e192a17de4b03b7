package users

import (
	"fmt"

	"github.com/dmitrijs2005/usermanager/internal/common"
)

// DuplicateKeyError is returned by Add when the username is already registered.
type DuplicateKeyError struct {
	UserName string
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("user with username '%s' already exists", e.UserName)
}

func (e *DuplicateKeyError) Unwrap() error {
	return common.ErrorAlreadyExists
}

// NotFoundError is returned by Find and Remove when the username is absent.
type NotFoundError struct {
	UserName string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("user with username '%s' not found", e.UserName)
}

func (e *NotFoundError) Unwrap() error {
	return common.ErrorNotFound
}
