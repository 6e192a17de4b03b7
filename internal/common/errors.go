// Package common defines sentinel errors shared by the registry backends,
// the service layer and the CLI. Callers should use errors.Is to match these
// values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound      = errors.New("not found")
	ErrorAlreadyExists = errors.New("already exists")

	// Input errors.
	ErrorValidation = errors.New("validation error")

	// ErrorUnknownStorage is returned when the configured backend is not supported.
	ErrorUnknownStorage = errors.New("unknown storage")
)
