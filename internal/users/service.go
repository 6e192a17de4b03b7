package users

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/usermanager/internal/common"
	"github.com/dmitrijs2005/usermanager/internal/logging"
)

// Service exposes registry operations to the CLI and logs their outcome.
// Errors are returned to the caller unchanged.
type Service struct {
	repo   Repository
	logger logging.Logger
}

func NewService(repo Repository, logger logging.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

func (s *Service) logFailure(ctx context.Context, msg string, err error, args ...any) {
	args = append(args, "error", err)
	if errors.Is(err, common.ErrorAlreadyExists) || errors.Is(err, common.ErrorNotFound) {
		s.logger.Warn(ctx, msg, args...)
		return
	}
	s.logger.Error(ctx, msg, args...)
}

func (s *Service) AddUser(ctx context.Context, userName, email string, age int) (*User, error) {
	user := NewUser(userName, email, age)

	if err := s.repo.Add(ctx, user); err != nil {
		s.logFailure(ctx, "add user failed", err, "username", userName)
		return nil, err
	}

	s.logger.Info(ctx, "user added", "username", userName)
	return user, nil
}

func (s *Service) FindUser(ctx context.Context, userName string) (*User, error) {
	user, err := s.repo.Find(ctx, userName)
	if err != nil {
		s.logFailure(ctx, "find user failed", err, "username", userName)
		return nil, err
	}

	s.logger.Debug(ctx, "user found", "username", userName)
	return user, nil
}

func (s *Service) RemoveUser(ctx context.Context, userName string) error {
	if err := s.repo.Remove(ctx, userName); err != nil {
		s.logFailure(ctx, "remove user failed", err, "username", userName)
		return err
	}

	s.logger.Info(ctx, "user removed", "username", userName)
	return nil
}

func (s *Service) ListUsers(ctx context.Context) ([]*User, error) {
	list, err := s.repo.List(ctx)
	if err != nil {
		s.logFailure(ctx, "list users failed", err)
		return nil, err
	}

	s.logger.Debug(ctx, "users listed", "count", len(list))
	return list, nil
}
