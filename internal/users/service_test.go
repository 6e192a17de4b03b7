package users

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/usermanager/internal/common"
	"github.com/dmitrijs2005/usermanager/internal/logging"
)

func newTestService(t *testing.T) (*Service, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	h := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	return NewService(NewMemoryRepository(), logging.NewSlogLogger(slog.New(h))), &buf
}

func TestService_AddFindRemove(t *testing.T) {
	s, buf := newTestService(t)
	ctx := context.Background()

	u, err := s.AddUser(ctx, "john_doe", "john@example.com", 30)
	require.NoError(t, err)
	assert.Equal(t, "User(username='john_doe', email='john@example.com', age=30)", u.String())
	assert.Contains(t, buf.String(), "msg=\"user added\" username=john_doe")

	got, err := s.FindUser(ctx, "john_doe")
	require.NoError(t, err)
	assert.Equal(t, *u, *got)

	require.NoError(t, s.RemoveUser(ctx, "john_doe"))
	assert.Contains(t, buf.String(), "msg=\"user removed\" username=john_doe")

	list, err := s.ListUsers(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestService_DomainErrorsLoggedAsWarnings(t *testing.T) {
	s, buf := newTestService(t)
	ctx := context.Background()

	_, err := s.AddUser(ctx, "john_doe", "john@example.com", 30)
	require.NoError(t, err)

	_, err = s.AddUser(ctx, "john_doe", "john_duplicate@example.com", 40)
	assert.ErrorIs(t, err, common.ErrorAlreadyExists)

	_, err = s.FindUser(ctx, "non_existent")
	assert.ErrorIs(t, err, common.ErrorNotFound)

	err = s.RemoveUser(ctx, "non_existent")
	assert.ErrorIs(t, err, common.ErrorNotFound)

	out := buf.String()
	assert.Contains(t, out, "level=WARN msg=\"add user failed\"")
	assert.Contains(t, out, "level=WARN msg=\"find user failed\"")
	assert.Contains(t, out, "level=WARN msg=\"remove user failed\"")
	assert.NotContains(t, out, "level=ERROR")
}
