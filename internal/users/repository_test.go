package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/dmitrijs2005/usermanager/internal/common"
	"github.com/dmitrijs2005/usermanager/internal/migrations"
)

func newSQLiteRepository(t *testing.T) *SQLiteRepository {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, migrations.Up(context.Background(), db))
	return NewSQLiteRepository(db)
}

// backends returns a constructor for every Repository implementation.
func backends() map[string]func(t *testing.T) Repository {
	return map[string]func(t *testing.T) Repository{
		"memory": func(t *testing.T) Repository { return NewMemoryRepository() },
		"sqlite": func(t *testing.T) Repository { return newSQLiteRepository(t) },
	}
}

func forEachBackend(t *testing.T, fn func(t *testing.T, r Repository)) {
	for name, newRepo := range backends() {
		t.Run(name, func(t *testing.T) {
			fn(t, newRepo(t))
		})
	}
}

func requireNotFound(t *testing.T, err error, userName string) {
	t.Helper()
	var nf *NotFoundError
	require.True(t, errors.As(err, &nf), "expected NotFoundError, got %v", err)
	assert.Equal(t, userName, nf.UserName)
}

func TestRepository_FindAbsent(t *testing.T) {
	forEachBackend(t, func(t *testing.T, r Repository) {
		_, err := r.Find(context.Background(), "ghost")
		requireNotFound(t, err, "ghost")
	})
}

func TestRepository_AddThenFind(t *testing.T) {
	forEachBackend(t, func(t *testing.T, r Repository) {
		ctx := context.Background()
		in := NewUser("john_doe", "john@example.com", 30)

		require.NoError(t, r.Add(ctx, in))

		got, err := r.Find(ctx, "john_doe")
		require.NoError(t, err)
		assert.Equal(t, *in, *got)
	})
}

func TestRepository_AddDuplicateKeepsOriginal(t *testing.T) {
	forEachBackend(t, func(t *testing.T, r Repository) {
		ctx := context.Background()

		require.NoError(t, r.Add(ctx, NewUser("john_doe", "john@example.com", 30)))
		require.NoError(t, r.Add(ctx, NewUser("jane_doe", "jane@example.com", 25)))

		err := r.Add(ctx, NewUser("john_doe", "john_duplicate@example.com", 40))
		var dup *DuplicateKeyError
		require.True(t, errors.As(err, &dup), "expected DuplicateKeyError, got %v", err)
		assert.Equal(t, "john_doe", dup.UserName)

		got, err := r.Find(ctx, "john_doe")
		require.NoError(t, err)
		assert.Equal(t, 30, got.Age)
		assert.Equal(t, "john@example.com", got.Email)

		n, err := r.Len(ctx)
		require.NoError(t, err)
		assert.Equal(t, 2, n)
	})
}

func TestRepository_Remove(t *testing.T) {
	forEachBackend(t, func(t *testing.T, r Repository) {
		ctx := context.Background()

		require.NoError(t, r.Add(ctx, NewUser("john_doe", "john@example.com", 30)))
		require.NoError(t, r.Add(ctx, NewUser("jane_doe", "jane@example.com", 25)))

		require.NoError(t, r.Remove(ctx, "jane_doe"))

		_, err := r.Find(ctx, "jane_doe")
		requireNotFound(t, err, "jane_doe")

		requireNotFound(t, r.Remove(ctx, "non_existent"), "non_existent")
		requireNotFound(t, r.Remove(ctx, "jane_doe"), "jane_doe")

		got, err := r.Find(ctx, "john_doe")
		require.NoError(t, err)
		assert.Equal(t, "john@example.com", got.Email)

		n, err := r.Len(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, n)
	})
}

func TestRepository_AddNil(t *testing.T) {
	forEachBackend(t, func(t *testing.T, r Repository) {
		assert.ErrorIs(t, r.Add(context.Background(), nil), common.ErrorValidation)
	})
}

func TestRepository_ListSorted(t *testing.T) {
	forEachBackend(t, func(t *testing.T, r Repository) {
		ctx := context.Background()

		list, err := r.List(ctx)
		require.NoError(t, err)
		assert.Empty(t, list)

		require.NoError(t, r.Add(ctx, NewUser("john_doe", "john@example.com", 30)))
		require.NoError(t, r.Add(ctx, NewUser("jane_doe", "jane@example.com", 25)))

		list, err = r.List(ctx)
		require.NoError(t, err)
		require.Len(t, list, 2)
		assert.Equal(t, "jane_doe", list[0].UserName)
		assert.Equal(t, "john_doe", list[1].UserName)
	})
}

func TestRepository_ReAddAfterRemove(t *testing.T) {
	forEachBackend(t, func(t *testing.T, r Repository) {
		ctx := context.Background()

		require.NoError(t, r.Add(ctx, NewUser("john_doe", "john@example.com", 30)))
		require.NoError(t, r.Remove(ctx, "john_doe"))
		require.NoError(t, r.Add(ctx, NewUser("john_doe", "new@example.com", 31)))

		got, err := r.Find(ctx, "john_doe")
		require.NoError(t, err)
		assert.Equal(t, 31, got.Age)
	})
}

func TestMemoryRepository_CallerMutationDoesNotLeak(t *testing.T) {
	r := NewMemoryRepository()
	ctx := context.Background()

	in := NewUser("john_doe", "john@example.com", 30)
	require.NoError(t, r.Add(ctx, in))
	in.UserName = "changed"
	in.Age = 99

	got, err := r.Find(ctx, "john_doe")
	require.NoError(t, err)
	assert.Equal(t, "john_doe", got.UserName)
	assert.Equal(t, 30, got.Age)

	got.Email = "mutated@example.com"
	again, err := r.Find(ctx, "john_doe")
	require.NoError(t, err)
	assert.Equal(t, "john@example.com", again.Email)

	_, err = r.Find(ctx, "changed")
	requireNotFound(t, err, "changed")
}

func TestMemoryRepository_ConcurrentAddSameKey(t *testing.T) {
	r := NewMemoryRepository()
	ctx := context.Background()

	const workers = 32
	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		success int
	)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			err := r.Add(ctx, NewUser("john_doe", fmt.Sprintf("john%d@example.com", i), i))
			if err == nil {
				mu.Lock()
				success++
				mu.Unlock()
				return
			}
			assert.ErrorIs(t, err, common.ErrorAlreadyExists)
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 1, success)
	n, err := r.Len(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}
