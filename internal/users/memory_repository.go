package users

import (
	"context"
	"sort"
	"sync"

	"github.com/dmitrijs2005/usermanager/internal/common"
)

// MemoryRepository keeps users in a map guarded by a RWMutex.
// Records are stored and returned by value, so callers never share
// memory with the registry.
type MemoryRepository struct {
	mu    sync.RWMutex
	users map[string]User
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{users: make(map[string]User)}
}

func (r *MemoryRepository) Add(ctx context.Context, user *User) error {
	if user == nil {
		return common.ErrorValidation
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[user.UserName]; ok {
		return &DuplicateKeyError{UserName: user.UserName}
	}
	r.users[user.UserName] = *user

	return nil
}

func (r *MemoryRepository) Find(ctx context.Context, userName string) (*User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[userName]
	if !ok {
		return nil, &NotFoundError{UserName: userName}
	}

	return &u, nil
}

func (r *MemoryRepository) Remove(ctx context.Context, userName string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[userName]; !ok {
		return &NotFoundError{UserName: userName}
	}
	delete(r.users, userName)

	return nil
}

func (r *MemoryRepository) List(ctx context.Context) ([]*User, error) {
	r.mu.RLock()
	result := make([]*User, 0, len(r.users))
	for _, u := range r.users {
		u := u
		result = append(result, &u)
	}
	r.mu.RUnlock()

	sort.Slice(result, func(i, j int) bool { return result[i].UserName < result[j].UserName })

	return result, nil
}

func (r *MemoryRepository) Len(ctx context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.users), nil
}
