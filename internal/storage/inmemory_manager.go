package storage

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/dmitrijs2005/usermanager/internal/users"
)

type InMemoryRepositoryManager struct {
	users users.Repository
}

func NewInMemoryRepositoryManager(reg prometheus.Registerer) *InMemoryRepositoryManager {
	return &InMemoryRepositoryManager{
		users: users.NewInstrumentedRepository(users.NewMemoryRepository(), reg),
	}
}

func (m *InMemoryRepositoryManager) Users() users.Repository {
	return m.users
}

func (m *InMemoryRepositoryManager) Close() error {
	return nil
}
