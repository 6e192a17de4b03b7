package users

import (
	"context"
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/dmitrijs2005/usermanager/internal/common"
)

const (
	resultOK        = "ok"
	resultDuplicate = "duplicate"
	resultNotFound  = "not_found"
	resultError     = "error"
)

// InstrumentedRepository records registry operations in Prometheus metrics.
type InstrumentedRepository struct {
	next       Repository
	operations *prometheus.CounterVec
	users      prometheus.Gauge
}

func NewInstrumentedRepository(next Repository, reg prometheus.Registerer) *InstrumentedRepository {
	factory := promauto.With(reg)

	return &InstrumentedRepository{
		next: next,
		operations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "usermanager_registry_operations_total",
				Help: "Total number of registry operations by operation and result",
			},
			[]string{"operation", "result"},
		),
		users: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "usermanager_registry_users",
				Help: "Number of users currently in the registry",
			},
		),
	}
}

func resultOf(err error) string {
	switch {
	case err == nil:
		return resultOK
	case errors.Is(err, common.ErrorAlreadyExists):
		return resultDuplicate
	case errors.Is(err, common.ErrorNotFound):
		return resultNotFound
	default:
		return resultError
	}
}

func (r *InstrumentedRepository) observe(ctx context.Context, op string, err error) {
	r.operations.WithLabelValues(op, resultOf(err)).Inc()

	if err == nil && (op == "add" || op == "remove") {
		if n, lerr := r.next.Len(ctx); lerr == nil {
			r.users.Set(float64(n))
		}
	}
}

func (r *InstrumentedRepository) Add(ctx context.Context, user *User) error {
	err := r.next.Add(ctx, user)
	r.observe(ctx, "add", err)
	return err
}

func (r *InstrumentedRepository) Find(ctx context.Context, userName string) (*User, error) {
	u, err := r.next.Find(ctx, userName)
	r.observe(ctx, "find", err)
	return u, err
}

func (r *InstrumentedRepository) Remove(ctx context.Context, userName string) error {
	err := r.next.Remove(ctx, userName)
	r.observe(ctx, "remove", err)
	return err
}

func (r *InstrumentedRepository) List(ctx context.Context) ([]*User, error) {
	list, err := r.next.List(ctx)
	r.observe(ctx, "list", err)
	return list, err
}

func (r *InstrumentedRepository) Len(ctx context.Context) (int, error) {
	return r.next.Len(ctx)
}
