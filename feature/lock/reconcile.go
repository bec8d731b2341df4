package lock

import (
	"context"

	"relic-manager/core/reconcile"
)

// ReconcileStore exposes a lock Service as the store a scan pass is reconciled against.
type ReconcileStore struct {
	service *Service
}

var _ reconcile.Store = (*ReconcileStore)(nil)

// NewReconcileStore wraps service as a reconcile.Store.
func NewReconcileStore(service *Service) *ReconcileStore {
	return &ReconcileStore{service: service}
}

// Name implements reconcile.Store.
func (r *ReconcileStore) Name() string {
	return "relic_locks"
}

// LoadIndex implements reconcile.Store.
func (r *ReconcileStore) LoadIndex(ctx context.Context) (map[string]bool, error) {
	locks, err := r.service.LoadAll(ctx)
	if err != nil {
		return nil, err
	}

	index := make(map[string]bool, len(locks))
	for token, l := range locks {
		index[token] = l.Save
	}
	return index, nil
}

// RecordLocks implements reconcile.Store.
func (r *ReconcileStore) RecordLocks(ctx context.Context, tokens []string) error {
	return r.service.RecordLocks(ctx, tokens)
}

// DeleteLocks implements reconcile.Store.
func (r *ReconcileStore) DeleteLocks(ctx context.Context, tokens []string) error {
	return r.service.DeleteLocks(ctx, tokens)
}
