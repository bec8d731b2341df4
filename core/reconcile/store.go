package reconcile

import "context"

// Store is the persisted lock index a scan pass is reconciled against.
type Store interface {
	// Name returns a unique name for the store, used as its cache key.
	Name() string

	// LoadIndex returns every stored token mapped to its save flag.
	LoadIndex(ctx context.Context) (map[string]bool, error)

	// RecordLocks inserts unsaved entries for tokens. Existing entries are left untouched.
	RecordLocks(ctx context.Context, tokens []string) error

	// DeleteLocks removes the entries for tokens.
	DeleteLocks(ctx context.Context, tokens []string) error
}
