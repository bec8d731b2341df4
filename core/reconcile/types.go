package reconcile

import "time"

// ScanItem is one relic observed during a scan pass.
type ScanItem struct {
	// Token is the relic's content-derived identity.
	Token string

	// Name is a short human-readable label for reports (e.g. "HunterofGlacialForest/Hands").
	Name string

	// Metadata carries display fields such as level or equip.
	Metadata map[string]string
}

// ReconcileResult is the reconciliation output for a single token.
type ReconcileResult struct {
	// Token is the relic identity.
	Token string `json:"token"`

	// Name is the display label of the scanned relic, empty for stale locks.
	Name string `json:"name"`

	// ScanPresent indicates whether the token was seen in this scan pass.
	ScanPresent bool `json:"scan_present"`

	// ScanCount is how many scanned relics produced this token.
	ScanCount int `json:"scan_count"`

	// LockPresent indicates whether the lock store has an entry for the token.
	LockPresent bool `json:"lock_present"`

	// Locked indicates whether the stored entry is a saved lock.
	Locked bool `json:"locked"`

	// Metadata contains the scanned relic's display fields.
	Metadata map[string]string `json:"metadata,omitempty"`
}

// Spec bundles the lock store and cache settings for a reconcile pass.
type Spec struct {
	// Store provides the persisted lock index and applies planned actions.
	Store Store

	// CacheTTL is the time-to-live for the cached lock index.
	// If zero, caching is disabled.
	CacheTTL time.Duration
}

// CacheKey returns the key the lock index of this spec is cached under.
func (s *Spec) CacheKey() string {
	return s.Store.Name()
}

// ActionType represents the type of mutation action.
type ActionType string

const (
	// ActionRecordLock stores an unsaved lock entry for a newly seen token.
	ActionRecordLock ActionType = "record_lock"
	// ActionPruneLock removes a lock entry whose token was not scanned.
	ActionPruneLock ActionType = "prune_lock"
)

// Action represents a planned mutation operation.
type Action struct {
	// Type specifies the action to perform.
	Type ActionType `json:"type"`

	// Key is the relic token.
	Key string `json:"key"`

	// Reason explains why this action is needed.
	Reason string `json:"reason"`
}

// ReconcilePlan contains reconciliation results and planned actions.
type ReconcilePlan struct {
	// Results contains per-token reconciliation data, sorted by token.
	Results []ReconcileResult `json:"results"`

	// Actions contains planned mutation operations.
	Actions []Action `json:"actions"`

	// Summary provides aggregate counts.
	Summary PlanSummary `json:"summary"`
}

// PlanSummary provides aggregate statistics for a reconcile plan.
type PlanSummary struct {
	// TotalItems is the number of distinct tokens across scan and store.
	TotalItems int `json:"total_items"`

	// NewRelics counts scanned tokens without a stored lock entry.
	NewRelics int `json:"new_relics"`

	// StaleLocks counts stored lock entries not seen in the scan.
	StaleLocks int `json:"stale_locks"`

	// LockedRelics counts scanned tokens protected by a saved lock.
	LockedRelics int `json:"locked_relics"`

	// DuplicateTokens counts tokens produced by more than one scanned relic.
	DuplicateTokens int `json:"duplicate_tokens"`

	// RecordActions counts planned record actions.
	RecordActions int `json:"record_actions"`

	// PruneActions counts planned prune actions.
	PruneActions int `json:"prune_actions"`
}

// PlannedActions returns the total number of planned actions.
func (s PlanSummary) PlannedActions() int {
	return s.RecordActions + s.PruneActions
}

// ReconcileOptions controls reconcile behavior for record/prune operations.
type ReconcileOptions struct {
	// DryRun prevents execution of any mutations if true.
	DryRun bool

	// DoRecord plans an unsaved lock entry for every new token.
	DoRecord bool

	// DoPrune plans deletion of lock entries absent from the scan.
	// Saved locks are pruned too, so this is only safe on a full-inventory scan.
	DoPrune bool

	// Confirmed indicates user has confirmed the mutations.
	// If false, mutations will not execute regardless of DryRun.
	Confirmed bool
}
