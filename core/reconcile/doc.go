// Package reconcile compares the relic tokens of a scan pass with the
// persisted lock store.
//
// A pass builds the union of scanned tokens and stored tokens, reports
// presence on each side, and can plan two kinds of mutation:
//   - record_lock: store an unsaved entry for a token seen for the first time
//   - prune_lock: remove an entry whose token did not appear in the scan
//
// Plans are computed without side effects. ApplyPlan only mutates the store
// when the options are confirmed and not a dry run.
//
// # Cache
//
// The lock index is loaded through the Store and cached per store name for
// Spec.CacheTTL with stampede protection. A zero TTL disables caching.
//
// # Usage Example
//
//	spec := &reconcile.Spec{Store: lock.NewReconcileStore(lockService)}
//	plan, err := reconcile.ReconcileWithPlan(ctx, spec, items, opts)
//	if err != nil {
//	    return err
//	}
//	executed, err := reconcile.ApplyPlan(ctx, spec, plan, opts)
package reconcile
