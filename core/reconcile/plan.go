package reconcile

import (
	"context"
	"fmt"
)

// ReconcileWithPlan reconciles a scan pass and returns a plan with results and actions.
// It does NOT execute actions; use ApplyPlan for that.
func ReconcileWithPlan(ctx context.Context, spec *Spec, items []ScanItem, opts ReconcileOptions) (*ReconcilePlan, error) {
	results, err := ReconcileAll(ctx, spec, items)
	if err != nil {
		return nil, err
	}

	summary, actions := buildPlanFromResults(results, opts)

	return &ReconcilePlan{
		Results: results,
		Actions: actions,
		Summary: summary,
	}, nil
}

// ApplyPlan executes the actions in a reconcile plan.
// Returns the number of actions executed and any error encountered.
// Requires opts.Confirmed=true and opts.DryRun=false to actually execute.
func ApplyPlan(ctx context.Context, spec *Spec, plan *ReconcilePlan, opts ReconcileOptions) (executed int, err error) {
	if !opts.Confirmed || opts.DryRun {
		return 0, nil
	}

	var recordKeys, pruneKeys []string
	for _, action := range plan.Actions {
		switch action.Type {
		case ActionRecordLock:
			recordKeys = append(recordKeys, action.Key)
		case ActionPruneLock:
			pruneKeys = append(pruneKeys, action.Key)
		}
	}

	if len(recordKeys) == 0 && len(pruneKeys) == 0 {
		return 0, nil
	}
	defer InvalidateCache(spec)

	if len(recordKeys) > 0 {
		if err := spec.Store.RecordLocks(ctx, recordKeys); err != nil {
			return executed, fmt.Errorf("failed to record locks: %w", err)
		}
		executed += len(recordKeys)
	}

	if len(pruneKeys) > 0 {
		if err := spec.Store.DeleteLocks(ctx, pruneKeys); err != nil {
			return executed, fmt.Errorf("failed to prune locks: %w", err)
		}
		executed += len(pruneKeys)
	}

	return executed, nil
}

// ReconcileAndApply is a convenience wrapper that plans and optionally applies actions.
// It returns the plan, number of actions executed, and any error.
func ReconcileAndApply(ctx context.Context, spec *Spec, items []ScanItem, opts ReconcileOptions) (*ReconcilePlan, int, error) {
	plan, err := ReconcileWithPlan(ctx, spec, items, opts)
	if err != nil {
		return nil, 0, err
	}

	executed, err := ApplyPlan(ctx, spec, plan, opts)
	return plan, executed, err
}

// buildPlanFromResults generates a summary and action plan from reconciliation results.
func buildPlanFromResults(results []ReconcileResult, opts ReconcileOptions) (PlanSummary, []Action) {
	var summary PlanSummary
	var actions []Action

	summary.TotalItems = len(results)

	for _, result := range results {
		if result.ScanCount > 1 {
			summary.DuplicateTokens++
		}
		if result.ScanPresent && result.Locked {
			summary.LockedRelics++
		}

		switch {
		case result.ScanPresent && !result.LockPresent:
			summary.NewRelics++
			if opts.DoRecord {
				actions = append(actions, Action{
					Type:   ActionRecordLock,
					Key:    result.Token,
					Reason: "not in lock store",
				})
				summary.RecordActions++
			}
		case result.LockPresent && !result.ScanPresent:
			summary.StaleLocks++
			if opts.DoPrune {
				actions = append(actions, Action{
					Type:   ActionPruneLock,
					Key:    result.Token,
					Reason: pruneReason(result),
				})
				summary.PruneActions++
			}
		}
	}

	return summary, actions
}

func pruneReason(result ReconcileResult) string {
	if result.Locked {
		return "saved lock not seen in scan"
	}
	return "not seen in scan"
}
