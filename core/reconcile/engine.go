package reconcile

import (
	"context"
	"sort"
)

// ReconcileAll reconciles a scan pass against the lock store.
// It computes the union of scanned and stored tokens and returns a result for
// each, sorted by token.
func ReconcileAll(ctx context.Context, spec *Spec, items []ScanItem) ([]ReconcileResult, error) {
	cache, err := GetOrBuildCache(ctx, spec)
	if err != nil {
		return nil, err
	}
	return reconcileFromIndex(indexScan(items), cache.LockIndex), nil
}

// ReconcileOne reports the store state of a single token without a scan pass.
func ReconcileOne(ctx context.Context, spec *Spec, token string) (*ReconcileResult, error) {
	cache, err := GetOrBuildCache(ctx, spec)
	if err != nil {
		return nil, err
	}

	save, present := cache.LockIndex[token]
	return &ReconcileResult{
		Token:       token,
		LockPresent: present,
		Locked:      present && save,
	}, nil
}

// scanEntry aggregates scanned relics sharing one token.
type scanEntry struct {
	item  ScanItem
	count int
}

// indexScan groups scan items by token. The first item of a token wins its
// display fields.
func indexScan(items []ScanItem) map[string]*scanEntry {
	index := make(map[string]*scanEntry, len(items))
	for _, item := range items {
		if item.Token == "" {
			continue
		}
		if entry, ok := index[item.Token]; ok {
			entry.count++
			continue
		}
		index[item.Token] = &scanEntry{item: item, count: 1}
	}
	return index
}

func reconcileFromIndex(scanIndex map[string]*scanEntry, lockIndex map[string]bool) []ReconcileResult {
	union := buildUnion(scanIndex, lockIndex)

	results := make([]ReconcileResult, 0, len(union))
	for key := range union {
		results = append(results, buildResult(key, scanIndex, lockIndex))
	}

	sort.Slice(results, func(i, j int) bool {
		return results[i].Token < results[j].Token
	})
	return results
}

// buildUnion creates a union of scanned and stored tokens.
func buildUnion(scanIndex map[string]*scanEntry, lockIndex map[string]bool) map[string]struct{} {
	union := make(map[string]struct{}, len(scanIndex)+len(lockIndex))
	for key := range scanIndex {
		union[key] = struct{}{}
	}
	for key := range lockIndex {
		union[key] = struct{}{}
	}
	return union
}

// buildResult creates a ReconcileResult for a single token.
func buildResult(key string, scanIndex map[string]*scanEntry, lockIndex map[string]bool) ReconcileResult {
	entry, scanPresent := scanIndex[key]
	save, lockPresent := lockIndex[key]

	result := ReconcileResult{
		Token:       key,
		ScanPresent: scanPresent,
		LockPresent: lockPresent,
		Locked:      lockPresent && save,
	}
	if scanPresent {
		result.Name = entry.item.Name
		result.ScanCount = entry.count
		result.Metadata = entry.item.Metadata
	}
	return result
}
