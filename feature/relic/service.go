package relic

import (
	"context"
	"fmt"
	"strconv"

	"relic-manager/core/reconcile"
	"relic-manager/feature/relic/identity"
	"relic-manager/feature/relic/models"

	"go.uber.org/zap"
)

// LockSource provides the persisted locks a scan is merged with.
type LockSource interface {
	LoadAll(ctx context.Context) (map[string]models.Lock, error)
}

// Skipped describes a raw scan that could not be assembled.
type Skipped struct {
	Index  int    `json:"index"`
	Name   string `json:"name"`
	Reason string `json:"reason"`
}

// ScanReport is the outcome of one scan pass.
type ScanReport struct {
	Relics  []*models.Relic          `json:"relics"`
	Skipped []Skipped                `json:"skipped"`
	Plan    *reconcile.ReconcilePlan `json:"plan,omitempty"`
}

// Service handles relic scan passes.
type Service struct {
	assembler *Assembler
	locks     LockSource
	store     reconcile.Store
	logger    *zap.Logger
}

// NewService creates a new relic service. locks and store may be nil, in
// which case scans run as a cold start without a reconcile plan.
func NewService(assembler *Assembler, locks LockSource, store reconcile.Store, logger *zap.Logger) *Service {
	return &Service{
		assembler: assembler,
		locks:     locks,
		store:     store,
		logger:    logger,
	}
}

// Assembler returns the service's assembler.
func (s *Service) Assembler() *Assembler {
	return s.assembler
}

// Scan assembles every raw scan, assigns tokens and locks, and plans the
// reconciliation against the lock store. A scan that fails to assemble is
// reported in Skipped and does not affect the others.
func (s *Service) Scan(ctx context.Context, scans []RawScan, opts reconcile.ReconcileOptions) (*ScanReport, error) {
	report := &ScanReport{
		Relics:  make([]*models.Relic, 0, len(scans)),
		Skipped: []Skipped{},
	}

	for i, raw := range scans {
		r, err := s.assembler.Assemble(raw)
		if err != nil {
			s.logger.Warn("Relic skipped", zap.Int("index", i), zap.Error(err))
			report.Skipped = append(report.Skipped, Skipped{Index: i, Name: raw.Name, Reason: err.Error()})
			continue
		}
		report.Relics = append(report.Relics, r)
	}

	locks := map[string]models.Lock{}
	if s.locks != nil {
		loaded, err := s.locks.LoadAll(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to load locks: %w", err)
		}
		locks = loaded
	}

	for _, r := range report.Relics {
		identity.AssignTokenAndLock(r, locks, s.logger)
	}

	if s.store == nil {
		return report, nil
	}

	plan, err := reconcile.ReconcileWithPlan(ctx, s.spec(), ScanItems(report.Relics), opts)
	if err != nil {
		return nil, err
	}
	report.Plan = plan

	s.logger.Info("Scan reconciled",
		zap.Int("relics", len(report.Relics)),
		zap.Int("skipped", len(report.Skipped)),
		zap.Int("new", plan.Summary.NewRelics),
		zap.Int("stale", plan.Summary.StaleLocks),
		zap.Int("locked", plan.Summary.LockedRelics),
	)
	return report, nil
}

// Apply executes a scan report's plan. It is a no-op unless opts are confirmed
// and not a dry run.
func (s *Service) Apply(ctx context.Context, report *ScanReport, opts reconcile.ReconcileOptions) (int, error) {
	if s.store == nil || report.Plan == nil {
		return 0, nil
	}
	return reconcile.ApplyPlan(ctx, s.spec(), report.Plan, opts)
}

func (s *Service) spec() *reconcile.Spec {
	return &reconcile.Spec{Store: s.store}
}

// ScanItems converts tokenised relics to reconcile scan items.
func ScanItems(relics []*models.Relic) []reconcile.ScanItem {
	items := make([]reconcile.ScanItem, 0, len(relics))
	for _, r := range relics {
		meta := map[string]string{
			"star":      strconv.FormatUint(uint64(r.Star), 10),
			"level":     strconv.FormatUint(uint64(r.Level), 10),
			"main_stat": r.MainStat.String(),
		}
		if equip := r.EquipName(); equip != "" {
			meta["equip"] = equip
		}
		items = append(items, reconcile.ScanItem{
			Token:    r.Token,
			Name:     r.SetName.String() + "/" + r.Slot.String(),
			Metadata: meta,
		})
	}
	return items
}
