package identity

import (
	"relic-manager/feature/relic/models"

	"go.uber.org/zap"
)

// AssignTokenAndLock stores the computed token on r and raises r.Locked when
// locks holds a saved entry for it. An unmatched token is logged as a warning
// unless locks is empty, which is the first scan of an inventory.
//
// locks is read only. r.Locked is never cleared here.
func AssignTokenAndLock(r *models.Relic, locks map[string]models.Lock, logger *zap.Logger) {
	if logger == nil {
		logger = zap.L()
	}

	r.Token = Token(r)

	lock, ok := locks[r.Token]
	switch {
	case ok && lock.Save:
		r.Locked = true
	case ok:
	case len(locks) > 0:
		logger.Warn("Relic has no matching lock",
			zap.String("token", r.Token),
			zap.Any("relic", r),
		)
	}
}
