package models

import (
	"time"

	relic "relic-manager/feature/relic/models"
)

// LockRecord represents the 'relic_locks' table.
type LockRecord struct {
	Token     string    `gorm:"column:token;primaryKey;size:16" json:"token"`
	Save      bool      `gorm:"column:save;not null" json:"save"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`
}

// TableName overrides the table name.
func (LockRecord) TableName() string {
	return "relic_locks"
}

// ToLock converts the row to the lock value used during reconciliation.
func (r LockRecord) ToLock() relic.Lock {
	return relic.Lock{Token: r.Token, Save: r.Save}
}
