// Package database handles database connections and schema inspection.
//
// It wraps GORM and opens either MySQL or SQLite depending on Config.Driver.
// SQLite is the default and suits a single-user relic inventory; MySQL is
// available for shared deployments.
//
// # Schema Inspection
//
// GetTableColumns and MissingColumns read the live table definition so a
// startup check can report a lock table that predates the current model.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
//
//	missing, err := database.MissingColumns(db, "relic_locks", []string{"token", "save"})
package database
