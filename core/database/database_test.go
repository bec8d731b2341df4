package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnect(t *testing.T) {
	t.Run("Invalid Connection", func(t *testing.T) {
		cfg := Config{
			Driver:         "mysql",
			Host:           "localhost",
			Port:           9999, // Unused port
			User:           "root",
			Password:       "wrongpassword",
			Name:           "relics",
			TimeoutSeconds: 1,
		}

		db, err := Connect(cfg)
		assert.Error(t, err)
		assert.Nil(t, db)
	})

	t.Run("Unsupported Driver", func(t *testing.T) {
		db, err := Connect(Config{Driver: "oracle"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unsupported database driver")
		assert.Nil(t, db)
	})

	t.Run("SQLite Memory Shares One Connection", func(t *testing.T) {
		db, err := Connect(Config{Driver: "sqlite", Name: ":memory:"})
		require.NoError(t, err)

		require.NoError(t, db.Exec("CREATE TABLE ping_check (id INTEGER PRIMARY KEY)").Error)

		sqlDB, err := db.DB()
		require.NoError(t, err)
		assert.Equal(t, 1, sqlDB.Stats().MaxOpenConnections)
		assert.True(t, db.Migrator().HasTable("ping_check"))
	})
}

func TestConfig_MySQLDSN(t *testing.T) {
	cfg := Config{Host: "db", Port: 3307, User: "relic", Password: "p@ss:word", Name: "relics"}

	dsn := cfg.MySQLDSN(5)
	assert.Contains(t, dsn, "relic:p%40ss%3Aword@tcp(db:3307)/relics?")
	assert.Contains(t, dsn, "timeout=5s&readTimeout=5s&writeTimeout=5s")
	assert.Contains(t, dsn, "parseTime=True")
}
