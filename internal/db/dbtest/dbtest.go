// Package dbtest opens throwaway sqlite databases for tests.
package dbtest

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/feedback-hub/internal/config"
	dbpkg "github.com/BruksfildServices01/feedback-hub/internal/db"
)

// Config returns a sqlite configuration pointing into t.TempDir().
func Config(t testing.TB) *config.Config {
	t.Helper()

	return &config.Config{
		AppEnv:    config.EnvDevelopment,
		DBDriver:  config.DriverSQLite,
		DBUrl:     filepath.Join(t.TempDir(), "feedback.db") + "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)",
		JWTSecret: "test-secret",
	}
}

// Open returns a migrated database that is closed when the test ends.
func Open(t testing.TB) *gorm.DB {
	t.Helper()

	db, err := dbpkg.NewDB(Config(t))
	require.NoError(t, err, "failed to create test database")

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	return db
}
