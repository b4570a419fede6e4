package db_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/feedback-hub/internal/config"
	dbpkg "github.com/BruksfildServices01/feedback-hub/internal/db"
	"github.com/BruksfildServices01/feedback-hub/internal/db/dbtest"
	"github.com/BruksfildServices01/feedback-hub/internal/httperr"
	"github.com/BruksfildServices01/feedback-hub/internal/models"
)

func TestNewDBMigratesSchema(t *testing.T) {
	db := dbtest.Open(t)

	for _, m := range []any{
		&models.User{},
		&models.Store{},
		&models.StoreTranslation{},
		&models.Review{},
		&models.Settings{},
		&models.AuditLog{},
	} {
		assert.True(t, db.Migrator().HasTable(m), "%T table missing", m)
	}

	assert.True(t, db.Migrator().HasIndex(&models.StoreTranslation{}, "idx_store_translations_store_language"))
}

func TestNewDBBadPath(t *testing.T) {
	_, err := dbpkg.NewDB(&config.Config{
		DBDriver: config.DriverSQLite,
		DBUrl:    "/nonexistent-dir/sub/feedback.db",
	})
	require.Error(t, err)
}

func TestSQLiteDSN(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"feedback.db", "feedback.db?_pragma=foreign_keys(1)"},
		{"feedback.db?_pragma=busy_timeout(5000)", "feedback.db?_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)"},
		{"feedback.db?_pragma=foreign_keys(0)", "feedback.db?_pragma=foreign_keys(0)"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, dbpkg.SQLiteDSN(tt.in), tt.in)
	}
}

func TestNewDBEnforcesForeignKeysForPlainPath(t *testing.T) {
	db, err := dbpkg.NewDB(&config.Config{
		DBDriver: config.DriverSQLite,
		DBUrl:    filepath.Join(t.TempDir(), "plain.db"),
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	err = db.Create(&models.StoreTranslation{StoreID: "missing", Language: "en", Name: "x", Location: "y"}).Error
	require.Error(t, err)
	assert.True(t, httperr.IsForeignKeyViolation(err), err.Error())
}
