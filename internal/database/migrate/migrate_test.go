package migrate

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// createTestDB creates a single-connection in-memory SQLite database.
func createTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	return db
}

func TestGetMigrationsPath(t *testing.T) {
	t.Run("embedded by default", func(t *testing.T) {
		t.Setenv("MIGRATIONS_PATH", "")
		assert.Equal(t, "", GetMigrationsPath())
	})

	t.Run("custom path from env", func(t *testing.T) {
		t.Setenv("MIGRATIONS_PATH", "custom/migrations")
		assert.Equal(t, "custom/migrations", GetMigrationsPath())
	})
}

func TestMigrate_EmbeddedSQLite(t *testing.T) {
	t.Setenv("MIGRATIONS_PATH", "")
	db := createTestDB(t)

	require.NoError(t, Migrate(db))

	assert.True(t, db.Migrator().HasTable("leagues"))
	for _, column := range []string{"id", "league_title", "league_description", "members", "created_at", "updated_at"} {
		assert.True(t, db.Migrator().HasColumn("leagues", column), "missing column %s", column)
	}

	var indexes int64
	require.NoError(t, db.Raw(
		"SELECT count(*) FROM sqlite_master WHERE type = 'index' AND name = ?",
		"idx_leagues_created_at").Scan(&indexes).Error)
	assert.Equal(t, int64(1), indexes)
}

func TestMigrate_IsIdempotent(t *testing.T) {
	t.Setenv("MIGRATIONS_PATH", "")
	db := createTestDB(t)

	require.NoError(t, Migrate(db))
	assert.NoError(t, Migrate(db))
}

func TestMigrate_MembersDefaultsToEmpty(t *testing.T) {
	t.Setenv("MIGRATIONS_PATH", "")
	db := createTestDB(t)
	require.NoError(t, Migrate(db))

	require.NoError(t, db.Exec(
		"INSERT INTO leagues (id, league_title, league_description) VALUES (?, ?, ?)",
		"l1", "NBA", "Basketball").Error)

	var members string
	require.NoError(t, db.Raw("SELECT members FROM leagues WHERE id = ?", "l1").Scan(&members).Error)
	assert.Equal(t, "", members)
}

func TestMigrate_FromDirectory(t *testing.T) {
	dir := t.TempDir()
	sqliteDir := filepath.Join(dir, "sqlite")
	require.NoError(t, os.MkdirAll(sqliteDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(sqliteDir, "000001_custom.up.sql"),
		[]byte("CREATE TABLE custom_table (id TEXT PRIMARY KEY);"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(sqliteDir, "000001_custom.down.sql"),
		[]byte("DROP TABLE custom_table;"), 0o600))
	t.Setenv("MIGRATIONS_PATH", dir)

	db := createTestDB(t)
	require.NoError(t, Migrate(db))

	assert.True(t, db.Migrator().HasTable("custom_table"))
	assert.False(t, db.Migrator().HasTable("leagues"))
}

func TestMigrateWithNilDatabase(t *testing.T) {
	err := Migrate(nil)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "database connection is nil")
}

func TestMigrateWithNonExistentDirectory(t *testing.T) {
	t.Setenv("MIGRATIONS_PATH", "/non/existent/path")
	db := createTestDB(t)

	err := Migrate(db)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "migrations directory does not exist")
}

func TestMigrateWithClosedDatabase(t *testing.T) {
	t.Setenv("MIGRATIONS_PATH", "")
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	assert.Error(t, Migrate(db))
}
