// SPDX-License-Identifier: MIT
package db

import (
	"path/filepath"
	"testing"

	"github.com/thatcatcamp/themekit/internal/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTestDB creates an in-memory SQLite database for testing
func setupTestDB(t *testing.T) *gorm.DB {
	testDB, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	return testDB
}

func TestMigrateCreatesSessionTable(t *testing.T) {
	testDB := setupTestDB(t)

	if err := Migrate(testDB); err != nil {
		t.Fatalf("migration failed: %v", err)
	}

	if !testDB.Migrator().HasTable(&models.ThemeSession{}) {
		t.Fatal("theme_sessions table not found")
	}
}

func TestInitDBSqlite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "themekit.db")
	if err := InitDB("sqlite", path); err != nil {
		t.Fatalf("InitDB failed: %v", err)
	}
	if GetDB() == nil {
		t.Fatal("expected database connection")
	}
	if !GetDB().Migrator().HasTable(&models.ThemeSession{}) {
		t.Fatal("theme_sessions table not migrated")
	}
}

func TestInitDBUnsupportedType(t *testing.T) {
	if err := InitDB("postgres", "whatever"); err == nil {
		t.Fatal("expected error for unsupported database type")
	}
}

func TestSetDB(t *testing.T) {
	testDB := setupTestDB(t)
	SetDB(testDB)
	if GetDB() != testDB {
		t.Fatal("SetDB did not replace the connection")
	}
}

func TestSqliteDSN(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"/var/lib/themekit.db", "/var/lib/themekit.db?" + sqlitePragmas},
		{"file.db?cache=shared", "file.db?cache=shared&" + sqlitePragmas},
		{":memory:", ":memory:"},
		{"x.db?_journal_mode=DELETE", "x.db?_journal_mode=DELETE"},
	}
	for _, tt := range tests {
		if got := sqliteDSN(tt.in); got != tt.want {
			t.Errorf("sqliteDSN(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestPing(t *testing.T) {
	SetDB(nil)
	if err := Ping(); err == nil {
		t.Fatal("expected error without a connection")
	}
	SetDB(setupTestDB(t))
	if err := Ping(); err != nil {
		t.Fatalf("Ping failed: %v", err)
	}
}
