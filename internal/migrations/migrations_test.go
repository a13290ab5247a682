package migrations

import (
	"database/sql"
	"strings"
	"testing"

	_ "github.com/jackc/pgx/v5/stdlib"
)

func TestMigrationsEmbedded(t *testing.T) {
	entries, err := embedMigrations.ReadDir(".")
	if err != nil {
		t.Fatalf("Failed to read embedded migrations: %v", err)
	}

	// Должна быть хотя бы одна SQL миграция со схемой kv_slots
	foundSQL := false
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".sql") {
			foundSQL = true
			t.Logf("Found migration: %s", entry.Name())
		}
	}

	if !foundSQL {
		t.Error("No .sql migration files found")
	}
}

func TestKVSlotsMigrationContent(t *testing.T) {
	data, err := embedMigrations.ReadFile("001_create_kv_slots.sql")
	if err != nil {
		t.Fatalf("Failed to read kv_slots migration: %v", err)
	}

	if !strings.Contains(string(data), "kv_slots") {
		t.Error("Migration does not create kv_slots table")
	}
}

func TestRunWithInvalidDB(t *testing.T) {
	db, err := sql.Open("pgx", "invalid://connection")
	if err != nil {
		t.Skipf("Cannot create test DB connection: %v", err)
	}
	defer db.Close()

	// Run должен вернуть ошибку для невалидного подключения
	if err := Run(db); err == nil {
		t.Error("Expected error for invalid DB connection, got nil")
	}
}

func TestVersionWithInvalidDB(t *testing.T) {
	db, err := sql.Open("pgx", "invalid://connection")
	if err != nil {
		t.Skipf("Cannot create test DB connection: %v", err)
	}
	defer db.Close()

	if _, err := Version(db); err == nil {
		t.Error("Expected error for invalid DB connection, got nil")
	}
}
