package shared

import (
	"database/sql"
	"testing"
)

func openMemory(t *testing.T) *sql.DB {
	t.Helper()
	db, err := NewDatabase(":memory:")
	if err != nil {
		t.Fatalf("failed to create database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func appliedVersions(t *testing.T, db *sql.DB) int {
	t.Helper()
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM schema_migrations").Scan(&count); err != nil {
		t.Fatalf("failed to query schema_migrations: %v", err)
	}
	return count
}

func TestMigrations(t *testing.T) {
	t.Run("embedded files pair up by version", func(t *testing.T) {
		migrations, err := loadMigrations()
		if err != nil {
			t.Fatalf("failed to load migrations: %v", err)
		}
		if len(migrations) == 0 || migrations[0].Version != 0 {
			t.Fatalf("expected the calls migration at version 0, got %+v", migrations)
		}

		for i, m := range migrations {
			if m.Up == "" || m.Down == "" {
				t.Errorf("migration %d is missing a direction", m.Version)
			}
			if i > 0 && m.Version <= migrations[i-1].Version {
				t.Errorf("version %d sorted after %d", m.Version, migrations[i-1].Version)
			}
		}
	})

	t.Run("creates the call store schema", func(t *testing.T) {
		db := openMemory(t)
		if err := RunMigrations(db); err != nil {
			t.Fatalf("failed to run migrations: %v", err)
		}

		var next int
		if err := db.QueryRow("SELECT value FROM calls_sequence WHERE id = 1").Scan(&next); err != nil {
			t.Fatalf("expected a seeded calls sequence: %v", err)
		}
		if next != 0 {
			t.Errorf("expected sequence to start at 0, got %d", next)
		}

		if _, err := db.Exec("INSERT INTO calls (id, sequence, call_id, started_at, created_at) VALUES ('a', 1, 'x@h', CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)"); err != nil {
			t.Fatalf("failed to insert into calls: %v", err)
		}
		if _, err := db.Exec("INSERT INTO calls (id, sequence, call_id, started_at, created_at) VALUES ('b', 2, 'x@h', CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)"); err == nil {
			t.Error("expected call_id to be unique")
		}
	})

	t.Run("rerunning applies nothing new", func(t *testing.T) {
		db := openMemory(t)
		for range 2 {
			if err := RunMigrations(db); err != nil {
				t.Fatalf("failed to run migrations: %v", err)
			}
		}

		migrations, _ := loadMigrations()
		if got := appliedVersions(t, db); got != len(migrations) {
			t.Errorf("expected %d applied migrations, got %d", len(migrations), got)
		}
	})

	t.Run("rollback drops the latest migration", func(t *testing.T) {
		db := openMemory(t)
		if err := RunMigrations(db); err != nil {
			t.Fatalf("failed to run migrations: %v", err)
		}
		before := appliedVersions(t, db)

		if err := RollbackMigration(db); err != nil {
			t.Fatalf("failed to rollback: %v", err)
		}
		if got := appliedVersions(t, db); got != before-1 {
			t.Errorf("expected %d applied migrations, got %d", before-1, got)
		}
		if _, err := db.Exec("SELECT 1 FROM calls LIMIT 1"); err == nil {
			t.Error("expected calls table to be dropped")
		}

		if err := RunMigrations(db); err != nil {
			t.Fatalf("failed to re-apply migrations: %v", err)
		}
		if got := appliedVersions(t, db); got != before {
			t.Errorf("expected %d applied migrations after re-apply, got %d", before, got)
		}
	})

	t.Run("rollback with nothing applied", func(t *testing.T) {
		db := openMemory(t)
		if err := RunMigrations(db); err != nil {
			t.Fatalf("failed to run migrations: %v", err)
		}
		if err := RollbackMigration(db); err != nil {
			t.Fatalf("failed to rollback: %v", err)
		}
		if err := RollbackMigration(db); err == nil {
			t.Error("expected an error when no migration is applied")
		}
	})
}

func TestStripComments(t *testing.T) {
	tc := []struct {
		name string
		in   string
		want string
	}{
		{name: "empty", in: "", want: ""},
		{name: "comment only", in: "-- header\n  \n", want: ""},
		{name: "trailing comment", in: "CREATE TABLE t (id INT) -- note", want: "CREATE TABLE t (id INT)"},
		{name: "multi line", in: "\n  SELECT 1\n  -- skip\n  FROM t\n", want: "SELECT 1\nFROM t"},
	}

	for _, tt := range tc {
		t.Run(tt.name, func(t *testing.T) {
			if got := stripComments(tt.in); got != tt.want {
				t.Errorf("stripComments(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
