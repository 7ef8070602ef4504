package database

import (
	"strings"
	"testing"
	"time"

	migrate "github.com/rubenv/sql-migrate"
)

func TestMigrations_EmbeddedAndOrdered(t *testing.T) {
	migrations, err := Migrations().FindMigrations()
	if err != nil {
		t.Fatalf("find migrations: %v", err)
	}
	if len(migrations) != 2 {
		t.Fatalf("expected 2 migrations, got %d", len(migrations))
	}
	if !strings.HasPrefix(migrations[0].Id, "0001") || !strings.HasPrefix(migrations[1].Id, "0002") {
		t.Fatalf("unexpected order %s, %s", migrations[0].Id, migrations[1].Id)
	}
	for _, m := range migrations {
		if len(m.Up) == 0 || len(m.Down) == 0 {
			t.Fatalf("migration %s lacks up or down statements", m.Id)
		}
	}
	if !strings.Contains(strings.Join(migrations[1].Up, "\n"), "processing_jobs") {
		t.Fatalf("second migration should create processing_jobs")
	}
}

func TestMigrationStates_MarksApplied(t *testing.T) {
	migrations, err := Migrations().FindMigrations()
	if err != nil {
		t.Fatalf("find migrations: %v", err)
	}
	appliedAt := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	records := []*migrate.MigrationRecord{{Id: migrations[0].Id, AppliedAt: appliedAt}}

	states := migrationStates(migrations, records)
	if len(states) != 2 {
		t.Fatalf("expected 2 states, got %d", len(states))
	}
	if states[0].AppliedAt == nil || !states[0].AppliedAt.Equal(appliedAt) {
		t.Fatalf("first migration should be applied at %v, got %v", appliedAt, states[0].AppliedAt)
	}
	if states[1].AppliedAt != nil {
		t.Fatalf("second migration should be pending")
	}
}
