package repository

import (
	"strings"
	"testing"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// banco em modo dry-run: monta o SQL sem conectar
func dryRunDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN: "host=localhost user=test dbname=test",
	}), &gorm.Config{
		DryRun:               true,
		DisableAutomaticPing: true,
	})
	if err != nil {
		t.Fatalf("opening dry-run db: %v", err)
	}
	return db
}

func conflictSQL(t *testing.T, db *gorm.DB, excludeID uint) string {
	t.Helper()

	start := time.Date(2026, 9, 7, 10, 0, 0, 0, time.UTC)
	end := start.Add(time.Hour)

	var ids []uint
	stmt := conflictQuery(db, 3, start, end, excludeID).Pluck("id", &ids).Statement
	return stmt.SQL.String()
}

func TestConflictQueryLocksRowsWithoutAggregate(t *testing.T) {
	sql := conflictSQL(t, dryRunDB(t), 0)
	lower := strings.ToLower(sql)

	// Postgres rejeita agregação combinada com FOR UPDATE (0A000);
	// a checagem precisa materializar linhas, nunca count(*)
	if strings.Contains(lower, "count(") {
		t.Fatalf("conflict check aggregates under FOR UPDATE: %s", sql)
	}
	if !strings.Contains(sql, "FOR UPDATE") {
		t.Errorf("conflict check does not lock matched rows: %s", sql)
	}
	if !strings.Contains(lower, "start_at < ") || !strings.Contains(lower, "end_at > ") {
		t.Errorf("half-open overlap predicate missing: %s", sql)
	}
	if !strings.Contains(lower, "status in") {
		t.Errorf("busy-status filter missing: %s", sql)
	}
}

func TestConflictQueryExcludesSelfOnReschedule(t *testing.T) {
	db := dryRunDB(t)

	if sql := conflictSQL(t, db, 0); strings.Contains(sql, "id <> ") {
		t.Errorf("create path must not exclude any row: %s", sql)
	}
	if sql := conflictSQL(t, db, 42); !strings.Contains(sql, "id <> ") {
		t.Errorf("reschedule path must exclude the appointment itself: %s", sql)
	}
}
