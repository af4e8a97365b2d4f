package eventstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"testing"

	"github.com/google/uuid"
	_ "github.com/lib/pq"
)

// setupTestDB attempts to connect to a PostgreSQL database for testing.
// It skips the test if the connection cannot be established.
func setupTestDB(t testing.TB) *sql.DB {
	t.Helper()

	pgUser := os.Getenv("PGUSER")
	pgPassword := os.Getenv("PGPASSWORD")
	pgHost := os.Getenv("PGHOST")
	pgPort := os.Getenv("PGPORT")
	pgDB := os.Getenv("PGDATABASE")

	if pgUser == "" {
		pgUser = "user"
	}
	if pgPassword == "" {
		pgPassword = "password"
	}
	if pgHost == "" {
		pgHost = "localhost"
	}
	if pgPort == "" {
		pgPort = "5432"
	}
	if pgDB == "" {
		pgDB = "testdb"
	}

	connStr := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		pgHost, pgPort, pgUser, pgPassword, pgDB)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		t.Fatalf("failed to open database connection: %v", err)
	}

	if err := db.Ping(); err != nil {
		t.Skipf("skipping: could not connect to postgres: %v", err)
	}

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS events (
			id BIGSERIAL PRIMARY KEY,
			aggregate_id UUID NOT NULL,
			aggregate_type TEXT NOT NULL,
			event_type TEXT NOT NULL,
			event_data JSONB NOT NULL,
			metadata JSONB,
			version INT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			UNIQUE (aggregate_id, version)
		);
		CREATE TABLE IF NOT EXISTS snapshots (
			aggregate_id UUID PRIMARY KEY,
			aggregate_type TEXT NOT NULL,
			version INT NOT NULL,
			state JSONB NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);
	`)
	if err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}

	return db
}

type dayTickedEvent struct {
	Day int `json:"day"`
}

func TestAppendDetectsVersionConflict(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()
	store := NewEventStore(db)

	aggregateID := uuid.New()
	data, _ := json.Marshal(dayTickedEvent{Day: 1})
	events := []Event{{EventType: "DayTicked", EventData: data}}

	if err := store.AppendEvents(context.Background(), aggregateID, "course", 0, events); err != nil {
		t.Fatalf("first append failed: %v", err)
	}

	// Appending again at version 0 must conflict: the aggregate is at 1.
	err := store.AppendEvents(context.Background(), aggregateID, "course", 0, events)
	if err != ErrConcurrencyConflict {
		t.Fatalf("expected ErrConcurrencyConflict, got %v", err)
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()
	store := NewEventStore(db)

	aggregateID := uuid.New()
	state, _ := json.Marshal(map[string]int{"day": 42})

	err := store.SaveSnapshot(context.Background(), Snapshot{
		AggregateID:   aggregateID,
		AggregateType: "course",
		Version:       3,
		State:         state,
	})
	if err != nil {
		t.Fatalf("save snapshot: %v", err)
	}

	snap, err := store.LoadSnapshot(context.Background(), aggregateID)
	if err != nil {
		t.Fatalf("load snapshot: %v", err)
	}
	if snap == nil || snap.Version != 3 {
		t.Fatalf("unexpected snapshot: %+v", snap)
	}

	// A stale save must not overwrite the newer version.
	if err := store.SaveSnapshot(context.Background(), Snapshot{
		AggregateID:   aggregateID,
		AggregateType: "course",
		Version:       2,
		State:         state,
	}); err != nil {
		t.Fatalf("stale save: %v", err)
	}
	snap, _ = store.LoadSnapshot(context.Background(), aggregateID)
	if snap.Version != 3 {
		t.Fatalf("stale snapshot overwrote newer one: %+v", snap)
	}
}

func BenchmarkAppendEvents(b *testing.B) {
	db := setupTestDB(b)
	defer db.Close()
	store := NewEventStore(db)

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		b.StopTimer()
		aggregateID := uuid.New()
		eventData, _ := json.Marshal(dayTickedEvent{Day: i})
		events := []Event{
			{
				EventType: "DayTicked",
				EventData: eventData,
			},
		}
		b.StartTimer()

		err := store.AppendEvents(context.Background(), aggregateID, "course", 0, events)
		if err != nil {
			b.Fatalf("AppendEvents failed: %v", err)
		}
	}
}

func BenchmarkLoadEvents(b *testing.B) {
	db := setupTestDB(b)
	defer db.Close()
	store := NewEventStore(db)

	aggregateID := uuid.New()
	for i := 0; i < 10; i++ {
		eventData, _ := json.Marshal(dayTickedEvent{Day: i})
		events := []Event{
			{
				EventType: "DayTicked",
				EventData: eventData,
			},
		}
		err := store.AppendEvents(context.Background(), aggregateID, "course", i, events)
		if err != nil {
			b.Fatalf("failed to setup events for benchmark: %v", err)
		}
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, err := store.LoadEvents(context.Background(), aggregateID, 0, 0)
		if err != nil {
			b.Fatalf("LoadEvents failed: %v", err)
		}
	}
}
