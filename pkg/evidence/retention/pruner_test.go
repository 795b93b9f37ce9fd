package retention

import (
	"context"
	"fmt"
	"testing"
	"time"

	"stellium-hq/horarium/pkg/evidence"
	"stellium-hq/horarium/pkg/evidence/storage"
)

func seedRecords(t *testing.T, store evidence.Storage, agesInDays ...int) {
	t.Helper()
	now := time.Now()
	for i, age := range agesInDays {
		record := &evidence.VerdictRecord{
			ID:          fmt.Sprintf("r%d", i),
			ChartID:     fmt.Sprintf("chart-%d", i),
			EvaluatedAt: now.AddDate(0, 0, -age),
			RecordedAt:  now,
			Verdict:     "NO",
			Confidence:  0.2,
			Proof:       []string{"no-path"},
		}
		if err := store.Store(context.Background(), record); err != nil {
			t.Fatalf("Store() error = %v", err)
		}
	}
}

func TestPruner_PruneByAge(t *testing.T) {
	store := storage.NewMemoryStorage()
	defer store.Close()
	seedRecords(t, store, 1, 30, 100, 400)

	pruner := NewPruner(store, &Config{RetentionDays: 90})
	deleted, err := pruner.Prune(context.Background())
	if err != nil {
		t.Fatalf("Prune() error = %v", err)
	}

	if deleted != 2 {
		t.Errorf("Prune() deleted %d, want 2", deleted)
	}

	remaining, err := store.Count(context.Background(), &evidence.Query{})
	if err != nil {
		t.Fatalf("Count() error = %v", err)
	}
	if remaining != 2 {
		t.Errorf("remaining = %d, want 2", remaining)
	}
}

func TestPruner_PruneByCount(t *testing.T) {
	store := storage.NewMemoryStorage()
	defer store.Close()
	seedRecords(t, store, 1, 2, 3, 4, 5)

	pruner := NewPruner(store, &Config{RetentionDays: 0, MaxRecords: 2})
	deleted, err := pruner.Prune(context.Background())
	if err != nil {
		t.Fatalf("Prune() error = %v", err)
	}

	if deleted != 3 {
		t.Errorf("Prune() deleted %d, want 3", deleted)
	}

	// The newest records survive.
	records, err := store.Query(context.Background(), &evidence.Query{})
	if err != nil {
		t.Fatalf("Query() error = %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("remaining = %d, want 2", len(records))
	}
	for _, record := range records {
		if record.ID != "r0" && record.ID != "r1" {
			t.Errorf("unexpected survivor %q, want r0 and r1", record.ID)
		}
	}
}

func TestPruner_NoOpWhenDisabled(t *testing.T) {
	store := storage.NewMemoryStorage()
	defer store.Close()
	seedRecords(t, store, 1000)

	pruner := NewPruner(store, &Config{RetentionDays: 0, MaxRecords: 0})
	deleted, err := pruner.Prune(context.Background())
	if err != nil {
		t.Fatalf("Prune() error = %v", err)
	}
	if deleted != 0 {
		t.Errorf("Prune() deleted %d, want 0", deleted)
	}
}

func TestScheduler_InvalidCron(t *testing.T) {
	store := storage.NewMemoryStorage()
	defer store.Close()

	pruner := NewPruner(store, &Config{RetentionDays: 1, PruneSchedule: "not a cron"})
	if err := pruner.Start(context.Background()); err == nil {
		t.Error("Start() with invalid cron: expected error, got nil")
	}
}

func TestScheduler_EmptyScheduleIsNoOp(t *testing.T) {
	store := storage.NewMemoryStorage()
	defer store.Close()

	pruner := NewPruner(store, &Config{RetentionDays: 1, PruneSchedule: ""})
	if err := pruner.Start(context.Background()); err != nil {
		t.Errorf("Start() with empty schedule: error = %v, want nil", err)
	}
	pruner.Stop()
}
