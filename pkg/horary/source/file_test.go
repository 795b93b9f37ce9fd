package source

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"stellium-hq/horarium/pkg/horary"
)

const validChart = `
id: q-ship
question: "Will the ship return?"
retrograde: false
aspect_timeline:
  - type: direct
    status: separating
  - type: translation
    status: applying
blockers:
  - combustion
modulators:
  dignities: 0.3
`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}

func TestFileSource_LoadSingleFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "ship.yaml", validChart)

	src := NewFileSource(path, nil)
	charts, err := src.LoadCharts(context.Background())
	if err != nil {
		t.Fatalf("LoadCharts() error = %v", err)
	}

	if len(charts) != 1 {
		t.Fatalf("LoadCharts() returned %d charts, want 1", len(charts))
	}

	chart := charts[0]
	if chart.ID != "q-ship" {
		t.Errorf("ID = %q, want %q", chart.ID, "q-ship")
	}
	if len(chart.AspectTimeline) != 2 {
		t.Fatalf("timeline length = %d, want 2", len(chart.AspectTimeline))
	}
	if chart.AspectTimeline[1].Type != horary.AspectTranslation {
		t.Errorf("timeline[1].Type = %q, want translation", chart.AspectTimeline[1].Type)
	}
	if chart.AspectTimeline[1].Status != horary.StatusApplying {
		t.Errorf("timeline[1].Status = %q, want applying", chart.AspectTimeline[1].Status)
	}
	if !chart.HasBlocker(horary.BlockerCombustion) {
		t.Error("combustion blocker not loaded")
	}
	if got := chart.Modulator(horary.ModulatorDignities); got != 0.3 {
		t.Errorf("dignities modulator = %v, want 0.3", got)
	}
}

func TestFileSource_LoadDirectory(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.yaml", "id: chart-a\naspect_timeline: []\n")
	writeFile(t, dir, "b.yml", "id: chart-b\naspect_timeline: []\n")
	writeFile(t, dir, "notes.txt", "not a chart")
	writeFile(t, dir, "broken.yaml", "id: [unclosed\n")

	src := NewFileSource(dir, nil)
	charts, err := src.LoadCharts(context.Background())
	if err != nil {
		t.Fatalf("LoadCharts() error = %v", err)
	}

	// Invalid and non-YAML files are skipped, not fatal.
	if len(charts) != 2 {
		t.Fatalf("LoadCharts() returned %d charts, want 2", len(charts))
	}
}

func TestFileSource_MissingIDDefaultsToFileName(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "anon.yaml", "aspect_timeline: []\n")

	src := NewFileSource(dir, nil)
	charts, err := src.LoadCharts(context.Background())
	if err != nil {
		t.Fatalf("LoadCharts() error = %v", err)
	}
	if len(charts) != 1 {
		t.Fatalf("LoadCharts() returned %d charts, want 1", len(charts))
	}
	if charts[0].ID != "anon.yaml" {
		t.Errorf("ID = %q, want %q", charts[0].ID, "anon.yaml")
	}
}

func TestFileSource_LoadMissingPath(t *testing.T) {
	src := NewFileSource(filepath.Join(t.TempDir(), "nope"), nil)
	if _, err := src.LoadCharts(context.Background()); err == nil {
		t.Error("LoadCharts() on missing path: expected error, got nil")
	}
}

func TestFileSource_Watch(t *testing.T) {
	dir := t.TempDir()
	src := NewFileSource(dir, nil)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	eventCh, err := src.Watch(ctx)
	if err != nil {
		t.Fatalf("Watch() error = %v", err)
	}

	writeFile(t, dir, "new.yaml", "id: chart-new\naspect_timeline: []\n")

	select {
	case event := <-eventCh:
		if event.Error != nil {
			t.Fatalf("watch event error = %v", event.Error)
		}
		if event.Type != ChartEventCreated && event.Type != ChartEventModified {
			t.Errorf("event type = %q, want created or modified", event.Type)
		}
		if filepath.Base(event.Path) != "new.yaml" {
			t.Errorf("event path = %q, want new.yaml", event.Path)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for chart event")
	}

	cancel()

	// The event channel must close once the context is cancelled.
	select {
	case _, ok := <-eventCh:
		if ok {
			// Drain any buffered event; the close must still follow.
			select {
			case _, ok := <-eventCh:
				if ok {
					t.Error("event channel still open after cancel")
				}
			case <-time.After(5 * time.Second):
				t.Fatal("timed out waiting for channel close")
			}
		}
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for channel close")
	}
}

func TestFileSource_WatchIgnoresNonYAML(t *testing.T) {
	dir := t.TempDir()
	src := NewFileSource(dir, nil)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	eventCh, err := src.Watch(ctx)
	if err != nil {
		t.Fatalf("Watch() error = %v", err)
	}

	writeFile(t, dir, "readme.txt", "irrelevant")

	select {
	case event := <-eventCh:
		t.Errorf("unexpected event for non-YAML file: %+v", event)
	case <-time.After(300 * time.Millisecond):
		// No event: correct.
	}
}
