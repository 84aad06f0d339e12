package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/sanjaykm/wellness-agent/internal/domain"
)

func newTestStore(t *testing.T) *HistoryStore {
	t.Helper()
	dir := t.TempDir()
	s, err := NewHistoryStore(filepath.Join(dir, "wellness.db"))
	if err != nil {
		t.Fatalf("create store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestEmptyDatabase(t *testing.T) {
	s := newTestStore(t)

	records, outcome := s.LoadHistory(context.Background())
	if outcome != domain.LoadAbsent {
		t.Errorf("outcome = %v, want LoadAbsent", outcome)
	}
	if len(records) != 0 {
		t.Errorf("expected empty history, got %d", len(records))
	}
}

func TestAppendAndLoad(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	s.now = func() time.Time {
		return time.Date(2026, 8, 31, 9, 0, 0, 0, time.UTC)
	}

	state := domain.NewCheckInState()
	state.SetMoodEnergy("stressed", "low")
	state.SetObjectives([]string{"breathe", "stretch", "walk"})
	state.SetAdvice("One thing at a time.")

	rec, err := s.AppendRecord(ctx, state)
	if err != nil {
		t.Fatalf("append: %v", err)
	}
	if rec.Timestamp != "2026-08-31T09:00:00Z" {
		t.Errorf("timestamp = %q", rec.Timestamp)
	}

	records, outcome := s.LoadHistory(ctx)
	if outcome != domain.LoadOK {
		t.Fatalf("outcome = %v, want LoadOK", outcome)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}

	got := records[0]
	if got.Mood == nil || *got.Mood != "stressed" {
		t.Errorf("mood = %v", got.Mood)
	}
	if len(got.Objectives) != 3 || got.Objectives[2] != "walk" {
		t.Errorf("objectives = %v", got.Objectives)
	}
	if got.Summary == nil || *got.Summary != "One thing at a time." {
		t.Errorf("summary = %v", got.Summary)
	}
}

func TestInsertionOrderPreserved(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	moods := []string{"first", "second", "third"}
	for _, mood := range moods {
		state := domain.NewCheckInState()
		state.SetMoodEnergy(mood, "high")
		state.SetObjectives([]string{"x"})
		if _, err := s.AppendRecord(ctx, state); err != nil {
			t.Fatalf("append %s: %v", mood, err)
		}
	}

	records, _ := s.LoadHistory(ctx)
	if len(records) != 3 {
		t.Fatalf("expected 3 records, got %d", len(records))
	}
	for i, mood := range moods {
		if records[i].Mood == nil || *records[i].Mood != mood {
			t.Errorf("records[%d].Mood = %v, want %s", i, records[i].Mood, mood)
		}
	}
}

func TestNullableFields(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	// Records are normally complete, but the schema tolerates null mood,
	// energy and summary so a log written by hand still loads.
	state := domain.NewCheckInState()
	state.SetObjectives([]string{"only goals"})

	if _, err := s.AppendRecord(ctx, state); err != nil {
		t.Fatalf("append: %v", err)
	}

	records, _ := s.LoadHistory(ctx)
	if records[0].Mood != nil || records[0].Energy != nil || records[0].Summary != nil {
		t.Errorf("expected nil mood/energy/summary, got %+v", records[0])
	}
}
