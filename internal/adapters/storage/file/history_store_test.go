package file

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/sanjaykm/wellness-agent/internal/domain"
)

func newTestStore(t *testing.T) *HistoryStore {
	t.Helper()
	dir := t.TempDir()
	return NewHistoryStore(filepath.Join(dir, "wellness_log.json"))
}

func completedState() *domain.CheckInState {
	state := domain.NewCheckInState()
	state.SetMoodEnergy("happy", "high")
	state.SetObjectives([]string{"read", "walk"})
	state.SetAdvice("Keep it up!")
	return state
}

func TestLoadHistoryAbsent(t *testing.T) {
	s := newTestStore(t)

	records, outcome := s.LoadHistory(context.Background())
	if outcome != domain.LoadAbsent {
		t.Errorf("outcome = %v, want LoadAbsent", outcome)
	}
	if len(records) != 0 {
		t.Errorf("expected empty history, got %d records", len(records))
	}
}

func TestLoadHistoryCorrupt(t *testing.T) {
	s := newTestStore(t)
	if err := os.WriteFile(s.path, []byte("not json at all"), 0o644); err != nil {
		t.Fatal(err)
	}

	records, outcome := s.LoadHistory(context.Background())
	if outcome != domain.LoadCorrupt {
		t.Errorf("outcome = %v, want LoadCorrupt", outcome)
	}
	if len(records) != 0 {
		t.Errorf("expected empty history, got %d records", len(records))
	}
}

func TestLoadHistoryNonListContent(t *testing.T) {
	s := newTestStore(t)
	if err := os.WriteFile(s.path, []byte(`{"timestamp": "x"}`), 0o644); err != nil {
		t.Fatal(err)
	}

	records, outcome := s.LoadHistory(context.Background())
	if outcome != domain.LoadCorrupt {
		t.Errorf("outcome = %v, want LoadCorrupt", outcome)
	}
	if len(records) != 0 {
		t.Errorf("expected empty history, got %d records", len(records))
	}
}

func TestAppendRecord(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	s.now = func() time.Time {
		return time.Date(2026, 8, 31, 9, 0, 0, 0, time.UTC)
	}

	rec, err := s.AppendRecord(ctx, completedState())
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
	if got.Mood == nil || *got.Mood != "happy" {
		t.Errorf("mood = %v", got.Mood)
	}
	if got.Energy == nil || *got.Energy != "high" {
		t.Errorf("energy = %v", got.Energy)
	}
	if len(got.Objectives) != 2 || got.Objectives[1] != "walk" {
		t.Errorf("objectives = %v", got.Objectives)
	}
	if got.Summary == nil || *got.Summary != "Keep it up!" {
		t.Errorf("summary = %v", got.Summary)
	}
}

func TestAppendRecordGrowsByOne(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	for i := 1; i <= 3; i++ {
		if _, err := s.AppendRecord(ctx, completedState()); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
		records, _ := s.LoadHistory(ctx)
		if len(records) != i {
			t.Fatalf("after %d appends got %d records", i, len(records))
		}
	}
}

func TestAppendRecoversFromCorruptLog(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	if err := os.WriteFile(s.path, []byte("garbage"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := s.AppendRecord(ctx, completedState()); err != nil {
		t.Fatalf("append over corrupt log: %v", err)
	}

	records, outcome := s.LoadHistory(ctx)
	if outcome != domain.LoadOK {
		t.Errorf("outcome = %v, want LoadOK", outcome)
	}
	if len(records) != 1 {
		t.Errorf("expected 1 record, got %d", len(records))
	}
}

func TestLogFormatPreservesNonASCII(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	state := domain.NewCheckInState()
	state.SetMoodEnergy("contento", "más tranquilo")
	state.SetObjectives([]string{"salir a caminar"})
	state.SetAdvice("¡Buen día!")

	if _, err := s.AppendRecord(ctx, state); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		t.Fatal(err)
	}
	content := string(data)
	if !strings.Contains(content, "más tranquilo") {
		t.Errorf("non-ASCII text was escaped:\n%s", content)
	}
	if !strings.Contains(content, "\n    ") {
		t.Errorf("log is not indented:\n%s", content)
	}
}

func TestAppendCreatesParentDir(t *testing.T) {
	dir := t.TempDir()
	s := NewHistoryStore(filepath.Join(dir, "nested", "deeper", "log.json"))

	if _, err := s.AppendRecord(context.Background(), completedState()); err != nil {
		t.Fatalf("append: %v", err)
	}
	if _, err := os.Stat(s.path); err != nil {
		t.Fatalf("log file missing: %v", err)
	}
}
