package session

import (
	"strings"
	"testing"

	"github.com/sanjaykm/wellness-agent/internal/domain"
)

func strPtr(s string) *string { return &s }

func TestSummarizeLatestEmpty(t *testing.T) {
	got := SummarizeLatest(nil)
	if got != "No previous sessions yet." {
		t.Errorf("SummarizeLatest(nil) = %q", got)
	}
}

func TestSummarizeLatestUsesLastRecord(t *testing.T) {
	history := []domain.HistoryRecord{
		{
			Timestamp:  "2026-08-30T08:00:00Z",
			Mood:       strPtr("tired"),
			Energy:     strPtr("low"),
			Objectives: []string{"rest"},
		},
		{
			Timestamp:  "2026-08-31T09:00:00Z",
			Mood:       strPtr("happy"),
			Energy:     strPtr("high"),
			Objectives: []string{"read", "walk"},
		},
	}

	got := SummarizeLatest(history)
	for _, want := range []string{"2026-08-31T09:00:00Z", "happy", "high", "read, walk"} {
		if !strings.Contains(got, want) {
			t.Errorf("summary %q missing %q", got, want)
		}
	}
	if strings.Contains(got, "tired") {
		t.Errorf("summary used an older record: %q", got)
	}
}

func TestBuildInstructionsEmbedsContext(t *testing.T) {
	instructions := BuildInstructions("Last check-in on X.")
	if !strings.Contains(instructions, "Last check-in on X.") {
		t.Errorf("instructions missing history context:\n%s", instructions)
	}
	if !strings.Contains(instructions, "complete_checkin") {
		t.Errorf("instructions missing tool guidance:\n%s", instructions)
	}
}
