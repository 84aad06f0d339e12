package domain

import (
	"context"
	"time"
)

// HistoryRecord is one completed check-in, immutable once written.
// Field names and shapes are the durable log format.
type HistoryRecord struct {
	Timestamp  string   `json:"timestamp"`
	Mood       *string  `json:"mood"`
	Energy     *string  `json:"energy"`
	Objectives []string `json:"objectives"`
	Summary    *string  `json:"summary"`
}

// NewHistoryRecord copies a completed check-in into its persisted form.
// The timestamp is assigned at write time, not at check-in start.
func NewHistoryRecord(state *CheckInState, now time.Time) HistoryRecord {
	return HistoryRecord{
		Timestamp:  now.Format(time.RFC3339),
		Mood:       state.Mood,
		Energy:     state.Energy,
		Objectives: append([]string(nil), state.Objectives...),
		Summary:    state.AdviceGiven,
	}
}

// LoadOutcome tags what LoadHistory found at the storage location.
type LoadOutcome int

const (
	// LoadOK means the log was read and parsed.
	LoadOK LoadOutcome = iota
	// LoadAbsent means no log exists yet (a normal first run).
	LoadAbsent
	// LoadCorrupt means the log exists but could not be parsed as a list
	// of records. A corrupted log must never block a new session, so the
	// store reports it and returns an empty history.
	LoadCorrupt
)

// HistoryStore defines the minimum operations to persist completed check-ins.
type HistoryStore interface {
	// LoadHistory returns all records in chronological (insertion) order.
	// Read problems are never surfaced as errors; the outcome says whether
	// the log was missing or unreadable.
	LoadHistory(ctx context.Context) ([]HistoryRecord, LoadOutcome)

	// AppendRecord builds a record from the completed state, stamps it with
	// the current time and appends it durably. Write failures propagate.
	AppendRecord(ctx context.Context, state *CheckInState) (HistoryRecord, error)
}
