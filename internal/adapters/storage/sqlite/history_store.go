// Package sqlite implements domain.HistoryStore on a local SQLite database.
// It is an alternate backend for deployments that outgrow the JSON log;
// the record shape it stores round-trips to the same log format.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/oklog/ulid/v2"
	_ "modernc.org/sqlite"

	"github.com/sanjaykm/wellness-agent/internal/domain"
	"github.com/sanjaykm/wellness-agent/internal/observability"
	"go.uber.org/zap"
)

// HistoryStore implements domain.HistoryStore using SQLite.
type HistoryStore struct {
	db      *sql.DB
	entropy *rand.Rand
	now     func() time.Time
}

// NewHistoryStore opens or creates a SQLite database at the given path.
func NewHistoryStore(dbPath string) (*HistoryStore, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=foreign_keys(on)")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	s := &HistoryStore{
		db:      db,
		entropy: rand.New(rand.NewSource(time.Now().UnixNano())),
		now:     time.Now,
	}

	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return s, nil
}

func (s *HistoryStore) newID() string {
	return ulid.MustNew(ulid.Timestamp(time.Now()), s.entropy).String()
}

func (s *HistoryStore) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS checkins (
		id          TEXT PRIMARY KEY,
		timestamp   TEXT NOT NULL,
		mood        TEXT,
		energy      TEXT,
		objectives  TEXT NOT NULL,
		summary     TEXT
	);
	CREATE INDEX IF NOT EXISTS idx_checkins_timestamp ON checkins(timestamp);
	`
	_, err := s.db.Exec(schema)
	return err
}

// LoadHistory returns all check-ins in insertion order. Query failures are
// reported at warn level and swallowed, matching the file backend: an
// unreadable log never blocks a new session.
func (s *HistoryStore) LoadHistory(ctx context.Context) ([]domain.HistoryRecord, domain.LoadOutcome) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT timestamp, mood, energy, objectives, summary FROM checkins ORDER BY rowid`)
	if err != nil {
		observability.LoggerFromContext(ctx).Warn("history query failed, starting empty",
			zap.Error(err))
		return []domain.HistoryRecord{}, domain.LoadCorrupt
	}
	defer rows.Close()

	records := []domain.HistoryRecord{}
	for rows.Next() {
		var rec domain.HistoryRecord
		var mood, energy, summary sql.NullString
		var objectivesJSON string

		if err := rows.Scan(&rec.Timestamp, &mood, &energy, &objectivesJSON, &summary); err != nil {
			observability.LoggerFromContext(ctx).Warn("history row unreadable, starting empty",
				zap.Error(err))
			return []domain.HistoryRecord{}, domain.LoadCorrupt
		}
		if mood.Valid {
			rec.Mood = &mood.String
		}
		if energy.Valid {
			rec.Energy = &energy.String
		}
		if summary.Valid {
			rec.Summary = &summary.String
		}
		if err := json.Unmarshal([]byte(objectivesJSON), &rec.Objectives); err != nil {
			observability.LoggerFromContext(ctx).Warn("history objectives unreadable, starting empty",
				zap.Error(err))
			return []domain.HistoryRecord{}, domain.LoadCorrupt
		}
		records = append(records, rec)
	}

	if len(records) == 0 {
		return records, domain.LoadAbsent
	}
	return records, domain.LoadOK
}

// AppendRecord inserts one completed check-in. Write failures propagate.
func (s *HistoryStore) AppendRecord(ctx context.Context, state *domain.CheckInState) (domain.HistoryRecord, error) {
	record := domain.NewHistoryRecord(state, s.now())

	objectivesJSON, err := json.Marshal(record.Objectives)
	if err != nil {
		return domain.HistoryRecord{}, fmt.Errorf("encode objectives: %w", err)
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO checkins (id, timestamp, mood, energy, objectives, summary)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		s.newID(), record.Timestamp, record.Mood, record.Energy,
		string(objectivesJSON), record.Summary)
	if err != nil {
		return domain.HistoryRecord{}, fmt.Errorf("insert checkin: %w", err)
	}

	return record, nil
}

// Close closes the underlying database.
func (s *HistoryStore) Close() error {
	return s.db.Close()
}
