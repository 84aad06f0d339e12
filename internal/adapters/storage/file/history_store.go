// Package file implements domain.HistoryStore on a single JSON log file.
//
// The whole log is rewritten on every append: read everything, append one
// record in memory, write everything back. That keeps the format trivial
// and makes a torn write recoverable (the next load treats an unparsable
// file as empty history). One record per day means the O(total size) append
// never matters.
package file

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/sanjaykm/wellness-agent/internal/domain"
	"github.com/sanjaykm/wellness-agent/internal/observability"
	"go.uber.org/zap"
)

// HistoryStore persists check-ins as a pretty-printed JSON array at path.
type HistoryStore struct {
	path string
	now  func() time.Time
}

// NewHistoryStore creates a store writing to the given path. The file and
// its directory are created lazily on the first append.
func NewHistoryStore(path string) *HistoryStore {
	return &HistoryStore{
		path: path,
		now:  time.Now,
	}
}

// LoadHistory reads the full log. A missing file is a normal first run and
// an unparsable file is tolerated: both return an empty history, only the
// outcome differs.
func (s *HistoryStore) LoadHistory(ctx context.Context) ([]domain.HistoryRecord, domain.LoadOutcome) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []domain.HistoryRecord{}, domain.LoadAbsent
		}
		observability.LoggerFromContext(ctx).Warn("history log unreadable",
			zap.String("path", s.path),
			zap.Error(err))
		return []domain.HistoryRecord{}, domain.LoadCorrupt
	}

	var records []domain.HistoryRecord
	if err := json.Unmarshal(data, &records); err != nil {
		observability.LoggerFromContext(ctx).Warn("history log corrupt, starting empty",
			zap.String("path", s.path),
			zap.Error(err))
		return []domain.HistoryRecord{}, domain.LoadCorrupt
	}
	if records == nil {
		records = []domain.HistoryRecord{}
	}
	return records, domain.LoadOK
}

// AppendRecord stamps the completed state with the current time and rewrites
// the full log with the new record at the end. Write failures propagate.
func (s *HistoryStore) AppendRecord(ctx context.Context, state *domain.CheckInState) (domain.HistoryRecord, error) {
	record := domain.NewHistoryRecord(state, s.now())

	history, _ := s.LoadHistory(ctx)
	history = append(history, record)

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return domain.HistoryRecord{}, fmt.Errorf("create history dir: %w", err)
		}
	}

	data, err := encodeLog(history)
	if err != nil {
		return domain.HistoryRecord{}, fmt.Errorf("encode history: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return domain.HistoryRecord{}, fmt.Errorf("write history: %w", err)
	}

	observability.LoggerFromContext(ctx).Info("check-in saved",
		zap.String("path", s.path),
		zap.Int("records", len(history)))

	return record, nil
}

// encodeLog renders the log with stable 4-space indentation and HTML
// escaping off, so non-ASCII text is stored literally.
func encodeLog(records []domain.HistoryRecord) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(records); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
