package domain

import "time"

// Message is one turn of the session transcript (user or agent).
type Message struct {
	ID        MessageID
	SessionID SessionID
	Author    Role
	Text      string
	CreatedAt Timestamp
}

// Session binds one user, one check-in and the pre-loaded history context
// for the duration of a conversational session.
type Session struct {
	ID        SessionID
	UserID    UserID
	CreatedAt time.Time
	UpdatedAt time.Time

	// CheckIn is the single in-progress check-in owned by this session.
	CheckIn *CheckInState

	// HistoryContext is the natural-language summary of the most recent
	// prior check-in, loaded once at session start.
	HistoryContext string

	// Transcript holds the in-memory dialogue turns of this session.
	Transcript []*Message
}

// SessionStore defines session persistence for the lifetime of the process.
type SessionStore interface {
	CreateSession(session *Session) error
	UpdateSession(session *Session) error
	GetSession(id SessionID) (*Session, error)
}
