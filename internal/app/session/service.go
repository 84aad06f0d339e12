package session

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/sanjaykm/wellness-agent/internal/domain"
	"github.com/sanjaykm/wellness-agent/internal/observability"
)

// Service owns the check-in lifecycle: it starts sessions seeded with the
// history summary, applies tool invocations to the session's CheckInState
// and persists the record on completion.
type Service struct {
	llm          domain.LLMClient
	sessionStore domain.SessionStore
	historyStore domain.HistoryStore
	now          func() time.Time
}

func NewService(
	llm domain.LLMClient,
	sessionStore domain.SessionStore,
	historyStore domain.HistoryStore,
) *Service {
	return &Service{
		llm:          llm,
		sessionStore: sessionStore,
		historyStore: historyStore,
		now:          time.Now,
	}
}

type StartSessionInput struct {
	UserID domain.UserID
}

type StartSessionOutput struct {
	Session      *domain.Session
	Instructions string
	Greeting     *domain.Message
}

// StartSession loads the history log, summarizes its most recent entry and
// binds a fresh CheckInState for the lifetime of the session.
func (s *Service) StartSession(ctx context.Context, in StartSessionInput) (*StartSessionOutput, error) {
	now := s.now()

	log := observability.LoggerFromContext(ctx).With(
		zap.String("user_id", string(in.UserID)),
	)
	log.Info("starting new session")

	history, outcome := s.historyStore.LoadHistory(ctx)
	if outcome == domain.LoadOK {
		log.Info("loaded history", zap.Int("records", len(history)))
	}
	summary := SummarizeLatest(history)

	session := &domain.Session{
		ID:             domain.SessionID(uuid.NewString()),
		UserID:         in.UserID,
		CreatedAt:      now,
		UpdatedAt:      now,
		CheckIn:        domain.NewCheckInState(),
		HistoryContext: summary,
	}

	greeting := &domain.Message{
		ID:        domain.MessageID(uuid.NewString()),
		SessionID: session.ID,
		Author:    domain.RoleAgent,
		Text:      "Hi, I'm your daily wellness companion. How are you feeling today?",
		CreatedAt: now,
	}
	session.Transcript = append(session.Transcript, greeting)

	if err := s.sessionStore.CreateSession(session); err != nil {
		log.Error("failed to create session", zap.Error(err))
		return nil, err
	}

	log.Info("session started", zap.String("session_id", string(session.ID)))

	return &StartSessionOutput{
		Session:      session,
		Instructions: BuildInstructions(summary),
		Greeting:     greeting,
	}, nil
}

// RecordMoodEnergy overwrites both fields and acknowledges them. Repeated
// calls overwrite again; there is no merge.
func (s *Service) RecordMoodEnergy(ctx context.Context, sessionID domain.SessionID, mood, energy string) (string, error) {
	session, err := s.sessionStore.GetSession(sessionID)
	if err != nil {
		return "", err
	}

	session.CheckIn.SetMoodEnergy(mood, energy)
	session.UpdatedAt = s.now()
	if err := s.sessionStore.UpdateSession(session); err != nil {
		return "", err
	}

	observability.LoggerFromContext(ctx).Info("recorded mood and energy",
		zap.String("session_id", string(sessionID)),
		zap.String("mood", mood),
		zap.String("energy", energy))

	return fmt.Sprintf("Got it — you're feeling %s with %s energy.", mood, energy), nil
}

// RecordObjectives replaces the whole objectives list and acknowledges it.
func (s *Service) RecordObjectives(ctx context.Context, sessionID domain.SessionID, objectives []string) (string, error) {
	session, err := s.sessionStore.GetSession(sessionID)
	if err != nil {
		return "", err
	}

	session.CheckIn.SetObjectives(objectives)
	session.UpdatedAt = s.now()
	if err := s.sessionStore.UpdateSession(session); err != nil {
		return "", err
	}

	observability.LoggerFromContext(ctx).Info("recorded objectives",
		zap.String("session_id", string(sessionID)),
		zap.Strings("objectives", objectives))

	return "I've noted down your goals for today.", nil
}

// CompleteCheckIn validates the check-in and, when complete, appends it to
// the history log and returns the spoken recap. An incomplete check-in gets
// a corrective prompt instead; nothing is persisted. Once a check-in has
// been persisted a repeat call returns the recap again without appending a
// second record.
func (s *Service) CompleteCheckIn(ctx context.Context, sessionID domain.SessionID, summary string) (string, error) {
	session, err := s.sessionStore.GetSession(sessionID)
	if err != nil {
		return "", err
	}
	state := session.CheckIn

	log := observability.LoggerFromContext(ctx).With(
		zap.String("session_id", string(sessionID)),
	)

	if state.Persisted {
		log.Info("check-in already persisted, returning recap")
		return recapText(state), nil
	}

	state.SetAdvice(summary)

	if !state.IsComplete() {
		log.Info("check-in incomplete, asking for missing fields")
		return "I still need your mood, energy, and at least one goal before finishing.", nil
	}

	record, err := s.historyStore.AppendRecord(ctx, state)
	if err != nil {
		log.Error("failed to append check-in", zap.Error(err))
		return "", fmt.Errorf("persist check-in: %w", err)
	}

	state.Persisted = true
	session.UpdatedAt = s.now()
	if err := s.sessionStore.UpdateSession(session); err != nil {
		return "", err
	}

	log.Info("check-in completed", zap.String("timestamp", record.Timestamp))

	return recapText(state), nil
}

type SendMessageInput struct {
	SessionID domain.SessionID
	Text      string
}

type SendMessageOutput struct {
	UserMessage  *domain.Message
	AgentMessage *domain.Message
}

// SendMessage runs one dialogue turn through the language-reasoning
// collaborator, carrying the session transcript and history context.
func (s *Service) SendMessage(ctx context.Context, in SendMessageInput) (*SendMessageOutput, error) {
	session, err := s.sessionStore.GetSession(in.SessionID)
	if err != nil {
		return nil, err
	}

	log := observability.LoggerFromContext(ctx).With(
		zap.String("session_id", string(session.ID)),
		zap.String("user_id", string(session.UserID)),
	)
	log.Info("dialogue turn", zap.String("text", in.Text))

	now := s.now()
	userMsg := &domain.Message{
		ID:        domain.MessageID(uuid.NewString()),
		SessionID: session.ID,
		Author:    domain.RoleUser,
		Text:      in.Text,
		CreatedAt: now,
	}
	session.Transcript = append(session.Transcript, userMsg)

	convCtx := domain.ConversationContext{
		SessionID:      session.ID,
		UserID:         session.UserID,
		HistoryContext: session.HistoryContext,
		Transcript:     session.Transcript,
	}

	replyText, err := s.llm.GenerateReply(ctx, in.Text, convCtx)
	if err != nil {
		log.Error("llm failed", zap.Error(err))
		return nil, err
	}

	agentMsg := &domain.Message{
		ID:        domain.MessageID(uuid.NewString()),
		SessionID: session.ID,
		Author:    domain.RoleAgent,
		Text:      replyText,
		CreatedAt: s.now(),
	}
	session.Transcript = append(session.Transcript, agentMsg)

	session.UpdatedAt = s.now()
	if err := s.sessionStore.UpdateSession(session); err != nil {
		return nil, err
	}

	return &SendMessageOutput{
		UserMessage:  userMsg,
		AgentMessage: agentMsg,
	}, nil
}

// GetSession exposes the session snapshot for read-only callers.
func (s *Service) GetSession(ctx context.Context, id domain.SessionID) (*domain.Session, error) {
	return s.sessionStore.GetSession(id)
}

func recapText(state *domain.CheckInState) string {
	reminder := ""
	if state.AdviceGiven != nil {
		reminder = *state.AdviceGiven
	}
	return fmt.Sprintf(`Here's your daily recap:
• Mood: %s
• Energy: %s
• Goals: %s

Reminder: %s
Your check-in has been saved. Have a great day!`,
		textOrEmpty(state.Mood),
		textOrEmpty(state.Energy),
		strings.Join(state.Objectives, ", "),
		reminder,
	)
}

func textOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
