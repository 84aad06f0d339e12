package httpadapter

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/sanjaykm/wellness-agent/internal/app/session"
	"github.com/sanjaykm/wellness-agent/internal/app/tools"
	"github.com/sanjaykm/wellness-agent/internal/domain"
)

// Server exposes the tool surface and session lifecycle to the external
// conversational driver over JSON.
type Server struct {
	svc     *session.Service
	tools   tools.Registry
	history domain.HistoryStore
}

func NewServer(svc *session.Service, registry tools.Registry, history domain.HistoryStore) http.Handler {
	s := &Server{
		svc:     svc,
		tools:   registry,
		history: history,
	}

	r := chi.NewRouter()
	r.Use(withRequestID)
	r.Use(withLogging)
	r.Use(withCORS)

	r.Post("/sessions", s.handleCreateSession)
	r.Get("/sessions/{id}", s.handleGetSession)
	r.Post("/sessions/{id}/messages", s.handleSendMessage)
	r.Post("/sessions/{id}/tools/{name}", s.handleToolCall)
	r.Get("/history", s.handleGetHistory)

	return r
}

// ─────────────────────────────────────────────
// DTOs (request/response)
// ─────────────────────────────────────────────

type createSessionRequest struct {
	UserID string `json:"user_id"`
}

type createSessionResponse struct {
	Session        sessionResponse  `json:"session"`
	Instructions   string           `json:"instructions"`
	HistorySummary string           `json:"history_summary"`
	Greeting       *messageResponse `json:"greeting,omitempty"`
}

type sessionResponse struct {
	ID             string          `json:"id"`
	UserID         string          `json:"user_id"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
	HistorySummary string          `json:"history_summary"`
	CheckIn        checkInResponse `json:"check_in"`
}

type checkInResponse struct {
	Mood        *string  `json:"mood"`
	Energy      *string  `json:"energy"`
	Objectives  []string `json:"objectives"`
	AdviceGiven *string  `json:"advice_given"`
	Complete    bool     `json:"complete"`
	Persisted   bool     `json:"persisted"`
}

type messageResponse struct {
	ID        string    `json:"id"`
	SessionID string    `json:"session_id"`
	Author    string    `json:"author"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

type sendMessageRequest struct {
	Text string `json:"text"`
}

type sendMessageResponse struct {
	UserMessage  messageResponse `json:"user_message"`
	AgentMessage messageResponse `json:"agent_message"`
}

type toolCallResponse struct {
	Tool   string         `json:"tool"`
	Output map[string]any `json:"output"`
}

type historyResponse struct {
	Records []domain.HistoryRecord `json:"records"`
	Summary string                 `json:"summary"`
}

// ─────────────────────────────────────────────
// Concrete handlers
// ─────────────────────────────────────────────

func (s *Server) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	var req createSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid JSON body")
		return
	}

	if req.UserID == "" {
		badRequest(w, "user_id is required")
		return
	}

	out, err := s.svc.StartSession(r.Context(), session.StartSessionInput{
		UserID: domain.UserID(req.UserID),
	})
	if err != nil {
		internalError(w, err)
		return
	}

	var greeting *messageResponse
	if out.Greeting != nil {
		m := toMessageResponse(out.Greeting)
		greeting = &m
	}

	resp := createSessionResponse{
		Session:        toSessionResponse(out.Session),
		Instructions:   out.Instructions,
		HistorySummary: out.Session.HistoryContext,
		Greeting:       greeting,
	}

	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request) {
	id := domain.SessionID(chi.URLParam(r, "id"))

	sess, err := s.svc.GetSession(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrSessionNotFound) {
			http.NotFound(w, r)
			return
		}
		internalError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toSessionResponse(sess))
}

func (s *Server) handleSendMessage(w http.ResponseWriter, r *http.Request) {
	id := domain.SessionID(chi.URLParam(r, "id"))

	var req sendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid JSON body")
		return
	}
	if strings.TrimSpace(req.Text) == "" {
		badRequest(w, "text is required")
		return
	}

	out, err := s.svc.SendMessage(r.Context(), session.SendMessageInput{
		SessionID: id,
		Text:      req.Text,
	})
	if err != nil {
		if errors.Is(err, domain.ErrSessionNotFound) {
			http.NotFound(w, r)
			return
		}
		internalError(w, err)
		return
	}

	resp := sendMessageResponse{
		UserMessage:  toMessageResponse(out.UserMessage),
		AgentMessage: toMessageResponse(out.AgentMessage),
	}

	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleToolCall(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	name := chi.URLParam(r, "name")

	tool, ok := s.tools.Lookup(name)
	if !ok {
		http.NotFound(w, r)
		return
	}

	sess, err := s.svc.GetSession(r.Context(), domain.SessionID(id))
	if err != nil {
		if errors.Is(err, domain.ErrSessionNotFound) {
			http.NotFound(w, r)
			return
		}
		internalError(w, err)
		return
	}

	input := map[string]any{}
	if r.Body != nil {
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			badRequest(w, "invalid JSON body")
			return
		}
	}

	tctx := tools.ToolContext{
		UserID:    string(sess.UserID),
		SessionID: id,
		RequestID: requestIDFrom(r.Context()),
	}

	output, err := tool.Call(r.Context(), tctx, input)
	if err != nil {
		badRequest(w, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, toolCallResponse{
		Tool:   name,
		Output: output,
	})
}

func (s *Server) handleGetHistory(w http.ResponseWriter, r *http.Request) {
	records, _ := s.history.LoadHistory(r.Context())

	writeJSON(w, http.StatusOK, historyResponse{
		Records: records,
		Summary: session.SummarizeLatest(records),
	})
}

// ─────────────────────────────────────────────
// Response helpers
// ─────────────────────────────────────────────

func toSessionResponse(s *domain.Session) sessionResponse {
	return sessionResponse{
		ID:             string(s.ID),
		UserID:         string(s.UserID),
		CreatedAt:      s.CreatedAt,
		UpdatedAt:      s.UpdatedAt,
		HistorySummary: s.HistoryContext,
		CheckIn: checkInResponse{
			Mood:        s.CheckIn.Mood,
			Energy:      s.CheckIn.Energy,
			Objectives:  s.CheckIn.Objectives,
			AdviceGiven: s.CheckIn.AdviceGiven,
			Complete:    s.CheckIn.IsComplete(),
			Persisted:   s.CheckIn.Persisted,
		},
	}
}

func toMessageResponse(m *domain.Message) messageResponse {
	return messageResponse{
		ID:        string(m.ID),
		SessionID: string(m.SessionID),
		Author:    string(m.Author),
		Text:      m.Text,
		CreatedAt: m.CreatedAt,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func badRequest(w http.ResponseWriter, msg string) {
	writeJSON(w, http.StatusBadRequest, map[string]string{
		"error": msg,
	})
}

func internalError(w http.ResponseWriter, err error) {
	writeJSON(w, http.StatusInternalServerError, map[string]string{
		"error": "internal server error",
	})
}
