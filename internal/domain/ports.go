package domain

import (
	"context"
	"errors"
)

// ErrSessionNotFound is returned by SessionStore when the id is unknown.
var ErrSessionNotFound = errors.New("session not found")

// LLMClient defines how the core application interacts with the
// language-reasoning collaborator.
type LLMClient interface {
	GenerateReply(ctx context.Context, userMessage string, convCtx ConversationContext) (string, error)
}

// ConversationContext gives the LLM minimal context about the session.
type ConversationContext struct {
	SessionID      SessionID
	UserID         UserID
	HistoryContext string
	Transcript     []*Message
}

// The speech collaborators below are implemented by external provider
// services. The core only needs them as opaque capabilities so the serve
// wiring can assemble a pipeline; audio processing itself is out of scope.

// SpeechToText transcribes an audio stream into text.
type SpeechToText interface {
	Transcribe(ctx context.Context, audio []byte) (string, error)
}

// TextToSpeech synthesizes text into an audio stream.
type TextToSpeech interface {
	Synthesize(ctx context.Context, text string) ([]byte, error)
}

// VoiceActivityDetector reports whether a frame contains speech.
type VoiceActivityDetector interface {
	DetectActivity(ctx context.Context, frame []byte) (bool, error)
}

// TurnDetector reports whether the speaker has finished their turn.
type TurnDetector interface {
	EndOfTurn(ctx context.Context, transcript string) (bool, error)
}

// NoiseFilter cleans an audio stream before transcription.
type NoiseFilter interface {
	Filter(ctx context.Context, audio []byte) ([]byte, error)
}
