// Package speech provides local stand-ins for the external speech pipeline
// collaborators. Real transcription, synthesis and detection run in provider
// services; these adapters only give the serve wiring something concrete to
// assemble and log.
package speech

import (
	"context"

	"github.com/sanjaykm/wellness-agent/internal/config"
	"github.com/sanjaykm/wellness-agent/internal/domain"
	"github.com/sanjaykm/wellness-agent/internal/observability"
	"go.uber.org/zap"
)

// Pipeline bundles the speech collaborators for one session runtime.
type Pipeline struct {
	STT          domain.SpeechToText
	TTS          domain.TextToSpeech
	VAD          domain.VoiceActivityDetector
	TurnDetector domain.TurnDetector
	NoiseFilter  domain.NoiseFilter
}

// NewMockPipeline assembles the pass-through pipeline described by cfg.
func NewMockPipeline(cfg config.SpeechConfig) *Pipeline {
	p := &Pipeline{
		STT:          &mockSTT{model: cfg.STTModel},
		TTS:          &mockTTS{voice: cfg.TTSVoice, style: cfg.TTSStyle},
		TurnDetector: &mockTurnDetector{model: cfg.TurnDetection},
	}
	if cfg.VAD {
		p.VAD = &mockVAD{}
	}
	if cfg.NoiseCancellation {
		p.NoiseFilter = &mockNoiseFilter{}
	}

	observability.Logger().Info("speech pipeline assembled",
		zap.String("stt_model", cfg.STTModel),
		zap.String("tts_voice", cfg.TTSVoice),
		zap.String("turn_detection", cfg.TurnDetection),
		zap.Bool("vad", cfg.VAD),
		zap.Bool("noise_cancellation", cfg.NoiseCancellation))

	return p
}

type mockSTT struct {
	model string
}

func (m *mockSTT) Transcribe(ctx context.Context, audio []byte) (string, error) {
	return "", nil
}

type mockTTS struct {
	voice string
	style string
}

func (m *mockTTS) Synthesize(ctx context.Context, text string) ([]byte, error) {
	return nil, nil
}

type mockVAD struct{}

func (m *mockVAD) DetectActivity(ctx context.Context, frame []byte) (bool, error) {
	return len(frame) > 0, nil
}

type mockTurnDetector struct {
	model string
}

func (m *mockTurnDetector) EndOfTurn(ctx context.Context, transcript string) (bool, error) {
	return true, nil
}

type mockNoiseFilter struct{}

func (m *mockNoiseFilter) Filter(ctx context.Context, audio []byte) ([]byte, error) {
	return audio, nil
}
