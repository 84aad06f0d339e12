package llm

import (
	"context"
	"fmt"

	"github.com/sanjaykm/wellness-agent/internal/domain"
)

// MockLLM is a deterministic local stand-in for the language-reasoning
// collaborator, useful for development and tests.
type MockLLM struct{}

func NewMockLLM() *MockLLM {
	return &MockLLM{}
}

func (m *MockLLM) GenerateReply(ctx context.Context, userMessage string, convCtx domain.ConversationContext) (string, error) {
	return fmt.Sprintf("I hear you. You said %q. Tell me a bit more about how today is going.", userMessage), nil
}
