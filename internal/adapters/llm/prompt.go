package llm

import (
	"strings"

	"github.com/sanjaykm/wellness-agent/internal/domain"
)

const baseSystemPrompt = `
You are a daily wellness voice companion focused on a short, friendly check-in.

Your role:
- You ask how the user is feeling today (mood and energy).
- You ask for 1-3 simple goals for the day.
- You give light, supportive, NON-medical encouragement.
- You are NOT a therapist, doctor, or emergency service and you do NOT give medical or psychiatric diagnoses.

General style guidelines:
- Answer in the SAME LANGUAGE as the user.
- Be concise: this is a spoken conversation, 1-3 short sentences per turn.
- Use simple, everyday language, not technical jargon.
- Reflect back what you understood before moving on.
- Invite the user to take small, realistic steps rather than big changes.

Boundaries and safety:
- If the user mentions self-harm, suicide, or that they might hurt someone, encourage them to seek immediate help from local emergency services or a trusted person.
- Make it clear you cannot replace professional mental health care, especially in crisis situations.
`

// Prompt represents the system prompt + the content to send as "user".
type Prompt struct {
	System string
	User   string
}

// BuildSystemPrompt combines the companion identity with the previous
// session context loaded at session start.
func BuildSystemPrompt(historyContext string) string {
	if historyContext == "" {
		return baseSystemPrompt
	}
	return baseSystemPrompt + "\nPREVIOUS SESSION CONTEXT:\n" + historyContext + "\n"
}

// BuildPrompt builds the system prompt and the user content
// (transcript + new message) from the conversation context.
func BuildPrompt(userMessage string, ctx domain.ConversationContext) Prompt {
	system := BuildSystemPrompt(ctx.HistoryContext)

	var historyParts []string
	for _, m := range ctx.Transcript {
		role := "user"
		if m.Author == domain.RoleAgent {
			role = "assistant"
		}
		historyParts = append(historyParts, role+": "+m.Text)
	}

	historyText := strings.Join(historyParts, "\n")

	var userContent strings.Builder
	if historyText != "" {
		userContent.WriteString("Conversation so far:\n")
		userContent.WriteString(historyText)
		userContent.WriteString("\n\n")
	}
	userContent.WriteString("New user message:\n")
	userContent.WriteString(userMessage)

	return Prompt{
		System: system,
		User:   userContent.String(),
	}
}
