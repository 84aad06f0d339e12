package session

import (
	"fmt"
	"strings"

	"github.com/sanjaykm/wellness-agent/internal/domain"
)

// noHistoryText seeds the very first session.
const noHistoryText = "No previous sessions yet."

// SummarizeLatest renders the most recent history record as a one-paragraph
// context string for the next session's instructions.
func SummarizeLatest(history []domain.HistoryRecord) string {
	if len(history) == 0 {
		return noHistoryText
	}

	last := history[len(history)-1]
	return fmt.Sprintf("Last check-in on %s. Mood was %s, energy %s. Goals: %s.",
		last.Timestamp,
		textOrEmpty(last.Mood),
		textOrEmpty(last.Energy),
		strings.Join(last.Objectives, ", "),
	)
}

const instructionsTemplate = `You are a daily wellness companion — warm, friendly, grounded.

PREVIOUS SESSION CONTEXT:
%s

SESSION GOALS:
1. Ask how the user is feeling (mood + energy) and call record_mood_and_energy.
2. Ask for 1-3 simple goals for the day and call record_objectives.
3. Give supportive NON-medical suggestions.
4. At the end, call complete_checkin with a one-sentence recap.

SAFETY:
- You are not a therapist or doctor.
- No diagnoses or medical advice.
- If the user expresses crisis, gently suggest professional help.`

// BuildInstructions produces the conversational driver's system instructions,
// seeded with the previous session context.
func BuildInstructions(historyContext string) string {
	return fmt.Sprintf(instructionsTemplate, historyContext)
}
