package tools

import (
	"context"
	"fmt"

	"github.com/sanjaykm/wellness-agent/internal/app/session"
	"github.com/sanjaykm/wellness-agent/internal/domain"
)

// maxObjectives caps how many goals a single invocation may record.
const maxObjectives = 3

// MoodEnergyTool records the user's mood and energy on the session's
// check-in. Both parameters are required free-form text.
type MoodEnergyTool struct {
	svc *session.Service
}

func NewMoodEnergyTool(svc *session.Service) *MoodEnergyTool {
	return &MoodEnergyTool{svc: svc}
}

func (t *MoodEnergyTool) Name() string {
	return "record_mood_and_energy"
}

// Call expects an input with this shape:
//
//	{
//	  "mood": "happy",
//	  "energy": "high"
//	}
func (t *MoodEnergyTool) Call(
	ctx context.Context,
	tctx ToolContext,
	input map[string]any,
) (map[string]any, error) {
	if tctx.SessionID == "" {
		return nil, fmt.Errorf("record_mood_and_energy: missing SessionID in ToolContext")
	}

	mood, err := requireString(input, "mood")
	if err != nil {
		return nil, fmt.Errorf("record_mood_and_energy: %w", err)
	}
	energy, err := requireString(input, "energy")
	if err != nil {
		return nil, fmt.Errorf("record_mood_and_energy: %w", err)
	}

	ack, err := t.svc.RecordMoodEnergy(ctx, domain.SessionID(tctx.SessionID), mood, energy)
	if err != nil {
		return nil, fmt.Errorf("record_mood_and_energy: %w", err)
	}

	return map[string]any{
		"status":  "ok",
		"message": ack,
	}, nil
}

// ObjectivesTool replaces the check-in's goal list. Accepts 1 to 3 goals.
type ObjectivesTool struct {
	svc *session.Service
}

func NewObjectivesTool(svc *session.Service) *ObjectivesTool {
	return &ObjectivesTool{svc: svc}
}

func (t *ObjectivesTool) Name() string {
	return "record_objectives"
}

// Call expects an input with this shape:
//
//	{
//	  "objectives": ["read", "walk"]
//	}
func (t *ObjectivesTool) Call(
	ctx context.Context,
	tctx ToolContext,
	input map[string]any,
) (map[string]any, error) {
	if tctx.SessionID == "" {
		return nil, fmt.Errorf("record_objectives: missing SessionID in ToolContext")
	}

	objectives, err := parseObjectives(input["objectives"])
	if err != nil {
		return nil, fmt.Errorf("record_objectives: %w", err)
	}

	ack, err := t.svc.RecordObjectives(ctx, domain.SessionID(tctx.SessionID), objectives)
	if err != nil {
		return nil, fmt.Errorf("record_objectives: %w", err)
	}

	return map[string]any{
		"status":  "ok",
		"message": ack,
		"count":   len(objectives),
	}, nil
}

// CompleteTool finalizes the check-in: it validates completeness and, when
// complete, persists the record and returns the recap. When incomplete the
// corrective prompt comes back as the message, not as an error.
type CompleteTool struct {
	svc *session.Service
}

func NewCompleteTool(svc *session.Service) *CompleteTool {
	return &CompleteTool{svc: svc}
}

func (t *CompleteTool) Name() string {
	return "complete_checkin"
}

// Call expects an input with this shape:
//
//	{
//	  "final_advice_summary": "Keep it up!"
//	}
func (t *CompleteTool) Call(
	ctx context.Context,
	tctx ToolContext,
	input map[string]any,
) (map[string]any, error) {
	if tctx.SessionID == "" {
		return nil, fmt.Errorf("complete_checkin: missing SessionID in ToolContext")
	}

	summary, err := requireString(input, "final_advice_summary")
	if err != nil {
		return nil, fmt.Errorf("complete_checkin: %w", err)
	}

	msg, err := t.svc.CompleteCheckIn(ctx, domain.SessionID(tctx.SessionID), summary)
	if err != nil {
		return nil, fmt.Errorf("complete_checkin: %w", err)
	}

	return map[string]any{
		"status":  "ok",
		"message": msg,
	}, nil
}

// --- internal helpers --- //

func requireString(m map[string]any, key string) (string, error) {
	v, ok := m[key]
	if !ok {
		return "", fmt.Errorf("missing %q", key)
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("%q must be a string", key)
	}
	if s == "" {
		return "", fmt.Errorf("%q must not be empty", key)
	}
	return s, nil
}

func parseObjectives(raw any) ([]string, error) {
	if raw == nil {
		return nil, fmt.Errorf("missing %q", "objectives")
	}

	list, ok := raw.([]any)
	if !ok {
		return nil, fmt.Errorf("%q must be a list of strings", "objectives")
	}
	if len(list) == 0 {
		return nil, fmt.Errorf("%q must contain at least one goal", "objectives")
	}
	if len(list) > maxObjectives {
		return nil, fmt.Errorf("%q accepts at most %d goals", "objectives", maxObjectives)
	}

	out := make([]string, 0, len(list))
	for i, item := range list {
		s, ok := item.(string)
		if !ok || s == "" {
			return nil, fmt.Errorf("objectives[%d] must be a non-empty string", i)
		}
		out = append(out, s)
	}
	return out, nil
}
