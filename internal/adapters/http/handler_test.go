package httpadapter_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httpadapter "github.com/sanjaykm/wellness-agent/internal/adapters/http"
	"github.com/sanjaykm/wellness-agent/internal/adapters/llm"
	"github.com/sanjaykm/wellness-agent/internal/adapters/storage/memory"
	"github.com/sanjaykm/wellness-agent/internal/app/session"
	"github.com/sanjaykm/wellness-agent/internal/app/tools"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	history := memory.NewHistoryStore()
	svc := session.NewService(llm.NewMockLLM(), memory.NewSessionStore(), history)
	registry := tools.NewRegistry(
		tools.NewMoodEnergyTool(svc),
		tools.NewObjectivesTool(svc),
		tools.NewCompleteTool(svc),
	)

	ts := httptest.NewServer(httpadapter.NewServer(svc, registry, history))
	t.Cleanup(ts.Close)
	return ts
}

func postJSON(t *testing.T, url string, body any) (*http.Response, map[string]any) {
	t.Helper()

	data, err := json.Marshal(body)
	require.NoError(t, err)

	resp, err := http.Post(url, "application/json", bytes.NewReader(data))
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })

	var decoded map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&decoded))
	return resp, decoded
}

func TestCheckInOverHTTP(t *testing.T) {
	ts := newTestServer(t)

	resp, body := postJSON(t, ts.URL+"/sessions", map[string]any{"user_id": "sanjay"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	sess := body["session"].(map[string]any)
	id := sess["id"].(string)
	require.NotEmpty(t, id)
	assert.Contains(t, body["instructions"], "No previous sessions yet.")
	assert.NotNil(t, body["greeting"])

	resp, body = postJSON(t, ts.URL+"/sessions/"+id+"/tools/record_mood_and_energy", map[string]any{
		"mood":   "happy",
		"energy": "high",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	output := body["output"].(map[string]any)
	assert.Contains(t, output["message"], "happy")

	resp, _ = postJSON(t, ts.URL+"/sessions/"+id+"/tools/record_objectives", map[string]any{
		"objectives": []string{"read", "walk"},
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, body = postJSON(t, ts.URL+"/sessions/"+id+"/tools/complete_checkin", map[string]any{
		"final_advice_summary": "Keep it up!",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	output = body["output"].(map[string]any)
	assert.Contains(t, output["message"], "read, walk")

	// History now holds exactly one record.
	historyResp, err := http.Get(ts.URL + "/history")
	require.NoError(t, err)
	defer historyResp.Body.Close()

	var history struct {
		Records []map[string]any `json:"records"`
		Summary string           `json:"summary"`
	}
	require.NoError(t, json.NewDecoder(historyResp.Body).Decode(&history))
	require.Len(t, history.Records, 1)
	assert.Equal(t, "happy", history.Records[0]["mood"])
	assert.Contains(t, history.Summary, "read, walk")
}

func TestToolValidationSurfacesAsBadRequest(t *testing.T) {
	ts := newTestServer(t)

	_, body := postJSON(t, ts.URL+"/sessions", map[string]any{"user_id": "sanjay"})
	id := body["session"].(map[string]any)["id"].(string)

	resp, body := postJSON(t, ts.URL+"/sessions/"+id+"/tools/record_objectives", map[string]any{
		"objectives": []string{"a", "b", "c", "d"},
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, body["error"], "at most")
}

func TestUnknownToolAndSession(t *testing.T) {
	ts := newTestServer(t)

	_, body := postJSON(t, ts.URL+"/sessions", map[string]any{"user_id": "sanjay"})
	id := body["session"].(map[string]any)["id"].(string)

	resp, err := http.Post(ts.URL+"/sessions/"+id+"/tools/not_a_tool", "application/json", bytes.NewReader([]byte("{}")))
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, err = http.Post(ts.URL+"/sessions/missing/tools/record_mood_and_energy", "application/json", bytes.NewReader([]byte("{}")))
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestSendMessage(t *testing.T) {
	ts := newTestServer(t)

	_, body := postJSON(t, ts.URL+"/sessions", map[string]any{"user_id": "sanjay"})
	id := body["session"].(map[string]any)["id"].(string)

	resp, body := postJSON(t, ts.URL+"/sessions/"+id+"/messages", map[string]any{
		"text": "I feel great today",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	agentMsg := body["agent_message"].(map[string]any)
	assert.Equal(t, "agent", agentMsg["author"])
	assert.NotEmpty(t, agentMsg["text"])
}
