package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scaffolder/internal/config"
)

func geminiReply(text string) string {
	return `{"candidates":[{"content":{"parts":[{"text":` + string(mustJSON(text)) + `}]}}]}`
}

func mustJSON(v interface{}) []byte {
	data, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return data
}

func newTestGemini(t *testing.T, handler http.HandlerFunc) *Gemini {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewGemini(&config.LLMConfig{
		APIKey:         "test-key",
		Model:          "gemini-1.5-flash",
		BaseURL:        server.URL,
		TimeoutSeconds: 5,
	})
}

func TestGeminiComplete(t *testing.T) {
	var gotPath, gotKey string
	var gotBody map[string]interface{}

	client := newTestGemini(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.Header.Get("x-goog-api-key")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Write([]byte(geminiReply("# Guide")))
	})

	text, err := client.Complete(context.Background(), Request{Prompt: "make a guide", MaxTokens: 100})
	require.NoError(t, err)
	assert.Equal(t, "# Guide", text)
	assert.Equal(t, "/models/gemini-1.5-flash:generateContent", gotPath)
	assert.Equal(t, "test-key", gotKey)

	genCfg, ok := gotBody["generationConfig"].(map[string]interface{})
	require.True(t, ok)
	assert.NotContains(t, genCfg, "responseMimeType")
	assert.Equal(t, float64(100), genCfg["maxOutputTokens"])
}

func TestGeminiComplete_JSONHint(t *testing.T) {
	var gotBody map[string]interface{}

	client := newTestGemini(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Write([]byte(geminiReply(`{"ideas":["X"]}`)))
	})

	text, err := client.Complete(context.Background(), Request{Prompt: "ideas please", JSON: true})
	require.NoError(t, err)
	assert.Equal(t, `{"ideas":["X"]}`, text)

	genCfg, ok := gotBody["generationConfig"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "application/json", genCfg["responseMimeType"])
}

func TestGeminiComplete_SystemInstruction(t *testing.T) {
	var gotBody map[string]interface{}

	client := newTestGemini(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Write([]byte(geminiReply("ok")))
	})

	_, err := client.Complete(context.Background(), Request{System: "be terse", Prompt: "hi"})
	require.NoError(t, err)
	assert.Contains(t, gotBody, "systemInstruction")
}

func TestGeminiComplete_ErrorStatus(t *testing.T) {
	client := newTestGemini(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"rate limit"}`, http.StatusTooManyRequests)
	})

	_, err := client.Complete(context.Background(), Request{Prompt: "hi"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "429")
	assert.Contains(t, err.Error(), "rate limit")
}

func TestGeminiComplete_NoCandidates(t *testing.T) {
	client := newTestGemini(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"candidates":[]}`))
	})

	_, err := client.Complete(context.Background(), Request{Prompt: "hi"})
	assert.ErrorIs(t, err, ErrEmptyCompletion)
}

func TestGeminiComplete_BlankText(t *testing.T) {
	client := newTestGemini(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(geminiReply("   ")))
	})

	_, err := client.Complete(context.Background(), Request{Prompt: "hi"})
	assert.ErrorIs(t, err, ErrEmptyCompletion)
}

func TestGeminiName(t *testing.T) {
	client := NewGemini(&config.LLMConfig{Model: "gemini-1.5-flash", TimeoutSeconds: 1})
	assert.Equal(t, "Gemini (gemini-1.5-flash)", client.Name())
}
