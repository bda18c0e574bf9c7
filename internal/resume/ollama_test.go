package resume

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOllamaClient_Generate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "POST", r.Method)

		var req ollamaRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "llama3.1", req.Model)
		assert.False(t, req.Stream, "requests must be non-streaming")
		assert.Contains(t, req.Prompt, "CANDIDATE_PROFILE")

		json.NewEncoder(w).Encode(ollamaResponse{Response: "# Tailored Resume"})
	}))
	defer server.Close()

	client := NewOllamaClient(server.URL, "llama3.1")
	text, err := client.Generate(context.Background(), "prompt with CANDIDATE_PROFILE inside")
	require.NoError(t, err)
	assert.Equal(t, "# Tailored Resume", text)
}

func TestOllamaClient_NonOKStatusIsAHardFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model not found", http.StatusNotFound)
	}))
	defer server.Close()

	client := NewOllamaClient(server.URL, "llama3.1")
	_, err := client.Generate(context.Background(), "prompt")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")
}

func TestOllamaClient_UnreachableEndpoint(t *testing.T) {
	client := NewOllamaClient("http://127.0.0.1:1/api/generate", "llama3.1")
	_, err := client.Generate(context.Background(), "prompt")
	assert.Error(t, err)
}
