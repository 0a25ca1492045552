package inference

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOllamaGenerateText(t *testing.T) {
	var got OllamaRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		_ = json.NewEncoder(w).Encode(OllamaResponse{
			Model:   got.Model,
			Message: Message{Role: "assistant", Content: "\nYou've got this.\n"},
			Done:    true,
		})
	}))
	defer srv.Close()

	client := NewOllamaClient(srv.URL, "qwen2.5:0.5b", 5*time.Second)
	reply, err := client.GenerateText(context.Background(), "be kind", "I'm tired")
	require.NoError(t, err)

	assert.Equal(t, "You've got this.", reply)
	assert.Equal(t, "qwen2.5:0.5b", got.Model)
	assert.False(t, got.Stream)
	assert.Equal(t, 150, got.Options.NumPredict)
	require.Len(t, got.Messages, 2)
	assert.Equal(t, Message{Role: "system", Content: "be kind"}, got.Messages[0])
	assert.Equal(t, Message{Role: "user", Content: "I'm tired"}, got.Messages[1])
}

func TestOllamaOmitsEmptySystemPrompt(t *testing.T) {
	var got OllamaRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&got)
		_ = json.NewEncoder(w).Encode(OllamaResponse{Message: Message{Content: "ok"}})
	}))
	defer srv.Close()

	_, err := NewOllamaClient(srv.URL, "m", time.Second).GenerateText(context.Background(), "", "hi")
	require.NoError(t, err)
	require.Len(t, got.Messages, 1)
	assert.Equal(t, "user", got.Messages[0].Role)
}

func TestOllamaErrors(t *testing.T) {
	t.Run("status", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			http.Error(w, "model not found", http.StatusNotFound)
		}))
		defer srv.Close()

		_, err := NewOllamaClient(srv.URL, "m", time.Second).GenerateText(context.Background(), "", "hi")
		assert.ErrorContains(t, err, "404")
	})

	t.Run("decode", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte("not json"))
		}))
		defer srv.Close()

		_, err := NewOllamaClient(srv.URL, "m", time.Second).GenerateText(context.Background(), "", "hi")
		assert.ErrorContains(t, err, "decode")
	})

	t.Run("unreachable", func(t *testing.T) {
		srv := httptest.NewServer(http.NotFoundHandler())
		url := srv.URL
		srv.Close()

		_, err := NewOllamaClient(url, "m", time.Second).GenerateText(context.Background(), "", "hi")
		assert.Error(t, err)
	})
}
