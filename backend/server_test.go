package main

import (
	"bytes"
	"context"
	"encoding/json"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"vibevoice/backend/config"
	"vibevoice/backend/inference"
	"vibevoice/backend/progress"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		ServerPort:     "0",
		CORSOrigins:    "*",
		BodyLimitMB:    1,
		LogFormat:      "text",
		Timezone:       time.UTC,
		LLMProvider:    "none",
		SpeechProvider: "none",
		LLMTimeout:     time.Second,
	}
}

func TestBuildGatewayWithoutProviders(t *testing.T) {
	catalog, err := config.LoadCatalog("")
	require.NoError(t, err)

	var buf bytes.Buffer
	gw, closers := buildGateway(context.Background(), testConfig(), catalog, log.New(&buf, "", 0))

	assert.Nil(t, gw.Text)
	assert.Nil(t, gw.STT)
	assert.Nil(t, gw.TTS)
	assert.Empty(t, closers)
	assert.False(t, gw.ModelsLoaded())
}

func TestBuildGatewayOllama(t *testing.T) {
	catalog, err := config.LoadCatalog("")
	require.NoError(t, err)

	cfg := testConfig()
	cfg.LLMProvider = "ollama"
	cfg.OllamaURL = "http://localhost:11434/api/chat"
	cfg.OllamaModel = "qwen2.5:0.5b"

	gw, _ := buildGateway(context.Background(), cfg, catalog, log.New(&bytes.Buffer{}, "", 0))
	client, ok := gw.Text.(*inference.OllamaClient)
	require.True(t, ok)
	assert.Equal(t, "qwen2.5:0.5b", client.Model)
}

func TestBuildGatewayUnknownProvider(t *testing.T) {
	catalog, err := config.LoadCatalog("")
	require.NoError(t, err)

	cfg := testConfig()
	cfg.LLMProvider = "gpt-on-a-toaster"

	var buf bytes.Buffer
	gw, _ := buildGateway(context.Background(), cfg, catalog, log.New(&buf, "", 0))
	assert.Nil(t, gw.Text)
	assert.Contains(t, buf.String(), "unknown LLM_PROVIDER")
}

func TestAppDegradesWithoutProviders(t *testing.T) {
	var logs bytes.Buffer
	logger := log.New(&logs, "", 0)
	engine := progress.NewEngine(progress.WithLocation(time.UTC))
	app := newApp(testConfig(), engine, &inference.Gateway{Logger: logger}, logger)

	body := bytes.NewBufferString(`{"message":"hello","mode":"voice"}`)
	req := httptest.NewRequest(http.MethodPost, "/chat", body)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Origin", "http://localhost:3000")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))

	var result map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	assert.Equal(t, inference.FallbackReply, result["response"])
	assert.Nil(t, result["audio_base64"])

	snap := engine.Snapshot()
	assert.Equal(t, 1, snap.TotalInteractions)
	assert.Equal(t, 0, snap.VoiceInteractions)

	assert.Contains(t, logs.String(), "POST")
	assert.Contains(t, logs.String(), "/chat")
}

func TestAppUnknownRoute(t *testing.T) {
	logger := log.New(&bytes.Buffer{}, "", 0)
	app := newApp(testConfig(), progress.NewEngine(), &inference.Gateway{}, logger)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/nope", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	var result map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	assert.Equal(t, false, result["success"])
}

func TestBadgesCommand(t *testing.T) {
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"badges"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "first_step")
	assert.Contains(t, out.String(), "🌅 Early Bird")
	assert.Contains(t, out.String(), "briefings_viewed")
}
