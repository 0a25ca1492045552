package utils

import (
	"bytes"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeError(t *testing.T, resp *http.Response) ErrorResponse {
	t.Helper()
	var body ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

func TestErrorHelpers(t *testing.T) {
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler})
	app.Get("/bad", func(c *fiber.Ctx) error { return BadRequest(c, "nope") })
	app.Get("/invalid", func(c *fiber.Ctx) error {
		return ValidationError(c, map[string]string{"message": "message is required"})
	})
	app.Get("/internal", func(c *fiber.Ctx) error { return InternalServerError(c, "disk full") })
	app.Get("/escaped", func(c *fiber.Ctx) error { return errors.New("unexpected") })
	app.Get("/teapot", func(c *fiber.Ctx) error { return fiber.NewError(fiber.StatusTeapot, "short and stout") })

	tests := []struct {
		path    string
		status  int
		message string
	}{
		{"/bad", fiber.StatusBadRequest, "nope"},
		{"/invalid", fiber.StatusBadRequest, "Validation failed"},
		{"/internal", fiber.StatusInternalServerError, "disk full"},
		{"/escaped", fiber.StatusInternalServerError, "unexpected"},
		{"/teapot", fiber.StatusTeapot, "short and stout"},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			resp, err := app.Test(httptest.NewRequest(http.MethodGet, tt.path, nil))
			require.NoError(t, err)
			assert.Equal(t, tt.status, resp.StatusCode)

			body := decodeError(t, resp)
			assert.False(t, body.Success)
			assert.Equal(t, http.StatusText(tt.status), body.Error)
			assert.Equal(t, tt.message, body.Message)
		})
	}
}

func TestInitLogger(t *testing.T) {
	var buf bytes.Buffer
	InitLogger(LoggerConfig{Output: &buf}).Print("hello")
	assert.True(t, strings.HasPrefix(buf.String(), "[VibeVoice] "))

	buf.Reset()
	logger := InitLogger(LoggerConfig{Output: &buf, Format: "json"})
	logger.Print("hello")
	assert.NotZero(t, logger.Flags()&log.Lmsgprefix)
	assert.Contains(t, buf.String(), "[VibeVoice] hello")

	buf.Reset()
	InitLogger(LoggerConfig{Output: &buf, EnableColors: true}).Print("hi")
	assert.True(t, strings.HasPrefix(buf.String(), "\033[36m[VibeVoice] \033[0m"))
}

func TestColors(t *testing.T) {
	assert.Equal(t, "\033[31m", StatusColor(503))
	assert.Equal(t, "\033[33m", StatusColor(404))
	assert.Equal(t, "\033[32m", StatusColor(200))
	assert.Equal(t, "\033[34m", MethodColor("GET"))
	assert.Equal(t, "\033[37m", MethodColor("OPTIONS"))
}
