package middleware

import (
	"bytes"
	"errors"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingMiddleware(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf, "", log.Lmsgprefix)

	app := fiber.New()
	app.Use(LoggingMiddleware(logger))
	app.Get("/stats", func(c *fiber.Ctx) error { return c.SendString("ok") })
	app.Get("/boom", func(c *fiber.Ctx) error { return errors.New("exploded") })

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/stats", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, buf.String(), "GET /stats 200")
	assert.NotContains(t, buf.String(), "\033[")

	buf.Reset()
	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/boom", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	assert.Contains(t, buf.String(), "error=exploded")
}

func TestLoggingMiddlewareColors(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf, "", 0)

	app := fiber.New()
	app.Use(LoggingMiddleware(logger))
	app.Post("/chat", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusCreated) })

	_, err := app.Test(httptest.NewRequest(http.MethodPost, "/chat", nil))
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "\033[33mPOST\033[0m")
	assert.Contains(t, buf.String(), "\033[32m201\033[0m")
}
