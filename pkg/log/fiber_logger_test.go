package log

import (
	"bytes"
	"log/slog"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFiberLogger(t *testing.T) {
	buf := new(bytes.Buffer)
	slog.SetDefault(slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	app.Use(NewFiberLogger(&LoggerConfig{
		Name: "test",
		UserGetter: func(c *fiber.Ctx) string {
			return "u1"
		},
	}))
	app.Get("/ok", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
	app.Get("/boom", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusInternalServerError)
	})

	req, err := http.NewRequest("GET", "/ok", nil)
	require.NoError(t, err)

	resp, err := app.Test(req, 3000)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	out := buf.String()
	assert.Contains(t, out, "logger=test")
	assert.Contains(t, out, "200 GET /ok")
	assert.Contains(t, out, "user=u1")
	assert.Contains(t, out, "level=INFO")

	buf.Reset()

	req, err = http.NewRequest("GET", "/boom", nil)
	require.NoError(t, err)

	resp, err = app.Test(req, 3000)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)

	assert.Contains(t, buf.String(), "level=WARN")
	assert.Contains(t, buf.String(), "500 GET /boom")
}
