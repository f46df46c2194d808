// Package router - Test route /ai/stream mở cho widget chat, không qua auth.
package router

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"guest_desk/config"
	apirouter "guest_desk/internal/api/router"
	"guest_desk/internal/global"
)

func TestRegister_StreamKhongQuaPasswordAuth(t *testing.T) {
	global.ServerConfig = &config.Configuration{
		AuthPassword: "secret123",
		OpenAIAPIKey: "test-key",
		OpenAIModel:  "gpt-4o-mini",
	}

	app := fiber.New()
	require.NoError(t, apirouter.SetupRoutes(app, Register))

	// Không kèm password: request phải vào đến handler và bị chặn ở
	// validation (400), không phải 401 của password auth
	req := httptest.NewRequest("POST", "/api/v1/ai/stream", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)
}
