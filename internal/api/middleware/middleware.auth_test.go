// Package middleware - Test PasswordAuth: 401 thống nhất, chặn trước khi
// handler (và mọi truy cập database phía sau) được gọi.
package middleware

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newAuthTestApp dựng app với PasswordAuth và một handler spy đếm số lần
// request lọt qua middleware.
func newAuthTestApp(secret string) (*fiber.App, *int) {
	app := fiber.New()
	handlerCalls := 0
	app.Use(PasswordAuth(secret))
	app.Get("/users", func(c fiber.Ctx) error {
		handlerCalls++
		return c.JSON([]string{})
	})
	return app, &handlerCalls
}

func decodeEnvelope(t *testing.T, body io.Reader) map[string]interface{} {
	t.Helper()
	var envelope map[string]interface{}
	require.NoError(t, json.NewDecoder(body).Decode(&envelope))
	return envelope
}

func TestPasswordAuth_DungMatKhauChoQua(t *testing.T) {
	app, handlerCalls := newAuthTestApp("secret123")

	resp, err := app.Test(httptest.NewRequest("GET", "/users?password=secret123", nil))
	require.NoError(t, err)

	assert.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, 1, *handlerCalls)
}

func TestPasswordAuth_SaiMatKhau401KhongGoiHandler(t *testing.T) {
	app, handlerCalls := newAuthTestApp("secret123")

	resp, err := app.Test(httptest.NewRequest("GET", "/users?password=wrong", nil))
	require.NoError(t, err)

	assert.Equal(t, 401, resp.StatusCode)
	assert.Equal(t, 0, *handlerCalls, "handler không được gọi khi mật khẩu sai")

	envelope := decodeEnvelope(t, resp.Body)
	assert.Equal(t, "AUTH_001", envelope["code"])
	assert.Equal(t, "Unauthorized", envelope["message"])
	assert.Equal(t, "error", envelope["status"])
}

func TestPasswordAuth_ThieuMatKhauCung401(t *testing.T) {
	app, handlerCalls := newAuthTestApp("secret123")

	resp, err := app.Test(httptest.NewRequest("GET", "/users", nil))
	require.NoError(t, err)

	assert.Equal(t, 401, resp.StatusCode)
	assert.Equal(t, 0, *handlerCalls)

	// Envelope thiếu mật khẩu phải giống hệt sai mật khẩu, không lộ lý do
	envelope := decodeEnvelope(t, resp.Body)
	assert.Equal(t, "Unauthorized", envelope["message"])
}

func TestPasswordAuth_SecretRongTuChoiTatCa(t *testing.T) {
	app, handlerCalls := newAuthTestApp("")

	// Kể cả gửi password rỗng trùng với secret rỗng vẫn phải 401 (fail closed)
	resp, err := app.Test(httptest.NewRequest("GET", "/users?password=", nil))
	require.NoError(t, err)

	assert.Equal(t, 401, resp.StatusCode)
	assert.Equal(t, 0, *handlerCalls)
}
