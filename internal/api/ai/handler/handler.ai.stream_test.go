// Package aihdl - Test streaming handler với AI provider giả qua httptest.
package aihdl

import (
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"guest_desk/config"
	aisvc "guest_desk/internal/api/ai/service"
)

// newStreamTestApp dựng app trỏ CompletionService vào provider stub.
func newStreamTestApp(providerURL string) *fiber.App {
	cfg := &config.Configuration{
		OpenAIAPIKey:  "test-key",
		OpenAIModel:   "gpt-4o-mini",
		OpenAIBaseURL: providerURL + "/v1",
	}
	handler := NewStreamHandler(aisvc.NewCompletionService(cfg))

	app := fiber.New()
	app.Post("/ai/stream", handler.HandleStream)
	return app
}

// sseChunk build một event SSE chứa delta content.
func sseChunk(content string) string {
	return fmt.Sprintf(`data: {"id":"1","object":"chat.completion.chunk","choices":[{"index":0,"delta":{"content":%q}}]}`+"\n\n", content)
}

func postStream(t *testing.T, app *fiber.App, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest("POST", "/ai/stream", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func TestHandleStream_GhepFragmentDungThuTu(t *testing.T) {
	provider := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		w.Header().Set("Content-Type", "text/event-stream")
		io.WriteString(w, sseChunk("Hel"))
		io.WriteString(w, sseChunk("lo"))
		io.WriteString(w, "data: [DONE]\n\n")
	}))
	defer provider.Close()

	app := newStreamTestApp(provider.URL)
	resp := postStream(t, app, `{"prompt":"chào"}`)

	assert.Equal(t, 200, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/plain")

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	// Fragment phải được nối nguyên vẹn theo thứ tự upstream
	assert.Equal(t, "Hello", string(body))
}

func TestHandleStream_ThieuPromptTraVe400(t *testing.T) {
	app := newStreamTestApp("http://localhost:0")

	for _, body := range []string{`{}`, `{"prompt":""}`, `{"prompt":"   "}`} {
		resp := postStream(t, app, body)
		assert.Equal(t, 400, resp.StatusCode, "body %s phải bị từ chối", body)
	}
}

func TestHandleStream_BodyKhongPhaiJSONTraVe400(t *testing.T) {
	app := newStreamTestApp("http://localhost:0")
	resp := postStream(t, app, `{"prompt": 123`)
	assert.Equal(t, 400, resp.StatusCode)
}

func TestHandleStream_ProviderLoiNgayTraVe500(t *testing.T) {
	provider := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		io.WriteString(w, `{"error":{"message":"Incorrect API key","type":"invalid_request_error"}}`)
	}))
	defer provider.Close()

	app := newStreamTestApp(provider.URL)
	resp := postStream(t, app, `{"prompt":"chào"}`)

	// Chưa ghi byte nào nên vẫn trả được status và JSON envelope
	assert.Equal(t, 500, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "SYS_002")
}

func TestHandleStream_LoiGiuaChungGhiMarkerInBand(t *testing.T) {
	provider := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/event-stream")
		io.WriteString(w, sseChunk("Một phần "))
		// Chunk hỏng: stream.Recv phía handler sẽ trả lỗi
		io.WriteString(w, "data: {bad json}\n\n")
	}))
	defer provider.Close()

	app := newStreamTestApp(provider.URL)
	resp := postStream(t, app, `{"prompt":"chào"}`)

	// Headers đã gửi nên status vẫn 200, lỗi báo qua marker cuối body
	assert.Equal(t, 200, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(body), "Một phần "))
	assert.True(t, strings.HasSuffix(string(body), "\n[error]: Failed to stream response"))
}
