// Package chathdl - Test handler gửi tin và lịch sử hội thoại với relay spy.
// Mongo client được tạo lazy (không dial) nên các nhánh không chạm database
// test được mà không cần Mongo thật.
package chathdl

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"guest_desk/internal/common"
	"guest_desk/internal/global"
)

var setupOnce sync.Once

// setupTestGlobals đăng ký collection lazy và validator cho cả package test.
func setupTestGlobals(t *testing.T) {
	t.Helper()
	setupOnce.Do(func() {
		global.MongoDB_ColNames.Users = "users"
		global.MongoDB_ColNames.Messages = "messages"
		global.MongoDB_ColNames.Escalations = "escalations"
		global.InitValidator()

		client, err := mongo.Connect(context.Background(),
			options.Client().ApplyURI("mongodb://127.0.0.1:27017"))
		if err != nil {
			panic(err)
		}
		db := client.Database("guest_desk_test")
		for _, name := range global.GetColNames() {
			global.RegistryCollections.Register(name, db.Collection(name))
		}
	})
}

// relaySpy ghi lại các lần Send và trả lỗi cấu hình sẵn.
type relaySpy struct {
	calls []string
	err   error
}

func (r *relaySpy) Send(ctx context.Context, to string, text string) error {
	r.calls = append(r.calls, to+"|"+text)
	return r.err
}

func newSendTestApp(t *testing.T, spy *relaySpy) *fiber.App {
	t.Helper()
	setupTestGlobals(t)

	handler, err := NewMessageHandler(spy)
	require.NoError(t, err)

	app := fiber.New()
	app.Post("/send", handler.HandleSendMessage)
	app.Get("/messages", handler.HandleListMessages)
	return app
}

func TestHandleSendMessage_ThanhCong(t *testing.T) {
	spy := &relaySpy{}
	app := newSendTestApp(t, spy)

	req := httptest.NewRequest("POST", "/send",
		strings.NewReader(`{"to":"84901234567","text":"Phòng 204 cần khăn tắm"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, 200, resp.StatusCode)
	require.Len(t, spy.calls, 1)
	assert.Equal(t, "84901234567|Phòng 204 cần khăn tắm", spy.calls[0])

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Message sent successfully", body["message"])
}

func TestHandleSendMessage_WaIDSaiDinhDangKhongGoiRelay(t *testing.T) {
	spy := &relaySpy{}
	app := newSendTestApp(t, spy)

	req := httptest.NewRequest("POST", "/send",
		strings.NewReader(`{"to":"abc","text":"hi"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, 400, resp.StatusCode)
	assert.Empty(t, spy.calls, "relay không được gọi khi input sai")
}

func TestHandleSendMessage_RelayLoiTra502(t *testing.T) {
	spy := &relaySpy{err: common.NewError(
		common.ErrCodeUpstream, "WhatsApp relay trả về status 500", common.StatusBadGateway, nil)}
	app := newSendTestApp(t, spy)

	req := httptest.NewRequest("POST", "/send",
		strings.NewReader(`{"to":"84901234567","text":"hi"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, 502, resp.StatusCode)
	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "SYS_002", body["code"])
	assert.Equal(t, "error", body["status"])
}

func TestHandleListMessages_ThieuIdTra400(t *testing.T) {
	app := newSendTestApp(t, &relaySpy{})

	resp, err := app.Test(httptest.NewRequest("GET", "/messages", nil))
	require.NoError(t, err)

	assert.Equal(t, 400, resp.StatusCode)
	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "VAL_001", body["code"])
}
