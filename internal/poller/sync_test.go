// Package poller - Test ConversationSync giữ snapshot khi fetch lỗi.
package poller

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	chatdto "guest_desk/internal/api/chat/dto"
)

// newStubAPI dựng API server giả: trả JSON cố định khi healthy, 500 khi failing.
func newStubAPI(t *testing.T, failing *atomic.Bool) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// assert thay vì require: handler chạy ở goroutine của server
		assert.Equal(t, "secret123", r.URL.Query().Get("password"), "mọi request phải kèm password")

		if failing.Load() {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/api/v1/users":
			io.WriteString(w, `[{"wa_id":"84901234567","name":"Anna","lastInteraction":null,"lastMessage":"hi","lastTimestamp":1700000000000}]`)
		case "/api/v1/messages":
			assert.Equal(t, "84901234567", r.URL.Query().Get("id"))
			io.WriteString(w, `[{"message_id":"m1","direction":"inbound","text":"hi","timestamp":1700000000000}]`)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
}

func TestConversationSync_FetchLoiGiuSnapshotCu(t *testing.T) {
	var failing atomic.Bool
	server := newStubAPI(t, &failing)
	defer server.Close()

	sync := NewConversationSync(NewClient(server.URL, "secret123"))
	ctx := context.Background()

	require.NoError(t, sync.SyncGuests(ctx))
	require.Len(t, sync.Guests(), 1)

	// Server chết: tick lỗi nhưng danh sách cũ phải còn nguyên
	failing.Store(true)
	err := sync.SyncGuests(ctx)
	require.Error(t, err)
	assert.Len(t, sync.Guests(), 1, "snapshot không được xóa trắng khi fetch lỗi")
}

func TestConversationSync_DoiKhachXoaHoiThoaiCu(t *testing.T) {
	var failing atomic.Bool
	server := newStubAPI(t, &failing)
	defer server.Close()

	sync := NewConversationSync(NewClient(server.URL, "secret123"))
	ctx := context.Background()

	sync.SetActiveGuest("84901234567")
	require.NoError(t, sync.SyncMessages(ctx))
	require.Len(t, sync.Messages(), 1)

	// Đổi sang khách khác: không được hiện tin nhắn của khách trước
	sync.SetActiveGuest("84907654321")
	assert.Empty(t, sync.Messages())
}

func TestSortGuests_MoiNhatTruocKhachChuaNhanXuongCuoi(t *testing.T) {
	ts := func(v int64) *int64 { return &v }
	items := []chatdto.GuestBoardItem{
		{WaID: "84900000001", LastTimestamp: nil},
		{WaID: "84900000002", LastTimestamp: ts(1700000001000)},
		{WaID: "84900000003", LastTimestamp: ts(1700000003000)},
		{WaID: "84900000004", LastTimestamp: nil},
		{WaID: "84900000005", LastTimestamp: ts(1700000002000)},
	}

	SortGuests(items)

	got := make([]string, len(items))
	for i, item := range items {
		got[i] = item.WaID
	}
	// Mới nhất trước; hai khách chưa có timestamp giữ thứ tự cũ ở cuối
	assert.Equal(t, []string{"84900000003", "84900000005", "84900000002", "84900000001", "84900000004"}, got)
}

func TestConversationSync_SyncGuestsSapXepSnapshot(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `[
			{"wa_id":"84900000001","name":"Anna","lastInteraction":null,"lastMessage":null,"lastTimestamp":null},
			{"wa_id":"84900000002","name":"Bình","lastInteraction":null,"lastMessage":"hi","lastTimestamp":1700000001000},
			{"wa_id":"84900000003","name":"Chi","lastInteraction":null,"lastMessage":"hello","lastTimestamp":1700000002000}
		]`)
	}))
	defer server.Close()

	sync := NewConversationSync(NewClient(server.URL, "secret123"))
	require.NoError(t, sync.SyncGuests(context.Background()))

	guests := sync.Guests()
	require.Len(t, guests, 3)
	assert.Equal(t, "84900000003", guests[0].WaID)
	assert.Equal(t, "84900000002", guests[1].WaID)
	assert.Equal(t, "84900000001", guests[2].WaID, "khách chưa có tin nhắn phải xuống cuối")
}

func TestConversationSync_KhongCoKhachDangChonLaNoOp(t *testing.T) {
	var failing atomic.Bool
	failing.Store(true) // server lỗi nhưng không được gọi đến
	server := newStubAPI(t, &failing)
	defer server.Close()

	sync := NewConversationSync(NewClient(server.URL, "secret123"))
	assert.NoError(t, sync.SyncMessages(context.Background()))
}
