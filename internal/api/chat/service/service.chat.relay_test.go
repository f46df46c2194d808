// Package chatsvc - Test RelayClient gọi WhatsApp relay qua httptest.
package chatsvc

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"guest_desk/internal/common"
)

func TestRelayClient_GuiDungQuery(t *testing.T) {
	var gotPath, gotTo, gotText string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotTo = r.URL.Query().Get("to")
		gotText = r.URL.Query().Get("text")
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := NewRelayClient(server.URL)
	err := client.Send(context.Background(), "84901234567", "Xin chào & hẹn gặp?")

	require.NoError(t, err)
	assert.Equal(t, "/send", gotPath)
	assert.Equal(t, "84901234567", gotTo)
	// Ký tự đặc biệt phải được escape rồi decode lại nguyên vẹn
	assert.Equal(t, "Xin chào & hẹn gặp?", gotText)
}

func TestRelayClient_TrailingSlashKhongNhanDoi(t *testing.T) {
	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := NewRelayClient(server.URL + "/")
	require.NoError(t, client.Send(context.Background(), "84901234567", "hi"))
	assert.Equal(t, "/send", gotPath)
}

func TestRelayClient_RelayLoiTraVe502(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewRelayClient(server.URL)
	err := client.Send(context.Background(), "84901234567", "hi")

	require.Error(t, err)
	customErr, ok := err.(*common.Error)
	require.True(t, ok, "lỗi relay phải là *common.Error")
	assert.Equal(t, common.StatusBadGateway, customErr.StatusCode)
	assert.Equal(t, common.ErrCodeUpstream.Code, customErr.Code.Code)
}

func TestRelayClient_KhongKetNoiDuocTraVe502(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // đóng ngay để giả lập relay chết

	client := NewRelayClient(server.URL)
	err := client.Send(context.Background(), "84901234567", "hi")

	require.Error(t, err)
	customErr, ok := err.(*common.Error)
	require.True(t, ok)
	assert.Equal(t, common.StatusBadGateway, customErr.StatusCode)
	assert.Equal(t, common.ErrCodeUpstream.Code, customErr.Code.Code)
}
