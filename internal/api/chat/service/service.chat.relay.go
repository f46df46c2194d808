package chatsvc

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"guest_desk/internal/common"
)

// RelaySender gửi tin nhắn đi qua WhatsApp relay.
// Interface để handler nhận và test inject spy thay cho relay thật.
type RelaySender interface {
	Send(ctx context.Context, to string, text string) error
}

// RelayClient gọi endpoint /send của WhatsApp relay.
// Relay tự ghi bản ghi outbound vào collection messages, service này không ghi gì.
type RelayClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewRelayClient tạo RelayClient với base URL từ cấu hình (WHATSAPP_URL).
func NewRelayClient(baseURL string) *RelayClient {
	return &RelayClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// Send gọi GET {baseURL}/send?to=&text= với query được escape.
// Status ngoài 2xx coi là relay lỗi và trả về 502 cho client.
func (r *RelayClient) Send(ctx context.Context, to string, text string) error {
	endpoint := fmt.Sprintf("%s/send?to=%s&text=%s", r.baseURL, url.QueryEscape(to), url.QueryEscape(text))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return common.NewError(common.ErrCodeUpstream, "Không tạo được request đến relay", common.StatusInternalServerError, err)
	}

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return common.NewError(common.ErrCodeUpstream, "Không kết nối được WhatsApp relay", common.StatusBadGateway, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		// Đọc body để connection được reuse, nội dung không trả ra ngoài
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return common.NewError(
			common.ErrCodeUpstream,
			fmt.Sprintf("WhatsApp relay trả về status %d", resp.StatusCode),
			common.StatusBadGateway,
			nil,
		)
	}

	return nil
}
