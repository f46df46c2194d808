// Package poller cung cấp client đồng bộ dữ liệu hội thoại từ API server
// cho các dashboard cần polling định kỳ.
package poller

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	chatdto "guest_desk/internal/api/chat/dto"
	"guest_desk/internal/common"
)

// Client gọi API server qua HTTP, xác thực bằng password query param.
type Client struct {
	baseURL    string
	password   string
	httpClient *http.Client
}

// NewClient tạo client mới. baseURL là gốc của API server
// (ví dụ "http://localhost:3000"), không kèm /api/v1.
func NewClient(baseURL, password string) *Client {
	return &Client{
		baseURL:  strings.TrimRight(baseURL, "/"),
		password: password,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// FetchGuests lấy danh sách khách kèm tin nhắn mới nhất từ GET /api/v1/users.
func (c *Client) FetchGuests(ctx context.Context) ([]chatdto.GuestBoardItem, error) {
	var items []chatdto.GuestBoardItem
	if err := c.getJSON(ctx, "/api/v1/users", nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// FetchMessages lấy toàn bộ tin nhắn của một khách từ GET /api/v1/messages?id=.
func (c *Client) FetchMessages(ctx context.Context, waID string) ([]chatdto.MessageItem, error) {
	var items []chatdto.MessageItem
	params := url.Values{"id": []string{waID}}
	if err := c.getJSON(ctx, "/api/v1/messages", params, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// getJSON thực hiện GET và decode JSON body vào out.
func (c *Client) getJSON(ctx context.Context, path string, params url.Values, out interface{}) error {
	if params == nil {
		params = url.Values{}
	}
	params.Set("password", c.password)

	endpoint := fmt.Sprintf("%s%s?%s", c.baseURL, path, params.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return common.NewError(
			common.ErrCodeUpstream,
			fmt.Sprintf("Không tạo được request tới %s", path),
			common.StatusInternalServerError,
			err,
		)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return common.NewError(
			common.ErrCodeUpstream,
			fmt.Sprintf("Không kết nối được API server tại %s", path),
			common.StatusBadGateway,
			err,
		)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return common.NewError(
			common.ErrCodeUpstream,
			fmt.Sprintf("API server trả về status %d cho %s", resp.StatusCode, path),
			common.StatusBadGateway,
			nil,
		)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return common.NewError(
			common.ErrCodeUpstream,
			fmt.Sprintf("Body không phải JSON hợp lệ từ %s", path),
			common.StatusBadGateway,
			err,
		)
	}
	return nil
}
