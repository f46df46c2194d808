// Package aihdl chứa handler HTTP cho endpoint AI streaming.
package aihdl

import (
	"bufio"
	"context"
	"errors"
	"io"
	"strings"

	"github.com/gofiber/fiber/v3"

	aidto "guest_desk/internal/api/ai/dto"
	aisvc "guest_desk/internal/api/ai/service"
	basehdl "guest_desk/internal/api/base/handler"
	"guest_desk/internal/common"
	"guest_desk/internal/logger"
)

// streamErrorMarker là chuỗi báo lỗi in-band khi stream đứt giữa chừng.
// Headers đã gửi nên không đổi status code được nữa, client nhận diện
// qua marker này ở cuối body.
const streamErrorMarker = "\n[error]: Failed to stream response"

// StreamHandler xử lý route relay chat completion.
type StreamHandler struct {
	service *aisvc.CompletionService
}

// NewStreamHandler tạo StreamHandler mới.
func NewStreamHandler(service *aisvc.CompletionService) *StreamHandler {
	return &StreamHandler{service: service}
}

// HandleStream relay chat completion về client dạng text/plain chunked.
// POST /api/v1/ai/stream — body {prompt}.
// Stream được mở TRƯỚC khi ghi byte đầu tiên: provider lỗi ngay từ đầu
// trả về 500 JSON bình thường; lỗi giữa chừng ghi marker in-band rồi đóng.
// Từng delta được forward nguyên vẹn theo thứ tự nhận, flush mỗi fragment.
func (h *StreamHandler) HandleStream(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		var input aidto.StreamInput
		if err := c.Bind().Body(&input); err != nil {
			return basehdl.HandleError(c, common.NewError(
				common.ErrCodeValidationFormat,
				"Body không phải JSON hợp lệ",
				common.StatusBadRequest,
				err,
			))
		}
		if strings.TrimSpace(input.Prompt) == "" {
			return basehdl.HandleError(c, common.NewError(
				common.ErrCodeValidationInput,
				"Prompt must be a non-empty string",
				common.StatusBadRequest,
				nil,
			))
		}

		// Body stream writer chạy sau khi handler return, không dùng ctx
		// của request vì nó bị cancel khi handler kết thúc.
		stream, err := h.service.StreamCompletion(context.Background(), input.Prompt)
		if err != nil {
			logger.WithRequest(c).WithError(err).Error("Open completion stream failed")
			return basehdl.HandleError(c, common.NewError(
				common.ErrCodeUpstream,
				"Failed to stream response",
				common.StatusInternalServerError,
				err,
			))
		}

		c.Set("Content-Type", "text/plain; charset=utf-8")
		c.Set("Cache-Control", "no-cache")

		appLogger := logger.GetAppLogger()
		c.RequestCtx().SetBodyStreamWriter(func(w *bufio.Writer) {
			defer stream.Close()
			for {
				resp, err := stream.Recv()
				if errors.Is(err, io.EOF) {
					return
				}
				if err != nil {
					appLogger.WithError(err).Error("Completion stream interrupted")
					_, _ = w.WriteString(streamErrorMarker)
					_ = w.Flush()
					return
				}
				if len(resp.Choices) == 0 {
					continue
				}
				delta := resp.Choices[0].Delta.Content
				if delta == "" {
					continue
				}
				if _, err := w.WriteString(delta); err != nil {
					return
				}
				if err := w.Flush(); err != nil {
					return
				}
			}
		})

		return nil
	})
}
