package chathdl

import (
	"github.com/gofiber/fiber/v3"

	basehdl "guest_desk/internal/api/base/handler"
	chatdto "guest_desk/internal/api/chat/dto"
	chatsvc "guest_desk/internal/api/chat/service"
	"guest_desk/internal/common"
	"guest_desk/internal/global"
	"guest_desk/internal/logger"
)

// MessageHandler xử lý lịch sử hội thoại và gửi tin nhắn đi.
type MessageHandler struct {
	messageService *chatsvc.MessageService
	relay          chatsvc.RelaySender
}

// NewMessageHandler tạo MessageHandler mới. Relay được inject để test
// có thể thay bằng spy thay vì gọi relay thật.
func NewMessageHandler(relay chatsvc.RelaySender) (*MessageHandler, error) {
	messageService, err := chatsvc.NewMessageService()
	if err != nil {
		return nil, err
	}
	return &MessageHandler{
		messageService: messageService,
		relay:          relay,
	}, nil
}

// HandleListMessages trả về lịch sử tin nhắn của một khách.
// GET /api/v1/messages?id=<wa_id>
func (h *MessageHandler) HandleListMessages(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		waID := c.Query("id")
		if waID == "" {
			return basehdl.HandleError(c, common.NewError(
				common.ErrCodeValidationInput,
				"Thiếu tham số id (wa_id của khách)",
				common.StatusBadRequest,
				nil,
			))
		}

		messages, err := h.messageService.FindByWaID(c.Context(), waID)
		if err != nil {
			logger.WithRequest(c).WithError(err).Error("List messages failed")
			return basehdl.HandleError(c, err)
		}

		items := make([]chatdto.MessageItem, 0, len(messages))
		for _, m := range messages {
			items = append(items, chatdto.MessageItem{
				MessageID: m.MessageID,
				Direction: m.Direction,
				Text:      m.Text,
				Image:     m.Image,
				Timestamp: m.Timestamp,
			})
		}
		return basehdl.JSONResponse(c, fiber.StatusOK, items)
	})
}

// HandleSendMessage gửi một tin nhắn đi qua WhatsApp relay.
// POST /api/v1/send — body {to, text}. Không ghi gì vào database:
// relay tự ghi bản ghi outbound sau khi gửi thành công.
func (h *MessageHandler) HandleSendMessage(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		var input chatdto.SendMessageInput
		if err := c.Bind().Body(&input); err != nil {
			return basehdl.HandleError(c, common.NewError(
				common.ErrCodeValidationFormat,
				"Body không phải JSON hợp lệ",
				common.StatusBadRequest,
				err,
			))
		}

		if err := global.Validate.Struct(input); err != nil {
			return basehdl.HandleError(c, common.NewError(
				common.ErrCodeValidationInput,
				"Thiếu hoặc sai định dạng to/text",
				common.StatusBadRequest,
				err,
			))
		}

		if err := h.relay.Send(c.Context(), input.To, input.Text); err != nil {
			logger.WithRequest(c).WithError(err).WithField("to", input.To).Error("Relay send failed")
			return basehdl.HandleError(c, err)
		}

		logger.WithRequest(c).WithField("to", input.To).Info("Message relayed")
		return basehdl.JSONResponse(c, fiber.StatusOK, fiber.Map{
			"message": "Message sent successfully",
		})
	})
}
