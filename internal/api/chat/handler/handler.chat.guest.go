// Package chathdl chứa các handler HTTP cho domain chat.
package chathdl

import (
	"github.com/gofiber/fiber/v3"

	basehdl "guest_desk/internal/api/base/handler"
	chatsvc "guest_desk/internal/api/chat/service"
	"guest_desk/internal/logger"
)

// GuestHandler xử lý các route danh sách khách.
type GuestHandler struct {
	userService *chatsvc.UserService
}

// NewGuestHandler tạo GuestHandler mới.
func NewGuestHandler() (*GuestHandler, error) {
	userService, err := chatsvc.NewUserService()
	if err != nil {
		return nil, err
	}
	return &GuestHandler{userService: userService}, nil
}

// HandleListGuests trả về danh sách khách kèm tin nhắn mới nhất của từng khách.
// GET /api/v1/users
func (h *GuestHandler) HandleListGuests(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		items, err := h.userService.ListWithLastMessage(c.Context())
		if err != nil {
			logger.WithRequest(c).WithError(err).Error("List guests failed")
			return basehdl.HandleError(c, err)
		}
		return basehdl.JSONResponse(c, fiber.StatusOK, items)
	})
}
