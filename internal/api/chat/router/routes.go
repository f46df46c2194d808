// Package router đăng ký các route thuộc domain chat: users, messages, send.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	chathdl "guest_desk/internal/api/chat/handler"
	chatsvc "guest_desk/internal/api/chat/service"
	"guest_desk/internal/api/middleware"
	apirouter "guest_desk/internal/api/router"
	"guest_desk/internal/global"
)

// Register đăng ký tất cả route chat lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	guestHandler, err := chathdl.NewGuestHandler()
	if err != nil {
		return fmt.Errorf("tạo GuestHandler: %w", err)
	}

	relay := chatsvc.NewRelayClient(global.ServerConfig.WhatsAppURL)
	messageHandler, err := chathdl.NewMessageHandler(relay)
	if err != nil {
		return fmt.Errorf("tạo MessageHandler: %w", err)
	}

	authMiddleware := middleware.PasswordAuth(global.ServerConfig.AuthPassword)
	middlewares := []fiber.Handler{authMiddleware}

	// GET /users — danh sách khách kèm tin nhắn cuối
	apirouter.RegisterRouteWithMiddleware(v1, "/users", "GET", "/", middlewares, guestHandler.HandleListGuests)

	// GET /messages?id=<wa_id> — lịch sử hội thoại của một khách
	apirouter.RegisterRouteWithMiddleware(v1, "/messages", "GET", "/", middlewares, messageHandler.HandleListMessages)

	// POST /send — gửi tin nhắn qua WhatsApp relay
	apirouter.RegisterRouteWithMiddleware(v1, "/send", "POST", "/", middlewares, messageHandler.HandleSendMessage)

	return nil
}
