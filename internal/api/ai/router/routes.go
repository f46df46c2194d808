// Package router đăng ký route thuộc domain AI: stream completion.
package router

import (
	"github.com/gofiber/fiber/v3"

	aihdl "guest_desk/internal/api/ai/handler"
	aisvc "guest_desk/internal/api/ai/service"
	apirouter "guest_desk/internal/api/router"
	"guest_desk/internal/global"
)

// Register đăng ký route AI lên v1.
// Route stream KHÔNG qua password auth: widget chat trên trang khách gọi
// thẳng endpoint này, khác với các route dashboard.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	service := aisvc.NewCompletionService(global.ServerConfig)
	handler := aihdl.NewStreamHandler(service)

	// POST /ai/stream — relay chat completion dạng streaming
	apirouter.RegisterRouteWithMiddleware(v1, "/ai", "POST", "/stream",
		nil, handler.HandleStream)

	return nil
}
