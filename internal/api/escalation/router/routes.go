// Package router đăng ký các route thuộc domain escalation.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	escalationhdl "guest_desk/internal/api/escalation/handler"
	"guest_desk/internal/api/middleware"
	apirouter "guest_desk/internal/api/router"
	"guest_desk/internal/global"
)

// Register đăng ký tất cả route escalation lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	handler, err := escalationhdl.NewEscalationHandler()
	if err != nil {
		return fmt.Errorf("tạo EscalationHandler: %w", err)
	}

	authMiddleware := middleware.PasswordAuth(global.ServerConfig.AuthPassword)
	middlewares := []fiber.Handler{authMiddleware}

	// GET /escalations — danh sách escalation kèm tên khách
	apirouter.RegisterRouteWithMiddleware(v1, "/escalations", "GET", "/", middlewares, handler.HandleListEscalations)

	// POST /escalations/resolve — đánh dấu đã xử lý
	apirouter.RegisterRouteWithMiddleware(v1, "/escalations", "POST", "/resolve", middlewares, handler.HandleResolveEscalation)

	return nil
}
