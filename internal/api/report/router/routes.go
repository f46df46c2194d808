// Package router đăng ký route thuộc domain report.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	"guest_desk/internal/api/middleware"
	reporthdl "guest_desk/internal/api/report/handler"
	apirouter "guest_desk/internal/api/router"
	"guest_desk/internal/global"
)

// Register đăng ký route report lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	handler, err := reporthdl.NewAnalyticsHandler()
	if err != nil {
		return fmt.Errorf("tạo AnalyticsHandler: %w", err)
	}

	authMiddleware := middleware.PasswordAuth(global.ServerConfig.AuthPassword)
	middlewares := []fiber.Handler{authMiddleware}

	// GET /analytics — chỉ số vận hành của dashboard
	apirouter.RegisterRouteWithMiddleware(v1, "/analytics", "GET", "/", middlewares, handler.HandleGetAnalytics)

	return nil
}
