package middleware

import (
	"crypto/subtle"

	"github.com/gofiber/fiber/v3"

	"guest_desk/internal/common"
)

// PasswordAuth trả về middleware kiểm tra query param `password` với mật khẩu
// chung của dashboard. Chạy trước mọi truy cập database: sai hoặc thiếu mật khẩu
// đều trả về 401 thống nhất, không tiết lộ lý do cụ thể.
// Secret rỗng coi như chưa cấu hình và từ chối tất cả (fail closed).
func PasswordAuth(secret string) fiber.Handler {
	return func(c fiber.Ctx) error {
		password := c.Query("password")
		if secret == "" || password == "" {
			return HandleErrorResponse(c, common.ErrUnauthorized)
		}
		if subtle.ConstantTimeCompare([]byte(password), []byte(secret)) != 1 {
			return HandleErrorResponse(c, common.ErrUnauthorized)
		}
		return c.Next()
	}
}
