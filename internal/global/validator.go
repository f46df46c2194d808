package global

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// InitValidator khởi tạo và đăng ký các custom validator
func InitValidator() {
	Validate = validator.New()

	_ = Validate.RegisterValidation("wa_id", validateWaID)
	_ = Validate.RegisterValidation("no_xss", validateNoXSS)
}

// validateWaID kiểm tra định dạng WhatsApp id: chuỗi số kiểu E.164 bỏ dấu +,
// 5-20 ký tự. Relay dùng wa_id làm khóa hội thoại nên không chấp nhận ký tự khác.
func validateWaID(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if len(value) < 5 || len(value) > 20 {
		return false
	}
	for _, ch := range value {
		if ch < '0' || ch > '9' {
			return false
		}
	}
	return true
}

// validateNoXSS kiểm tra XSS trong text gửi đi
func validateNoXSS(fl validator.FieldLevel) bool {
	value := strings.ToLower(fl.Field().String())
	dangerousPatterns := []string{
		"<script",
		"javascript:",
		"onerror=",
		"onload=",
		"onclick=",
		"eval(",
		"document.cookie",
		"<iframe",
		"<object",
		"<embed",
	}
	for _, pattern := range dangerousPatterns {
		if strings.Contains(value, pattern) {
			return false
		}
	}
	return true
}
