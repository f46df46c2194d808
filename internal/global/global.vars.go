// Package global chứa các biến toàn cục dùng chung trong ứng dụng.
package global

import (
	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/mongo"

	"guest_desk/config"
	"guest_desk/internal/registry"
)

// ColNames chứa tên các collection trong database.
// Tên collection phải khớp với dữ liệu mà WhatsApp relay ghi vào.
type ColNames struct {
	Users       string // Collection khách (guest) theo wa_id
	Messages    string // Collection tin nhắn hội thoại
	Escalations string // Collection yêu cầu hỗ trợ cần nhân viên xử lý
}

var (
	// MongoDB_ColNames giá trị tên các collection, khởi tạo trong cmd/server/init.go
	MongoDB_ColNames ColNames

	// Validate instance validator dùng chung, khởi tạo qua InitValidator
	Validate *validator.Validate

	// MongoDB_Session session kết nối MongoDB dùng chung
	MongoDB_Session *mongo.Client

	// ServerConfig cấu hình server đọc từ env
	ServerConfig *config.Configuration

	// RegistryCollections registry chứa các *mongo.Collection theo tên
	RegistryCollections = registry.NewRegistry[*mongo.Collection]()
)

// GetColNames trả về danh sách tên tất cả collection đã khai báo.
func GetColNames() []string {
	return []string{
		MongoDB_ColNames.Users,
		MongoDB_ColNames.Messages,
		MongoDB_ColNames.Escalations,
	}
}
