// Package models định nghĩa model MongoDB cho domain escalation.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Trạng thái của một escalation. Chỉ pending mới được resolve;
// resolved là trạng thái cuối, resolve lại là no-op.
const (
	StatusPending  = "pending"
	StatusResolved = "resolved"
)

// Escalation là một yêu cầu cần nhân viên xử lý, do relay tạo khi AI
// không trả lời được khách. user_id tham chiếu users.wa_id dạng chuỗi,
// khách có thể đã bị xóa nên join phải chịu được tham chiếu mồ côi.
type Escalation struct {
	ID        primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	UserID    string             `json:"user_id" bson:"user_id" index:"single"`
	Message   string             `json:"message" bson:"message,omitempty"` // Nội dung khách hỏi mà AI bó tay
	Status    string             `json:"status" bson:"status" index:"single"` // pending | resolved
	CreatedAt int64              `json:"createdAt" bson:"createdAt,omitempty"`
	UpdatedAt int64              `json:"updatedAt" bson:"updatedAt,omitempty"`
}
