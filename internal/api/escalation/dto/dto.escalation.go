// Package dto định nghĩa input/output cho các endpoint domain escalation.
package dto

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	escalationmodels "guest_desk/internal/api/escalation/models"
)

// EscalationBoardItem là một dòng trong danh sách escalation của dashboard,
// đã join với thông tin khách. UserName là null khi khách không còn tồn tại.
type EscalationBoardItem struct {
	ID        primitive.ObjectID `json:"_id" bson:"_id"`
	UserID    string             `json:"user_id" bson:"user_id"`
	UserName  *string            `json:"userName" bson:"userName"`
	Message   string             `json:"message" bson:"message"`
	Status    string             `json:"status" bson:"status"`
	CreatedAt int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64              `json:"updatedAt" bson:"updatedAt"`
}

// ResolveInput là body của POST /escalations/resolve
type ResolveInput struct {
	ID string `json:"id"`
}

// ResolveResult là body trả về của POST /escalations/resolve: message theo
// outcome và document escalation (sau khi update nếu có ghi).
type ResolveResult struct {
	Message    string                       `json:"message"`
	Escalation *escalationmodels.Escalation `json:"escalation"`
}
