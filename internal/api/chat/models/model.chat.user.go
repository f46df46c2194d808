// Package models định nghĩa các model MongoDB cho domain chat (khách và tin nhắn).
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User đại diện cho một khách (guest) trong collection users.
// Mỗi khách được định danh bằng wa_id (số WhatsApp dạng E.164 bỏ dấu +).
type User struct {
	ID              primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	WaID            string             `json:"wa_id" bson:"wa_id" index:"unique"`                      // Số WhatsApp, khóa hội thoại
	Name            string             `json:"name" bson:"name,omitempty"`                             // Tên hiển thị từ profile WhatsApp
	LastInteraction int64              `json:"lastInteraction" bson:"last_interaction,omitempty"`      // Unix ms lần tương tác cuối
	CreatedAt       int64              `json:"createdAt" bson:"createdAt,omitempty"`
	UpdatedAt       int64              `json:"updatedAt" bson:"updatedAt,omitempty"`
}
