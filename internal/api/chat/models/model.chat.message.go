package models

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Direction của tin nhắn trong hội thoại
const (
	DirectionInbound  = "inbound"  // Khách gửi đến
	DirectionOutbound = "outbound" // Nhân viên / hệ thống gửi đi
)

// Message đại diện cho một tin nhắn trong collection messages.
// message_id là id do WhatsApp cấp, chỉ tồn tại khi relay đã xác nhận
// nên unique index phải sparse. Compound index wa_id + timestamp giảm dần
// phục vụ truy vấn "tin nhắn mới nhất của một khách".
type Message struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	WaID      string             `json:"wa_id" bson:"wa_id" index:"single;compound:wa_id_timestamp"`
	MessageID string             `json:"message_id" bson:"message_id,omitempty" index:"unique,sparse"`
	Direction string             `json:"direction" bson:"direction"` // inbound | outbound
	Text      string             `json:"text" bson:"text,omitempty"`
	Image     string             `json:"image" bson:"image,omitempty"` // URL ảnh đính kèm nếu có
	Data      bson.M             `json:"data,omitempty" bson:"data,omitempty"` // Payload gốc từ relay
	Timestamp int64              `json:"timestamp" bson:"timestamp" index:"compound:wa_id_timestamp,order:-1"` // Unix ms
	CreatedAt int64              `json:"createdAt" bson:"createdAt,omitempty"`
	UpdatedAt int64              `json:"updatedAt" bson:"updatedAt,omitempty"`
}
