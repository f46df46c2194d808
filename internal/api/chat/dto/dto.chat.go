// Package dto định nghĩa input/output cho các endpoint domain chat.
package dto

// GuestBoardItem là một dòng trong danh sách khách của dashboard:
// thông tin khách kèm tin nhắn mới nhất. Khách chưa có tin nhắn nào
// có LastMessage/LastTimestamp là null tường minh (không bỏ field).
type GuestBoardItem struct {
	WaID            string  `json:"wa_id" bson:"wa_id"`
	Name            string  `json:"name" bson:"name"`
	LastInteraction *int64  `json:"lastInteraction" bson:"lastInteraction"`
	LastMessage     *string `json:"lastMessage" bson:"lastMessage"`
	LastTimestamp   *int64  `json:"lastTimestamp" bson:"lastTimestamp"`
}

// MessageItem là một tin nhắn trong lịch sử hội thoại trả về cho client.
// Client tự sắp xếp theo Timestamp, server giữ nguyên thứ tự lưu trữ.
type MessageItem struct {
	MessageID string `json:"message_id"`
	Direction string `json:"direction"`
	Text      string `json:"text"`
	Image     string `json:"image,omitempty"`
	Timestamp int64  `json:"timestamp"`
}

// SendMessageInput là body của POST /send
type SendMessageInput struct {
	To   string `json:"to" validate:"required,wa_id"`
	Text string `json:"text" validate:"required,no_xss"`
}
