// Package dto định nghĩa input cho endpoint AI streaming.
package dto

// StreamInput là body của POST /ai/stream.
// Prompt phải là chuỗi không rỗng, kiểu khác bị từ chối khi bind.
type StreamInput struct {
	Prompt string `json:"prompt" validate:"required"`
}
