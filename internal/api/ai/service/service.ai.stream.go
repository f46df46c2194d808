// Package aisvc - Service relay chat completion từ AI provider về dashboard.
package aisvc

import (
	"context"

	openai "github.com/sashabaranov/go-openai"

	"guest_desk/config"
)

// CompletionService mở stream chat completion từ AI provider.
type CompletionService struct {
	client *openai.Client
	model  string
}

// NewCompletionService tạo CompletionService từ cấu hình.
// OPENAI_BASE_URL cho phép trỏ sang provider tương thích khác (hoặc stub khi test).
func NewCompletionService(cfg *config.Configuration) *CompletionService {
	clientConfig := openai.DefaultConfig(cfg.OpenAIAPIKey)
	if cfg.OpenAIBaseURL != "" {
		clientConfig.BaseURL = cfg.OpenAIBaseURL
	}
	return &CompletionService{
		client: openai.NewClientWithConfig(clientConfig),
		model:  cfg.OpenAIModel,
	}
}

// StreamCompletion mở stream completion cho một prompt.
// Caller chịu trách nhiệm Close stream sau khi đọc xong.
func (s *CompletionService) StreamCompletion(ctx context.Context, prompt string) (*openai.ChatCompletionStream, error) {
	return s.client.CreateChatCompletionStream(ctx, openai.ChatCompletionRequest{
		Model:  s.model,
		Stream: true,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
}
