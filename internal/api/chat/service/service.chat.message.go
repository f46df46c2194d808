package chatsvc

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	basesvc "guest_desk/internal/api/base/service"
	chatmodels "guest_desk/internal/api/chat/models"
	"guest_desk/internal/common"
	"guest_desk/internal/global"
)

// MessageService xử lý truy vấn trên collection messages.
type MessageService struct {
	*basesvc.BaseServiceMongoImpl[chatmodels.Message]
}

// NewMessageService tạo MessageService mới với collection từ registry.
func NewMessageService() (*MessageService, error) {
	coll, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Messages)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.Messages, common.ErrNotFound)
	}
	return &MessageService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[chatmodels.Message](coll),
	}, nil
}

// FindByWaID trả về toàn bộ tin nhắn của một khách theo thứ tự lưu trữ.
// Không sort phía server: client sắp xếp theo timestamp khi hiển thị.
// Payload gốc từ relay (data) không trả về cho dashboard.
func (s *MessageService) FindByWaID(ctx context.Context, waID string) ([]chatmodels.Message, error) {
	opts := options.Find().SetProjection(bson.M{"data": 0})
	return s.Find(ctx, bson.M{"wa_id": waID}, opts)
}
