// Package chatsvc - Service cho domain chat: danh sách khách, lịch sử tin nhắn,
// gửi tin qua WhatsApp relay.
package chatsvc

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	basesvc "guest_desk/internal/api/base/service"
	chatdto "guest_desk/internal/api/chat/dto"
	chatmodels "guest_desk/internal/api/chat/models"
	"guest_desk/internal/common"
	"guest_desk/internal/global"
)

// UserService xử lý truy vấn trên collection users.
type UserService struct {
	*basesvc.BaseServiceMongoImpl[chatmodels.User]
	messagesColName string
}

// NewUserService tạo UserService mới với collection từ registry.
func NewUserService() (*UserService, error) {
	coll, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Users)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.Users, common.ErrNotFound)
	}
	return &UserService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[chatmodels.User](coll),
		messagesColName:      global.MongoDB_ColNames.Messages,
	}, nil
}

// BuildGuestBoardPipeline tạo aggregation pipeline lấy danh sách khách kèm
// tin nhắn mới nhất của từng khách: $lookup sub-pipeline trên messages
// (match wa_id, sort timestamp giảm dần, limit 1). Khách chưa có tin nhắn
// trả về lastMessage/lastTimestamp = null tường minh.
func BuildGuestBoardPipeline(messagesCol string) mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$lookup", Value: bson.M{
			"from": messagesCol,
			"let":  bson.M{"guestId": "$wa_id"},
			"pipeline": bson.A{
				bson.M{"$match": bson.M{"$expr": bson.M{"$eq": bson.A{"$wa_id", "$$guestId"}}}},
				bson.M{"$sort": bson.M{"timestamp": -1}},
				bson.M{"$limit": 1},
				bson.M{"$project": bson.M{"_id": 0, "text": 1, "timestamp": 1}},
			},
			"as": "lastMessage",
		}}},
		{{Key: "$addFields", Value: bson.M{
			"lastMessage": bson.M{"$arrayElemAt": bson.A{"$lastMessage", 0}},
		}}},
		{{Key: "$project", Value: bson.M{
			"_id":             0,
			"wa_id":           1,
			"name":            bson.M{"$ifNull": bson.A{"$name", ""}},
			"lastInteraction": bson.M{"$ifNull": bson.A{"$last_interaction", nil}},
			"lastMessage":     bson.M{"$ifNull": bson.A{"$lastMessage.text", nil}},
			"lastTimestamp":   bson.M{"$ifNull": bson.A{"$lastMessage.timestamp", nil}},
		}}},
	}
}

// ListWithLastMessage trả về danh sách khách kèm tin nhắn cuối của mỗi khách.
func (s *UserService) ListWithLastMessage(ctx context.Context) ([]chatdto.GuestBoardItem, error) {
	cursor, err := s.Collection().Aggregate(ctx, BuildGuestBoardPipeline(s.messagesColName))
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}
	defer cursor.Close(ctx)

	var items []chatdto.GuestBoardItem
	if err := cursor.All(ctx, &items); err != nil {
		return nil, common.ConvertMongoError(err)
	}
	if items == nil {
		items = []chatdto.GuestBoardItem{}
	}
	return items, nil
}
