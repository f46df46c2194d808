// Package reportsvc - Service tổng hợp các chỉ số vận hành cho dashboard.
package reportsvc

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	basesvc "guest_desk/internal/api/base/service"
	chatmodels "guest_desk/internal/api/chat/models"
	escalationmodels "guest_desk/internal/api/escalation/models"
	reportdto "guest_desk/internal/api/report/dto"
	"guest_desk/internal/common"
	"guest_desk/internal/global"
)

// AnalyticsService đọc từ messages và escalations để tính chỉ số.
type AnalyticsService struct {
	messages    *basesvc.BaseServiceMongoImpl[chatmodels.Message]
	escalations *basesvc.BaseServiceMongoImpl[escalationmodels.Escalation]
}

// NewAnalyticsService tạo AnalyticsService mới với các collection từ registry.
func NewAnalyticsService() (*AnalyticsService, error) {
	messagesColl, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Messages)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.Messages, common.ErrNotFound)
	}
	escalationsColl, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Escalations)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.Escalations, common.ErrNotFound)
	}
	return &AnalyticsService{
		messages:    basesvc.NewBaseServiceMongo[chatmodels.Message](messagesColl),
		escalations: basesvc.NewBaseServiceMongo[escalationmodels.Escalation](escalationsColl),
	}, nil
}

// BuildResponseTimePipeline tạo pipeline tính thời gian xử lý trung bình (phút)
// trên các escalation đã resolved: avg của (updatedAt - createdAt) / 60000.
// Timestamps là unix ms nên $subtract trả về ms.
func BuildResponseTimePipeline() mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"status": escalationmodels.StatusResolved}}},
		{{Key: "$group", Value: bson.M{
			"_id": nil,
			"avgMinutes": bson.M{"$avg": bson.M{
				"$divide": bson.A{
					bson.M{"$subtract": bson.A{"$updatedAt", "$createdAt"}},
					60000,
				},
			}},
		}}},
	}
}

// ExtractResponseTime đọc avgMinutes từ kết quả pipeline.
// Không có escalation nào resolved (kết quả rỗng hoặc null) → 0.
func ExtractResponseTime(results []bson.M) float64 {
	if len(results) == 0 {
		return 0
	}
	switch v := results[0]["avgMinutes"].(type) {
	case float64:
		return v
	case int64:
		return float64(v)
	case int32:
		return float64(v)
	default:
		return 0
	}
}

// GetAnalytics tính toàn bộ chỉ số vận hành.
// totalUsers đếm số wa_id khác nhau trong messages: "số khách đã từng nhắn tin",
// không phải kích thước collection users.
func (s *AnalyticsService) GetAnalytics(ctx context.Context) (*reportdto.AnalyticsResult, error) {
	totalMessages, err := s.messages.CountDocuments(ctx, nil)
	if err != nil {
		return nil, err
	}

	messagesSent, err := s.messages.CountDocuments(ctx, bson.M{"direction": chatmodels.DirectionOutbound})
	if err != nil {
		return nil, err
	}

	messagesReceived, err := s.messages.CountDocuments(ctx, bson.M{"direction": chatmodels.DirectionInbound})
	if err != nil {
		return nil, err
	}

	waIDs, err := s.messages.Distinct(ctx, "wa_id", nil)
	if err != nil {
		return nil, err
	}

	totalEscalations, err := s.escalations.CountDocuments(ctx, nil)
	if err != nil {
		return nil, err
	}

	resolvedEscalations, err := s.escalations.CountDocuments(ctx, bson.M{"status": escalationmodels.StatusResolved})
	if err != nil {
		return nil, err
	}

	pendingEscalations, err := s.escalations.CountDocuments(ctx, bson.M{"status": escalationmodels.StatusPending})
	if err != nil {
		return nil, err
	}

	results, err := s.escalations.Aggregate(ctx, BuildResponseTimePipeline())
	if err != nil {
		return nil, err
	}

	return &reportdto.AnalyticsResult{
		TotalMessages:            totalMessages,
		TotalEscalations:         totalEscalations,
		TotalResolvedEscalations: resolvedEscalations,
		TotalPendingEscalations:  pendingEscalations,
		TotalUsers:               int64(len(waIDs)),
		TotalMessagesSent:        messagesSent,
		TotalMessagesReceived:    messagesReceived,
		ResponseTime:             ExtractResponseTime(results),
	}, nil
}
