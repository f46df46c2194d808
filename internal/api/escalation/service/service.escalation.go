// Package escalationsvc - Service quản lý hàng đợi escalation và state machine resolve.
package escalationsvc

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	basesvc "guest_desk/internal/api/base/service"
	escalationdto "guest_desk/internal/api/escalation/dto"
	escalationmodels "guest_desk/internal/api/escalation/models"
	"guest_desk/internal/common"
	"guest_desk/internal/global"
)

// ResolveOutcome là kết quả của một lần resolve.
type ResolveOutcome int

const (
	// OutcomeResolved escalation đang pending, chuyển sang resolved
	OutcomeResolved ResolveOutcome = iota
	// OutcomeAlreadyResolved escalation đã resolved từ trước, không ghi gì thêm
	OutcomeAlreadyResolved
	// OutcomeInvalidStatus trạng thái không phải pending/resolved, từ chối
	OutcomeInvalidStatus
)

// Message trên API cho từng outcome, khớp contract của dashboard frontend.
const (
	MsgResolved        = "Escalation resolved successfully"
	MsgAlreadyResolved = "Escalation already resolved"
	MsgInvalidStatus   = "Escalation status is not pending"
)

// DecideResolve là state machine thuần của thao tác resolve:
// pending → resolved; resolved → no-op thành công (idempotent);
// trạng thái khác → từ chối. Tách thuần để test không cần database.
func DecideResolve(status string) ResolveOutcome {
	switch status {
	case escalationmodels.StatusResolved:
		return OutcomeAlreadyResolved
	case escalationmodels.StatusPending:
		return OutcomeResolved
	default:
		return OutcomeInvalidStatus
	}
}

// EscalationService xử lý logic trên collection escalations.
type EscalationService struct {
	*basesvc.BaseServiceMongoImpl[escalationmodels.Escalation]
	usersColName string
}

// NewEscalationService tạo EscalationService mới với collection từ registry.
func NewEscalationService() (*EscalationService, error) {
	coll, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Escalations)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.Escalations, common.ErrNotFound)
	}
	return &EscalationService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[escalationmodels.Escalation](coll),
		usersColName:         global.MongoDB_ColNames.Users,
	}, nil
}

// BuildEscalationBoardPipeline tạo pipeline danh sách escalation mới nhất trước,
// join với users theo user_id = wa_id. $unwind giữ preserveNullAndEmptyArrays
// để escalation của khách đã xóa vẫn hiện ra với userName = null.
func BuildEscalationBoardPipeline(usersCol string) mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$sort", Value: bson.M{"createdAt": -1}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         usersCol,
			"localField":   "user_id",
			"foreignField": "wa_id",
			"as":           "user",
		}}},
		{{Key: "$unwind", Value: bson.M{
			"path":                       "$user",
			"preserveNullAndEmptyArrays": true,
		}}},
		{{Key: "$project", Value: bson.M{
			"_id":       1,
			"user_id":   1,
			"userName":  bson.M{"$ifNull": bson.A{"$user.name", nil}},
			"message":   1,
			"status":    1,
			"createdAt": 1,
			"updatedAt": 1,
		}}},
	}
}

// ListWithGuest trả về danh sách escalation kèm tên khách, mới nhất trước.
func (s *EscalationService) ListWithGuest(ctx context.Context) ([]escalationdto.EscalationBoardItem, error) {
	cursor, err := s.Collection().Aggregate(ctx, BuildEscalationBoardPipeline(s.usersColName))
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}
	defer cursor.Close(ctx)

	var items []escalationdto.EscalationBoardItem
	if err := cursor.All(ctx, &items); err != nil {
		return nil, common.ConvertMongoError(err)
	}
	if items == nil {
		items = []escalationdto.EscalationBoardItem{}
	}
	return items, nil
}

// Resolve chuyển một escalation từ pending sang resolved.
// Trả về message cho client cùng document escalation theo outcome:
//   - id rỗng hoặc không phải ObjectId hợp lệ → 400
//   - không tìm thấy → 404
//   - đã resolved → thành công idempotent, KHÔNG ghi database (updatedAt giữ nguyên),
//     trả về document hiện có
//   - trạng thái khác pending → 400
//   - pending → set resolved, stamp updatedAt, trả về document sau khi update
func (s *EscalationService) Resolve(ctx context.Context, idHex string) (string, *escalationmodels.Escalation, error) {
	if idHex == "" {
		return "", nil, common.NewError(common.ErrCodeValidationInput, "Missing escalation id", common.StatusBadRequest, nil)
	}

	id, err := primitive.ObjectIDFromHex(idHex)
	if err != nil {
		return "", nil, common.NewError(common.ErrCodeValidationInput, "Invalid escalation id", common.StatusBadRequest, nil)
	}

	escalation, err := s.FindOneById(ctx, id)
	if err != nil {
		if customErr, ok := err.(*common.Error); ok && customErr.StatusCode == common.StatusNotFound {
			return "", nil, common.NewError(common.ErrCodeDatabaseQuery, "Escalation not found", common.StatusNotFound, nil)
		}
		return "", nil, err
	}

	switch DecideResolve(escalation.Status) {
	case OutcomeAlreadyResolved:
		return MsgAlreadyResolved, &escalation, nil
	case OutcomeInvalidStatus:
		return "", nil, common.NewError(common.ErrCodeBusinessOperation, MsgInvalidStatus, common.StatusBadRequest, nil)
	}

	update := &basesvc.UpdateData{
		Set: map[string]interface{}{"status": escalationmodels.StatusResolved},
	}
	updated, err := s.UpdateById(ctx, id, update)
	if err != nil {
		return "", nil, err
	}

	return MsgResolved, &updated, nil
}
