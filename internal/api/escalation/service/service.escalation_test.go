// Package escalationsvc - Test state machine resolve và pipeline join với users.
package escalationsvc

import (
	"encoding/json"
	"testing"

	"go.mongodb.org/mongo-driver/bson"

	escalationdto "guest_desk/internal/api/escalation/dto"
	escalationmodels "guest_desk/internal/api/escalation/models"
)

func TestDecideResolve_PendingChuyenResolved(t *testing.T) {
	if got := DecideResolve(escalationmodels.StatusPending); got != OutcomeResolved {
		t.Errorf("pending phải cho OutcomeResolved, nhận %v", got)
	}
}

func TestDecideResolve_ResolvedLaIdempotent(t *testing.T) {
	if got := DecideResolve(escalationmodels.StatusResolved); got != OutcomeAlreadyResolved {
		t.Errorf("resolved phải cho OutcomeAlreadyResolved (idempotent), nhận %v", got)
	}
}

func TestDecideResolve_TrangThaiKhacBiTuChoi(t *testing.T) {
	for _, status := range []string{"", "dismissed", "PENDING", "in_progress"} {
		if got := DecideResolve(status); got != OutcomeInvalidStatus {
			t.Errorf("status %q phải cho OutcomeInvalidStatus, nhận %v", status, got)
		}
	}
}

func TestBuildEscalationBoardPipeline_SortTruocLookup(t *testing.T) {
	pipeline := BuildEscalationBoardPipeline("users")
	if len(pipeline) != 4 {
		t.Fatalf("pipeline phải có 4 stage, có %d", len(pipeline))
	}

	// Stage 1: sort mới nhất trước
	if pipeline[0][0].Key != "$sort" {
		t.Errorf("stage đầu phải là $sort, là %s", pipeline[0][0].Key)
	}
	sortSpec := pipeline[0][0].Value.(bson.M)
	if sortSpec["createdAt"] != -1 {
		t.Errorf("$sort phải là createdAt:-1, là %v", sortSpec)
	}

	// Stage 2: lookup join users theo user_id = wa_id
	if pipeline[1][0].Key != "$lookup" {
		t.Fatalf("stage hai phải là $lookup, là %s", pipeline[1][0].Key)
	}
	lookup := pipeline[1][0].Value.(bson.M)
	if lookup["from"] != "users" {
		t.Errorf("$lookup.from phải là users, là %v", lookup["from"])
	}
	if lookup["localField"] != "user_id" || lookup["foreignField"] != "wa_id" {
		t.Errorf("$lookup phải join user_id = wa_id, là %v", lookup)
	}

	// Stage 3: unwind giữ escalation của khách không còn trong users
	unwind := pipeline[2][0].Value.(bson.M)
	if unwind["preserveNullAndEmptyArrays"] != true {
		t.Error("$unwind phải giữ preserveNullAndEmptyArrays để userName = null thay vì mất dòng")
	}
}

func TestBuildEscalationBoardPipeline_ProjectDuTruong(t *testing.T) {
	pipeline := BuildEscalationBoardPipeline("users")
	project := pipeline[3][0].Value.(bson.M)
	for _, field := range []string{"_id", "user_id", "userName", "message", "status", "createdAt", "updatedAt"} {
		if _, ok := project[field]; !ok {
			t.Errorf("$project phải giữ trường %q", field)
		}
	}
}

func TestResolveResult_TraVeMessageVaEscalation(t *testing.T) {
	// Client resolve xong cập nhật dòng tại chỗ từ document trả về,
	// không gọi lại danh sách
	result := escalationdto.ResolveResult{
		Message: MsgResolved,
		Escalation: &escalationmodels.Escalation{
			UserID:  "84900000001",
			Message: "Cần hỗ trợ đặt phòng",
			Status:  escalationmodels.StatusResolved,
		},
	}
	data, err := json.Marshal(result)
	if err != nil {
		t.Fatalf("marshal lỗi: %v", err)
	}
	var fields map[string]any
	if err := json.Unmarshal(data, &fields); err != nil {
		t.Fatalf("unmarshal lỗi: %v", err)
	}
	if fields["message"] != MsgResolved {
		t.Errorf("message phải là %q, là %v", MsgResolved, fields["message"])
	}
	escalation, ok := fields["escalation"].(map[string]any)
	if !ok {
		t.Fatalf("response phải chứa document escalation, là %v", fields["escalation"])
	}
	if escalation["status"] != escalationmodels.StatusResolved {
		t.Errorf("escalation trả về phải mang status resolved, là %v", escalation["status"])
	}
}
