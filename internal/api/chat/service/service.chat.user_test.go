// Package chatsvc - Test pipeline danh sách khách kèm tin nhắn cuối.
package chatsvc

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson"
)

func TestBuildGuestBoardPipeline_LookupChiLayMotTinMoiNhat(t *testing.T) {
	pipeline := BuildGuestBoardPipeline("messages")
	if len(pipeline) != 3 {
		t.Fatalf("pipeline phải có 3 stage, có %d", len(pipeline))
	}

	if pipeline[0][0].Key != "$lookup" {
		t.Fatalf("stage đầu phải là $lookup, là %s", pipeline[0][0].Key)
	}
	lookup := pipeline[0][0].Value.(bson.M)
	if lookup["from"] != "messages" {
		t.Errorf("$lookup.from phải là messages, là %v", lookup["from"])
	}

	sub, ok := lookup["pipeline"].(bson.A)
	if !ok {
		t.Fatal("$lookup phải dùng sub-pipeline")
	}
	if len(sub) != 4 {
		t.Fatalf("sub-pipeline phải có 4 stage (match, sort, limit, project), có %d", len(sub))
	}

	// Sort giảm dần theo timestamp rồi limit 1: chỉ tin mới nhất
	sortStage := sub[1].(bson.M)["$sort"].(bson.M)
	if sortStage["timestamp"] != -1 {
		t.Errorf("sub-pipeline phải sort timestamp:-1, là %v", sortStage)
	}
	limitStage := sub[2].(bson.M)["$limit"]
	if limitStage != 1 {
		t.Errorf("sub-pipeline phải limit 1, là %v", limitStage)
	}
}

func TestBuildGuestBoardPipeline_ProjectTraNullTuongMinh(t *testing.T) {
	pipeline := BuildGuestBoardPipeline("messages")
	project := pipeline[2][0].Value.(bson.M)

	// Khách chưa có tin nhắn phải có lastMessage/lastTimestamp = null, không mất field
	for _, field := range []string{"lastMessage", "lastTimestamp", "lastInteraction"} {
		spec, ok := project[field].(bson.M)
		if !ok {
			t.Errorf("project thiếu $ifNull cho %s", field)
			continue
		}
		if _, ok := spec["$ifNull"]; !ok {
			t.Errorf("%s phải dùng $ifNull để trả null tường minh, là %v", field, spec)
		}
	}

	if project["_id"] != 0 {
		t.Error("project phải loại _id khỏi kết quả")
	}
}
