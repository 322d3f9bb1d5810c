package basesvc

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson"
)

func TestToUpdateData_PassthroughConTro(t *testing.T) {
	input := &UpdateData{
		Pull: map[string]interface{}{
			"fcmTokens": bson.M{"token": "A"},
		},
	}

	update, err := ToUpdateData(input)
	if err != nil {
		t.Fatalf("ToUpdateData trả về lỗi: %v", err)
	}
	if update != input {
		t.Error("UpdateData con trỏ phải được trả về nguyên vẹn")
	}
}

func TestToUpdateData_PassthroughGiaTri(t *testing.T) {
	input := UpdateData{
		Set: map[string]interface{}{"displayName": "Minh"},
	}

	update, err := ToUpdateData(input)
	if err != nil {
		t.Fatalf("ToUpdateData trả về lỗi: %v", err)
	}
	if update.Set["displayName"] != "Minh" {
		t.Errorf("Set phải giữ nguyên, có %v", update.Set)
	}
}

func TestToUpdateData_MapThuongBocTrongSet(t *testing.T) {
	update, err := ToUpdateData(bson.M{"displayName": "Minh"})
	if err != nil {
		t.Fatalf("ToUpdateData trả về lỗi: %v", err)
	}
	if update.Set == nil {
		t.Fatal("Map thường phải được bọc trong $set")
	}
	if update.Set["displayName"] != "Minh" {
		t.Errorf("Giá trị trong $set không đúng: %v", update.Set)
	}
}
