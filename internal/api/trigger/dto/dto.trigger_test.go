package triggerdto

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"famhub/internal/global"
)

func TestMessageCreatedInput_Validate(t *testing.T) {
	global.InitValidator()

	valid := MessageCreatedInput{
		ChatID: "c1", MessageID: "m1", SenderID: "u1",
		SenderName: "Minh", Content: "chào cả nhà", Type: "text",
	}
	assert.NoError(t, global.Validate.Struct(valid))

	// Thiếu chatId
	invalid := valid
	invalid.ChatID = ""
	assert.Error(t, global.Validate.Struct(invalid), "Thiếu chatId phải bị chặn")

	// Type là vocabulary mở: loại ngoài text/image vẫn phải được nhận
	for _, kind := range []string{"file", "video", "sticker"} {
		open := valid
		open.Type = kind
		assert.NoError(t, global.Validate.Struct(open), "Type %q phải được chấp nhận", kind)
	}

	// Content có script
	invalid = valid
	invalid.Content = "<script>alert(1)</script>"
	assert.Error(t, global.Validate.Struct(invalid), "Content có script phải bị chặn bởi no_xss")
}

func TestTaskCreatedInput_Validate(t *testing.T) {
	global.InitValidator()

	valid := TaskCreatedInput{
		TaskID: "t1", Title: "Mua sữa",
		AssignedTo: []string{"u5", "u6"}, CreatedBy: "u5",
	}
	assert.NoError(t, global.Validate.Struct(valid))

	// Phần tử rỗng trong assignedTo
	invalid := valid
	invalid.AssignedTo = []string{"u5", ""}
	assert.Error(t, global.Validate.Struct(invalid), "assignedTo chứa phần tử rỗng phải bị chặn")

	// AssignedTo vắng mặt vẫn hợp lệ: resolver sẽ cho kết quả rỗng
	valid.AssignedTo = nil
	assert.NoError(t, global.Validate.Struct(valid))
}

func TestEventCreatedInput_Validate(t *testing.T) {
	global.InitValidator()

	valid := EventCreatedInput{EventID: "e1", Title: "Sinh nhật bà", GroupID: "g1", CreatedBy: "u1"}
	assert.NoError(t, global.Validate.Struct(valid))

	// Sự kiện cá nhân không cần groupId
	personal := EventCreatedInput{EventID: "e1", IsPersonal: true, CreatedBy: "u1"}
	assert.NoError(t, global.Validate.Struct(personal))

	assert.Error(t, global.Validate.Struct(EventCreatedInput{EventID: "e1"}), "Thiếu createdBy phải bị chặn")
}
