package userdto

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"famhub/internal/global"
)

func TestRegisterTokenInput_Validate(t *testing.T) {
	global.InitValidator()

	// Hợp lệ
	input := RegisterTokenInput{Token: "fcm-token-abc123", Device: "iPhone của Minh"}
	assert.NoError(t, global.Validate.Struct(input), "Token hợp lệ phải qua validation")

	// Thiếu token
	input = RegisterTokenInput{Device: "iPhone"}
	assert.Error(t, global.Validate.Struct(input), "Token rỗng phải bị chặn")

	// Token chứa khoảng trắng
	input = RegisterTokenInput{Token: "fcm token"}
	assert.Error(t, global.Validate.Struct(input), "Token chứa khoảng trắng phải bị chặn")

	// Device chứa nội dung nguy hiểm
	input = RegisterTokenInput{Token: "fcm-token-abc123", Device: "<script>alert(1)</script>"}
	assert.Error(t, global.Validate.Struct(input), "Device có script phải bị chặn bởi no_xss")
}

func TestRemoveTokenInput_Validate(t *testing.T) {
	global.InitValidator()

	assert.NoError(t, global.Validate.Struct(RemoveTokenInput{Token: "fcm-token-abc123"}))
	assert.Error(t, global.Validate.Struct(RemoveTokenInput{}), "Token rỗng phải bị chặn")
}
