package gateway

import (
	"context"

	"famhub/internal/common"
	"famhub/internal/notification"
)

// DisabledSender dùng khi server chạy không có cấu hình Firebase.
// Mọi lần gửi đều trả về lỗi tạm thời: không gỡ token của ai,
// pipeline và API vẫn hoạt động bình thường.
type DisabledSender struct{}

// NewDisabledSender tạo mới DisabledSender
func NewDisabledSender() *DisabledSender {
	return &DisabledSender{}
}

// Send luôn trả về TransientFailure vì gateway chưa được khởi tạo
func (s *DisabledSender) Send(ctx context.Context, token string, payload notification.Payload) notification.DeliveryOutcome {
	return notification.DeliveryOutcome{
		Token:  token,
		Status: notification.OutcomeTransientFailure,
		Detail: common.ErrGatewayUnavailable.Error(),
	}
}
