package notification

import (
	"context"
	"fmt"
	"sync"

	"famhub/internal/logger"
)

// OutcomeStatus phân loại kết quả gửi tới một địa chỉ
type OutcomeStatus string

const (
	// OutcomeSuccess gateway đã nhận thông báo
	OutcomeSuccess OutcomeStatus = "success"
	// OutcomeInvalidAddress token không còn hợp lệ, cần gỡ khỏi hồ sơ người dùng
	OutcomeInvalidAddress OutcomeStatus = "invalid_address"
	// OutcomeTransientFailure lỗi tạm thời, chỉ log, không retry trong một lần xử lý
	OutcomeTransientFailure OutcomeStatus = "transient_failure"
)

// DeliveryOutcome kết quả của một lần gửi tới một token
type DeliveryOutcome struct {
	Token     string        // Token đích
	Status    OutcomeStatus // Phân loại kết quả
	MessageID string        // ID do gateway cấp khi gửi thành công
	Detail    string        // Mô tả lỗi (nếu có)
}

// Sender là contract với push gateway: gửi một payload tới một token,
// tự phân loại lỗi trả về thành DeliveryOutcome
type Sender interface {
	Send(ctx context.Context, token string, payload Payload) DeliveryOutcome
}

// Dispatcher gửi payload tới toàn bộ địa chỉ song song,
// thu thập đủ kết quả từng địa chỉ, không để một lỗi làm hỏng các lần gửi khác
type Dispatcher struct {
	sender Sender
}

// NewDispatcher tạo mới Dispatcher
func NewDispatcher(sender Sender) *Dispatcher {
	return &Dispatcher{sender: sender}
}

// Dispatch gửi payload tới từng token của một người nhận, tất cả khởi phát đồng thời.
// Luôn trả về đủ một outcome cho mỗi token, kể cả khi có panic trong một lần gửi.
func (d *Dispatcher) Dispatch(ctx context.Context, userID string, tokens []string, payload Payload) []DeliveryOutcome {
	if len(tokens) == 0 {
		return []DeliveryOutcome{}
	}

	log := logger.GetAppLogger()
	outcomes := make([]DeliveryOutcome, len(tokens))
	var wg sync.WaitGroup

	for i, token := range tokens {
		wg.Add(1)
		go func(idx int, tk string) {
			defer wg.Done()
			defer func() {
				if r := recover(); r != nil {
					outcomes[idx] = DeliveryOutcome{
						Token:  tk,
						Status: OutcomeTransientFailure,
						Detail: fmt.Sprintf("panic khi gửi: %v", r),
					}
				}
			}()
			outcomes[idx] = d.sender.Send(ctx, tk, payload)
		}(i, token)
	}

	wg.Wait()

	for _, outcome := range outcomes {
		switch outcome.Status {
		case OutcomeTransientFailure:
			log.WithFields(map[string]interface{}{
				"userId": userID,
				"detail": outcome.Detail,
			}).Warn("🔔 [NOTIFY] Gửi thất bại tạm thời, không retry")
		case OutcomeInvalidAddress:
			log.WithField("userId", userID).Info("🔔 [NOTIFY] Token không còn hợp lệ, sẽ gỡ khỏi hồ sơ")
		}
	}

	return outcomes
}
