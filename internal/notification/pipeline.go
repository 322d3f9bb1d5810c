package notification

import (
	"context"
	"fmt"
	"sync"
	"time"

	"famhub/internal/logger"
)

// Summary tổng hợp kết quả một lần chạy pipeline cho một sự kiện.
// Dùng để trả về cho trigger endpoint và ghi nhật ký trigger.
type Summary struct {
	EventKind         EventKind `json:"eventKind" bson:"eventKind"`
	Recipients        int       `json:"recipients" bson:"recipients"`                 // Số người nhận sau khi resolve
	Attempted         int       `json:"attempted" bson:"attempted"`                   // Tổng số token đã thử gửi
	Delivered         int       `json:"delivered" bson:"delivered"`                   // Số lần gửi thành công
	InvalidTokens     int       `json:"invalidTokens" bson:"invalidTokens"`           // Số token bị gateway báo không hợp lệ
	TransientFailures int       `json:"transientFailures" bson:"transientFailures"`   // Số lỗi tạm thời
	RemovedTokens     int       `json:"removedTokens" bson:"removedTokens"`           // Số token đã gỡ khỏi hồ sơ
	Fault             string    `json:"fault,omitempty" bson:"fault,omitempty"`       // Lỗi pipeline (đã nuốt, chỉ ghi lại)
	DurationMs        int64     `json:"durationMs" bson:"durationMs"`                 // Thời gian chạy pipeline
}

// Pipeline nối các giai đoạn xử lý một sự kiện domain theo đúng thứ tự:
// Resolve → Lookup → Build → Dispatch → Reconcile.
// Mọi lỗi đều dừng lại ở đây: Run không bao giờ ném lỗi ra ngoài để
// hạ tầng trigger không re-invoke vô hạn cùng một sự kiện.
type Pipeline struct {
	resolver    *Resolver
	addressBook AddressBook
	dispatcher  *Dispatcher
	hygiene     *Hygiene
}

// NewPipeline tạo pipeline với đầy đủ collaborator.
// Các collaborator được inject để test thay bằng fake dễ dàng.
func NewPipeline(chats ChatReader, groups GroupReader, addressBook AddressBook, sender Sender) *Pipeline {
	return &Pipeline{
		resolver:    NewResolver(chats, groups),
		addressBook: addressBook,
		dispatcher:  NewDispatcher(sender),
		hygiene:     NewHygiene(addressBook),
	}
}

// Run xử lý trọn vẹn một sự kiện. Không bao giờ panic hay trả lỗi:
// lỗi bất ngờ được ghi vào Summary.Fault và log tại đây.
func (p *Pipeline) Run(ctx context.Context, event DomainEvent) (summary Summary) {
	started := time.Now()
	summary.EventKind = event.Kind
	log := logger.GetAppLogger().WithField("eventKind", string(event.Kind))

	defer func() {
		if r := recover(); r != nil {
			summary.Fault = fmt.Sprintf("panic: %v", r)
			log.WithField("panic", r).Error("🔔 [NOTIFY] Pipeline panic, thông báo của sự kiện này bị bỏ")
		}
		summary.DurationMs = time.Since(started).Milliseconds()
	}()

	// Giai đoạn 1: resolve người nhận
	recipients, err := p.resolver.Resolve(ctx, event)
	if err != nil {
		summary.Fault = err.Error()
		log.WithError(err).Error("🔔 [NOTIFY] Không resolve được người nhận")
		return summary
	}
	summary.Recipients = len(recipients)
	if len(recipients) == 0 {
		// Không có ai để thông báo: hoàn tất sớm, không phải lỗi
		return summary
	}

	// Giai đoạn 2: dựng payload, đúng một lần cho mỗi sự kiện
	payload, err := BuildPayload(event, time.Now())
	if err != nil {
		summary.Fault = err.Error()
		log.WithError(err).Error("🔔 [NOTIFY] Không dựng được payload")
		return summary
	}

	// Giai đoạn 3+4+5: với từng người nhận, tra token rồi gửi rồi dọn token hỏng.
	// Các người nhận chạy song song, kết quả gộp về qua mutex.
	var wg sync.WaitGroup
	var mu sync.Mutex

	for _, userID := range recipients {
		wg.Add(1)
		go func(uid string) {
			defer wg.Done()
			defer func() {
				if r := recover(); r != nil {
					log.WithFields(map[string]interface{}{
						"userId": uid,
						"panic":  r,
					}).Error("🔔 [NOTIFY] Panic khi xử lý một người nhận, các người nhận khác không bị ảnh hưởng")
				}
			}()

			tokens, err := p.addressBook.AddressesFor(ctx, uid)
			if err != nil {
				log.WithError(err).WithField("userId", uid).Warn("🔔 [NOTIFY] Không đọc được token của người nhận")
				return
			}
			if len(tokens) == 0 {
				return
			}

			outcomes := p.dispatcher.Dispatch(ctx, uid, tokens, payload)
			removed := p.hygiene.Reconcile(ctx, uid, outcomes)

			mu.Lock()
			defer mu.Unlock()
			summary.Attempted += len(outcomes)
			summary.RemovedTokens += removed
			for _, outcome := range outcomes {
				switch outcome.Status {
				case OutcomeSuccess:
					summary.Delivered++
				case OutcomeInvalidAddress:
					summary.InvalidTokens++
				case OutcomeTransientFailure:
					summary.TransientFailures++
				}
			}
		}(userID)
	}
	wg.Wait()

	log.WithFields(map[string]interface{}{
		"recipients": summary.Recipients,
		"attempted":  summary.Attempted,
		"delivered":  summary.Delivered,
		"invalid":    summary.InvalidTokens,
		"transient":  summary.TransientFailures,
	}).Info("🔔 [NOTIFY] Pipeline hoàn tất")

	return summary
}
