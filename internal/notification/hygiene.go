package notification

import (
	"context"

	"famhub/internal/logger"
)

// AddressBook là contract với kho hồ sơ người dùng: đọc danh sách token
// và gỡ một token cụ thể khỏi hồ sơ
type AddressBook interface {
	// AddressesFor trả về danh sách token đã đăng ký của một người dùng,
	// đã gộp field legacy và khử trùng lặp. Hồ sơ không tồn tại trả về danh sách rỗng.
	AddressesFor(ctx context.Context, userID string) ([]string, error)

	// RemoveToken gỡ đúng một token khỏi hồ sơ bằng targeted update.
	// Gỡ token không tồn tại là no-op, không phải lỗi.
	RemoveToken(ctx context.Context, userID string, token string) error
}

// Hygiene gỡ các token đã được gateway xác nhận là không còn hợp lệ
type Hygiene struct {
	addressBook AddressBook
}

// NewHygiene tạo mới Hygiene
func NewHygiene(addressBook AddressBook) *Hygiene {
	return &Hygiene{addressBook: addressBook}
}

// Reconcile duyệt kết quả gửi của một người nhận, gỡ mọi token có outcome
// InvalidAddress khỏi hồ sơ. Trả về số token đã gỡ thành công.
// Lỗi khi gỡ chỉ được log: hygiene là best-effort, token hỏng sẽ lại bị phát hiện ở lần gửi sau.
func (h *Hygiene) Reconcile(ctx context.Context, userID string, outcomes []DeliveryOutcome) int {
	log := logger.GetAppLogger().WithField("userId", userID)

	removed := 0
	for _, outcome := range outcomes {
		if outcome.Status != OutcomeInvalidAddress {
			continue
		}
		if err := h.addressBook.RemoveToken(ctx, userID, outcome.Token); err != nil {
			log.WithError(err).Warn("🔔 [NOTIFY] Không gỡ được token hỏng, sẽ thử lại ở sự kiện sau")
			continue
		}
		removed++
	}

	if removed > 0 {
		log.WithField("removed", removed).Info("🔔 [NOTIFY] Đã gỡ token hỏng khỏi hồ sơ")
	}
	return removed
}
