package notification

import (
	"context"
	"errors"
	"reflect"
	"sync"
	"testing"
)

// fakeAddressBook mô phỏng hồ sơ token trong bộ nhớ, RemoveToken là targeted và idempotent
type fakeAddressBook struct {
	mu          sync.Mutex
	tokens      map[string][]string // userId → danh sách token
	removeCalls int
	failRemove  bool
}

func newFakeAddressBook(tokens map[string][]string) *fakeAddressBook {
	return &fakeAddressBook{tokens: tokens}
}

func (f *fakeAddressBook) AddressesFor(ctx context.Context, userID string) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	// Hồ sơ không tồn tại: danh sách rỗng, không phải lỗi
	result := make([]string, len(f.tokens[userID]))
	copy(result, f.tokens[userID])
	return result, nil
}

func (f *fakeAddressBook) RemoveToken(ctx context.Context, userID string, token string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.removeCalls++
	if f.failRemove {
		return errors.New("mongo unavailable")
	}
	remaining := make([]string, 0, len(f.tokens[userID]))
	for _, existing := range f.tokens[userID] {
		if existing != token {
			remaining = append(remaining, existing)
		}
	}
	f.tokens[userID] = remaining
	return nil
}

func (f *fakeAddressBook) tokensOf(userID string) []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	result := make([]string, len(f.tokens[userID]))
	copy(result, f.tokens[userID])
	return result
}

func TestPipeline_TinNhanGuiChoNguoiThamGiaTruNguoiGui(t *testing.T) {
	chats := &fakeChatReader{chats: map[string][]string{"c1": {"u1", "u2", "u3"}}}
	groups := &fakeGroupReader{groups: map[string][]string{}}
	addressBook := newFakeAddressBook(map[string][]string{
		"u1": {"token-u1"},
		"u2": {"token-u2"},
		"u3": {"token-u3"},
	})
	sender := &fakeSender{}
	pipeline := NewPipeline(chats, groups, addressBook, sender)

	event := NewMessageCreatedEvent(MessageCreated{
		ChatID: "c1", MessageID: "m1", SenderID: "u1", SenderName: "Minh", Content: "hello",
	})
	summary := pipeline.Run(context.Background(), event)

	if summary.Fault != "" {
		t.Fatalf("Pipeline không được có fault: %s", summary.Fault)
	}
	if summary.Recipients != 2 {
		t.Errorf("Phải có 2 người nhận (u2, u3), có %d", summary.Recipients)
	}
	if summary.Attempted != 2 || summary.Delivered != 2 {
		t.Errorf("Phải gửi thành công 2 token, attempted=%d delivered=%d", summary.Attempted, summary.Delivered)
	}
	// Người gửi không bao giờ nhận thông báo của chính mình
	if sender.sendCount != 2 {
		t.Errorf("Sender phải được gọi 2 lần, có %d", sender.sendCount)
	}
}

func TestPipeline_CongViecChiThongBaoNguoiDuocGiaoKhac(t *testing.T) {
	chats := &fakeChatReader{chats: map[string][]string{}}
	groups := &fakeGroupReader{groups: map[string][]string{}}
	addressBook := newFakeAddressBook(map[string][]string{
		"u5": {"token-u5"},
		"u6": {"token-u6"},
	})
	sender := &fakeSender{}
	pipeline := NewPipeline(chats, groups, addressBook, sender)

	event := NewTaskCreatedEvent(TaskCreated{
		TaskID: "t1", Title: "Mua sữa", AssignedUserIDs: []string{"u5", "u6"}, CreatedByUserID: "u5",
	})
	summary := pipeline.Run(context.Background(), event)

	if summary.Recipients != 1 {
		t.Errorf("Chỉ u6 được nhận, có %d người nhận", summary.Recipients)
	}
	if summary.Delivered != 1 {
		t.Errorf("Phải gửi đúng 1 token của u6, delivered=%d", summary.Delivered)
	}
}

func TestPipeline_TokenHongBiGoKhoiHoSo(t *testing.T) {
	chats := &fakeChatReader{chats: map[string][]string{"c1": {"u1", "u2"}}}
	groups := &fakeGroupReader{groups: map[string][]string{}}
	addressBook := newFakeAddressBook(map[string][]string{
		"u2": {"A", "B"},
	})
	sender := &fakeSender{outcomes: map[string]OutcomeStatus{
		"A": OutcomeInvalidAddress,
	}}
	pipeline := NewPipeline(chats, groups, addressBook, sender)

	event := NewMessageCreatedEvent(MessageCreated{
		ChatID: "c1", MessageID: "m1", SenderID: "u1", SenderName: "Minh", Content: "hello",
	})
	summary := pipeline.Run(context.Background(), event)

	if summary.InvalidTokens != 1 {
		t.Errorf("Phải ghi nhận 1 token hỏng, có %d", summary.InvalidTokens)
	}
	if summary.RemovedTokens != 1 {
		t.Errorf("Phải gỡ 1 token, có %d", summary.RemovedTokens)
	}
	if summary.Delivered != 1 {
		t.Errorf("Token B vẫn phải được gửi, delivered=%d", summary.Delivered)
	}
	if got := addressBook.tokensOf("u2"); !reflect.DeepEqual(got, []string{"B"}) {
		t.Errorf("Sau reconcile hồ sơ u2 chỉ còn [B], có %v", got)
	}
}

func TestPipeline_SuKienCaNhanKhongGuiGi(t *testing.T) {
	chats := &fakeChatReader{chats: map[string][]string{}}
	groups := &fakeGroupReader{groups: map[string][]string{"g1": {"u1", "u2"}}}
	addressBook := newFakeAddressBook(map[string][]string{"u2": {"token-u2"}})
	sender := &fakeSender{}
	pipeline := NewPipeline(chats, groups, addressBook, sender)

	event := NewCalendarEventCreatedEvent(CalendarEventCreated{
		EventID: "e1", Title: "Khám răng", CreatedByUserID: "u1", IsPersonal: true,
	})
	summary := pipeline.Run(context.Background(), event)

	if summary.Recipients != 0 || summary.Attempted != 0 {
		t.Errorf("Sự kiện cá nhân không được gửi gì, recipients=%d attempted=%d", summary.Recipients, summary.Attempted)
	}
	if sender.sendCount != 0 {
		t.Errorf("Sender không được gọi, có %d lần", sender.sendCount)
	}
}

func TestPipeline_NguoiNhanKhongCoTokenKhongAnhHuongNguoiKhac(t *testing.T) {
	chats := &fakeChatReader{chats: map[string][]string{"c1": {"u1", "u2", "u3"}}}
	groups := &fakeGroupReader{groups: map[string][]string{}}
	// u2 chưa đăng ký token nào
	addressBook := newFakeAddressBook(map[string][]string{
		"u3": {"token-u3"},
	})
	sender := &fakeSender{}
	pipeline := NewPipeline(chats, groups, addressBook, sender)

	event := NewMessageCreatedEvent(MessageCreated{
		ChatID: "c1", MessageID: "m1", SenderID: "u1", SenderName: "Minh", Content: "hello",
	})
	summary := pipeline.Run(context.Background(), event)

	if summary.Recipients != 2 {
		t.Errorf("Vẫn resolve ra 2 người nhận, có %d", summary.Recipients)
	}
	if summary.Attempted != 1 || summary.Delivered != 1 {
		t.Errorf("Chỉ gửi cho u3, attempted=%d delivered=%d", summary.Attempted, summary.Delivered)
	}
}

func TestPipeline_RunKhongBaoGioPanic(t *testing.T) {
	chats := &fakeChatReader{chats: map[string][]string{"c1": {"u1", "u2"}}}
	groups := &fakeGroupReader{groups: map[string][]string{}}
	addressBook := newFakeAddressBook(map[string][]string{"u2": {"A"}})
	sender := &fakeSender{panicOn: "A"}
	pipeline := NewPipeline(chats, groups, addressBook, sender)

	event := NewMessageCreatedEvent(MessageCreated{
		ChatID: "c1", MessageID: "m1", SenderID: "u1", SenderName: "Minh", Content: "hello",
	})

	// Panic trong sender bị chặn ở dispatcher, Run vẫn trả về summary bình thường
	summary := pipeline.Run(context.Background(), event)
	if summary.TransientFailures != 1 {
		t.Errorf("Panic phải được ghi nhận thành transient_failure, có %d", summary.TransientFailures)
	}
	if summary.Fault != "" {
		t.Errorf("Run không được có fault khi chỉ một lần gửi hỏng: %s", summary.Fault)
	}
}

func TestPipeline_SuKienLoiThanhFault(t *testing.T) {
	pipeline := NewPipeline(
		&fakeChatReader{chats: map[string][]string{}},
		&fakeGroupReader{groups: map[string][]string{}},
		newFakeAddressBook(map[string][]string{}),
		&fakeSender{},
	)

	// Sự kiện thiếu dữ liệu: lỗi bị nuốt vào Summary.Fault, không ném ra ngoài
	summary := pipeline.Run(context.Background(), DomainEvent{Kind: KindTaskCreated})
	if summary.Fault == "" {
		t.Fatal("Sự kiện thiếu dữ liệu phải ghi fault vào summary")
	}
	if summary.Attempted != 0 {
		t.Errorf("Không được gửi gì khi resolve lỗi, attempted=%d", summary.Attempted)
	}
}
