package notification

import (
	"context"
	"reflect"
	"testing"

	"famhub/internal/common"
)

// fakeChatReader trả về participants cố định theo chatId
type fakeChatReader struct {
	chats map[string][]string
}

func (f *fakeChatReader) Participants(ctx context.Context, chatID string) ([]string, error) {
	participants, ok := f.chats[chatID]
	if !ok {
		return nil, common.ErrNotFound
	}
	return participants, nil
}

// fakeGroupReader trả về members cố định theo groupId
type fakeGroupReader struct {
	groups map[string][]string
}

func (f *fakeGroupReader) Members(ctx context.Context, groupID string) ([]string, error) {
	members, ok := f.groups[groupID]
	if !ok {
		return nil, common.ErrNotFound
	}
	return members, nil
}

func newTestResolver() *Resolver {
	return NewResolver(
		&fakeChatReader{chats: map[string][]string{
			"c1": {"u1", "u2", "u3"},
		}},
		&fakeGroupReader{groups: map[string][]string{
			"g1": {"u1", "u2", "u3", "u4"},
		}},
	)
}

func TestResolve_TinNhanLoaiNguoiGui(t *testing.T) {
	resolver := newTestResolver()
	event := NewMessageCreatedEvent(MessageCreated{ChatID: "c1", SenderID: "u1"})

	recipients, err := resolver.Resolve(context.Background(), event)
	if err != nil {
		t.Fatalf("Resolve trả về lỗi: %v", err)
	}
	if !reflect.DeepEqual(recipients, []string{"u2", "u3"}) {
		t.Errorf("Người nhận phải là [u2 u3], có %v", recipients)
	}
}

func TestResolve_ChatKhongTonTai(t *testing.T) {
	resolver := newTestResolver()
	event := NewMessageCreatedEvent(MessageCreated{ChatID: "khong-co", SenderID: "u1"})

	recipients, err := resolver.Resolve(context.Background(), event)
	if err != nil {
		t.Fatalf("Chat không tồn tại không được coi là lỗi, có: %v", err)
	}
	if len(recipients) != 0 {
		t.Errorf("Chat không tồn tại phải trả về danh sách rỗng, có %v", recipients)
	}
}

func TestResolve_CongViecLoaiNguoiTao(t *testing.T) {
	resolver := newTestResolver()
	event := NewTaskCreatedEvent(TaskCreated{
		TaskID:          "t1",
		AssignedUserIDs: []string{"u5", "u6"},
		CreatedByUserID: "u5",
	})

	recipients, err := resolver.Resolve(context.Background(), event)
	if err != nil {
		t.Fatalf("Resolve trả về lỗi: %v", err)
	}
	if !reflect.DeepEqual(recipients, []string{"u6"}) {
		t.Errorf("Người tạo tự giao cho mình phải bị loại, còn lại [u6], có %v", recipients)
	}
}

func TestResolve_CongViecKhuTrungLap(t *testing.T) {
	resolver := newTestResolver()
	event := NewTaskCreatedEvent(TaskCreated{
		TaskID:          "t1",
		AssignedUserIDs: []string{"u6", "u7", "u6"},
		CreatedByUserID: "u5",
	})

	recipients, err := resolver.Resolve(context.Background(), event)
	if err != nil {
		t.Fatalf("Resolve trả về lỗi: %v", err)
	}
	if !reflect.DeepEqual(recipients, []string{"u6", "u7"}) {
		t.Errorf("Danh sách người nhận phải khử trùng lặp, có %v", recipients)
	}
}

func TestResolve_SuKienNhomLoaiNguoiTao(t *testing.T) {
	resolver := newTestResolver()
	event := NewCalendarEventCreatedEvent(CalendarEventCreated{
		EventID:         "e1",
		GroupID:         "g1",
		CreatedByUserID: "u2",
	})

	recipients, err := resolver.Resolve(context.Background(), event)
	if err != nil {
		t.Fatalf("Resolve trả về lỗi: %v", err)
	}
	if !reflect.DeepEqual(recipients, []string{"u1", "u3", "u4"}) {
		t.Errorf("Người nhận sự kiện nhóm không đúng, có %v", recipients)
	}
}

func TestResolve_SuKienCaNhanKhongThongBao(t *testing.T) {
	resolver := newTestResolver()
	event := NewCalendarEventCreatedEvent(CalendarEventCreated{
		EventID:         "e1",
		CreatedByUserID: "u2",
		IsPersonal:      true,
	})

	recipients, err := resolver.Resolve(context.Background(), event)
	if err != nil {
		t.Fatalf("Resolve trả về lỗi: %v", err)
	}
	if len(recipients) != 0 {
		t.Errorf("Sự kiện cá nhân không được thông báo ai, có %v", recipients)
	}
}

func TestResolve_NhomKhongTonTai(t *testing.T) {
	resolver := newTestResolver()
	event := NewCalendarEventCreatedEvent(CalendarEventCreated{
		EventID:         "e1",
		GroupID:         "khong-co",
		CreatedByUserID: "u2",
	})

	recipients, err := resolver.Resolve(context.Background(), event)
	if err != nil {
		t.Fatalf("Nhóm không tồn tại không được coi là lỗi, có: %v", err)
	}
	if len(recipients) != 0 {
		t.Errorf("Nhóm không tồn tại phải trả về danh sách rỗng, có %v", recipients)
	}
}

func TestResolve_SuKienThieuDuLieu(t *testing.T) {
	resolver := newTestResolver()

	_, err := resolver.Resolve(context.Background(), DomainEvent{Kind: KindTaskCreated})
	if err == nil {
		t.Fatal("Sự kiện thiếu dữ liệu phải trả về lỗi")
	}
}
