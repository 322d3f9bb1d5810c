package notification

import (
	"strings"
	"testing"
	"time"
)

// sampleMessage tạo tin nhắn chat mẫu cho các test dựng payload
func sampleMessage(content string, contentType string) DomainEvent {
	return NewMessageCreatedEvent(MessageCreated{
		ChatID:      "c1",
		MessageID:   "m1",
		SenderID:    "u1",
		SenderName:  "Minh",
		Content:     content,
		ContentType: contentType,
	})
}

func TestBuildPayload_TinNhanText(t *testing.T) {
	now := time.Now()
	payload, err := BuildPayload(sampleMessage("chào cả nhà", "text"), now)
	if err != nil {
		t.Fatalf("BuildPayload trả về lỗi: %v", err)
	}

	if payload.Title != "Minh" {
		t.Errorf("Title phải là tên người gửi, có %q", payload.Title)
	}
	if payload.Body != "chào cả nhà" {
		t.Errorf("Body phải là nội dung tin nhắn, có %q", payload.Body)
	}
	if payload.Data["type"] != DataTypeChat {
		t.Errorf("Data type phải là %q, có %q", DataTypeChat, payload.Data["type"])
	}
	if payload.Data["chatId"] != "c1" || payload.Data["messageId"] != "m1" {
		t.Errorf("Data thiếu chatId/messageId: %v", payload.Data)
	}
	if payload.Data["timestamp"] == "" {
		t.Error("Data thiếu timestamp")
	}
}

func TestBuildPayload_TinNhanAnh(t *testing.T) {
	// Tin nhắn ảnh: body luôn là placeholder, kể cả khi content có chữ
	payload, err := BuildPayload(sampleMessage("caption gì đó", "image"), time.Now())
	if err != nil {
		t.Fatalf("BuildPayload trả về lỗi: %v", err)
	}

	if payload.Body != PhotoPlaceholder {
		t.Errorf("Body tin nhắn ảnh phải là %q, có %q", PhotoPlaceholder, payload.Body)
	}
}

func TestBuildPayload_TinNhanLoaiKhac(t *testing.T) {
	// Chỉ "image" được xử lý riêng: các loại khác (file, video...) là tin nhắn thường
	for _, kind := range []string{"file", "video", ""} {
		payload, err := BuildPayload(sampleMessage("gửi cả nhà tài liệu", kind), time.Now())
		if err != nil {
			t.Fatalf("BuildPayload loại %q trả về lỗi: %v", kind, err)
		}
		if payload.Body != "gửi cả nhà tài liệu" {
			t.Errorf("Body loại %q phải là nội dung tin nhắn, có %q", kind, payload.Body)
		}
		if payload.Data["type"] != DataTypeChat {
			t.Errorf("Data type loại %q phải là %q, có %q", kind, DataTypeChat, payload.Data["type"])
		}
	}
}

func TestBuildPayload_TinNhanMention(t *testing.T) {
	payload, err := BuildPayload(sampleMessage("@Lan xem cái này", "text"), time.Now())
	if err != nil {
		t.Fatalf("BuildPayload trả về lỗi: %v", err)
	}

	if payload.Title != "Minh mentioned you" {
		t.Errorf("Title mention không đúng, có %q", payload.Title)
	}
	if payload.Data["type"] != DataTypeMention {
		t.Errorf("Data type phải là %q, có %q", DataTypeMention, payload.Data["type"])
	}
	if payload.Hints.Category != CategoryChatMention {
		t.Errorf("Category phải là %q, có %q", CategoryChatMention, payload.Hints.Category)
	}
}

func TestBuildPayload_CongViecMoi(t *testing.T) {
	event := NewTaskCreatedEvent(TaskCreated{
		TaskID:          "t1",
		Title:           "Mua sữa",
		AssignedUserIDs: []string{"u2"},
		CreatedByUserID: "u1",
	})

	payload, err := BuildPayload(event, time.Now())
	if err != nil {
		t.Fatalf("BuildPayload trả về lỗi: %v", err)
	}

	if payload.Title != "New Task Assigned" {
		t.Errorf("Title công việc không đúng, có %q", payload.Title)
	}
	if payload.Body != "Mua sữa" {
		t.Errorf("Body phải là tiêu đề công việc, có %q", payload.Body)
	}
	if payload.Data["type"] != DataTypeTask || payload.Data["taskId"] != "t1" {
		t.Errorf("Data công việc không đúng: %v", payload.Data)
	}
}

func TestBuildPayload_SuKienLich(t *testing.T) {
	event := NewCalendarEventCreatedEvent(CalendarEventCreated{
		EventID:         "e1",
		Title:           "Sinh nhật bà",
		GroupID:         "g1",
		CreatedByUserID: "u1",
	})

	payload, err := BuildPayload(event, time.Now())
	if err != nil {
		t.Fatalf("BuildPayload trả về lỗi: %v", err)
	}

	if payload.Title != "New Event Added" {
		t.Errorf("Title sự kiện không đúng, có %q", payload.Title)
	}
	if payload.Data["type"] != DataTypeEvent || payload.Data["eventId"] != "e1" {
		t.Errorf("Data sự kiện không đúng: %v", payload.Data)
	}
}

func TestBuildPayload_HintsMacDinh(t *testing.T) {
	payload, err := BuildPayload(sampleMessage("hello", "text"), time.Now())
	if err != nil {
		t.Fatalf("BuildPayload trả về lỗi: %v", err)
	}

	hints := payload.Hints
	if hints.Priority != "high" {
		t.Errorf("Priority phải là high, có %q", hints.Priority)
	}
	if hints.Sound != "default" {
		t.Errorf("Sound phải là default, có %q", hints.Sound)
	}
	if hints.Badge != 1 {
		t.Errorf("Badge phải là 1, có %d", hints.Badge)
	}
	if hints.ChannelID != CategoryChatMessage {
		t.Errorf("ChannelID phải theo category, có %q", hints.ChannelID)
	}
}

func TestBuildPayload_SuKienThieuDuLieu(t *testing.T) {
	_, err := BuildPayload(DomainEvent{Kind: KindMessageCreated}, time.Now())
	if err == nil {
		t.Fatal("Sự kiện thiếu dữ liệu tin nhắn phải trả về lỗi")
	}

	_, err = BuildPayload(DomainEvent{Kind: EventKind("unknown")}, time.Now())
	if err == nil {
		t.Fatal("Loại sự kiện lạ phải trả về lỗi")
	}
	if !strings.Contains(err.Error(), "không được hỗ trợ") {
		t.Errorf("Thông điệp lỗi không đúng: %v", err)
	}
}
