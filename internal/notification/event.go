// Package notification chứa pipeline phát thông báo đẩy: resolve người nhận,
// tra cứu token, dựng payload, gửi song song và dọn token hỏng.
package notification

// EventKind phân loại sự kiện domain làm phát sinh thông báo
type EventKind string

const (
	KindMessageCreated EventKind = "message-created"
	KindTaskCreated    EventKind = "task-created"
	KindEventCreated   EventKind = "event-created"
)

// MessageCreated sự kiện có tin nhắn mới trong một đoạn chat
type MessageCreated struct {
	ChatID      string // ID đoạn chat chứa tin nhắn
	MessageID   string // ID tin nhắn vừa tạo
	SenderID    string // Người gửi (bị loại khỏi danh sách nhận)
	SenderName  string // Tên hiển thị của người gửi
	Content     string // Nội dung tin nhắn
	ContentType string // "text" hoặc "image"
}

// TaskCreated sự kiện có công việc mới được giao
type TaskCreated struct {
	TaskID          string   // ID công việc
	Title           string   // Tiêu đề công việc
	AssignedUserIDs []string // Những người được giao
	CreatedByUserID string   // Người tạo (bị loại khỏi danh sách nhận)
}

// CalendarEventCreated sự kiện có lịch mới trên calendar của nhóm
type CalendarEventCreated struct {
	EventID         string // ID sự kiện calendar
	Title           string // Tiêu đề sự kiện
	GroupID         string // Nhóm sở hữu sự kiện (rỗng nếu cá nhân)
	CreatedByUserID string // Người tạo (bị loại khỏi danh sách nhận)
	IsPersonal      bool   // Sự kiện cá nhân thì không thông báo ai cả
}

// DomainEvent là biến thể gắn tag: đúng một trong các con trỏ bên dưới khác nil,
// tương ứng với Kind
type DomainEvent struct {
	Kind          EventKind
	Message       *MessageCreated
	Task          *TaskCreated
	CalendarEvent *CalendarEventCreated
}

// NewMessageCreatedEvent tạo DomainEvent từ tin nhắn mới
func NewMessageCreatedEvent(msg MessageCreated) DomainEvent {
	return DomainEvent{Kind: KindMessageCreated, Message: &msg}
}

// NewTaskCreatedEvent tạo DomainEvent từ công việc mới
func NewTaskCreatedEvent(task TaskCreated) DomainEvent {
	return DomainEvent{Kind: KindTaskCreated, Task: &task}
}

// NewCalendarEventCreatedEvent tạo DomainEvent từ lịch mới
func NewCalendarEventCreatedEvent(ev CalendarEventCreated) DomainEvent {
	return DomainEvent{Kind: KindEventCreated, CalendarEvent: &ev}
}

// ActorID trả về ID người gây ra sự kiện (luôn bị loại khỏi danh sách nhận)
func (e DomainEvent) ActorID() string {
	switch e.Kind {
	case KindMessageCreated:
		if e.Message != nil {
			return e.Message.SenderID
		}
	case KindTaskCreated:
		if e.Task != nil {
			return e.Task.CreatedByUserID
		}
	case KindEventCreated:
		if e.CalendarEvent != nil {
			return e.CalendarEvent.CreatedByUserID
		}
	}
	return ""
}
