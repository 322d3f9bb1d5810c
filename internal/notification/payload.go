package notification

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// PlatformHints các gợi ý giao nhận cho từng nền tảng. Đây là hint routing
// không ảnh hưởng nội dung: gateway và client tự diễn giải.
type PlatformHints struct {
	Priority  string // "high" cho mọi thông báo của pipeline này
	ChannelID string // Android notification channel
	Category  string // APNs category
	Sound     string // Tên âm thanh, "default"
	Badge     int    // Số tăng badge trên icon app
}

// Payload là thông báo đã dựng xong, độc lập nền tảng, chỉ sống trong một lần xử lý sự kiện
type Payload struct {
	Title string
	Body  string
	Data  map[string]string
	Hints PlatformHints
}

// BuildPayload dựng payload từ sự kiện domain. Hàm thuần, không I/O:
// payload chỉ được dựng một lần cho mỗi sự kiện rồi gửi tới mọi địa chỉ.
func BuildPayload(event DomainEvent, now time.Time) (Payload, error) {
	timestamp := strconv.FormatInt(now.UnixMilli(), 10)

	switch event.Kind {
	case KindMessageCreated:
		if event.Message == nil {
			return Payload{}, fmt.Errorf("sự kiện %s thiếu dữ liệu tin nhắn", event.Kind)
		}
		return buildMessagePayload(*event.Message, timestamp), nil

	case KindTaskCreated:
		if event.Task == nil {
			return Payload{}, fmt.Errorf("sự kiện %s thiếu dữ liệu công việc", event.Kind)
		}
		task := event.Task
		return Payload{
			Title: "New Task Assigned",
			Body:  task.Title,
			Data: map[string]string{
				"type":      DataTypeTask,
				"taskId":    task.TaskID,
				"timestamp": timestamp,
			},
			Hints: defaultHints(CategoryTaskAssigned),
		}, nil

	case KindEventCreated:
		if event.CalendarEvent == nil {
			return Payload{}, fmt.Errorf("sự kiện %s thiếu dữ liệu calendar", event.Kind)
		}
		ev := event.CalendarEvent
		return Payload{
			Title: "New Event Added",
			Body:  ev.Title,
			Data: map[string]string{
				"type":      DataTypeEvent,
				"eventId":   ev.EventID,
				"timestamp": timestamp,
			},
			Hints: defaultHints(CategoryEventAdded),
		}, nil
	}

	return Payload{}, fmt.Errorf("loại sự kiện không được hỗ trợ: %s", event.Kind)
}

// buildMessagePayload dựng payload cho tin nhắn chat, xử lý riêng ảnh và mention
func buildMessagePayload(msg MessageCreated, timestamp string) Payload {
	body := msg.Content
	if msg.ContentType == ContentTypeImage {
		// Tin nhắn ảnh: body là placeholder cố định, bỏ qua content
		body = PhotoPlaceholder
	}

	title := msg.SenderName
	dataType := DataTypeChat
	category := CategoryChatMessage
	if containsMention(msg.Content) {
		title = fmt.Sprintf("%s mentioned you", msg.SenderName)
		dataType = DataTypeMention
		category = CategoryChatMention
	}

	return Payload{
		Title: title,
		Body:  body,
		Data: map[string]string{
			"type":       dataType,
			"chatId":     msg.ChatID,
			"messageId":  msg.MessageID,
			"senderName": msg.SenderName,
			"timestamp":  timestamp,
		},
		Hints: defaultHints(category),
	}
}

// containsMention kiểm tra nội dung có chứa marker nhắc tên hay không
func containsMention(content string) bool {
	return strings.Contains(content, MentionMarker)
}

// defaultHints mọi thông báo đều high-priority, có âm thanh và tăng badge 1
func defaultHints(category string) PlatformHints {
	return PlatformHints{
		Priority:  "high",
		ChannelID: category,
		Category:  category,
		Sound:     "default",
		Badge:     1,
	}
}
