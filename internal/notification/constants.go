package notification

// Các hằng số dùng khi dựng payload thông báo
const (
	// PhotoPlaceholder thay cho nội dung tin nhắn khi tin nhắn là ảnh
	PhotoPlaceholder = "📷 Photo"

	// Giá trị data field "type" để client điều hướng khi nhận thông báo
	DataTypeChat    = "chat"
	DataTypeMention = "mention"
	DataTypeTask    = "task"
	DataTypeEvent   = "event"

	// Category / channel để client routing thông báo theo loại
	CategoryChatMessage  = "CHAT_MESSAGE"
	CategoryChatMention  = "CHAT_MENTION"
	CategoryTaskAssigned = "TASK_ASSIGNED"
	CategoryEventAdded   = "EVENT_ADDED"

	// MentionMarker nội dung chứa ký tự này được coi là tin nhắn có nhắc tên
	MentionMarker = "@"

	// ContentTypeImage giá trị ContentType của tin nhắn dạng ảnh
	ContentTypeImage = "image"
)
