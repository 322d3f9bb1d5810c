package triggerdto

// MessageCreatedInput đầu vào trigger khi có tin nhắn mới trong một đoạn chat.
// Các field optional khớp với payload mà nguồn sự kiện gửi lên.
type MessageCreatedInput struct {
	ChatID     string `json:"chatId" validate:"required"`
	MessageID  string `json:"messageId" validate:"required"`
	SenderID   string `json:"senderId" validate:"required"`
	SenderName string `json:"senderName" validate:"omitempty,no_xss"`
	Content    string `json:"content" validate:"omitempty,no_xss"`
	// Type là vocabulary mở của nguồn sự kiện (text/image/file/video...):
	// chỉ "image" được xử lý riêng, các loại khác đi qua như tin nhắn thường
	Type string `json:"type" validate:"omitempty,no_xss"`
}

// TaskCreatedInput đầu vào trigger khi có công việc mới được giao.
type TaskCreatedInput struct {
	TaskID     string   `json:"taskId" validate:"required"`
	Title      string   `json:"title" validate:"omitempty,no_xss"`
	AssignedTo []string `json:"assignedTo" validate:"omitempty,dive,required"`
	CreatedBy  string   `json:"createdBy" validate:"required"`
}

// EventCreatedInput đầu vào trigger khi có sự kiện calendar mới.
type EventCreatedInput struct {
	EventID    string `json:"eventId" validate:"required"`
	Title      string `json:"title" validate:"omitempty,no_xss"`
	GroupID    string `json:"groupId" validate:"omitempty"`
	IsPersonal bool   `json:"isPersonal"`
	CreatedBy  string `json:"createdBy" validate:"required"`
}
