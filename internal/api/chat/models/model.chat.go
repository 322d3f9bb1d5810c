// Package models - model đoạn chat (Chat) thuộc domain chat.
package models

// Chat định nghĩa một đoạn chat của nhóm.
// ID là chuỗi do client sinh (trùng với document id trên mobile app).
// Participants là danh sách Firebase UID của người tham gia.
type Chat struct {
	ID           string   `json:"id" bson:"_id"`
	GroupID      string   `json:"groupId,omitempty" bson:"groupId,omitempty" index:"single"`
	Name         string   `json:"name,omitempty" bson:"name,omitempty"`
	Participants []string `json:"participants" bson:"participants"`
	CreatedAt    int64    `json:"createdAt" bson:"createdAt"`
	UpdatedAt    int64    `json:"updatedAt" bson:"updatedAt"`
}
