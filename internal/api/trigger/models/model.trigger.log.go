// Package models - model nhật ký trigger (TriggerLog) thuộc domain trigger.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	"famhub/internal/notification"
)

// TriggerLog ghi lại một lần trigger đã được xử lý cùng kết quả fan-out.
// Chỉ phục vụ vận hành (soi lại sự kiện nào đã gửi gì); worker dọn bản ghi cũ định kỳ.
type TriggerLog struct {
	ID         primitive.ObjectID   `json:"id,omitempty" bson:"_id,omitempty"`
	EventKind  string               `json:"eventKind" bson:"eventKind" index:"single"`
	SourceID   string               `json:"sourceId,omitempty" bson:"sourceId,omitempty"`
	RawBody    string               `json:"rawBody,omitempty" bson:"rawBody,omitempty"`       // Body gốc của trigger, phục vụ soi lại sự cố
	Processed  bool                 `json:"processed" bson:"processed"`                       // false khi body không parse/validate được
	ParseError string               `json:"parseError,omitempty" bson:"parseError,omitempty"` // Lỗi parse/validate (nếu có)
	Summary    notification.Summary `json:"summary,omitempty" bson:"summary,omitempty"`
	CreatedAt  int64                `json:"createdAt" bson:"createdAt" index:"single,order:-1"`
	UpdatedAt  int64                `json:"updatedAt" bson:"updatedAt"`
}
