// Package models - model nhóm (Group) thuộc domain group.
package models

// Group định nghĩa một nhóm (gia đình / hội).
// Members là danh sách Firebase UID của thành viên.
type Group struct {
	ID        string   `json:"id" bson:"_id"`
	Name      string   `json:"name,omitempty" bson:"name,omitempty"`
	OwnerID   string   `json:"ownerId,omitempty" bson:"ownerId,omitempty" index:"single"`
	Members   []string `json:"members" bson:"members"`
	CreatedAt int64    `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64    `json:"updatedAt" bson:"updatedAt"`
}
