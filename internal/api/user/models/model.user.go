// Package models - model hồ sơ người dùng (UserProfile) thuộc domain user.
package models

// FCMToken một địa chỉ nhận thông báo đẩy đã đăng ký từ một thiết bị
type FCMToken struct {
	Token     string `json:"token" bson:"token"`
	Device    string `json:"device,omitempty" bson:"device,omitempty"`
	UpdatedAt int64  `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`
}

// UserProfile định nghĩa hồ sơ người dùng.
// ID là Firebase UID. FCMTokens là danh sách token hiện hành;
// FCMTokenLegacy là field đơn lẻ từ phiên bản app cũ, vẫn phải gộp
// vào danh sách khi tra cứu và gỡ khi token hỏng.
type UserProfile struct {
	ID             string     `json:"id" bson:"_id"`
	DisplayName    string     `json:"displayName,omitempty" bson:"displayName,omitempty"`
	Email          string     `json:"email,omitempty" bson:"email,omitempty" index:"unique,sparse"`
	AvatarURL      string     `json:"avatarUrl,omitempty" bson:"avatarUrl,omitempty"`
	FCMTokens      []FCMToken `json:"fcmTokens,omitempty" bson:"fcmTokens,omitempty"`
	FCMTokenLegacy string     `json:"fcmToken,omitempty" bson:"fcmToken,omitempty"`
	CreatedAt      int64      `json:"createdAt" bson:"createdAt"`
	UpdatedAt      int64      `json:"updatedAt" bson:"updatedAt"`
}
