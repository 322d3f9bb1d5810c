package userdto

// RegisterTokenInput đầu vào đăng ký token thiết bị cho một người dùng.
type RegisterTokenInput struct {
	Token  string `json:"token" validate:"required,fcm_token"`
	Device string `json:"device" validate:"omitempty,max=100,no_xss"`
}

// RemoveTokenInput đầu vào hủy đăng ký token thiết bị.
type RemoveTokenInput struct {
	Token string `json:"token" validate:"required,fcm_token"`
}
