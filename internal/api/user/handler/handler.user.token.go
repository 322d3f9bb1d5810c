package userhdl

import (
	"fmt"

	basehdl "famhub/internal/api/base/handler"
	userdto "famhub/internal/api/user/dto"
	usersvc "famhub/internal/api/user/service"
	"famhub/internal/common"

	"github.com/gofiber/fiber/v3"
)

// UserTokenHandler xử lý đăng ký / hủy đăng ký token thiết bị của người dùng
type UserTokenHandler struct {
	basehdl.BaseHandler
	userService *usersvc.UserService
}

// NewUserTokenHandler tạo instance mới của UserTokenHandler
func NewUserTokenHandler() (*UserTokenHandler, error) {
	userService, err := usersvc.NewUserService()
	if err != nil {
		return nil, fmt.Errorf("failed to create user service: %v", err)
	}
	return &UserTokenHandler{
		userService: userService,
	}, nil
}

// HandleRegisterToken đăng ký token FCM cho một thiết bị của người dùng.
// Đăng ký lại cùng token là idempotent: chỉ làm mới metadata thiết bị.
func (h *UserTokenHandler) HandleRegisterToken(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		userID := c.Params("userId")
		if userID == "" {
			h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationInput, "Thiếu userId", common.StatusBadRequest, nil))
			return nil
		}

		var input userdto.RegisterTokenInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		profile, err := h.userService.AddToken(c.Context(), userID, input.Token, input.Device)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		h.HandleResponse(c, fiber.Map{
			"userId":     profile.ID,
			"tokenCount": len(profile.FCMTokens),
		}, nil)
		return nil
	})
}

// HandleRemoveToken hủy đăng ký một token (vd khi người dùng đăng xuất khỏi thiết bị).
// Gỡ token không tồn tại vẫn trả về thành công.
func (h *UserTokenHandler) HandleRemoveToken(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		userID := c.Params("userId")
		if userID == "" {
			h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationInput, "Thiếu userId", common.StatusBadRequest, nil))
			return nil
		}

		var input userdto.RemoveTokenInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		if err := h.userService.RemoveToken(c.Context(), userID, input.Token); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		h.HandleResponse(c, fiber.Map{"userId": userID}, nil)
		return nil
	})
}
