// Package router đăng ký các route thuộc domain user: quản lý token thiết bị.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	userhdl "famhub/internal/api/user/handler"
)

// Register đăng ký các route user lên v1.
func Register(v1 fiber.Router) error {
	tokenHandler, err := userhdl.NewUserTokenHandler()
	if err != nil {
		return fmt.Errorf("failed to create user token handler: %w", err)
	}

	v1.Post("/users/:userId/tokens", tokenHandler.HandleRegisterToken)
	v1.Delete("/users/:userId/tokens", tokenHandler.HandleRemoveToken)
	return nil
}
