// Package router gom việc đăng ký route của toàn bộ API.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	basehdl "famhub/internal/api/base/handler"
	triggerrouter "famhub/internal/api/trigger/router"
	userrouter "famhub/internal/api/user/router"
)

// RegisterAllRoutes đăng ký toàn bộ route của ứng dụng lên Fiber app.
// Mọi route nghiệp vụ nằm dưới /api/v1.
func RegisterAllRoutes(app *fiber.App) error {
	systemHandler, err := basehdl.NewSystemHandler()
	if err != nil {
		return fmt.Errorf("failed to create system handler: %w", err)
	}
	app.Get("/health", systemHandler.HandleHealth)

	v1 := app.Group("/api/v1")

	if err := triggerrouter.Register(v1); err != nil {
		return err
	}
	if err := userrouter.Register(v1); err != nil {
		return err
	}
	return nil
}
