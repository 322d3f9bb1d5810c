// Package router đăng ký các route thuộc domain trigger: ba trigger sự kiện domain.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	triggerhdl "famhub/internal/api/trigger/handler"
)

// Register đăng ký các route trigger lên v1.
func Register(v1 fiber.Router) error {
	triggerHandler, err := triggerhdl.NewTriggerHandler()
	if err != nil {
		return fmt.Errorf("failed to create trigger handler: %w", err)
	}

	v1.Post("/triggers/message-created", triggerHandler.HandleMessageCreated)
	v1.Post("/triggers/task-created", triggerHandler.HandleTaskCreated)
	v1.Post("/triggers/event-created", triggerHandler.HandleEventCreated)
	return nil
}
