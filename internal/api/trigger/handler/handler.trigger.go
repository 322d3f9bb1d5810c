package triggerhdl

import (
	"fmt"

	basehdl "famhub/internal/api/base/handler"
	chatsvc "famhub/internal/api/chat/service"
	groupsvc "famhub/internal/api/group/service"
	triggerdto "famhub/internal/api/trigger/dto"
	triggersvc "famhub/internal/api/trigger/service"
	usersvc "famhub/internal/api/user/service"
	"famhub/internal/gateway"
	"famhub/internal/global"
	"famhub/internal/logger"
	"famhub/internal/notification"

	"github.com/gofiber/fiber/v3"
)

// TriggerHandler nhận các trigger sự kiện domain từ nguồn bên ngoài
// và chạy pipeline thông báo. Đây là biên ngoài cùng của pipeline:
// lỗi pipeline không bao giờ trả về mã lỗi cho nguồn trigger
// để hạ tầng bên kia không re-invoke vô hạn cùng một sự kiện.
type TriggerHandler struct {
	basehdl.BaseHandler
	pipeline   *notification.Pipeline
	logService *triggersvc.TriggerLogService
}

// NewTriggerHandler tạo instance mới của TriggerHandler, tự nối đủ collaborator
func NewTriggerHandler() (*TriggerHandler, error) {
	chatService, err := chatsvc.NewChatService()
	if err != nil {
		return nil, fmt.Errorf("failed to create chat service: %v", err)
	}
	groupService, err := groupsvc.NewGroupService()
	if err != nil {
		return nil, fmt.Errorf("failed to create group service: %v", err)
	}
	userService, err := usersvc.NewUserService()
	if err != nil {
		return nil, fmt.Errorf("failed to create user service: %v", err)
	}
	logService, err := triggersvc.NewTriggerLogService()
	if err != nil {
		return nil, fmt.Errorf("failed to create trigger log service: %v", err)
	}

	// Firebase là optional: thiếu cấu hình thì server vẫn chạy, chỉ không gửi được
	var sender notification.Sender
	if global.FirebaseMessaging != nil {
		sender = gateway.NewFcmSender(global.FirebaseMessaging)
	} else {
		logger.GetAppLogger().Warn("🔔 [NOTIFY] Firebase chưa cấu hình, dùng DisabledSender")
		sender = gateway.NewDisabledSender()
	}

	return &TriggerHandler{
		pipeline:   notification.NewPipeline(chatService, groupService, userService, sender),
		logService: logService,
	}, nil
}

// HandleMessageCreated xử lý trigger message-created
func (h *TriggerHandler) HandleMessageCreated(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		rawBody := string(c.Body())

		var input triggerdto.MessageCreatedInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.recordRejected(c, notification.KindMessageCreated, rawBody, err)
			h.HandleResponse(c, nil, err)
			return nil
		}

		event := notification.NewMessageCreatedEvent(notification.MessageCreated{
			ChatID:      input.ChatID,
			MessageID:   input.MessageID,
			SenderID:    input.SenderID,
			SenderName:  input.SenderName,
			Content:     input.Content,
			ContentType: input.Type,
		})

		h.runPipeline(c, event, input.MessageID, rawBody)
		return nil
	})
}

// HandleTaskCreated xử lý trigger task-created
func (h *TriggerHandler) HandleTaskCreated(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		rawBody := string(c.Body())

		var input triggerdto.TaskCreatedInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.recordRejected(c, notification.KindTaskCreated, rawBody, err)
			h.HandleResponse(c, nil, err)
			return nil
		}

		event := notification.NewTaskCreatedEvent(notification.TaskCreated{
			TaskID:          input.TaskID,
			Title:           input.Title,
			AssignedUserIDs: input.AssignedTo,
			CreatedByUserID: input.CreatedBy,
		})

		h.runPipeline(c, event, input.TaskID, rawBody)
		return nil
	})
}

// HandleEventCreated xử lý trigger event-created
func (h *TriggerHandler) HandleEventCreated(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		rawBody := string(c.Body())

		var input triggerdto.EventCreatedInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.recordRejected(c, notification.KindEventCreated, rawBody, err)
			h.HandleResponse(c, nil, err)
			return nil
		}

		event := notification.NewCalendarEventCreatedEvent(notification.CalendarEventCreated{
			EventID:         input.EventID,
			Title:           input.Title,
			GroupID:         input.GroupID,
			CreatedByUserID: input.CreatedBy,
			IsPersonal:      input.IsPersonal,
		})

		h.runPipeline(c, event, input.EventID, rawBody)
		return nil
	})
}

// runPipeline chạy pipeline cho một sự kiện, ghi nhật ký best-effort
// và luôn trả về thành công kèm summary cho nguồn trigger.
func (h *TriggerHandler) runPipeline(c fiber.Ctx, event notification.DomainEvent, sourceID string, rawBody string) {
	summary := h.pipeline.Run(c.Context(), event)

	// Ghi nhật ký là best-effort: lỗi ghi không ảnh hưởng kết quả trigger
	if _, err := h.logService.Record(c.Context(), sourceID, rawBody, summary); err != nil {
		logger.GetAppLogger().WithError(err).WithField("sourceId", sourceID).Warn("🔔 [NOTIFY] Không ghi được nhật ký trigger")
	}

	h.HandleResponse(c, summary, nil)
}

// recordRejected ghi nhật ký best-effort cho trigger có body không hợp lệ
func (h *TriggerHandler) recordRejected(c fiber.Ctx, kind notification.EventKind, rawBody string, parseErr error) {
	if _, err := h.logService.RecordRejected(c.Context(), string(kind), rawBody, parseErr); err != nil {
		logger.GetAppLogger().WithError(err).WithField("eventKind", string(kind)).Warn("🔔 [NOTIFY] Không ghi được nhật ký trigger bị từ chối")
	}
}
