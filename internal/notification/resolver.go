package notification

import (
	"context"
	"errors"

	"famhub/internal/common"
	"famhub/internal/logger"
	"famhub/internal/utility"
)

// ChatReader đọc danh sách người tham gia một đoạn chat
type ChatReader interface {
	Participants(ctx context.Context, chatID string) ([]string, error)
}

// GroupReader đọc danh sách thành viên một nhóm
type GroupReader interface {
	Members(ctx context.Context, groupID string) ([]string, error)
}

// Resolver tính tập người nhận cho một sự kiện domain.
// Người gây ra sự kiện luôn bị loại khỏi kết quả.
type Resolver struct {
	chats  ChatReader
	groups GroupReader
}

// NewResolver tạo mới Resolver với các collaborator đọc dữ liệu
func NewResolver(chats ChatReader, groups GroupReader) *Resolver {
	return &Resolver{
		chats:  chats,
		groups: groups,
	}
}

// Resolve trả về danh sách userId cần thông báo, đã khử trùng lặp và loại actor.
// Thiếu dữ liệu (chat/nhóm không tồn tại) không phải lỗi: kết quả rỗng, chỉ log lại.
func (r *Resolver) Resolve(ctx context.Context, event DomainEvent) ([]string, error) {
	log := logger.GetAppLogger().WithField("eventKind", string(event.Kind))

	switch event.Kind {
	case KindMessageCreated:
		if event.Message == nil {
			return nil, common.ErrInvalidInput
		}
		participants, err := r.chats.Participants(ctx, event.Message.ChatID)
		if err != nil {
			if errors.Is(err, common.ErrNotFound) {
				log.WithField("chatId", event.Message.ChatID).Warn("🔔 [NOTIFY] Chat không tồn tại, bỏ qua thông báo")
				return []string{}, nil
			}
			return nil, err
		}
		return excludeActor(participants, event.Message.SenderID), nil

	case KindTaskCreated:
		if event.Task == nil {
			return nil, common.ErrInvalidInput
		}
		return excludeActor(event.Task.AssignedUserIDs, event.Task.CreatedByUserID), nil

	case KindEventCreated:
		if event.CalendarEvent == nil {
			return nil, common.ErrInvalidInput
		}
		if event.CalendarEvent.IsPersonal {
			// Sự kiện cá nhân: không thông báo ai, pipeline dừng sớm
			return []string{}, nil
		}
		members, err := r.groups.Members(ctx, event.CalendarEvent.GroupID)
		if err != nil {
			if errors.Is(err, common.ErrNotFound) {
				log.WithField("groupId", event.CalendarEvent.GroupID).Warn("🔔 [NOTIFY] Nhóm không tồn tại, bỏ qua thông báo")
				return []string{}, nil
			}
			return nil, err
		}
		return excludeActor(members, event.CalendarEvent.CreatedByUserID), nil
	}

	return nil, common.ErrInvalidInput
}

// excludeActor loại actor và khử trùng lặp, giữ thứ tự xuất hiện
func excludeActor(userIDs []string, actorID string) []string {
	return utility.Unique(utility.Exclude(userIDs, actorID))
}
