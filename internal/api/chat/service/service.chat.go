// Package chatsvc - service đoạn chat (Chat).
package chatsvc

import (
	"context"
	"fmt"

	models "famhub/internal/api/chat/models"
	basesvc "famhub/internal/api/base/service"
	"famhub/internal/common"
	"famhub/internal/global"
)

// ChatService là cấu trúc chứa các phương thức liên quan đến đoạn chat
type ChatService struct {
	*basesvc.BaseServiceMongoImpl[models.Chat]
}

// NewChatService tạo mới ChatService
func NewChatService() (*ChatService, error) {
	chatCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Chats)
	if !exist {
		return nil, fmt.Errorf("failed to get chats collection: %v", common.ErrNotFound)
	}

	return &ChatService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Chat](chatCollection),
	}, nil
}

// Participants trả về danh sách UID người tham gia của một đoạn chat.
// Chat không tồn tại trả về common.ErrNotFound để caller tự quyết định xử lý.
func (s *ChatService) Participants(ctx context.Context, chatID string) ([]string, error) {
	chat, err := s.FindOneById(ctx, chatID)
	if err != nil {
		return nil, err
	}
	return chat.Participants, nil
}
