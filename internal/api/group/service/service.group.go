// Package groupsvc - service nhóm (Group).
package groupsvc

import (
	"context"
	"fmt"

	basesvc "famhub/internal/api/base/service"
	models "famhub/internal/api/group/models"
	"famhub/internal/common"
	"famhub/internal/global"
)

// GroupService là cấu trúc chứa các phương thức liên quan đến nhóm
type GroupService struct {
	*basesvc.BaseServiceMongoImpl[models.Group]
}

// NewGroupService tạo mới GroupService
func NewGroupService() (*GroupService, error) {
	groupCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Groups)
	if !exist {
		return nil, fmt.Errorf("failed to get groups collection: %v", common.ErrNotFound)
	}

	return &GroupService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Group](groupCollection),
	}, nil
}

// Members trả về danh sách UID thành viên của một nhóm.
// Nhóm không tồn tại trả về common.ErrNotFound để caller tự quyết định xử lý.
func (s *GroupService) Members(ctx context.Context, groupID string) ([]string, error) {
	group, err := s.FindOneById(ctx, groupID)
	if err != nil {
		return nil, err
	}
	return group.Members, nil
}
