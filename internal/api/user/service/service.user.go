// Package usersvc - service hồ sơ người dùng, kiêm sổ địa chỉ token cho pipeline thông báo.
package usersvc

import (
	"context"
	"errors"
	"fmt"
	"time"

	basesvc "famhub/internal/api/base/service"
	models "famhub/internal/api/user/models"
	"famhub/internal/common"
	"famhub/internal/global"
	"famhub/internal/utility"

	"go.mongodb.org/mongo-driver/bson"
)

// UserService là cấu trúc chứa các phương thức liên quan đến hồ sơ người dùng
type UserService struct {
	*basesvc.BaseServiceMongoImpl[models.UserProfile]
}

// NewUserService tạo mới UserService
func NewUserService() (*UserService, error) {
	userCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Users)
	if !exist {
		return nil, fmt.Errorf("failed to get users collection: %v", common.ErrNotFound)
	}

	return &UserService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.UserProfile](userCollection),
	}, nil
}

// AddressesFor trả về toàn bộ token đã đăng ký của một người dùng.
// Gộp danh sách fcmTokens với field legacy fcmToken, khử trùng lặp theo giá trị token,
// giữ thứ tự: danh sách trước, legacy sau nếu chưa có.
// Hồ sơ không tồn tại trả về danh sách rỗng, không phải lỗi.
func (s *UserService) AddressesFor(ctx context.Context, userID string) ([]string, error) {
	profile, err := s.FindOneById(ctx, userID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return []string{}, nil
		}
		return nil, err
	}

	tokens := make([]string, 0, len(profile.FCMTokens)+1)
	for _, t := range profile.FCMTokens {
		if t.Token != "" {
			tokens = append(tokens, t.Token)
		}
	}
	if profile.FCMTokenLegacy != "" {
		tokens = append(tokens, profile.FCMTokenLegacy)
	}

	return utility.Unique(tokens), nil
}

// RemoveToken gỡ đúng một token khỏi hồ sơ bằng targeted update ($pull),
// không ghi đè toàn bộ document để tránh đè lên ghi đồng thời từ client.
// Token không tồn tại trong hồ sơ là no-op.
func (s *UserService) RemoveToken(ctx context.Context, userID string, token string) error {
	// Gỡ khỏi danh sách fcmTokens
	pullUpdate := &basesvc.UpdateData{
		Pull: map[string]interface{}{
			"fcmTokens": bson.M{"token": token},
		},
	}
	if _, err := s.UpdateMany(ctx, bson.M{"_id": userID}, pullUpdate, nil); err != nil {
		return err
	}

	// Gỡ field legacy nếu đang trỏ đúng token này
	unsetUpdate := &basesvc.UpdateData{
		Unset: map[string]interface{}{
			"fcmToken": "",
		},
	}
	if _, err := s.UpdateMany(ctx, bson.M{"_id": userID, "fcmToken": token}, unsetUpdate, nil); err != nil {
		return err
	}

	return nil
}

// AddToken đăng ký token mới cho một thiết bị của người dùng.
// Mỗi token chỉ xuất hiện một lần: entry cũ cùng token bị gỡ trước khi thêm lại,
// nên đăng ký lại từ cùng thiết bị chỉ làm mới metadata.
func (s *UserService) AddToken(ctx context.Context, userID string, token string, device string) (models.UserProfile, error) {
	// Gỡ entry cũ cùng token (nếu có) để không bị trùng
	pullUpdate := &basesvc.UpdateData{
		Pull: map[string]interface{}{
			"fcmTokens": bson.M{"token": token},
		},
	}
	if _, err := s.UpdateMany(ctx, bson.M{"_id": userID}, pullUpdate, nil); err != nil {
		return models.UserProfile{}, err
	}

	// Thêm entry mới, upsert để tự tạo hồ sơ nếu người dùng chưa có
	addUpdate := &basesvc.UpdateData{
		AddToSet: map[string]interface{}{
			"fcmTokens": models.FCMToken{
				Token:     token,
				Device:    device,
				UpdatedAt: time.Now().UnixMilli(),
			},
		},
	}
	profile, err := s.Upsert(ctx, bson.M{"_id": userID}, addUpdate)
	if err != nil {
		return models.UserProfile{}, err
	}

	// Token giờ đã nằm trong danh sách: gỡ field legacy nếu đang trỏ cùng token
	// để tra cứu về sau không phải gộp trùng
	if profile.FCMTokenLegacy == token {
		unsetUpdate := &basesvc.UpdateData{
			Unset: map[string]interface{}{
				"fcmToken": "",
			},
		}
		if _, err := s.UpdateMany(ctx, bson.M{"_id": userID, "fcmToken": token}, unsetUpdate, nil); err != nil {
			return models.UserProfile{}, err
		}
		profile.FCMTokenLegacy = ""
	}

	return profile, nil
}
