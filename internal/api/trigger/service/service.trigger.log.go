// Package triggersvc - service nhật ký trigger.
package triggersvc

import (
	"context"
	"fmt"
	"time"

	basesvc "famhub/internal/api/base/service"
	models "famhub/internal/api/trigger/models"
	"famhub/internal/common"
	"famhub/internal/global"
	"famhub/internal/notification"

	"go.mongodb.org/mongo-driver/bson"
)

// TriggerLogService là cấu trúc chứa các phương thức liên quan đến nhật ký trigger
type TriggerLogService struct {
	*basesvc.BaseServiceMongoImpl[models.TriggerLog]
}

// NewTriggerLogService tạo mới TriggerLogService
func NewTriggerLogService() (*TriggerLogService, error) {
	logCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.TriggerLogs)
	if !exist {
		return nil, fmt.Errorf("failed to get trigger_logs collection: %v", common.ErrNotFound)
	}

	return &TriggerLogService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.TriggerLog](logCollection),
	}, nil
}

// Record lưu một bản ghi nhật ký cho trigger đã chạy xong pipeline
func (s *TriggerLogService) Record(ctx context.Context, sourceID string, rawBody string, summary notification.Summary) (models.TriggerLog, error) {
	return s.InsertOne(ctx, models.TriggerLog{
		EventKind: string(summary.EventKind),
		SourceID:  sourceID,
		RawBody:   rawBody,
		Processed: true,
		Summary:   summary,
	})
}

// RecordRejected lưu nhật ký cho trigger có body không parse/validate được.
// Giữ lại body gốc để soi lại nguồn sự kiện gửi sai những gì.
func (s *TriggerLogService) RecordRejected(ctx context.Context, eventKind string, rawBody string, parseErr error) (models.TriggerLog, error) {
	return s.InsertOne(ctx, models.TriggerLog{
		EventKind:  eventKind,
		RawBody:    rawBody,
		Processed:  false,
		ParseError: parseErr.Error(),
	})
}

// DeleteOlderThan xóa các bản ghi nhật ký được tạo trước thời điểm cutoff.
// Trả về số bản ghi đã xóa.
func (s *TriggerLogService) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	filter := bson.M{"createdAt": bson.M{"$lt": cutoff.UnixMilli()}}
	return s.DeleteMany(ctx, filter)
}
