// Package worker chứa các background job chạy kèm server.
package worker

import (
	"context"
	"fmt"
	"time"

	triggersvc "famhub/internal/api/trigger/service"
	"famhub/internal/logger"
)

// TriggerLogCleaner dọn định kỳ các bản ghi nhật ký trigger đã quá thời gian lưu giữ
type TriggerLogCleaner struct {
	logService    *triggersvc.TriggerLogService
	interval      time.Duration
	retentionDays int
}

// NewTriggerLogCleaner tạo mới TriggerLogCleaner.
// retentionDays <= 0 dùng mặc định 30 ngày.
func NewTriggerLogCleaner(retentionDays int) (*TriggerLogCleaner, error) {
	logService, err := triggersvc.NewTriggerLogService()
	if err != nil {
		return nil, fmt.Errorf("failed to create trigger log service: %v", err)
	}
	if retentionDays <= 0 {
		retentionDays = 30
	}

	return &TriggerLogCleaner{
		logService:    logService,
		interval:      1 * time.Hour,
		retentionDays: retentionDays,
	}, nil
}

// Start chạy vòng lặp dọn dẹp cho tới khi context bị hủy.
// Panic trong một lượt dọn chỉ làm vòng lặp khởi động lại, không làm sập server.
func (w *TriggerLogCleaner) Start(ctx context.Context) {
	log := logger.GetAppLogger()

	for {
		stopped := func() bool {
			defer func() {
				if r := recover(); r != nil {
					log.WithFields(map[string]interface{}{
						"panic": r,
					}).Error("🧹 [CLEANUP] Worker panic, sẽ tự khởi động lại")
				}
			}()

			ticker := time.NewTicker(w.interval)
			defer ticker.Stop()

			for {
				select {
				case <-ctx.Done():
					return true
				case <-ticker.C:
					cutoff := time.Now().AddDate(0, 0, -w.retentionDays)
					deleted, err := w.logService.DeleteOlderThan(ctx, cutoff)
					if err != nil {
						log.WithError(err).Error("🧹 [CLEANUP] Không xóa được nhật ký trigger cũ")
						continue
					}
					if deleted > 0 {
						log.WithFields(map[string]interface{}{
							"deleted":       deleted,
							"retentionDays": w.retentionDays,
						}).Info("🧹 [CLEANUP] Đã xóa nhật ký trigger cũ")
					}
				}
			}
		}()
		if stopped {
			return
		}
	}
}
