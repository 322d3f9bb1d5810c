// Package gateway bọc Firebase Cloud Messaging thành notification.Sender
package gateway

import (
	"context"

	"firebase.google.com/go/v4/messaging"

	"famhub/internal/logger"
	"famhub/internal/notification"
)

// FcmSender triển khai notification.Sender trên Firebase Cloud Messaging
type FcmSender struct {
	client *messaging.Client
}

// NewFcmSender tạo mới FcmSender từ messaging client đã khởi tạo
func NewFcmSender(client *messaging.Client) *FcmSender {
	return &FcmSender{client: client}
}

// Send gửi một payload tới một token và phân loại kết quả.
// Token bị gateway báo unregistered/invalid là lỗi vĩnh viễn (InvalidAddress),
// mọi lỗi khác coi là tạm thời.
func (s *FcmSender) Send(ctx context.Context, token string, payload notification.Payload) notification.DeliveryOutcome {
	message := buildFcmMessage(token, payload)

	messageID, err := s.client.Send(ctx, message)
	if err != nil {
		if messaging.IsUnregistered(err) || messaging.IsInvalidArgument(err) {
			return notification.DeliveryOutcome{
				Token:  token,
				Status: notification.OutcomeInvalidAddress,
				Detail: err.Error(),
			}
		}
		return notification.DeliveryOutcome{
			Token:  token,
			Status: notification.OutcomeTransientFailure,
			Detail: err.Error(),
		}
	}

	logger.GetAppLogger().WithField("messageId", messageID).Debug("🔔 [NOTIFY] FCM đã nhận thông báo")
	return notification.DeliveryOutcome{
		Token:     token,
		Status:    notification.OutcomeSuccess,
		MessageID: messageID,
	}
}

// buildFcmMessage ánh xạ payload độc lập nền tảng sang định dạng FCM
func buildFcmMessage(token string, payload notification.Payload) *messaging.Message {
	badge := payload.Hints.Badge

	return &messaging.Message{
		Token: token,
		Notification: &messaging.Notification{
			Title: payload.Title,
			Body:  payload.Body,
		},
		Data: payload.Data,
		Android: &messaging.AndroidConfig{
			Priority: payload.Hints.Priority,
			Notification: &messaging.AndroidNotification{
				ChannelID:             payload.Hints.ChannelID,
				Sound:                 payload.Hints.Sound,
				DefaultVibrateTimings: true,
			},
		},
		APNS: &messaging.APNSConfig{
			Payload: &messaging.APNSPayload{
				Aps: &messaging.Aps{
					Alert: &messaging.ApsAlert{
						Title: payload.Title,
						Body:  payload.Body,
					},
					Sound:    payload.Hints.Sound,
					Badge:    &badge,
					Category: payload.Hints.Category,
				},
			},
		},
	}
}
