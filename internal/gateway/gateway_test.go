package gateway

import (
	"context"
	"testing"

	"famhub/internal/notification"
)

func TestBuildFcmMessage_AnhXaPayload(t *testing.T) {
	payload := notification.Payload{
		Title: "Minh",
		Body:  "hello",
		Data:  map[string]string{"type": "chat", "chatId": "c1"},
		Hints: notification.PlatformHints{
			Priority:  "high",
			ChannelID: "CHAT_MESSAGE",
			Category:  "CHAT_MESSAGE",
			Sound:     "default",
			Badge:     1,
		},
	}

	message := buildFcmMessage("token-1", payload)

	if message.Token != "token-1" {
		t.Errorf("Token không đúng, có %q", message.Token)
	}
	if message.Notification.Title != "Minh" || message.Notification.Body != "hello" {
		t.Errorf("Notification không đúng: %+v", message.Notification)
	}
	if message.Data["chatId"] != "c1" {
		t.Errorf("Data không được ánh xạ: %v", message.Data)
	}
	if message.Android.Priority != "high" {
		t.Errorf("Android priority phải là high, có %q", message.Android.Priority)
	}
	if message.Android.Notification.ChannelID != "CHAT_MESSAGE" {
		t.Errorf("Android channel không đúng, có %q", message.Android.Notification.ChannelID)
	}
	aps := message.APNS.Payload.Aps
	if aps.Alert.Title != "Minh" || aps.Category != "CHAT_MESSAGE" {
		t.Errorf("APNS aps không đúng: %+v", aps)
	}
	if aps.Badge == nil || *aps.Badge != 1 {
		t.Error("APNS badge phải là 1")
	}
}

func TestDisabledSender_LuonTransientFailure(t *testing.T) {
	sender := NewDisabledSender()

	outcome := sender.Send(context.Background(), "token-1", notification.Payload{Title: "test"})
	if outcome.Status != notification.OutcomeTransientFailure {
		t.Errorf("DisabledSender phải trả về transient_failure, có %q", outcome.Status)
	}
	if outcome.Token != "token-1" {
		t.Errorf("Outcome phải giữ token, có %q", outcome.Token)
	}
	if outcome.Detail == "" {
		t.Error("Outcome phải có detail giải thích gateway chưa khởi tạo")
	}
}
