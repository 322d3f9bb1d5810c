package notification

import (
	"context"
	"sync"
	"testing"
)

// fakeSender phân loại outcome theo bảng cấu hình sẵn, mặc định success
type fakeSender struct {
	mu        sync.Mutex
	outcomes  map[string]OutcomeStatus // token → status muốn trả về
	panicOn   string                   // token làm Send panic
	sendCount int
}

func (f *fakeSender) Send(ctx context.Context, token string, payload Payload) DeliveryOutcome {
	f.mu.Lock()
	f.sendCount++
	f.mu.Unlock()

	if token == f.panicOn {
		panic("gateway nổ")
	}

	status, ok := f.outcomes[token]
	if !ok {
		status = OutcomeSuccess
	}
	outcome := DeliveryOutcome{Token: token, Status: status}
	if status == OutcomeSuccess {
		outcome.MessageID = "msg-" + token
	}
	return outcome
}

func TestDispatch_GuiDuMoiToken(t *testing.T) {
	sender := &fakeSender{}
	dispatcher := NewDispatcher(sender)

	tokens := []string{"A", "B", "C"}
	outcomes := dispatcher.Dispatch(context.Background(), "u1", tokens, Payload{Title: "test"})

	if len(outcomes) != len(tokens) {
		t.Fatalf("Phải có đúng một outcome cho mỗi token, có %d", len(outcomes))
	}
	if sender.sendCount != len(tokens) {
		t.Errorf("Sender phải được gọi %d lần, có %d", len(tokens), sender.sendCount)
	}
	// Outcome giữ đúng thứ tự token đầu vào
	for i, token := range tokens {
		if outcomes[i].Token != token {
			t.Errorf("Outcome[%d] phải của token %q, có %q", i, token, outcomes[i].Token)
		}
		if outcomes[i].Status != OutcomeSuccess {
			t.Errorf("Token %q phải success, có %q", token, outcomes[i].Status)
		}
	}
}

func TestDispatch_MotTokenHongKhongAnhHuongCacTokenKhac(t *testing.T) {
	sender := &fakeSender{outcomes: map[string]OutcomeStatus{
		"B": OutcomeInvalidAddress,
	}}
	dispatcher := NewDispatcher(sender)

	outcomes := dispatcher.Dispatch(context.Background(), "u1", []string{"A", "B", "C"}, Payload{})

	if outcomes[0].Status != OutcomeSuccess || outcomes[2].Status != OutcomeSuccess {
		t.Errorf("Token A và C vẫn phải success: %v", outcomes)
	}
	if outcomes[1].Status != OutcomeInvalidAddress {
		t.Errorf("Token B phải invalid_address, có %q", outcomes[1].Status)
	}
}

func TestDispatch_PanicThanhTransientFailure(t *testing.T) {
	sender := &fakeSender{panicOn: "B"}
	dispatcher := NewDispatcher(sender)

	outcomes := dispatcher.Dispatch(context.Background(), "u1", []string{"A", "B", "C"}, Payload{})

	if len(outcomes) != 3 {
		t.Fatalf("Panic không được làm mất outcome, có %d", len(outcomes))
	}
	if outcomes[1].Status != OutcomeTransientFailure {
		t.Errorf("Token panic phải thành transient_failure, có %q", outcomes[1].Status)
	}
	if outcomes[1].Detail == "" {
		t.Error("Outcome panic phải có detail")
	}
	if outcomes[0].Status != OutcomeSuccess || outcomes[2].Status != OutcomeSuccess {
		t.Errorf("Các token còn lại vẫn phải success: %v", outcomes)
	}
}

func TestDispatch_KhongCoToken(t *testing.T) {
	sender := &fakeSender{}
	dispatcher := NewDispatcher(sender)

	outcomes := dispatcher.Dispatch(context.Background(), "u1", nil, Payload{})
	if len(outcomes) != 0 {
		t.Errorf("Không có token thì không có outcome, có %v", outcomes)
	}
	if sender.sendCount != 0 {
		t.Errorf("Sender không được gọi khi không có token, có %d lần", sender.sendCount)
	}
}
