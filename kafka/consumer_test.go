package kafka

import (
	"context"
	"errors"
	"testing"
)

type recorded struct {
	Name string `json:"name"`
}

func TestTypedHandlerProcessesValidMessage(t *testing.T) {
	var got *recorded
	h := &TypedMessageHandler[recorded]{
		Process: func(_ context.Context, msg *recorded) error {
			got = msg
			return nil
		},
	}

	mark, err := h.HandleMessage(context.Background(), []byte(`{"name":"alpha"}`))
	if err != nil {
		t.Fatalf("HandleMessage: %v", err)
	}
	if !mark {
		t.Error("successful message not marked")
	}
	if got == nil || got.Name != "alpha" {
		t.Errorf("processed %+v", got)
	}
}

func TestTypedHandlerSkipsInvalidJSON(t *testing.T) {
	h := &TypedMessageHandler[recorded]{
		Process: func(_ context.Context, _ *recorded) error {
			t.Fatal("process called for invalid JSON")
			return nil
		},
		AlwaysMark: true,
	}

	mark, err := h.HandleMessage(context.Background(), []byte(`{not json`))
	if err != nil {
		t.Fatalf("HandleMessage: %v", err)
	}
	if !mark {
		t.Error("invalid message should be marked to skip with AlwaysMark")
	}
}

func TestTypedHandlerValidationGate(t *testing.T) {
	h := &TypedMessageHandler[recorded]{
		Validate: func(msg *recorded) bool { return msg.Name != "" },
		Process: func(_ context.Context, _ *recorded) error {
			t.Fatal("process called for rejected message")
			return nil
		},
	}

	mark, err := h.HandleMessage(context.Background(), []byte(`{"name":""}`))
	if err != nil {
		t.Fatalf("HandleMessage: %v", err)
	}
	if mark {
		t.Error("rejected message marked without AlwaysMark")
	}
}

func TestTypedHandlerProcessErrorLeavesUnmarked(t *testing.T) {
	h := &TypedMessageHandler[recorded]{
		Process: func(_ context.Context, _ *recorded) error {
			return errors.New("downstream unavailable")
		},
	}

	mark, err := h.HandleMessage(context.Background(), []byte(`{"name":"alpha"}`))
	if err == nil {
		t.Fatal("expected process error")
	}
	if mark {
		t.Error("failed message must stay unmarked for redelivery")
	}
}
