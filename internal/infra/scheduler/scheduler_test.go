package scheduler

import (
	"testing"
	"time"
)

func TestNewHeartbeat_Disabled(t *testing.T) {
	h, err := NewHeartbeat("", time.Now())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if h != nil {
		t.Fatal("expected nil heartbeat for empty spec")
	}
	if h.Due(time.Now().Add(24 * time.Hour)) {
		t.Error("disabled heartbeat must never be due")
	}
	if !h.Next().IsZero() {
		t.Error("disabled heartbeat must have zero next time")
	}
}

func TestNewHeartbeat_InvalidSpec(t *testing.T) {
	if _, err := NewHeartbeat("every now and then", time.Now()); err == nil {
		t.Error("expected error for invalid spec")
	}
}

func TestHeartbeat_Due(t *testing.T) {
	start := time.Date(2025, 5, 15, 10, 0, 0, 0, time.UTC)
	h, err := NewHeartbeat("@every 1h", start)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if h.Due(start.Add(30 * time.Minute)) {
		t.Error("heartbeat should not be due before the first activation")
	}
	if !h.Due(start.Add(time.Hour)) {
		t.Error("heartbeat should be due at the first activation")
	}
	if h.Due(start.Add(time.Hour + time.Minute)) {
		t.Error("heartbeat should not fire twice for the same activation")
	}
	if !h.Due(start.Add(3 * time.Hour)) {
		t.Error("heartbeat should be due after a missed activation")
	}
	if want := start.Add(4 * time.Hour); !h.Next().Equal(want) {
		t.Errorf("expected next activation %s, got %s", want, h.Next())
	}
}

func TestHeartbeat_StandardSpec(t *testing.T) {
	start := time.Date(2025, 5, 15, 8, 0, 0, 0, time.UTC)
	h, err := NewHeartbeat("0 9 * * *", start)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := time.Date(2025, 5, 15, 9, 0, 0, 0, time.UTC); !h.Next().Equal(want) {
		t.Errorf("expected next activation %s, got %s", want, h.Next())
	}
}
