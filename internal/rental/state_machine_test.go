package rental

import (
	"errors"
	"testing"
	"time"
)

func TestCanTransitionAndApply(t *testing.T) {
	if !CanTransition(StatusPending, StatusActive) {
		t.Fatalf("expected pending -> active allowed")
	}
	if !CanTransition(StatusPending, StatusCompleted) {
		t.Fatalf("expected pending -> completed allowed (skip pickup)")
	}
	if CanTransition(StatusCompleted, StatusActive) {
		t.Fatalf("expected completed -> active not allowed")
	}
	if CanTransition(StatusCancelled, StatusCancelled) {
		t.Fatalf("expected repeated cancel on terminal state not allowed")
	}

	r := &Rental{Status: StatusPending}
	now := time.Now()
	if err := ApplyTransition(r, StatusActive, now); err != nil {
		t.Fatalf("ApplyTransition: %v", err)
	}
	if r.Status != StatusActive {
		t.Fatalf("expected status active, got %s", r.Status)
	}
	if r.StartedAt == nil {
		t.Fatalf("expected started_at to be stamped")
	}

	if err := ApplyTransition(r, StatusCompleted, now); err != nil {
		t.Fatalf("ApplyTransition to completed: %v", err)
	}
	if r.CompletedAt == nil {
		t.Fatalf("expected completed_at to be stamped")
	}

	// 终态不允许再流转
	err := ApplyTransition(r, StatusCancelled, now)
	if !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}
	if r.Status != StatusCompleted {
		t.Fatalf("status must stay completed, got %s", r.Status)
	}
}

func TestTerminalStates(t *testing.T) {
	if !StatusCompleted.IsTerminal() || !StatusCancelled.IsTerminal() {
		t.Fatalf("expected completed/cancelled to be terminal")
	}
	if StatusPending.IsTerminal() || StatusActive.IsTerminal() {
		t.Fatalf("expected pending/active to be non-terminal")
	}
}
