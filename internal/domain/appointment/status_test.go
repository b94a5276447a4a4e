package appointment

import (
	"testing"
	"time"
)

func TestStateMachine(t *testing.T) {
	// PENDING -> CONFIRMED
	if err := CanConfirm(StatusPending); err != nil {
		t.Errorf("confirm pending: %v", err)
	}

	// confirmar de novo, confirmar cancelado, confirmar derivado
	for _, s := range []Status{StatusConfirmed, StatusCanceled, StatusCompleted} {
		if err := CanConfirm(s); err == nil {
			t.Errorf("confirm %s: expected invalid_state", s)
		}
	}

	// cancelar vale para PENDING e CONFIRMED, nunca duas vezes
	for _, s := range []Status{StatusPending, StatusConfirmed} {
		if err := CanCancel(s); err != nil {
			t.Errorf("cancel %s: %v", s, err)
		}
	}
	if err := CanCancel(StatusCanceled); err == nil {
		t.Error("cancel canceled: expected invalid_state")
	}

	// remarcar segue a mesma regra do cancelamento
	for _, s := range []Status{StatusPending, StatusConfirmed} {
		if err := CanReschedule(s); err != nil {
			t.Errorf("reschedule %s: %v", s, err)
		}
	}
	if err := CanReschedule(StatusCanceled); err == nil {
		t.Error("reschedule canceled: expected invalid_state")
	}

	if InitialStatus() != StatusPending {
		t.Errorf("initial status = %s, want PENDING", InitialStatus())
	}
}

func TestDeriveDisplay(t *testing.T) {
	now := time.Date(2026, 9, 7, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		name   string
		status Status
		endAt  time.Time
		want   Status
	}{
		{"confirmed past becomes completed", StatusConfirmed, now.Add(-time.Hour), StatusCompleted},
		{"confirmed ending now becomes completed", StatusConfirmed, now, StatusCompleted},
		{"confirmed future stays confirmed", StatusConfirmed, now.Add(time.Hour), StatusConfirmed},
		{"pending past stays pending", StatusPending, now.Add(-time.Hour), StatusPending},
		{"canceled past stays canceled", StatusCanceled, now.Add(-time.Hour), StatusCanceled},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := DeriveDisplay(tc.status, tc.endAt, now); got != tc.want {
				t.Errorf("DeriveDisplay(%s) = %s, want %s", tc.status, got, tc.want)
			}
		})
	}
}

func TestBusyStatusesExcludeCanceled(t *testing.T) {
	for _, s := range BusyStatuses {
		if s == string(StatusCanceled) {
			t.Fatal("CANCELED must never block a slot")
		}
		if s == string(StatusCompleted) {
			t.Fatal("COMPLETED is display-only and must never reach a query")
		}
	}
	if len(BusyStatuses) != 2 {
		t.Errorf("BusyStatuses = %v, want PENDING and CONFIRMED only", BusyStatuses)
	}
}
