package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/kbediako/studiobook/internal/models"
)

const (
	morning = "10:00 AM - 1:00 PM"
	evening = "2:00 PM - 5:00 PM"
	fullDay = "10:00 AM - 5:00 PM (Full Day)"
)

func booking(studio, session, date string, status models.BookingStatus) models.Booking {
	return models.Booking{
		ID:      uuid.New(),
		Studio:  studio,
		Session: session,
		Date:    date,
		Status:  status,
	}
}

func TestEvaluateSlot(t *testing.T) {
	studio := models.FindStudio("studio-1")
	if studio == nil {
		t.Fatal("studio-1 missing from catalog")
	}
	mustSession := func(label string) models.SessionLabel {
		s, ok := studio.Session(label)
		if !ok {
			t.Fatalf("label %q missing from studio-1", label)
		}
		return s
	}

	tests := []struct {
		name      string
		candidate string
		existing  []models.Booking
		wantMsg   string
	}{
		{
			name:      "empty day accepts any session",
			candidate: morning,
		},
		{
			name:      "empty day accepts full day",
			candidate: fullDay,
		},
		{
			name:      "distinct sessions coexist",
			candidate: evening,
			existing:  []models.Booking{booking("studio-1", morning, "2025-03-01", models.StatusApproved)},
		},
		{
			name:      "exact session already booked",
			candidate: morning,
			existing:  []models.Booking{booking("studio-1", morning, "2025-03-01", models.StatusPending)},
			wantMsg:   "this session is already booked for the selected date",
		},
		{
			name:      "full day blocked by any existing booking",
			candidate: fullDay,
			existing:  []models.Booking{booking("studio-1", evening, "2025-03-01", models.StatusPending)},
			wantMsg:   "cannot book full day - there are existing bookings for this date",
		},
		{
			name:      "regular session blocked by existing full day",
			candidate: morning,
			existing:  []models.Booking{booking("studio-1", fullDay, "2025-03-01", models.StatusApproved)},
			wantMsg:   "cannot book this session - full day is already booked for this date",
		},
		{
			name:      "full day blocked by existing full day",
			candidate: fullDay,
			existing:  []models.Booking{booking("studio-1", fullDay, "2025-03-01", models.StatusPending)},
			wantMsg:   "cannot book full day - there are existing bookings for this date",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := EvaluateSlot(studio, mustSession(tt.candidate), tt.existing)
			if tt.wantMsg == "" {
				if err != nil {
					t.Fatalf("EvaluateSlot() = %v, want nil", err)
				}
				return
			}

			var conflict *ConflictError
			if !errors.As(err, &conflict) {
				t.Fatalf("EvaluateSlot() = %v, want ConflictError", err)
			}
			if conflict.Message != tt.wantMsg {
				t.Errorf("conflict message = %q, want %q", conflict.Message, tt.wantMsg)
			}
		})
	}
}

func TestCheckSlotRejectedBookingsDoNotBlock(t *testing.T) {
	repo := newFakeBookingsRepo()
	rejected := booking("studio-1", morning, "2025-03-01", models.StatusRejected)
	repo.bookings[rejected.ID] = rejected

	checker := NewConflictChecker(repo)
	if err := checker.CheckSlot(context.Background(), "studio-1", morning, "2025-03-01"); err != nil {
		t.Errorf("CheckSlot() with only a rejected holder = %v, want nil", err)
	}
}

func TestCheckSlotUnknownStudioAndSession(t *testing.T) {
	checker := NewConflictChecker(newFakeBookingsRepo())

	if err := checker.CheckSlot(context.Background(), "studio-99", morning, "2025-03-01"); err == nil {
		t.Error("CheckSlot() with unknown studio = nil, want error")
	}
	if err := checker.CheckSlot(context.Background(), "studio-1", "6:00 PM - 9:00 PM", "2025-03-01"); err == nil {
		t.Error("CheckSlot() with unknown session = nil, want error")
	}
}

func TestCheckSlotFailsClosedOnStoreError(t *testing.T) {
	repo := newFakeBookingsRepo()
	repo.failWith = errStoreDown

	checker := NewConflictChecker(repo)
	err := checker.CheckSlot(context.Background(), "studio-1", morning, "2025-03-01")
	if err == nil {
		t.Fatal("CheckSlot() with failing store = nil, want error")
	}
	var conflict *ConflictError
	if errors.As(err, &conflict) {
		t.Errorf("store failure must not be reported as a conflict, got %v", conflict)
	}
}
