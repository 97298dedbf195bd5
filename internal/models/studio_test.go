package models

import (
	"testing"
)

func TestDailySlotCapacity(t *testing.T) {
	// Reference configuration: 1 + 2 + 2 + 2. Full-day labels must not add
	// capacity on top of the regular sessions they exclude.
	if got := DailySlotCapacity(Studios); got != 7 {
		t.Errorf("DailySlotCapacity(Studios) = %d, want 7", got)
	}
}

func TestSlotCapacityFullDayOnly(t *testing.T) {
	store := FindStudio("experience-store")
	if store == nil {
		t.Fatal("experience-store missing from catalog")
	}
	if got := store.SlotCapacity(); got != 1 {
		t.Errorf("experience-store SlotCapacity = %d, want 1", got)
	}
}

func TestFindStudio(t *testing.T) {
	if studio := FindStudio("studio-2"); studio == nil || studio.Name != "Studio 2" {
		t.Errorf("FindStudio(studio-2) = %+v, want Studio 2", studio)
	}
	if studio := FindStudio("studio-99"); studio != nil {
		t.Errorf("FindStudio(studio-99) = %+v, want nil", studio)
	}
}

func TestSessionLookup(t *testing.T) {
	studio := FindStudio("studio-1")
	if studio == nil {
		t.Fatal("studio-1 missing from catalog")
	}

	session, ok := studio.Session("10:00 AM - 1:00 PM")
	if !ok {
		t.Fatal("expected morning session on studio-1")
	}
	if session.FullDay {
		t.Error("morning session must not be full day")
	}

	fullDay, ok := studio.Session("10:00 AM - 5:00 PM (Full Day)")
	if !ok {
		t.Fatal("expected full-day session on studio-1")
	}
	if !fullDay.FullDay {
		t.Error("full-day session must carry the FullDay flag")
	}

	if _, ok := studio.Session("6:00 PM - 9:00 PM"); ok {
		t.Error("unknown label must not resolve")
	}
}

func TestBookingOccupies(t *testing.T) {
	tests := []struct {
		status BookingStatus
		want   bool
	}{
		{StatusPending, true},
		{StatusApproved, true},
		{StatusRejected, false},
	}
	for _, tt := range tests {
		b := Booking{Status: tt.status}
		if got := b.Occupies(); got != tt.want {
			t.Errorf("Occupies() with status %s = %v, want %v", tt.status, got, tt.want)
		}
	}
}
