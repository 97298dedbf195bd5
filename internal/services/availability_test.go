package services

import (
	"testing"
	"time"

	"github.com/kbediako/studiobook/internal/models"
)

func TestDayTotalsFreshDay(t *testing.T) {
	occupied, remaining := DayTotals(models.Studios, nil)
	if occupied != 0 {
		t.Errorf("occupied = %d, want 0", occupied)
	}
	if remaining != 7 {
		t.Errorf("remaining = %d, want 7", remaining)
	}
}

func TestDayTotalsCountsNonRejectedOnly(t *testing.T) {
	day := []models.Booking{
		booking("studio-1", morning, "2025-03-01", models.StatusPending),
		booking("studio-2", morning, "2025-03-01", models.StatusApproved),
		booking("studio-3", morning, "2025-03-01", models.StatusRejected),
	}

	occupied, remaining := DayTotals(models.Studios, day)
	if occupied != 2 {
		t.Errorf("occupied = %d, want 2", occupied)
	}
	if remaining != 5 {
		t.Errorf("remaining = %d, want 5", remaining)
	}
}

func TestDayTotalsRemainingClampedAtZero(t *testing.T) {
	// More occupying bookings than capacity should never go negative.
	var day []models.Booking
	for i := 0; i < 10; i++ {
		day = append(day, booking("studio-1", morning, "2025-03-01", models.StatusApproved))
	}

	_, remaining := DayTotals(models.Studios, day)
	if remaining != 0 {
		t.Errorf("remaining = %d, want 0", remaining)
	}
}

func TestDayAvailabilityPerStudio(t *testing.T) {
	day := []models.Booking{
		booking("studio-1", morning, "2025-03-01", models.StatusApproved),
		booking("studio-1", evening, "2025-03-01", models.StatusRejected),
	}

	views := DayAvailability(models.Studios, day)

	var studio1 *StudioAvailability
	for i := range views {
		if views[i].StudioID == "studio-1" {
			studio1 = &views[i]
		}
	}
	if studio1 == nil {
		t.Fatal("studio-1 missing from availability view")
	}

	if len(studio1.Booked) != 1 || studio1.Booked[0] != morning {
		t.Errorf("booked = %v, want [%s]", studio1.Booked, morning)
	}
	// The rejected evening booking must not take its label.
	wantAvailable := []string{evening, fullDay}
	if len(studio1.Available) != len(wantAvailable) {
		t.Fatalf("available = %v, want %v", studio1.Available, wantAvailable)
	}
	for i, label := range wantAvailable {
		if studio1.Available[i] != label {
			t.Errorf("available[%d] = %q, want %q", i, studio1.Available[i], label)
		}
	}
}

func TestDayAvailabilityEmptyDay(t *testing.T) {
	views := DayAvailability(models.Studios, nil)
	for _, v := range views {
		if len(v.Booked) != 0 {
			t.Errorf("studio %s booked = %v, want empty", v.StudioID, v.Booked)
		}
		studio := models.FindStudio(v.StudioID)
		if len(v.Available) != len(studio.Sessions) {
			t.Errorf("studio %s available = %v, want all %d labels", v.StudioID, v.Available, len(studio.Sessions))
		}
	}
}

func TestMonthMarkers(t *testing.T) {
	var bookings []models.Booking
	// 2025-03-01: fully booked (7 occupying bookings).
	for i := 0; i < 7; i++ {
		bookings = append(bookings, booking("studio-1", morning, "2025-03-01", models.StatusApproved))
	}
	// 2025-03-05: partially booked.
	bookings = append(bookings, booking("studio-2", morning, "2025-03-05", models.StatusPending))
	// 2025-03-10: only a rejected booking, should carry no marker.
	bookings = append(bookings, booking("studio-3", morning, "2025-03-10", models.StatusRejected))
	// Different month, must be ignored.
	bookings = append(bookings, booking("studio-3", morning, "2025-04-02", models.StatusApproved))

	markers := MonthMarkers(models.Studios, bookings, 2025, time.March)

	if got := markers["2025-03-01"]; got != MarkerFull {
		t.Errorf("markers[2025-03-01] = %q, want %q", got, MarkerFull)
	}
	if got := markers["2025-03-05"]; got != MarkerHasAvailability {
		t.Errorf("markers[2025-03-05] = %q, want %q", got, MarkerHasAvailability)
	}
	if _, ok := markers["2025-03-10"]; ok {
		t.Error("rejected-only date must have no marker")
	}
	if _, ok := markers["2025-04-02"]; ok {
		t.Error("bookings outside the month must be ignored")
	}
}
