package services

import (
	"context"
	"fmt"
	"time"

	"github.com/kbediako/studiobook/internal/models"
)

// StudioAvailability lists, for one studio on one date, which session labels
// are still free and which are taken.
type StudioAvailability struct {
	StudioID   string   `json:"studio_id"`
	StudioName string   `json:"studio_name"`
	Available  []string `json:"available"`
	Booked     []string `json:"booked"`
}

// DayView is the availability picture for a single date.
type DayView struct {
	Date      string               `json:"date"`
	Studios   []StudioAvailability `json:"studios"`
	Capacity  int                  `json:"capacity"`
	Occupied  int                  `json:"occupied"`
	Remaining int                  `json:"remaining"`
}

type DayMarker string

const (
	MarkerFull            DayMarker = "full"
	MarkerHasAvailability DayMarker = "has-availability"
)

// DayAvailability computes per-studio free/taken labels from one day's
// bookings. A booking occupies its label iff its status is not rejected; a
// label booked twice (which the slot invariant forbids) still appears once.
func DayAvailability(studios []models.Studio, dayBookings []models.Booking) []StudioAvailability {
	result := make([]StudioAvailability, 0, len(studios))
	for i := range studios {
		studio := &studios[i]

		taken := make(map[string]bool)
		for _, b := range dayBookings {
			if b.Studio == studio.ID && b.Occupies() {
				taken[b.Session] = true
			}
		}

		entry := StudioAvailability{
			StudioID:   studio.ID,
			StudioName: studio.Name,
			Available:  []string{},
			Booked:     []string{},
		}
		for _, label := range studio.SessionLabels() {
			if taken[label] {
				entry.Booked = append(entry.Booked, label)
			} else {
				entry.Available = append(entry.Available, label)
			}
		}
		result = append(result, entry)
	}
	return result
}

// DayTotals counts the day's occupied slots and the remaining capacity.
// Occupied counts non-rejected bookings, not distinct labels, so remaining
// is clamped at zero: an over-booked day under-reports rather than going
// negative.
func DayTotals(studios []models.Studio, dayBookings []models.Booking) (occupied, remaining int) {
	for _, b := range dayBookings {
		if b.Occupies() {
			occupied++
		}
	}
	capacity := models.DailySlotCapacity(studios)
	remaining = capacity - occupied
	if remaining < 0 {
		remaining = 0
	}
	return occupied, remaining
}

// MonthMarkers classifies every date of the given month that has at least
// one non-rejected booking: "full" when occupied reaches the daily capacity,
// "has-availability" otherwise. Dates with no occupying bookings are absent.
func MonthMarkers(studios []models.Studio, bookings []models.Booking, year int, month time.Month) map[string]DayMarker {
	capacity := models.DailySlotCapacity(studios)
	occupied := make(map[string]int)

	for _, b := range bookings {
		if !b.Occupies() {
			continue
		}
		d, err := time.Parse(models.DateFormat, b.Date)
		if err != nil {
			continue
		}
		if d.Year() != year || d.Month() != month {
			continue
		}
		occupied[b.Date]++
	}

	markers := make(map[string]DayMarker, len(occupied))
	for date, count := range occupied {
		if count >= capacity {
			markers[date] = MarkerFull
		} else {
			markers[date] = MarkerHasAvailability
		}
	}
	return markers
}

// AvailabilityService serves the availability views over the booking store.
type AvailabilityService struct {
	bookingsRepo models.BookingsRepo
	studios      []models.Studio
}

func NewAvailabilityService(bookingsRepo models.BookingsRepo, studios []models.Studio) *AvailabilityService {
	return &AvailabilityService{
		bookingsRepo: bookingsRepo,
		studios:      studios,
	}
}

func (as *AvailabilityService) ForDay(ctx context.Context, date string) (*DayView, error) {
	if _, err := time.Parse(models.DateFormat, date); err != nil {
		return nil, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", date)
	}

	dayBookings, err := as.bookingsRepo.ListByDate(ctx, date, "")
	if err != nil {
		return nil, err
	}

	occupied, remaining := DayTotals(as.studios, dayBookings)
	return &DayView{
		Date:      date,
		Studios:   DayAvailability(as.studios, dayBookings),
		Capacity:  models.DailySlotCapacity(as.studios),
		Occupied:  occupied,
		Remaining: remaining,
	}, nil
}

func (as *AvailabilityService) ForMonth(ctx context.Context, year int, month time.Month) (map[string]DayMarker, error) {
	if month < time.January || month > time.December {
		return nil, fmt.Errorf("invalid month: %d", month)
	}

	bookings, err := as.bookingsRepo.ListBookings(ctx, nil)
	if err != nil {
		return nil, err
	}

	return MonthMarkers(as.studios, bookings, year, month), nil
}

// ApprovedForDay returns the confirmed bookings for the public calendar.
func (as *AvailabilityService) ApprovedForDay(ctx context.Context, date string) ([]models.Booking, error) {
	if _, err := time.Parse(models.DateFormat, date); err != nil {
		return nil, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", date)
	}

	return as.bookingsRepo.ListByDate(ctx, date, models.StatusApproved)
}
