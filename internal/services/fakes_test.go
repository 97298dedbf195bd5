package services

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"
	"github.com/kbediako/studiobook/internal/models"
)

// fakeBookingsRepo is an in-memory stand-in for the Supabase bookings table,
// enforcing the same non-rejected slot uniqueness the partial index does.
type fakeBookingsRepo struct {
	mu       sync.Mutex
	bookings map[uuid.UUID]models.Booking
	failWith error
}

func newFakeBookingsRepo() *fakeBookingsRepo {
	return &fakeBookingsRepo{
		bookings: make(map[uuid.UUID]models.Booking),
	}
}

func (f *fakeBookingsRepo) InsertBooking(ctx context.Context, booking *models.Booking) (*models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWith != nil {
		return nil, f.failWith
	}
	for _, existing := range f.bookings {
		if existing.Studio == booking.Studio &&
			existing.Session == booking.Session &&
			existing.Date == booking.Date &&
			existing.Occupies() && booking.Occupies() {
			return nil, models.ErrSlotTaken
		}
	}
	stored := *booking
	f.bookings[stored.ID] = stored
	return &stored, nil
}

func (f *fakeBookingsRepo) GetBooking(ctx context.Context, id uuid.UUID) (*models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWith != nil {
		return nil, f.failWith
	}
	b, ok := f.bookings[id]
	if !ok {
		return nil, models.ErrBookingNotFound
	}
	return &b, nil
}

func (f *fakeBookingsRepo) ListSlotHolders(ctx context.Context, studioID, date string) ([]models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWith != nil {
		return nil, f.failWith
	}
	var result []models.Booking
	for _, b := range f.bookings {
		if b.Studio == studioID && b.Date == date && b.Occupies() {
			result = append(result, b)
		}
	}
	return result, nil
}

func (f *fakeBookingsRepo) ListByDate(ctx context.Context, date string, status models.BookingStatus) ([]models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWith != nil {
		return nil, f.failWith
	}
	var result []models.Booking
	for _, b := range f.bookings {
		if b.Date != date {
			continue
		}
		if status != "" && b.Status != status {
			continue
		}
		result = append(result, b)
	}
	return result, nil
}

func (f *fakeBookingsRepo) ListBookings(ctx context.Context, filters map[string]string) ([]models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWith != nil {
		return nil, f.failWith
	}
	var result []models.Booking
	for _, b := range f.bookings {
		if v, ok := filters["date"]; ok && b.Date != v {
			continue
		}
		if v, ok := filters["status"]; ok && string(b.Status) != v {
			continue
		}
		if v, ok := filters["studio"]; ok && b.Studio != v {
			continue
		}
		result = append(result, b)
	}
	return result, nil
}

func (f *fakeBookingsRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status models.BookingStatus) (*models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWith != nil {
		return nil, f.failWith
	}
	b, ok := f.bookings[id]
	if !ok {
		return nil, models.ErrBookingNotFound
	}
	b.Status = status
	f.bookings[id] = b
	return &b, nil
}

func (f *fakeBookingsRepo) DeleteBooking(ctx context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWith != nil {
		return f.failWith
	}
	if _, ok := f.bookings[id]; !ok {
		return models.ErrBookingNotFound
	}
	delete(f.bookings, id)
	return nil
}

type notifierCall struct {
	kind   string
	status models.BookingStatus
}

type fakeNotifier struct {
	calls    []notifierCall
	failWith error
}

func (f *fakeNotifier) NotifyNewBooking(ctx context.Context, booking *models.Booking) error {
	f.calls = append(f.calls, notifierCall{kind: "new"})
	return f.failWith
}

func (f *fakeNotifier) NotifyStatusChange(ctx context.Context, booking *models.Booking, status models.BookingStatus) error {
	f.calls = append(f.calls, notifierCall{kind: "status", status: status})
	return f.failWith
}

type fakeAuditRepo struct {
	events   []models.BookingEvent
	failWith error
}

func (f *fakeAuditRepo) RecordBookingEvent(ctx context.Context, event *models.BookingEvent) error {
	if f.failWith != nil {
		return f.failWith
	}
	f.events = append(f.events, *event)
	return nil
}

func (f *fakeAuditRepo) ListBookingEvents(ctx context.Context, bookingID uuid.UUID) ([]models.BookingEvent, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	var result []models.BookingEvent
	for _, e := range f.events {
		if e.BookingID == bookingID {
			result = append(result, e)
		}
	}
	return result, nil
}

var errStoreDown = errors.New("store unavailable")
