package models

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/supabase-community/postgrest-go"
)

const (
	BookingsTable   = "bookings"
	AdminUsersTable = "admin_users"
)

// ErrSlotTaken is returned when the storage layer's unique index on
// non-rejected (studio, session, date) rows rejects an insert. It is the
// backstop for two requests passing the conflict check at the same time.
var ErrSlotTaken = errors.New("slot is already booked")

// ErrBookingNotFound is returned when an id matches no booking row.
var ErrBookingNotFound = errors.New("booking not found")

type BookingsRepo interface {
	InsertBooking(ctx context.Context, booking *Booking) (*Booking, error)
	GetBooking(ctx context.Context, id uuid.UUID) (*Booking, error)
	// ListSlotHolders returns the non-rejected bookings for a studio/date,
	// i.e. every booking currently occupying a slot there.
	ListSlotHolders(ctx context.Context, studioID, date string) ([]Booking, error)
	ListByDate(ctx context.Context, date string, status BookingStatus) ([]Booking, error)
	ListBookings(ctx context.Context, filters map[string]string) ([]Booking, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status BookingStatus) (*Booking, error)
	DeleteBooking(ctx context.Context, id uuid.UUID) error
}

func (su *SupabaseRepo) InsertBooking(ctx context.Context, booking *Booking) (*Booking, error) {
	row := map[string]interface{}{
		"id":               booking.ID,
		"team_leader_name": booking.TeamLeaderName,
		"team_leader_id":   booking.TeamLeaderID,
		"email":            booking.Email,
		"phone":            booking.Phone,
		"studio":           booking.Studio,
		"session":          booking.Session,
		"date":             booking.Date,
		"notes":            booking.Notes,
		"status":           booking.Status,
		"created_at":       booking.CreatedAt.Format(time.RFC3339),
	}

	data, count, err := su.supabaseClient.
		From(BookingsTable).
		Insert(row, false, "", "", "exact").
		Execute()
	if err != nil {
		// A partial unique index on (studio, session, date) where
		// status != 'rejected' closes the check-then-act window.
		errMsg := err.Error()
		if strings.Contains(errMsg, "23505") || strings.Contains(errMsg, "duplicate key") {
			return nil, ErrSlotTaken
		}
		return nil, fmt.Errorf("failed to insert booking: %v", err)
	}

	var created []Booking
	if err := json.Unmarshal(data, &created); err != nil {
		return nil, fmt.Errorf("failed to unmarshal created booking: %v", err)
	}
	if count == 0 || len(created) == 0 {
		return nil, fmt.Errorf("no booking row returned after insert")
	}

	return &created[0], nil
}

func (su *SupabaseRepo) GetBooking(ctx context.Context, id uuid.UUID) (*Booking, error) {
	if id == uuid.Nil {
		return nil, fmt.Errorf("invalid UUID")
	}

	data, _, err := su.supabaseClient.
		From(BookingsTable).
		Select("*", "exact", false).
		Eq("id", id.String()).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to get booking: %v", err)
	}

	var bookings []Booking
	if err := json.Unmarshal(data, &bookings); err != nil {
		return nil, fmt.Errorf("failed to unmarshal booking rows: %v", err)
	}
	if len(bookings) == 0 {
		return nil, ErrBookingNotFound
	}

	return &bookings[0], nil
}

func (su *SupabaseRepo) ListSlotHolders(ctx context.Context, studioID, date string) ([]Booking, error) {
	data, _, err := su.supabaseClient.
		From(BookingsTable).
		Select("*", "exact", false).
		Eq("studio", studioID).
		Eq("date", date).
		Neq("status", string(StatusRejected)).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to query slot holders: %v", err)
	}

	var bookings []Booking
	if err := json.Unmarshal(data, &bookings); err != nil {
		return nil, fmt.Errorf("failed to unmarshal booking rows: %v", err)
	}

	return bookings, nil
}

func (su *SupabaseRepo) ListByDate(ctx context.Context, date string, status BookingStatus) ([]Booking, error) {
	query := su.supabaseClient.
		From(BookingsTable).
		Select("*", "exact", false).
		Eq("date", date)
	if status != "" {
		query = query.Eq("status", string(status))
	}

	data, _, err := query.Order("session", &postgrest.OrderOpts{Ascending: true}).Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings for date: %v", err)
	}

	var bookings []Booking
	if err := json.Unmarshal(data, &bookings); err != nil {
		return nil, fmt.Errorf("failed to unmarshal booking rows: %v", err)
	}

	return bookings, nil
}

// ListBookings lists all bookings ordered by date, optionally narrowed by
// equality filters (studio, date, status).
func (su *SupabaseRepo) ListBookings(ctx context.Context, filters map[string]string) ([]Booking, error) {
	query := su.supabaseClient.
		From(BookingsTable).
		Select("*", "exact", false)
	for column, value := range filters {
		query = query.Eq(column, value)
	}

	data, _, err := query.Order("date", &postgrest.OrderOpts{Ascending: true}).Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %v", err)
	}

	var bookings []Booking
	if err := json.Unmarshal(data, &bookings); err != nil {
		return nil, fmt.Errorf("failed to unmarshal booking rows: %v", err)
	}

	return bookings, nil
}

func (su *SupabaseRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status BookingStatus) (*Booking, error) {
	if id == uuid.Nil {
		return nil, fmt.Errorf("invalid UUID")
	}

	data, count, err := su.supabaseClient.
		From(BookingsTable).
		Update(map[string]interface{}{"status": status}, "", "exact").
		Eq("id", id.String()).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to update booking status: %v", err)
	}
	if count == 0 {
		return nil, ErrBookingNotFound
	}

	var updated []Booking
	if err := json.Unmarshal(data, &updated); err != nil {
		return nil, fmt.Errorf("failed to unmarshal updated booking: %v", err)
	}
	if len(updated) == 0 {
		return nil, fmt.Errorf("no booking row returned after update")
	}

	return &updated[0], nil
}

// DeleteBooking is a hard delete. The slot is free for reuse as soon as the
// row is gone.
func (su *SupabaseRepo) DeleteBooking(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return fmt.Errorf("invalid UUID")
	}

	_, count, err := su.supabaseClient.
		From(BookingsTable).
		Delete("", "exact").
		Eq("id", id.String()).
		Execute()
	if err != nil {
		return fmt.Errorf("failed to delete booking: %v", err)
	}
	if count == 0 {
		return ErrBookingNotFound
	}

	return nil
}
