package models

import (
	"time"

	"github.com/google/uuid"
)

type BookingStatus string

const (
	StatusPending  BookingStatus = "pending"
	StatusApproved BookingStatus = "approved"
	StatusRejected BookingStatus = "rejected"
)

// ValidStatus reports whether s is one of the three booking states.
func ValidStatus(s BookingStatus) bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// Booking is a requested or confirmed reservation of one slot
// (studio, session, date). Date is day-granular ("2006-01-02"); the time of
// day lives in the session label. Only Status is ever mutated after
// creation.
type Booking struct {
	ID             uuid.UUID     `db:"id" json:"id"`
	TeamLeaderName string        `db:"team_leader_name" json:"team_leader_name" validate:"required"`
	TeamLeaderID   string        `db:"team_leader_id" json:"team_leader_id" validate:"required"`
	Email          string        `db:"email" json:"email" validate:"required,email"`
	Phone          string        `db:"phone" json:"phone" validate:"required"`
	Studio         string        `db:"studio" json:"studio" validate:"required"`
	Session        string        `db:"session" json:"session" validate:"required"`
	Date           string        `db:"date" json:"date" validate:"required"`
	Notes          string        `db:"notes" json:"notes"`
	Status         BookingStatus `db:"status" json:"status"`
	CreatedAt      time.Time     `db:"created_at" json:"created_at"`
}

// Occupies reports whether the booking holds its slot: pending and approved
// bookings count, rejected ones do not.
func (b *Booking) Occupies() bool {
	return b.Status != StatusRejected
}

// DateFormat is the canonical wire format for booking dates.
const DateFormat = "2006-01-02"
