package services

import (
	"context"
	"fmt"

	"github.com/kbediako/studiobook/internal/models"
)

// ConflictError reports why a candidate slot cannot be booked. It is a
// distinct type so handlers can answer 409 instead of 500.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}

const (
	msgFullDayBlocked = "cannot book full day - there are existing bookings for this date"
	msgFullDayTaken   = "cannot book this session - full day is already booked for this date"
	msgSessionTaken   = "this session is already booked for the selected date"
	msgUnknownStudio  = "unknown studio"
	msgUnknownSession = "session does not belong to this studio"
)

// EvaluateSlot decides whether a candidate (studio, session) may be booked
// given the bookings already holding slots on that studio/date. Callers must
// pass only non-rejected bookings; rejected ones never block a slot.
//
// Rules, in order: a full-day candidate conflicts with any existing booking;
// any candidate conflicts with an existing full-day booking; otherwise only
// an exact label match conflicts.
func EvaluateSlot(studio *models.Studio, session models.SessionLabel, existing []models.Booking) error {
	if session.FullDay && len(existing) > 0 {
		return &ConflictError{Message: msgFullDayBlocked}
	}

	for _, b := range existing {
		held, ok := studio.Session(b.Session)
		if ok && held.FullDay {
			return &ConflictError{Message: msgFullDayTaken}
		}
	}

	for _, b := range existing {
		if b.Session == session.Label {
			return &ConflictError{Message: msgSessionTaken}
		}
	}

	return nil
}

// ConflictChecker answers whether a candidate slot is free, reading current
// slot holders from the store. A failed read propagates as an error rather
// than an all-clear.
type ConflictChecker struct {
	bookingsRepo models.BookingsRepo
}

func NewConflictChecker(bookingsRepo models.BookingsRepo) *ConflictChecker {
	return &ConflictChecker{
		bookingsRepo: bookingsRepo,
	}
}

// CheckSlot resolves the studio and session against the catalog, fetches the
// non-rejected bookings for (studio, date) and evaluates the candidate.
func (cc *ConflictChecker) CheckSlot(ctx context.Context, studioID, sessionLabel, date string) error {
	studio := models.FindStudio(studioID)
	if studio == nil {
		return &ConflictError{Message: msgUnknownStudio}
	}

	session, ok := studio.Session(sessionLabel)
	if !ok {
		return &ConflictError{Message: msgUnknownSession}
	}

	existing, err := cc.bookingsRepo.ListSlotHolders(ctx, studioID, date)
	if err != nil {
		return fmt.Errorf("failed to check booking conflicts: %v", err)
	}

	return EvaluateSlot(studio, session, existing)
}
