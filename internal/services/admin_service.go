package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/kbediako/studiobook/internal/mailer"
	"github.com/kbediako/studiobook/internal/models"
)

// AdminService covers the review flow: listing bookings, status transitions,
// hard deletes, and the audit trail behind them.
type AdminService struct {
	bookingsRepo models.BookingsRepo
	auditRepo    models.AuditRepo
	notifier     mailer.Notifier
	logger       *slog.Logger
}

func NewAdminService(bookingsRepo models.BookingsRepo, auditRepo models.AuditRepo, notifier mailer.Notifier, logger *slog.Logger) *AdminService {
	return &AdminService{
		bookingsRepo: bookingsRepo,
		auditRepo:    auditRepo,
		notifier:     notifier,
		logger:       logger,
	}
}

// StatusResult carries the updated booking plus the outcome of the
// best-effort requester notification.
type StatusResult struct {
	Booking   *models.Booking
	NotifyErr error
}

// SetStatus transitions a booking to any of the three states. Transitions
// are unrestricted: an admin may re-open a rejected booking to approved. The
// requester is notified best-effort; a failed send is reported back but the
// status change stands.
func (as *AdminService) SetStatus(ctx context.Context, id uuid.UUID, status models.BookingStatus, actorEmail string) (*StatusResult, error) {
	if !models.ValidStatus(status) {
		return nil, fmt.Errorf("invalid status: %s", status)
	}

	previous, err := as.bookingsRepo.GetBooking(ctx, id)
	if err != nil {
		return nil, err
	}

	updated, err := as.bookingsRepo.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, err
	}

	as.recordEvent(ctx, &models.BookingEvent{
		BookingID:  id,
		Action:     models.AuditActionStatusChange,
		ActorEmail: actorEmail,
		FromStatus: previous.Status,
		ToStatus:   status,
	})

	result := &StatusResult{Booking: updated}
	if status == models.StatusApproved || status == models.StatusRejected {
		if err := as.notifier.NotifyStatusChange(ctx, updated, status); err != nil {
			as.logger.Warn("requester notification failed",
				"booking_id", id,
				"status", status,
				"error", err,
			)
			result.NotifyErr = err
		}
	}

	return result, nil
}

// DeleteBooking removes the row for good; there is no tombstone and the slot
// is immediately free for a new booking.
func (as *AdminService) DeleteBooking(ctx context.Context, id uuid.UUID, actorEmail string) error {
	previous, err := as.bookingsRepo.GetBooking(ctx, id)
	if err != nil {
		return err
	}

	if err := as.bookingsRepo.DeleteBooking(ctx, id); err != nil {
		return err
	}

	as.recordEvent(ctx, &models.BookingEvent{
		BookingID:  id,
		Action:     models.AuditActionDelete,
		ActorEmail: actorEmail,
		FromStatus: previous.Status,
	})

	return nil
}

// ListBookings returns bookings ordered by date, optionally narrowed to a
// date and/or status.
func (as *AdminService) ListBookings(ctx context.Context, date string, status models.BookingStatus) ([]models.Booking, error) {
	filters := map[string]string{}
	if date != "" {
		filters["date"] = date
	}
	if status != "" {
		if !models.ValidStatus(status) {
			return nil, fmt.Errorf("invalid status: %s", status)
		}
		filters["status"] = string(status)
	}

	return as.bookingsRepo.ListBookings(ctx, filters)
}

func (as *AdminService) BookingAudit(ctx context.Context, id uuid.UUID) ([]models.BookingEvent, error) {
	if id == uuid.Nil {
		return nil, fmt.Errorf("invalid UUID")
	}
	return as.auditRepo.ListBookingEvents(ctx, id)
}

// recordEvent appends to the audit trail; audit failures are logged, never
// surfaced, since the mutation they describe has already committed.
func (as *AdminService) recordEvent(ctx context.Context, event *models.BookingEvent) {
	if as.auditRepo == nil {
		return
	}
	if err := as.auditRepo.RecordBookingEvent(ctx, event); err != nil {
		as.logger.Warn("failed to record booking audit event",
			"booking_id", event.BookingID,
			"action", event.Action,
			"error", err,
		)
	}
}
