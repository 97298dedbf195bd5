package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/kbediako/studiobook/internal/mailer"
	"github.com/kbediako/studiobook/internal/models"
)

// SubmitResult carries the persisted booking plus the outcome of the
// best-effort notification. NotifyErr never implies the booking failed.
type SubmitResult struct {
	Booking   *models.Booking
	NotifyErr error
}

type BookingService struct {
	bookingsRepo models.BookingsRepo
	checker      *ConflictChecker
	notifier     mailer.Notifier
	logger       *slog.Logger
	// minAdvanceDays is the server-side minimum booking window; the public
	// form refuses dates closer than this many days from today.
	minAdvanceDays int
	now            func() time.Time
}

func NewBookingService(bookingsRepo models.BookingsRepo, notifier mailer.Notifier, logger *slog.Logger, minAdvanceDays int) *BookingService {
	return &BookingService{
		bookingsRepo:   bookingsRepo,
		checker:        NewConflictChecker(bookingsRepo),
		notifier:       notifier,
		logger:         logger,
		minAdvanceDays: minAdvanceDays,
		now:            time.Now,
	}
}

// SubmitBooking runs the public request flow: field validation, email shape,
// advance window, conflict check, then persists a pending booking and sends
// the admin notification. Any validation or conflict failure returns before
// anything is persisted; a notification failure is reported in the result
// but never rolls the booking back.
func (bs *BookingService) SubmitBooking(ctx context.Context, booking *models.Booking) (*SubmitResult, error) {
	if err := bs.validateSlot(booking); err != nil {
		return nil, err
	}

	if err := bs.checkAdvanceWindow(booking.Date); err != nil {
		return nil, err
	}

	if err := bs.checker.CheckSlot(ctx, booking.Studio, booking.Session, booking.Date); err != nil {
		return nil, err
	}

	booking.Status = models.StatusPending
	return bs.persistAndNotify(ctx, booking)
}

// CreateAdminBooking is the same flow parameterized for admin manual entry:
// the initial status is admin-chosen (default approved), requester fields
// default to the admin placeholders, and the advance window does not apply.
func (bs *BookingService) CreateAdminBooking(ctx context.Context, booking *models.Booking, status models.BookingStatus, adminEmail string) (*SubmitResult, error) {
	if status == "" {
		status = models.StatusApproved
	}
	if !models.ValidStatus(status) {
		return nil, fmt.Errorf("invalid status: %s", status)
	}

	if booking.TeamLeaderID == "" {
		booking.TeamLeaderID = "ADMIN-BOOKING"
	}
	if booking.Email == "" {
		booking.Email = adminEmail
	}
	if booking.Phone == "" {
		booking.Phone = "N/A"
	}
	if booking.Notes == "" {
		booking.Notes = "Admin manual booking"
	}

	if err := bs.validateSlot(booking); err != nil {
		return nil, err
	}

	if err := bs.checker.CheckSlot(ctx, booking.Studio, booking.Session, booking.Date); err != nil {
		return nil, err
	}

	booking.Status = status
	return bs.persistAndNotify(ctx, booking)
}

func (bs *BookingService) validateSlot(booking *models.Booking) error {
	if err := models.Validate.Struct(booking); err != nil {
		return fmt.Errorf("invalid booking data: %v", err)
	}

	studio := models.FindStudio(booking.Studio)
	if studio == nil {
		return fmt.Errorf("unknown studio: %s", booking.Studio)
	}
	if _, ok := studio.Session(booking.Session); !ok {
		return fmt.Errorf("studio %s does not offer session %q", booking.Studio, booking.Session)
	}

	if _, err := time.Parse(models.DateFormat, booking.Date); err != nil {
		return fmt.Errorf("invalid date %q: expected YYYY-MM-DD", booking.Date)
	}

	return nil
}

func (bs *BookingService) checkAdvanceWindow(date string) error {
	d, err := time.Parse(models.DateFormat, date)
	if err != nil {
		return fmt.Errorf("invalid date %q: expected YYYY-MM-DD", date)
	}

	today := bs.now().Truncate(24 * time.Hour)
	earliest := today.AddDate(0, 0, bs.minAdvanceDays)
	if d.Before(earliest) {
		return fmt.Errorf("bookings must be made at least %d days in advance", bs.minAdvanceDays)
	}

	return nil
}

func (bs *BookingService) persistAndNotify(ctx context.Context, booking *models.Booking) (*SubmitResult, error) {
	if booking.ID == uuid.Nil {
		booking.ID = uuid.New()
	}
	booking.CreatedAt = bs.now()

	created, err := bs.bookingsRepo.InsertBooking(ctx, booking)
	if err != nil {
		if errors.Is(err, models.ErrSlotTaken) {
			// Lost a race after passing the conflict check; the unique
			// index caught it, report it as the same conflict.
			return nil, &ConflictError{Message: msgSessionTaken}
		}
		return nil, err
	}

	result := &SubmitResult{Booking: created}
	if err := bs.notifier.NotifyNewBooking(ctx, created); err != nil {
		bs.logger.Warn("admin notification failed",
			"booking_id", created.ID,
			"error", err,
		)
		result.NotifyErr = err
	}

	return result, nil
}
