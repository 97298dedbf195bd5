// Package mailer sends the two transactional notifications this system
// needs: "new booking submitted" to the admin and "booking status changed"
// to the requester. Delivery is delegated to EmailJS; every send is a single
// best-effort attempt that callers treat as a soft failure.
package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/kbediako/studiobook/internal/models"
)

// Notifier is the seam between booking flows and the delivery channel, so a
// console implementation can stand in during development and tests.
type Notifier interface {
	NotifyNewBooking(ctx context.Context, booking *models.Booking) error
	NotifyStatusChange(ctx context.Context, booking *models.Booking, status models.BookingStatus) error
}

const defaultEndpoint = "https://api.emailjs.com/api/v1.0/email/send"

type EmailJSConfig struct {
	ServiceID               string
	PublicKey               string
	TemplateIDNewBooking    string
	TemplateIDBookingStatus string
	AdminEmail              string
	Endpoint                string // defaults to the EmailJS API when empty
}

// EmailJSNotifier delivers through the EmailJS REST API with a flat
// key/value template-parameter map per template.
type EmailJSNotifier struct {
	cfg    EmailJSConfig
	client *http.Client
}

func NewEmailJS(cfg EmailJSConfig) *EmailJSNotifier {
	if cfg.Endpoint == "" {
		cfg.Endpoint = defaultEndpoint
	}
	return &EmailJSNotifier{
		cfg: cfg,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

func (n *EmailJSNotifier) NotifyNewBooking(ctx context.Context, booking *models.Booking) error {
	params := map[string]string{
		"to_email":         n.cfg.AdminEmail,
		"to_name":          "Admin",
		"team_leader_name": booking.TeamLeaderName,
		"team_leader_id":   booking.TeamLeaderID,
		"user_email":       booking.Email,
		"phone":            booking.Phone,
		"studio":           studioName(booking.Studio),
		"session":          booking.Session,
		"booking_date":     humanDate(booking.Date),
		"notes":            notesOrDefault(booking.Notes),
		"subject":          fmt.Sprintf("New Studio Booking Request - %s", booking.TeamLeaderName),
		"message": fmt.Sprintf("A new studio booking request has been submitted by %s (%s) for %s on %s.",
			booking.TeamLeaderName, booking.TeamLeaderID, studioName(booking.Studio), humanDate(booking.Date)),
	}

	return n.send(ctx, n.cfg.TemplateIDNewBooking, params)
}

func (n *EmailJSNotifier) NotifyStatusChange(ctx context.Context, booking *models.Booking, status models.BookingStatus) error {
	statusText := "Rejected"
	statusMessage := "Unfortunately, your studio booking has been rejected. Please contact admin for more information or try booking a different time slot."
	statusColor := "#ef4444"
	if status == models.StatusApproved {
		statusText = "Approved"
		statusMessage = "Your studio booking has been approved! Please arrive 10 minutes before your session time."
		statusColor = "#22c55e"
	}

	params := map[string]string{
		"to_email":         booking.Email,
		"to_name":          booking.TeamLeaderName,
		"team_leader_name": booking.TeamLeaderName,
		"team_leader_id":   booking.TeamLeaderID,
		"studio":           studioName(booking.Studio),
		"session":          booking.Session,
		"booking_date":     humanDate(booking.Date),
		"status":           statusText,
		"status_message":   statusMessage,
		"status_color":     statusColor,
		"subject":          fmt.Sprintf("Booking %s - %s", statusText, studioName(booking.Studio)),
		"message":          statusMessage,
	}

	return n.send(ctx, n.cfg.TemplateIDBookingStatus, params)
}

func (n *EmailJSNotifier) send(ctx context.Context, templateID string, params map[string]string) error {
	if n.cfg.ServiceID == "" || n.cfg.PublicKey == "" || templateID == "" {
		return fmt.Errorf("email configuration is incomplete")
	}

	payload := map[string]interface{}{
		"service_id":      n.cfg.ServiceID,
		"template_id":     templateID,
		"user_id":         n.cfg.PublicKey,
		"template_params": params,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode email payload: %v", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.cfg.Endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build email request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		return fmt.Errorf("email send failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("email send failed: status=%d body=%s", resp.StatusCode, string(detail))
	}

	return nil
}

// ConsoleNotifier logs instead of sending, for development setups without
// EmailJS credentials.
type ConsoleNotifier struct {
	Logger *slog.Logger
}

func (n *ConsoleNotifier) NotifyNewBooking(ctx context.Context, booking *models.Booking) error {
	n.Logger.Info("notify: new booking submitted",
		"team_leader", booking.TeamLeaderName,
		"studio", booking.Studio,
		"session", booking.Session,
		"date", booking.Date,
	)
	return nil
}

func (n *ConsoleNotifier) NotifyStatusChange(ctx context.Context, booking *models.Booking, status models.BookingStatus) error {
	n.Logger.Info("notify: booking status changed",
		"booking_id", booking.ID,
		"email", booking.Email,
		"status", status,
	)
	return nil
}

func studioName(id string) string {
	if studio := models.FindStudio(id); studio != nil {
		return studio.Name
	}
	return id
}

func humanDate(date string) string {
	d, err := time.Parse(models.DateFormat, date)
	if err != nil {
		return date
	}
	return d.Format("Monday, January 2, 2006")
}

func notesOrDefault(notes string) string {
	if notes == "" {
		return "No additional notes"
	}
	return notes
}
