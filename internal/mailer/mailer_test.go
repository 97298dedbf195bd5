package mailer

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/kbediako/studiobook/internal/models"
)

type capturedSend struct {
	ServiceID      string            `json:"service_id"`
	TemplateID     string            `json:"template_id"`
	UserID         string            `json:"user_id"`
	TemplateParams map[string]string `json:"template_params"`
}

func newTestNotifier(t *testing.T, status int) (*EmailJSNotifier, *capturedSend) {
	t.Helper()
	captured := &capturedSend{}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(captured); err != nil {
			t.Errorf("failed to decode send payload: %v", err)
		}
		w.WriteHeader(status)
	}))
	t.Cleanup(server.Close)

	notifier := NewEmailJS(EmailJSConfig{
		ServiceID:               "service_x",
		PublicKey:               "public_y",
		TemplateIDNewBooking:    "template_new",
		TemplateIDBookingStatus: "template_status",
		AdminEmail:              "admin@example.com",
		Endpoint:                server.URL,
	})
	return notifier, captured
}

func testBooking() *models.Booking {
	return &models.Booking{
		ID:             uuid.New(),
		TeamLeaderName: "Ama Serwaa",
		TeamLeaderID:   "TL-1042",
		Email:          "ama.serwaa@example.com",
		Phone:          "+60123456789",
		Studio:         "studio-1",
		Session:        "10:00 AM - 1:00 PM",
		Date:           "2025-03-01",
	}
}

func TestNotifyNewBookingParams(t *testing.T) {
	notifier, captured := newTestNotifier(t, http.StatusOK)

	if err := notifier.NotifyNewBooking(context.Background(), testBooking()); err != nil {
		t.Fatalf("NotifyNewBooking() = %v, want nil", err)
	}

	if captured.ServiceID != "service_x" || captured.UserID != "public_y" {
		t.Errorf("credentials = %s/%s", captured.ServiceID, captured.UserID)
	}
	if captured.TemplateID != "template_new" {
		t.Errorf("template = %q, want template_new", captured.TemplateID)
	}

	params := captured.TemplateParams
	if params["to_email"] != "admin@example.com" {
		t.Errorf("to_email = %q, want the admin address", params["to_email"])
	}
	if params["studio"] != "Studio 1" {
		t.Errorf("studio = %q, want display name", params["studio"])
	}
	if params["booking_date"] != "Saturday, March 1, 2025" {
		t.Errorf("booking_date = %q", params["booking_date"])
	}
	if params["notes"] != "No additional notes" {
		t.Errorf("notes = %q, want placeholder for empty notes", params["notes"])
	}
}

func TestNotifyStatusChangeParams(t *testing.T) {
	notifier, captured := newTestNotifier(t, http.StatusOK)

	if err := notifier.NotifyStatusChange(context.Background(), testBooking(), models.StatusApproved); err != nil {
		t.Fatalf("NotifyStatusChange() = %v, want nil", err)
	}

	params := captured.TemplateParams
	if captured.TemplateID != "template_status" {
		t.Errorf("template = %q, want template_status", captured.TemplateID)
	}
	if params["to_email"] != "ama.serwaa@example.com" {
		t.Errorf("to_email = %q, want the requester address", params["to_email"])
	}
	if params["status"] != "Approved" {
		t.Errorf("status = %q, want Approved", params["status"])
	}
	if params["status_color"] != "#22c55e" {
		t.Errorf("status_color = %q", params["status_color"])
	}

	if err := notifier.NotifyStatusChange(context.Background(), testBooking(), models.StatusRejected); err != nil {
		t.Fatalf("NotifyStatusChange() = %v, want nil", err)
	}
	if captured.TemplateParams["status"] != "Rejected" {
		t.Errorf("status = %q, want Rejected", captured.TemplateParams["status"])
	}
	if captured.TemplateParams["status_color"] != "#ef4444" {
		t.Errorf("status_color = %q", captured.TemplateParams["status_color"])
	}
}

func TestSendReportsNon200(t *testing.T) {
	notifier, _ := newTestNotifier(t, http.StatusBadRequest)

	if err := notifier.NotifyNewBooking(context.Background(), testBooking()); err == nil {
		t.Error("NotifyNewBooking() with a 400 response = nil, want error")
	}
}

func TestSendRequiresConfiguration(t *testing.T) {
	notifier := NewEmailJS(EmailJSConfig{})

	if err := notifier.NotifyNewBooking(context.Background(), testBooking()); err == nil {
		t.Error("NotifyNewBooking() without credentials = nil, want error")
	}
}
