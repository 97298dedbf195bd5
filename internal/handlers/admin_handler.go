package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/kbediako/studiobook/internal/helpers"
	"github.com/kbediako/studiobook/internal/models"
	"github.com/kbediako/studiobook/internal/services"
)

func adminFromContext(c *gin.Context) (*helpers.AdminClaims, bool) {
	value, exists := c.Get("admin")
	if !exists {
		return nil, false
	}
	claims, ok := value.(*helpers.AdminClaims)
	return claims, ok
}

func parseBookingID(c *gin.Context) (uuid.UUID, error) {
	id := strings.TrimSpace(c.Param("id"))
	id = strings.Trim(id, "\"'")
	if id == "" {
		return uuid.Nil, fmt.Errorf("booking ID is required")
	}
	return uuid.Parse(id)
}

func parseMonth(month string) (int, time.Month, error) {
	t, err := time.Parse("2006-01", month)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid month %q: expected YYYY-MM", month)
	}
	return t.Year(), t.Month(), nil
}

// ListBookings lists bookings for the admin dashboard, optionally filtered
// by ?date=YYYY-MM-DD and ?status=.
func ListBookings(as *services.AdminService) gin.HandlerFunc {
	return func(c *gin.Context) {
		date := c.Query("date")
		if date != "" {
			if _, err := time.Parse(models.DateFormat, date); err != nil {
				c.JSON(http.StatusBadRequest, models.ErrorResponse("invalid date format, expected YYYY-MM-DD"))
				return
			}
		}

		bookings, err := as.ListBookings(c.Request.Context(), date, models.BookingStatus(c.Query("status")))
		if err != nil {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(err.Error()))
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(bookings, ""))
	}
}

// CreateAdminBooking is the manual-entry variant of the submit flow: the
// admin picks the initial status (default approved) and requester fields
// fall back to admin placeholders.
func CreateAdminBooking(bs *services.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := adminFromContext(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse("unauthorized"))
			return
		}

		var req struct {
			models.Booking
			InitialStatus models.BookingStatus `json:"initial_status"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
			return
		}

		result, err := bs.CreateAdminBooking(c.Request.Context(), &req.Booking, req.InitialStatus, claims.Email)
		if err != nil {
			var conflict *services.ConflictError
			if errors.As(err, &conflict) {
				c.JSON(http.StatusConflict, models.ErrorResponse(conflict.Message))
				return
			}
			c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
			return
		}

		if result.NotifyErr != nil {
			c.JSON(http.StatusCreated, models.WarningResponse(result.Booking,
				"Booking created",
				"booking saved but the notification email could not be sent"))
			return
		}

		c.JSON(http.StatusCreated, models.SuccessResponse(result.Booking, "Booking created"))
	}
}

// UpdateBookingStatus transitions a booking between pending, approved and
// rejected. A failed requester notification is reported as a warning; the
// status change is never reverted.
func UpdateBookingStatus(as *services.AdminService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := adminFromContext(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse("unauthorized"))
			return
		}

		id, err := parseBookingID(c)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("invalid booking ID format"))
			return
		}

		var req struct {
			Status models.BookingStatus `json:"status" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
			return
		}

		result, err := as.SetStatus(c.Request.Context(), id, req.Status, claims.Email)
		if err != nil {
			if errors.Is(err, models.ErrBookingNotFound) {
				c.JSON(http.StatusNotFound, models.ErrorResponse("booking not found"))
				return
			}
			c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
			return
		}

		if result.NotifyErr != nil {
			c.JSON(http.StatusOK, models.WarningResponse(result.Booking,
				"Booking status updated",
				"status updated but the requester notification email could not be sent"))
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(result.Booking, "Booking status updated"))
	}
}

// DeleteBooking hard-deletes a booking. The client must pass ?confirm=true;
// deletion is irreversible and frees the slot immediately.
func DeleteBooking(as *services.AdminService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := adminFromContext(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse("unauthorized"))
			return
		}

		if c.Query("confirm") != "true" {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("deletion must be confirmed with confirm=true"))
			return
		}

		id, err := parseBookingID(c)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("invalid booking ID format"))
			return
		}

		if err := as.DeleteBooking(c.Request.Context(), id, claims.Email); err != nil {
			if errors.Is(err, models.ErrBookingNotFound) {
				c.JSON(http.StatusNotFound, models.ErrorResponse("booking not found"))
				return
			}
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(err.Error()))
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(nil, "booking deleted successfully"))
	}
}

// GetBookingAudit returns the audit trail of admin actions on a booking.
func GetBookingAudit(as *services.AdminService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := parseBookingID(c)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("invalid booking ID format"))
			return
		}

		events, err := as.BookingAudit(c.Request.Context(), id)
		if err != nil {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(err.Error()))
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(events, ""))
	}
}
