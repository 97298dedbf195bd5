package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kbediako/studiobook/internal/models"
	"github.com/kbediako/studiobook/internal/services"
)

// SubmitBooking handles public booking requests. Conflicts answer 409 with
// the specific reason; a saved booking whose admin notification failed still
// answers 201, with a soft warning.
func SubmitBooking(bs *services.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var booking models.Booking
		if err := c.ShouldBindJSON(&booking); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
			return
		}

		result, err := bs.SubmitBooking(c.Request.Context(), &booking)
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
				"Booking request submitted",
				"booking saved but the admin notification email could not be sent"))
			return
		}

		c.JSON(http.StatusCreated, models.SuccessResponse(result.Booking, "Booking request submitted"))
	}
}

// GetAvailability returns the per-studio free/taken labels and day totals
// for ?date=YYYY-MM-DD.
func GetAvailability(as *services.AvailabilityService) gin.HandlerFunc {
	return func(c *gin.Context) {
		date := c.Query("date")
		if date == "" {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("date query parameter is required"))
			return
		}

		view, err := as.ForDay(c.Request.Context(), date)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(view, ""))
	}
}

// GetMonthAvailability returns calendar markers for ?month=YYYY-MM: each
// date with occupying bookings is "full" or "has-availability".
func GetMonthAvailability(as *services.AvailabilityService) gin.HandlerFunc {
	return func(c *gin.Context) {
		month := c.Query("month")
		year, m, err := parseMonth(month)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
			return
		}

		markers, err := as.ForMonth(c.Request.Context(), year, m)
		if err != nil {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(err.Error()))
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(markers, ""))
	}
}

// GetCalendar lists approved bookings for ?date=YYYY-MM-DD, the public view
// of who has reserved each space.
func GetCalendar(as *services.AvailabilityService) gin.HandlerFunc {
	return func(c *gin.Context) {
		date := c.Query("date")
		if date == "" {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("date query parameter is required"))
			return
		}

		bookings, err := as.ApprovedForDay(c.Request.Context(), date)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(bookings, ""))
	}
}

// ListStudios returns the static studio catalog.
func ListStudios() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, models.SuccessResponse(models.Studios, ""))
	}
}
