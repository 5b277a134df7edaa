package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/Rachana0206/dream-frame-studio/applications/booking"
	"github.com/Rachana0206/dream-frame-studio/logger"

	"github.com/labstack/echo/v4"
)

// BookingController adapts HTTP requests to the booking service.
type BookingController struct {
	service *booking.Service
}

func NewBookingController(service *booking.Service) *BookingController {
	return &BookingController{service: service}
}

// Create handles POST /api/bookings.
func (bc *BookingController) Create(c echo.Context) error {
	var p booking.CreateParams
	if err := c.Bind(&p); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request payload."})
	}

	bk, err := bc.service.CreateBooking(c.Request().Context(), p)
	if err != nil {
		if errors.Is(err, booking.ErrValidation) {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "Missing required fields"})
		}
		logger.Log.Error(fmt.Sprintf("[controllers] Booking creation failed: %v", err))
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to save booking"})
	}

	return c.JSON(http.StatusOK, map[string]any{
		"success":   true,
		"message":   "Booking submitted successfully!",
		"bookingId": bk.ID,
	})
}

// List handles GET /api/bookings (admin view).
func (bc *BookingController) List(c echo.Context) error {
	bookings, err := bc.service.ListBookings(c.Request().Context())
	if err != nil {
		logger.Log.Error(fmt.Sprintf("[controllers] Fetching bookings failed: %v", err))
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch bookings"})
	}
	return c.JSON(http.StatusOK, bookings)
}

// UpdateStatus handles PUT /api/bookings/:id.
func (bc *BookingController) UpdateStatus(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid booking id"})
	}

	var body struct {
		Status string `json:"status"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Status is required"})
	}

	if err := bc.service.SetStatus(c.Request().Context(), id, body.Status); err != nil {
		if errors.Is(err, booking.ErrValidation) {
			msg := "Status is required"
			if body.Status != "" {
				msg = "Invalid status value"
			}
			return c.JSON(http.StatusBadRequest, map[string]string{"error": msg})
		}
		logger.Log.Error(fmt.Sprintf("[controllers] Status update failed for booking %d: %v", id, err))
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to update booking"})
	}

	return c.JSON(http.StatusOK, map[string]any{"success": true, "message": "Booking status updated"})
}

// Delete handles DELETE /api/bookings/:id.
func (bc *BookingController) Delete(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid booking id"})
	}

	if err := bc.service.DeleteBooking(c.Request().Context(), id); err != nil {
		logger.Log.Error(fmt.Sprintf("[controllers] Delete failed for booking %d: %v", id, err))
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to delete booking"})
	}

	return c.JSON(http.StatusOK, map[string]any{"success": true, "message": "Booking deleted"})
}
