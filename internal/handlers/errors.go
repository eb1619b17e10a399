package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"college-appointment-server/internal/booking"
	"college-appointment-server/internal/utils"
)

// respondBookingError maps coordinator errors onto HTTP responses. The
// coordinator already logged anything unexpected, so unknown errors
// turn into a generic 500 without leaking internals.
func respondBookingError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, booking.ErrInvalidDate),
		errors.Is(err, booking.ErrInvalidTime),
		errors.Is(err, booking.ErrEndNotAfterStart),
		errors.Is(err, booking.ErrNotesTooLong),
		errors.Is(err, booking.ErrSlotInPast),
		errors.Is(err, booking.ErrInvalidStatus),
		errors.Is(err, booking.ErrInvalidStatusFilter):
		utils.BadRequest(c, err.Error())

	case errors.Is(err, booking.ErrSlotNotFound),
		errors.Is(err, booking.ErrAppointmentNotFound),
		errors.Is(err, booking.ErrProfessorNotFound):
		utils.NotFound(c, err.Error())

	case errors.Is(err, booking.ErrDuplicateSlot),
		errors.Is(err, booking.ErrSlotTaken),
		errors.Is(err, booking.ErrSlotInUse),
		errors.Is(err, booking.ErrAlreadyCancelled):
		utils.Conflict(c, err.Error())

	default:
		utils.InternalServerError(c, "An unexpected error occurred")
	}
}
