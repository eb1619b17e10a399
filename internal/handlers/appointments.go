package handlers

import (
	"github.com/gin-gonic/gin"

	"college-appointment-server/internal/booking"
	"college-appointment-server/internal/middleware"
	"college-appointment-server/internal/models"
	"college-appointment-server/internal/store"
	"college-appointment-server/internal/utils"
)

// AppointmentHandler handles appointment related requests.
type AppointmentHandler struct {
	Coordinator booking.Coordinator
}

// NewAppointmentHandler creates a new AppointmentHandler.
func NewAppointmentHandler(coordinator booking.Coordinator) *AppointmentHandler {
	return &AppointmentHandler{Coordinator: coordinator}
}

// BookAppointmentRequest represents the request body for booking a slot.
type BookAppointmentRequest struct {
	SlotID string `json:"slotId" binding:"required,uuid"`
	Notes  string `json:"notes"`
}

// BookAppointment handles a student booking an open availability slot.
func (h *AppointmentHandler) BookAppointment(c *gin.Context) {
	var req BookAppointmentRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	studentID, exists := middleware.GetUserIDFromContext(c)
	if !exists {
		utils.Unauthorized(c, "User not authenticated")
		return
	}

	appointment, err := h.Coordinator.BookSlot(c.Request.Context(), studentID, req.SlotID, req.Notes)
	if err != nil {
		respondBookingError(c, err)
		return
	}

	utils.Created(c, "Appointment booked successfully", appointment)
}

// ListAppointments handles listing the caller's appointments. The
// viewer scopes the list to the student or professor side, so the same
// handler serves both roles.
func (h *AppointmentHandler) ListAppointments(c *gin.Context) {
	viewer, ok := viewerFromContext(c)
	if !ok {
		return
	}

	filter := store.AppointmentFilter{
		Status: models.AppointmentStatus(c.Query("status")),
		Date:   c.Query("date"),
	}

	appointments, err := h.Coordinator.ListAppointments(c.Request.Context(), viewer, filter)
	if err != nil {
		respondBookingError(c, err)
		return
	}

	utils.Success(c, "Appointments fetched successfully", appointments)
}

// GetAppointment handles fetching a single appointment. Only its two
// participants get to see it; everyone else gets a 404.
func (h *AppointmentHandler) GetAppointment(c *gin.Context) {
	viewer, ok := viewerFromContext(c)
	if !ok {
		return
	}

	appointment, err := h.Coordinator.GetAppointment(c.Request.Context(), viewer, c.Param("id"))
	if err != nil {
		respondBookingError(c, err)
		return
	}

	utils.Success(c, "Appointment fetched successfully", appointment)
}

// CancelAppointment handles a professor cancelling one of their
// appointments, freeing the slot for someone else.
func (h *AppointmentHandler) CancelAppointment(c *gin.Context) {
	professorID, exists := middleware.GetUserIDFromContext(c)
	if !exists {
		utils.Unauthorized(c, "User not authenticated")
		return
	}

	appointment, err := h.Coordinator.CancelAppointment(c.Request.Context(), professorID, c.Param("id"))
	if err != nil {
		respondBookingError(c, err)
		return
	}

	utils.Success(c, "Appointment cancelled successfully", appointment)
}

// UpdateAppointmentStatusRequest represents the request body for a
// status transition.
type UpdateAppointmentStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// UpdateAppointmentStatus handles a professor moving an appointment
// through its lifecycle.
func (h *AppointmentHandler) UpdateAppointmentStatus(c *gin.Context) {
	var req UpdateAppointmentStatusRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	professorID, exists := middleware.GetUserIDFromContext(c)
	if !exists {
		utils.Unauthorized(c, "User not authenticated")
		return
	}

	appointment, err := h.Coordinator.UpdateAppointmentStatus(c.Request.Context(), professorID, c.Param("id"), models.AppointmentStatus(req.Status))
	if err != nil {
		respondBookingError(c, err)
		return
	}

	utils.Success(c, "Appointment status updated successfully", appointment)
}

// viewerFromContext builds the booking viewer for the calling user.
func viewerFromContext(c *gin.Context) (booking.Viewer, bool) {
	userID, exists := middleware.GetUserIDFromContext(c)
	if !exists {
		utils.Unauthorized(c, "User not authenticated")
		return nil, false
	}

	role, exists := middleware.GetUserRoleFromContext(c)
	if !exists {
		utils.Unauthorized(c, "User role not found in token")
		return nil, false
	}

	viewer, err := booking.ViewerFor(userID, role)
	if err != nil {
		utils.Forbidden(c, "You do not have permission to view appointments.")
		return nil, false
	}

	return viewer, true
}
