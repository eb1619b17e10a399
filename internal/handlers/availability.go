package handlers

import (
	"github.com/gin-gonic/gin"

	"college-appointment-server/internal/booking"
	"college-appointment-server/internal/middleware"
	"college-appointment-server/internal/store"
	"college-appointment-server/internal/utils"
)

// AvailabilityHandler handles availability slot requests.
type AvailabilityHandler struct {
	Coordinator booking.Coordinator
}

// NewAvailabilityHandler creates a new AvailabilityHandler.
func NewAvailabilityHandler(coordinator booking.Coordinator) *AvailabilityHandler {
	return &AvailabilityHandler{Coordinator: coordinator}
}

// CreateSlotRequest represents the request body for publishing a slot.
type CreateSlotRequest struct {
	Date      string `json:"date" binding:"required"`
	StartTime string `json:"startTime" binding:"required"`
	EndTime   string `json:"endTime" binding:"required"`
}

// CreateSlot handles a professor publishing a new availability slot.
func (h *AvailabilityHandler) CreateSlot(c *gin.Context) {
	var req CreateSlotRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	professorID, exists := middleware.GetUserIDFromContext(c)
	if !exists {
		utils.Unauthorized(c, "User not authenticated")
		return
	}

	slot, err := h.Coordinator.CreateSlot(c.Request.Context(), professorID, booking.CreateSlotParams{
		Date:      req.Date,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	})
	if err != nil {
		respondBookingError(c, err)
		return
	}

	utils.Created(c, "Availability slot created successfully", slot)
}

// ListOwnSlots handles listing the calling professor's slots, booked
// and free, optionally filtered by date and status.
func (h *AvailabilityHandler) ListOwnSlots(c *gin.Context) {
	professorID, exists := middleware.GetUserIDFromContext(c)
	if !exists {
		utils.Unauthorized(c, "User not authenticated")
		return
	}

	filter := store.SlotFilter{
		Date:   c.Query("date"),
		Status: c.Query("status"),
	}

	slots, err := h.Coordinator.ListOwnSlots(c.Request.Context(), professorID, filter)
	if err != nil {
		respondBookingError(c, err)
		return
	}

	utils.Success(c, "Availability slots fetched successfully", slots)
}

// ListProfessorSlots handles listing a professor's open, upcoming slots.
func (h *AvailabilityHandler) ListProfessorSlots(c *gin.Context) {
	professorID := c.Param("professorId")

	slots, err := h.Coordinator.ListProfessorOpenSlots(c.Request.Context(), professorID, c.Query("date"))
	if err != nil {
		respondBookingError(c, err)
		return
	}

	utils.Success(c, "Available slots fetched successfully", slots)
}

// DeleteSlot handles a professor removing one of their unbooked slots.
func (h *AvailabilityHandler) DeleteSlot(c *gin.Context) {
	professorID, exists := middleware.GetUserIDFromContext(c)
	if !exists {
		utils.Unauthorized(c, "User not authenticated")
		return
	}

	if err := h.Coordinator.DeleteSlot(c.Request.Context(), professorID, c.Param("id")); err != nil {
		respondBookingError(c, err)
		return
	}

	utils.Success(c, "Availability slot deleted successfully", nil)
}
