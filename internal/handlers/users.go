package handlers

import (
	"github.com/gin-gonic/gin"

	"college-appointment-server/internal/booking"
	"college-appointment-server/internal/models"
	"college-appointment-server/internal/utils"
)

// UserHandler handles user directory requests.
type UserHandler struct {
	Coordinator booking.Coordinator
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(coordinator booking.Coordinator) *UserHandler {
	return &UserHandler{Coordinator: coordinator}
}

// GetProfessors handles fetching all users with the professor role,
// optionally narrowed to a department.
// This endpoint is how students find someone to book with.
func (h *UserHandler) GetProfessors(c *gin.Context) {
	professors, err := h.Coordinator.ListProfessors(c.Request.Context(), c.Query("department"))
	if err != nil {
		respondBookingError(c, err)
		return
	}

	sanitizedProfessors := make([]models.UserSanitized, len(professors))
	for i, professor := range professors {
		sanitizedProfessors[i] = professor.Sanitize()
	}

	utils.Success(c, "Professors fetched successfully", sanitizedProfessors)
}
