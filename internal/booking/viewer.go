package booking

import (
	"context"
	"fmt"

	"college-appointment-server/internal/models"
	"college-appointment-server/internal/store"
)

// Viewer scopes appointment reads to what a caller is allowed to see.
// Each role carries its own scoping rules, so handlers never branch on
// the role themselves.
type Viewer interface {
	// CanSee reports whether the viewer participates in the appointment.
	CanSee(a *models.Appointment) bool

	list(ctx context.Context, appointments store.AppointmentStore, filter store.AppointmentFilter) ([]models.Appointment, error)
}

// StudentViewer sees appointments the student is part of.
type StudentViewer struct {
	StudentID string
}

func (v StudentViewer) CanSee(a *models.Appointment) bool {
	return a.StudentID == v.StudentID
}

func (v StudentViewer) list(ctx context.Context, appointments store.AppointmentStore, filter store.AppointmentFilter) ([]models.Appointment, error) {
	return appointments.ListByStudent(ctx, v.StudentID, filter)
}

// ProfessorViewer sees appointments the professor is part of.
type ProfessorViewer struct {
	ProfessorID string
}

func (v ProfessorViewer) CanSee(a *models.Appointment) bool {
	return a.ProfessorID == v.ProfessorID
}

func (v ProfessorViewer) list(ctx context.Context, appointments store.AppointmentStore, filter store.AppointmentFilter) ([]models.Appointment, error) {
	return appointments.ListByProfessor(ctx, v.ProfessorID, filter)
}

// ViewerFor builds the viewer matching a caller's role.
func ViewerFor(userID string, role models.Role) (Viewer, error) {
	switch role {
	case models.RoleStudent:
		return StudentViewer{StudentID: userID}, nil
	case models.RoleProfessor:
		return ProfessorViewer{ProfessorID: userID}, nil
	default:
		return nil, fmt.Errorf("no appointment visibility for role %q", role)
	}
}
