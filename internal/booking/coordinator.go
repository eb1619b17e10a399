package booking

import (
	"context"
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"college-appointment-server/internal/models"
	"college-appointment-server/internal/store"
)

const maxNotesLength = 500

// CreateSlotParams carries the professor-supplied fields of a new
// availability slot.
type CreateSlotParams struct {
	Date      string
	StartTime string
	EndTime   string
}

// Coordinator owns every write that touches availability slots and
// appointments. Keeping both writes behind one component is what keeps
// a slot's booked flag consistent with the appointments referencing it.
type Coordinator interface {
	CreateSlot(ctx context.Context, professorID string, params CreateSlotParams) (*models.AvailabilitySlot, error)
	ListOwnSlots(ctx context.Context, professorID string, filter store.SlotFilter) ([]models.AvailabilitySlot, error)
	ListProfessorOpenSlots(ctx context.Context, professorID, date string) ([]models.AvailabilitySlot, error)
	ListProfessors(ctx context.Context, department string) ([]models.User, error)
	DeleteSlot(ctx context.Context, professorID, slotID string) error
	BookSlot(ctx context.Context, studentID, slotID, notes string) (*models.Appointment, error)
	CancelAppointment(ctx context.Context, professorID, appointmentID string) (*models.Appointment, error)
	UpdateAppointmentStatus(ctx context.Context, professorID, appointmentID string, status models.AppointmentStatus) (*models.Appointment, error)
	ListAppointments(ctx context.Context, viewer Viewer, filter store.AppointmentFilter) ([]models.Appointment, error)
	GetAppointment(ctx context.Context, viewer Viewer, appointmentID string) (*models.Appointment, error)
}

type coordinator struct {
	stores store.Stores
	logger *zap.Logger
}

// NewCoordinator creates the booking coordinator.
func NewCoordinator(stores store.Stores, logger *zap.Logger) Coordinator {
	return &coordinator{stores: stores, logger: logger}
}

func (co *coordinator) CreateSlot(ctx context.Context, professorID string, params CreateSlotParams) (*models.AvailabilitySlot, error) {
	date, err := canonicalDate(params.Date)
	if err != nil {
		return nil, err
	}
	start, err := minutesOfDay(params.StartTime)
	if err != nil {
		return nil, err
	}
	end, err := minutesOfDay(params.EndTime)
	if err != nil {
		return nil, err
	}
	if end <= start {
		return nil, ErrEndNotAfterStart
	}

	exists, err := co.stores.Availability().Exists(ctx, professorID, date, params.StartTime, params.EndTime)
	if err != nil {
		co.logger.Error("failed to check for duplicate slot",
			zap.String("professorId", professorID), zap.Error(err))
		return nil, err
	}
	if exists {
		return nil, ErrDuplicateSlot
	}

	slot := &models.AvailabilitySlot{
		ProfessorID: professorID,
		Date:        date,
		StartTime:   params.StartTime,
		EndTime:     params.EndTime,
	}
	if err := co.stores.Availability().Create(ctx, slot); err != nil {
		// Identical slots racing past the existence check land on the
		// unique index instead.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateSlot
		}
		co.logger.Error("failed to create availability slot",
			zap.String("professorId", professorID), zap.Error(err))
		return nil, err
	}
	return slot, nil
}

func (co *coordinator) ListOwnSlots(ctx context.Context, professorID string, filter store.SlotFilter) ([]models.AvailabilitySlot, error) {
	if filter.Date != "" {
		date, err := canonicalDate(filter.Date)
		if err != nil {
			return nil, err
		}
		filter.Date = date
	}
	switch filter.Status {
	case "", store.SlotStatusAvailable, store.SlotStatusBooked:
	default:
		return nil, ErrInvalidStatusFilter
	}

	slots, err := co.stores.Availability().ListByProfessor(ctx, professorID, filter)
	if err != nil {
		co.logger.Error("failed to list availability slots",
			zap.String("professorId", professorID), zap.Error(err))
		return nil, err
	}
	return slots, nil
}

func (co *coordinator) ListProfessorOpenSlots(ctx context.Context, professorID, date string) ([]models.AvailabilitySlot, error) {
	professor, err := co.stores.Users().GetByID(ctx, professorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfessorNotFound
		}
		co.logger.Error("failed to load professor",
			zap.String("professorId", professorID), zap.Error(err))
		return nil, err
	}
	if professor.Role != models.RoleProfessor {
		return nil, ErrProfessorNotFound
	}

	if date != "" {
		canonical, err := canonicalDate(date)
		if err != nil {
			return nil, err
		}
		date = canonical
	}

	slots, err := co.stores.Availability().ListOpen(ctx, professorID, today(), date)
	if err != nil {
		co.logger.Error("failed to list open slots",
			zap.String("professorId", professorID), zap.Error(err))
		return nil, err
	}
	return slots, nil
}

func (co *coordinator) ListProfessors(ctx context.Context, department string) ([]models.User, error) {
	professors, err := co.stores.Users().ListByRole(ctx, models.RoleProfessor, department)
	if err != nil {
		co.logger.Error("failed to list professors", zap.Error(err))
		return nil, err
	}
	return professors, nil
}

func (co *coordinator) DeleteSlot(ctx context.Context, professorID, slotID string) error {
	slot, err := co.stores.Availability().GetByID(ctx, slotID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrSlotNotFound
		}
		co.logger.Error("failed to load availability slot",
			zap.String("slotId", slotID), zap.Error(err))
		return err
	}
	// Whether a slot exists is only its owner's business.
	if slot.ProfessorID != professorID {
		return ErrSlotNotFound
	}
	if slot.IsBooked {
		return ErrSlotInUse
	}

	err = co.stores.Availability().DeleteUnbooked(ctx, slotID, professorID)
	if errors.Is(err, store.ErrSlotUnavailable) {
		// A student booked it between the read above and the delete.
		return ErrSlotInUse
	}
	if err != nil {
		co.logger.Error("failed to delete availability slot",
			zap.String("slotId", slotID), zap.Error(err))
		return err
	}
	return nil
}

func (co *coordinator) BookSlot(ctx context.Context, studentID, slotID, notes string) (*models.Appointment, error) {
	notes = strings.TrimSpace(notes)
	if utf8.RuneCountInString(notes) > maxNotesLength {
		return nil, ErrNotesTooLong
	}

	slot, err := co.stores.Availability().GetByID(ctx, slotID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSlotNotFound
		}
		co.logger.Error("failed to load availability slot",
			zap.String("slotId", slotID), zap.Error(err))
		return nil, err
	}
	if slot.IsBooked {
		return nil, ErrSlotTaken
	}

	start, err := minutesOfDay(slot.StartTime)
	if err != nil {
		return nil, err
	}
	if slotStart(slot.Date, start).Before(time.Now()) {
		return nil, ErrSlotInPast
	}

	// The conditional flag flip and the appointment insert commit
	// together or not at all. The flip decides the winner between
	// concurrent bookings; the read above was only a fast path.
	var appointment *models.Appointment
	err = co.stores.Transaction(ctx, func(tx store.Stores) error {
		if err := tx.Availability().MarkBooked(ctx, slot.ID, studentID); err != nil {
			return err
		}
		appointment = &models.Appointment{
			StudentID:          studentID,
			ProfessorID:        slot.ProfessorID,
			AvailabilitySlotID: slot.ID,
			Date:               slot.Date,
			StartTime:          slot.StartTime,
			EndTime:            slot.EndTime,
			Status:             models.StatusConfirmed,
			Notes:              notes,
		}
		return tx.Appointments().Create(ctx, appointment)
	})
	if err != nil {
		if errors.Is(err, store.ErrSlotUnavailable) {
			return nil, ErrSlotTaken
		}
		co.logger.Error("failed to book slot",
			zap.String("slotId", slotID), zap.String("studentId", studentID), zap.Error(err))
		return nil, err
	}
	return appointment, nil
}

func (co *coordinator) CancelAppointment(ctx context.Context, professorID, appointmentID string) (*models.Appointment, error) {
	appointment, err := co.getOwnedAppointment(ctx, professorID, appointmentID)
	if err != nil {
		return nil, err
	}
	if appointment.Status == models.StatusCancelled {
		return nil, ErrAlreadyCancelled
	}

	err = co.stores.Transaction(ctx, func(tx store.Stores) error {
		if err := tx.Appointments().UpdateStatus(ctx, appointment.ID, models.StatusCancelled); err != nil {
			return err
		}
		// Freeing the slot is best-effort; it may have been deleted.
		return tx.Availability().Release(ctx, appointment.AvailabilitySlotID)
	})
	if err != nil {
		if errors.Is(err, store.ErrStaleAppointment) {
			return nil, ErrAlreadyCancelled
		}
		co.logger.Error("failed to cancel appointment",
			zap.String("appointmentId", appointmentID), zap.Error(err))
		return nil, err
	}

	appointment.Status = models.StatusCancelled
	return appointment, nil
}

func (co *coordinator) UpdateAppointmentStatus(ctx context.Context, professorID, appointmentID string, status models.AppointmentStatus) (*models.Appointment, error) {
	switch status {
	case models.StatusCancelled:
		// Cancelling through the status endpoint releases the slot the
		// same way an explicit cancellation does.
		return co.CancelAppointment(ctx, professorID, appointmentID)
	case models.StatusPending, models.StatusConfirmed, models.StatusCompleted:
	default:
		return nil, ErrInvalidStatus
	}

	appointment, err := co.getOwnedAppointment(ctx, professorID, appointmentID)
	if err != nil {
		return nil, err
	}
	// A cancelled appointment already released its slot; reviving it
	// would let the slot be booked twice.
	if appointment.Status == models.StatusCancelled {
		return nil, ErrAlreadyCancelled
	}

	if err := co.stores.Appointments().UpdateStatus(ctx, appointment.ID, status); err != nil {
		if errors.Is(err, store.ErrStaleAppointment) {
			return nil, ErrAlreadyCancelled
		}
		co.logger.Error("failed to update appointment status",
			zap.String("appointmentId", appointmentID), zap.Error(err))
		return nil, err
	}

	appointment.Status = status
	return appointment, nil
}

func (co *coordinator) ListAppointments(ctx context.Context, viewer Viewer, filter store.AppointmentFilter) ([]models.Appointment, error) {
	if filter.Date != "" {
		date, err := canonicalDate(filter.Date)
		if err != nil {
			return nil, err
		}
		filter.Date = date
	}
	switch filter.Status {
	case "", models.StatusPending, models.StatusConfirmed, models.StatusCancelled, models.StatusCompleted:
	default:
		return nil, ErrInvalidStatus
	}

	appointments, err := viewer.list(ctx, co.stores.Appointments(), filter)
	if err != nil {
		co.logger.Error("failed to list appointments", zap.Error(err))
		return nil, err
	}
	return appointments, nil
}

func (co *coordinator) GetAppointment(ctx context.Context, viewer Viewer, appointmentID string) (*models.Appointment, error) {
	appointment, err := co.stores.Appointments().GetByID(ctx, appointmentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAppointmentNotFound
		}
		co.logger.Error("failed to load appointment",
			zap.String("appointmentId", appointmentID), zap.Error(err))
		return nil, err
	}
	// Non-participants learn nothing, not even that it exists.
	if !viewer.CanSee(appointment) {
		return nil, ErrAppointmentNotFound
	}
	return appointment, nil
}

func (co *coordinator) getOwnedAppointment(ctx context.Context, professorID, appointmentID string) (*models.Appointment, error) {
	appointment, err := co.stores.Appointments().GetByID(ctx, appointmentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAppointmentNotFound
		}
		co.logger.Error("failed to load appointment",
			zap.String("appointmentId", appointmentID), zap.Error(err))
		return nil, err
	}
	if appointment.ProfessorID != professorID {
		return nil, ErrAppointmentNotFound
	}
	return appointment, nil
}
