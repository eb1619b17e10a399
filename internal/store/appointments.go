package store

import (
	"context"

	"gorm.io/gorm"

	"college-appointment-server/internal/models"
)

// AppointmentFilter narrows appointment listings. An empty field means
// no filtering on that dimension.
type AppointmentFilter struct {
	Status models.AppointmentStatus
	Date   string
}

// AppointmentStore is the data access surface for appointments.
type AppointmentStore interface {
	Create(ctx context.Context, appointment *models.Appointment) error
	GetByID(ctx context.Context, id string) (*models.Appointment, error)
	ListByStudent(ctx context.Context, studentID string, filter AppointmentFilter) ([]models.Appointment, error)
	ListByProfessor(ctx context.Context, professorID string, filter AppointmentFilter) ([]models.Appointment, error)

	// UpdateStatus transitions an appointment that has not been
	// cancelled yet. The guard keeps a concurrent cancellation from
	// being overwritten; losing against one returns ErrStaleAppointment.
	UpdateStatus(ctx context.Context, id string, status models.AppointmentStatus) error
}

type appointmentStore struct {
	db *gorm.DB
}

// NewAppointmentStore creates a GORM-backed AppointmentStore.
func NewAppointmentStore(db *gorm.DB) AppointmentStore {
	return &appointmentStore{db: db}
}

func (s *appointmentStore) Create(ctx context.Context, appointment *models.Appointment) error {
	return s.db.WithContext(ctx).Create(appointment).Error
}

func (s *appointmentStore) GetByID(ctx context.Context, id string) (*models.Appointment, error) {
	var appointment models.Appointment
	if err := s.db.WithContext(ctx).First(&appointment, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &appointment, nil
}

func (s *appointmentStore) ListByStudent(ctx context.Context, studentID string, filter AppointmentFilter) ([]models.Appointment, error) {
	return s.list(ctx, "student_id", studentID, filter)
}

func (s *appointmentStore) ListByProfessor(ctx context.Context, professorID string, filter AppointmentFilter) ([]models.Appointment, error) {
	return s.list(ctx, "professor_id", professorID, filter)
}

func (s *appointmentStore) list(ctx context.Context, column, id string, filter AppointmentFilter) ([]models.Appointment, error) {
	var appointments []models.Appointment
	db := s.db.WithContext(ctx).Where(column+" = ?", id)

	if filter.Status != "" {
		db = db.Where("status = ?", filter.Status)
	}
	if filter.Date != "" {
		db = db.Where("date = ?", filter.Date)
	}

	err := db.Order("date ASC, start_time ASC").Find(&appointments).Error
	return appointments, err
}

func (s *appointmentStore) UpdateStatus(ctx context.Context, id string, status models.AppointmentStatus) error {
	result := s.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("id = ? AND status <> ?", id, models.StatusCancelled).
		Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrStaleAppointment
	}
	return nil
}
