package store

import (
	"context"

	"gorm.io/gorm"

	"college-appointment-server/internal/models"
)

// Slot status filter values.
const (
	SlotStatusAvailable = "available"
	SlotStatusBooked    = "booked"
)

// SlotFilter narrows slot listings. An empty field means no filtering
// on that dimension.
type SlotFilter struct {
	Date   string
	Status string
}

// AvailabilityStore is the data access surface for availability slots.
type AvailabilityStore interface {
	Create(ctx context.Context, slot *models.AvailabilitySlot) error
	GetByID(ctx context.Context, id string) (*models.AvailabilitySlot, error)
	Exists(ctx context.Context, professorID, date, startTime, endTime string) (bool, error)
	ListByProfessor(ctx context.Context, professorID string, filter SlotFilter) ([]models.AvailabilitySlot, error)
	ListOpen(ctx context.Context, professorID, fromDate, date string) ([]models.AvailabilitySlot, error)

	// MarkBooked flips a free slot to booked. The update is conditional
	// on is_booked being false at write time; losing a race returns
	// ErrSlotUnavailable.
	MarkBooked(ctx context.Context, slotID, studentID string) error

	// Release frees a slot after cancellation. Best-effort: a missing
	// slot is not an error.
	Release(ctx context.Context, slotID string) error

	// DeleteUnbooked removes a slot owned by professorID, conditional
	// on it still being free. Returns ErrSlotUnavailable when the row
	// was booked (or removed) in the meantime.
	DeleteUnbooked(ctx context.Context, slotID, professorID string) error
}

type availabilityStore struct {
	db *gorm.DB
}

// NewAvailabilityStore creates a GORM-backed AvailabilityStore.
func NewAvailabilityStore(db *gorm.DB) AvailabilityStore {
	return &availabilityStore{db: db}
}

func (s *availabilityStore) Create(ctx context.Context, slot *models.AvailabilitySlot) error {
	return s.db.WithContext(ctx).Create(slot).Error
}

func (s *availabilityStore) GetByID(ctx context.Context, id string) (*models.AvailabilitySlot, error) {
	var slot models.AvailabilitySlot
	if err := s.db.WithContext(ctx).First(&slot, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &slot, nil
}

func (s *availabilityStore) Exists(ctx context.Context, professorID, date, startTime, endTime string) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&models.AvailabilitySlot{}).
		Where("professor_id = ? AND date = ? AND start_time = ? AND end_time = ?",
			professorID, date, startTime, endTime).
		Count(&count).Error
	return count > 0, err
}

func (s *availabilityStore) ListByProfessor(ctx context.Context, professorID string, filter SlotFilter) ([]models.AvailabilitySlot, error) {
	var slots []models.AvailabilitySlot
	db := s.db.WithContext(ctx).Where("professor_id = ?", professorID)

	if filter.Date != "" {
		db = db.Where("date = ?", filter.Date)
	}
	switch filter.Status {
	case SlotStatusAvailable:
		db = db.Where("is_booked = ?", false)
	case SlotStatusBooked:
		db = db.Where("is_booked = ?", true)
	}

	err := db.Order("date ASC, start_time ASC").Find(&slots).Error
	return slots, err
}

func (s *availabilityStore) ListOpen(ctx context.Context, professorID, fromDate, date string) ([]models.AvailabilitySlot, error) {
	var slots []models.AvailabilitySlot
	db := s.db.WithContext(ctx).
		Where("professor_id = ? AND is_booked = ? AND date >= ?", professorID, false, fromDate)

	if date != "" {
		db = db.Where("date = ?", date)
	}

	err := db.Order("date ASC, start_time ASC").Find(&slots).Error
	return slots, err
}

func (s *availabilityStore) MarkBooked(ctx context.Context, slotID, studentID string) error {
	result := s.db.WithContext(ctx).
		Model(&models.AvailabilitySlot{}).
		Where("id = ? AND is_booked = ?", slotID, false).
		Updates(map[string]interface{}{
			"is_booked":            true,
			"booked_by_student_id": studentID,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrSlotUnavailable
	}
	return nil
}

func (s *availabilityStore) Release(ctx context.Context, slotID string) error {
	return s.db.WithContext(ctx).
		Model(&models.AvailabilitySlot{}).
		Where("id = ?", slotID).
		Updates(map[string]interface{}{
			"is_booked":            false,
			"booked_by_student_id": nil,
		}).Error
}

func (s *availabilityStore) DeleteUnbooked(ctx context.Context, slotID, professorID string) error {
	result := s.db.WithContext(ctx).
		Where("id = ? AND professor_id = ? AND is_booked = ?", slotID, professorID, false).
		Delete(&models.AvailabilitySlot{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrSlotUnavailable
	}
	return nil
}
