package store

import (
	"context"

	"gorm.io/gorm"

	"college-appointment-server/internal/models"
)

// UserStore is the read surface the booking core uses for identity
// lookups. User writes stay with the auth handlers.
type UserStore interface {
	GetByID(ctx context.Context, id string) (*models.User, error)
	ListByRole(ctx context.Context, role models.Role, department string) ([]models.User, error)
}

type userStore struct {
	db *gorm.DB
}

// NewUserStore creates a GORM-backed UserStore.
func NewUserStore(db *gorm.DB) UserStore {
	return &userStore{db: db}
}

func (s *userStore) GetByID(ctx context.Context, id string) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *userStore) ListByRole(ctx context.Context, role models.Role, department string) ([]models.User, error) {
	var users []models.User
	db := s.db.WithContext(ctx).Where("role = ?", role)
	if department != "" {
		db = db.Where("department = ?", department)
	}
	err := db.Order("name ASC").Find(&users).Error
	return users, err
}
