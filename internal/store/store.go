package store

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

// Guarded-write sentinels. Conditional updates return these when the
// WHERE clause matched no rows, meaning another writer got there first.
var (
	ErrSlotUnavailable  = errors.New("availability slot is no longer available")
	ErrStaleAppointment = errors.New("appointment was updated concurrently")
)

// Stores bundles the data access layers behind a single transaction
// boundary so writes spanning slots and appointments can commit or
// roll back together.
type Stores interface {
	Users() UserStore
	Availability() AvailabilityStore
	Appointments() AppointmentStore

	// Transaction runs fn against a store aggregate bound to one
	// database transaction. Returning an error rolls everything back.
	Transaction(ctx context.Context, fn func(tx Stores) error) error
}

type gormStores struct {
	db           *gorm.DB
	users        UserStore
	availability AvailabilityStore
	appointments AppointmentStore
}

// New creates the GORM-backed store aggregate.
func New(db *gorm.DB) Stores {
	return &gormStores{
		db:           db,
		users:        NewUserStore(db),
		availability: NewAvailabilityStore(db),
		appointments: NewAppointmentStore(db),
	}
}

func (s *gormStores) Users() UserStore                { return s.users }
func (s *gormStores) Availability() AvailabilityStore { return s.availability }
func (s *gormStores) Appointments() AppointmentStore  { return s.appointments }

func (s *gormStores) Transaction(ctx context.Context, fn func(tx Stores) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(New(tx))
	})
}
