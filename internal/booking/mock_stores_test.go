package booking

import (
	"context"
	"fmt"
	"sync"

	"gorm.io/gorm"

	"college-appointment-server/internal/models"
	"college-appointment-server/internal/store"
)

// Map-backed fakes for the store layer. Every method takes the mutex,
// so the guarded writes keep their one-winner semantics even when tests
// hammer them from multiple goroutines.

type mockStores struct {
	users        *mockUserStore
	availability *mockAvailabilityStore
	appointments *mockAppointmentStore
}

func newMockStores() *mockStores {
	return &mockStores{
		users:        &mockUserStore{users: make(map[string]*models.User)},
		availability: &mockAvailabilityStore{slots: make(map[string]*models.AvailabilitySlot)},
		appointments: &mockAppointmentStore{appointments: make(map[string]*models.Appointment)},
	}
}

func (m *mockStores) Users() store.UserStore                { return m.users }
func (m *mockStores) Availability() store.AvailabilityStore { return m.availability }
func (m *mockStores) Appointments() store.AppointmentStore  { return m.appointments }

// Transaction runs fn against the same aggregate. The fakes never fail
// mid-transaction in a way that needs a rollback, so none is simulated.
func (m *mockStores) Transaction(_ context.Context, fn func(tx store.Stores) error) error {
	return fn(m)
}

// ── Mock UserStore ──

type mockUserStore struct {
	mu    sync.Mutex
	users map[string]*models.User
}

func (m *mockUserStore) GetByID(_ context.Context, id string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if u, ok := m.users[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserStore) ListByRole(_ context.Context, role models.Role, department string) ([]models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var result []models.User
	for _, u := range m.users {
		if u.Role != role {
			continue
		}
		if department != "" && u.Department != department {
			continue
		}
		result = append(result, *u)
	}
	return result, nil
}

// ── Mock AvailabilityStore ──

type mockAvailabilityStore struct {
	mu        sync.Mutex
	slots     map[string]*models.AvailabilitySlot
	idCounter int
}

func (m *mockAvailabilityStore) Create(_ context.Context, slot *models.AvailabilitySlot) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	// Mirrors the composite unique index on (professor, date, times).
	for _, s := range m.slots {
		if s.ProfessorID == slot.ProfessorID && s.Date == slot.Date &&
			s.StartTime == slot.StartTime && s.EndTime == slot.EndTime {
			return gorm.ErrDuplicatedKey
		}
	}
	m.idCounter++
	if slot.ID == "" {
		slot.ID = fmt.Sprintf("slot-%d", m.idCounter)
	}
	cp := *slot
	m.slots[slot.ID] = &cp
	return nil
}

func (m *mockAvailabilityStore) GetByID(_ context.Context, id string) (*models.AvailabilitySlot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if s, ok := m.slots[id]; ok {
		cp := *s
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockAvailabilityStore) Exists(_ context.Context, professorID, date, startTime, endTime string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, s := range m.slots {
		if s.ProfessorID == professorID && s.Date == date &&
			s.StartTime == startTime && s.EndTime == endTime {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockAvailabilityStore) ListByProfessor(_ context.Context, professorID string, filter store.SlotFilter) ([]models.AvailabilitySlot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var result []models.AvailabilitySlot
	for _, s := range m.slots {
		if s.ProfessorID != professorID {
			continue
		}
		if filter.Date != "" && s.Date != filter.Date {
			continue
		}
		if filter.Status == store.SlotStatusAvailable && s.IsBooked {
			continue
		}
		if filter.Status == store.SlotStatusBooked && !s.IsBooked {
			continue
		}
		result = append(result, *s)
	}
	return result, nil
}

func (m *mockAvailabilityStore) ListOpen(_ context.Context, professorID, fromDate, date string) ([]models.AvailabilitySlot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var result []models.AvailabilitySlot
	for _, s := range m.slots {
		if s.ProfessorID != professorID || s.IsBooked || s.Date < fromDate {
			continue
		}
		if date != "" && s.Date != date {
			continue
		}
		result = append(result, *s)
	}
	return result, nil
}

func (m *mockAvailabilityStore) MarkBooked(_ context.Context, slotID, studentID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.slots[slotID]
	if !ok || s.IsBooked {
		return store.ErrSlotUnavailable
	}
	s.IsBooked = true
	id := studentID
	s.BookedByStudentID = &id
	return nil
}

func (m *mockAvailabilityStore) Release(_ context.Context, slotID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if s, ok := m.slots[slotID]; ok {
		s.IsBooked = false
		s.BookedByStudentID = nil
	}
	return nil
}

func (m *mockAvailabilityStore) DeleteUnbooked(_ context.Context, slotID, professorID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.slots[slotID]
	if !ok || s.ProfessorID != professorID || s.IsBooked {
		return store.ErrSlotUnavailable
	}
	delete(m.slots, slotID)
	return nil
}

// ── Mock AppointmentStore ──

type mockAppointmentStore struct {
	mu           sync.Mutex
	appointments map[string]*models.Appointment
	idCounter    int
}

func (m *mockAppointmentStore) Create(_ context.Context, appointment *models.Appointment) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.idCounter++
	if appointment.ID == "" {
		appointment.ID = fmt.Sprintf("appt-%d", m.idCounter)
	}
	cp := *appointment
	m.appointments[appointment.ID] = &cp
	return nil
}

func (m *mockAppointmentStore) GetByID(_ context.Context, id string) (*models.Appointment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if a, ok := m.appointments[id]; ok {
		cp := *a
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockAppointmentStore) ListByStudent(_ context.Context, studentID string, filter store.AppointmentFilter) ([]models.Appointment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var result []models.Appointment
	for _, a := range m.appointments {
		if a.StudentID != studentID {
			continue
		}
		if filter.Status != "" && a.Status != filter.Status {
			continue
		}
		if filter.Date != "" && a.Date != filter.Date {
			continue
		}
		result = append(result, *a)
	}
	return result, nil
}

func (m *mockAppointmentStore) ListByProfessor(_ context.Context, professorID string, filter store.AppointmentFilter) ([]models.Appointment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var result []models.Appointment
	for _, a := range m.appointments {
		if a.ProfessorID != professorID {
			continue
		}
		if filter.Status != "" && a.Status != filter.Status {
			continue
		}
		if filter.Date != "" && a.Date != filter.Date {
			continue
		}
		result = append(result, *a)
	}
	return result, nil
}

func (m *mockAppointmentStore) UpdateStatus(_ context.Context, id string, status models.AppointmentStatus) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	a, ok := m.appointments[id]
	if !ok || a.Status == models.StatusCancelled {
		return store.ErrStaleAppointment
	}
	a.Status = status
	return nil
}
