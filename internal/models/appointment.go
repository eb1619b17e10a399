package models

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "pending"
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusCancelled AppointmentStatus = "cancelled"
	StatusCompleted AppointmentStatus = "completed"
)

// Appointment represents a booked meeting between a student and a professor.
// Date, StartTime and EndTime are copied from the availability slot at
// booking time so the appointment stays readable even if the slot is
// deleted later.
type Appointment struct {
	BaseModel
	StudentID          string            `gorm:"size:36;index;not null" json:"studentId"`
	ProfessorID        string            `gorm:"size:36;index;not null" json:"professorId"`
	AvailabilitySlotID string            `gorm:"size:36;index;not null" json:"availabilitySlotId"`
	Date               string            `gorm:"size:10;not null" json:"date"`
	StartTime          string            `gorm:"size:5;not null" json:"startTime"`
	EndTime            string            `gorm:"size:5;not null" json:"endTime"`
	Status             AppointmentStatus `gorm:"size:20;default:'confirmed'" json:"status"`
	Notes              string            `gorm:"size:500" json:"notes,omitempty"`

	// Relations
	Student   User `gorm:"foreignKey:StudentID" json:"-"`
	Professor User `gorm:"foreignKey:ProfessorID" json:"-"`
}
