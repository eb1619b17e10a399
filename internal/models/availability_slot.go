package models

// AvailabilitySlot represents a bookable window published by a professor.
// Date is a plain calendar day (YYYY-MM-DD) and the times are wall-clock
// HH:MM values; no timezone handling is applied to either.
type AvailabilitySlot struct {
	BaseModel
	ProfessorID       string  `gorm:"size:36;index;not null;uniqueIndex:uniq_professor_slot" json:"professorId"`
	Date              string  `gorm:"size:10;not null;uniqueIndex:uniq_professor_slot" json:"date"`
	StartTime         string  `gorm:"size:5;not null;uniqueIndex:uniq_professor_slot" json:"startTime"`
	EndTime           string  `gorm:"size:5;not null;uniqueIndex:uniq_professor_slot" json:"endTime"`
	IsBooked          bool    `gorm:"default:false;not null" json:"isBooked"`
	BookedByStudentID *string `gorm:"size:36" json:"bookedByStudentId,omitempty"`

	// Relations
	Professor User `gorm:"foreignKey:ProfessorID" json:"-"`
}
