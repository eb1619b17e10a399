package booking

import "errors"

// Validation failures.
var (
	ErrInvalidDate         = errors.New("date must be a valid calendar date in YYYY-MM-DD format")
	ErrInvalidTime         = errors.New("time must be a valid HH:MM value between 00:00 and 23:59")
	ErrEndNotAfterStart    = errors.New("endTime must be after startTime")
	ErrNotesTooLong        = errors.New("notes must be at most 500 characters")
	ErrSlotInPast          = errors.New("slot is in the past and can no longer be booked")
	ErrInvalidStatus       = errors.New("status must be one of pending, confirmed, cancelled or completed")
	ErrInvalidStatusFilter = errors.New("status filter must be 'available' or 'booked'")
)

// Lookups that reveal nothing beyond absence. Ownership and
// participation checks fail with these too, so callers cannot probe
// for other people's data.
var (
	ErrSlotNotFound        = errors.New("availability slot not found")
	ErrAppointmentNotFound = errors.New("appointment not found")
	ErrProfessorNotFound   = errors.New("professor not found")
)

// State conflicts.
var (
	ErrDuplicateSlot    = errors.New("an identical availability slot already exists")
	ErrSlotTaken        = errors.New("availability slot is already booked")
	ErrSlotInUse        = errors.New("availability slot has an active booking and cannot be deleted")
	ErrAlreadyCancelled = errors.New("appointment is already cancelled")
)
