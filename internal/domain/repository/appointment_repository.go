package repository

import (
	"time"

	"github.com/thien1805/scrum-to-your-doctor/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AppointmentRepository interface {
	// Create inserts one appointment row. The partial unique index
	// uq_appointments_slot rejects a second non-cancelled row for the same
	// (doctor_id, appointment_date, start_time); callers classify that
	// violation as a slot conflict.
	Create(db *gorm.DB, appointment *entity.Appointment) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Appointment, error)
	// FindByPatient returns the patient's appointments with doctor and
	// specialty preloaded, filtered and two-key sorted per the filter.
	FindByPatient(db *gorm.DB, patientID uuid.UUID, filter *entity.AppointmentFilter) ([]entity.Appointment, error)
	// BookedStartTimes returns the start times of all non-cancelled
	// appointments for a doctor on one date (the occupancy index).
	BookedStartTimes(db *gorm.DB, doctorID uuid.UUID, date time.Time) ([]string, error)
	// Cancel atomically cancels an appointment ONLY if it's not already
	// cancelled. Returns affected rows: 1 = success, 0 = already cancelled.
	Cancel(db *gorm.DB, id uuid.UUID) (int64, error)
}
