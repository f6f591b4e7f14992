package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// AppointmentStatus represents the lifecycle state of an appointment.
// Transitions to ongoing/completed are owned by clinic operations; the
// portal only ever writes upcoming and cancelled.
type AppointmentStatus string

const (
	AppointmentStatusUpcoming  AppointmentStatus = "upcoming"
	AppointmentStatusOngoing   AppointmentStatus = "ongoing"
	AppointmentStatusCompleted AppointmentStatus = "completed"
	AppointmentStatusCancelled AppointmentStatus = "cancelled"
)

// ValidAppointmentStatus reports whether s is a known status value.
func ValidAppointmentStatus(s string) bool {
	switch AppointmentStatus(s) {
	case AppointmentStatusUpcoming, AppointmentStatusOngoing,
		AppointmentStatusCompleted, AppointmentStatusCancelled:
		return true
	}
	return false
}

// Appointment represents one booked slot. At most one non-cancelled
// appointment may exist per (doctor_id, appointment_date, start_time);
// the partial unique index uq_appointments_slot enforces this.
type Appointment struct {
	ID              uuid.UUID         `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	DoctorID        uuid.UUID         `gorm:"type:uuid;not null;index" json:"doctor_id"`
	PatientID       uuid.UUID         `gorm:"type:uuid;not null;index" json:"patient_id"`
	ScheduleID      int               `gorm:"not null;index" json:"schedule_id"`
	AppointmentDate time.Time         `gorm:"type:date;not null" json:"appointment_date"`
	StartTime       string            `gorm:"type:time;not null" json:"start_time"` // Format: HH:MM
	Status          AppointmentStatus `gorm:"type:varchar(20);not null;default:'upcoming';index" json:"status"`
	Symptom         string            `gorm:"type:text" json:"symptom,omitempty"`
	Note            string            `gorm:"type:text" json:"note,omitempty"`
	CreatedAt       time.Time         `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time         `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Doctor   DoctorProfile  `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
	Patient  PatientProfile `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Schedule DoctorSchedule `gorm:"foreignKey:ScheduleID" json:"schedule,omitempty"`
}

func (Appointment) TableName() string {
	return "appointments"
}

// IsCancelled checks if the appointment is cancelled
func (a *Appointment) IsCancelled() bool {
	return a.Status == AppointmentStatusCancelled
}

// IsUpcoming checks if the appointment is still upcoming
func (a *Appointment) IsUpcoming() bool {
	return a.Status == AppointmentStatusUpcoming
}

// ComposeNote builds the stored note from the symptom description and the
// free-form note. Segments are joined on separate lines, symptom first;
// empty segments are omitted and the result is "" when both are empty.
func ComposeNote(symptom, note string) string {
	parts := make([]string, 0, 2)
	if s := strings.TrimSpace(symptom); s != "" {
		parts = append(parts, "Symptoms: "+s)
	}
	if n := strings.TrimSpace(note); n != "" {
		parts = append(parts, n)
	}
	return strings.Join(parts, "\n")
}
