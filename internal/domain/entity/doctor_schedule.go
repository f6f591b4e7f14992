package entity

import (
	"time"

	"github.com/google/uuid"
)

// DoctorSchedule is a doctor's published working-hour window for one date.
// Windows are created by scheduling staff; the booking core only reads them
// (and never mutates anything but the availability flag).
type DoctorSchedule struct {
	ID          int       `gorm:"primaryKey;autoIncrement" json:"id"`
	DoctorID    uuid.UUID `gorm:"type:uuid;not null;index" json:"doctor_id"`
	WorkDate    time.Time `gorm:"type:date;not null;index" json:"work_date"`
	StartTime   string    `gorm:"type:time;not null" json:"start_time"` // Format: HH:MM
	EndTime     string    `gorm:"type:time;not null" json:"end_time"`   // Format: HH:MM
	IsAvailable bool      `gorm:"not null;default:true;index" json:"is_available"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Doctor       DoctorProfile `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
	Appointments []Appointment `gorm:"foreignKey:ScheduleID" json:"appointments,omitempty"`
}

func (DoctorSchedule) TableName() string {
	return "doctor_schedules"
}
