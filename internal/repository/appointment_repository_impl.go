package repository

import (
	"errors"
	"time"

	"github.com/thien1805/scrum-to-your-doctor/internal/domain/entity"
	domainRepo "github.com/thien1805/scrum-to-your-doctor/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type appointmentRepository struct{}

func NewAppointmentRepository() domainRepo.AppointmentRepository {
	return &appointmentRepository{}
}

func (r *appointmentRepository) Create(db *gorm.DB, appointment *entity.Appointment) error {
	return db.Create(appointment).Error
}

func (r *appointmentRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Appointment, error) {
	var appointment entity.Appointment
	err := db.
		Preload("Doctor.User").Preload("Doctor.Specialty").
		Where("id = ?", id).
		First(&appointment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &appointment, nil
}

func (r *appointmentRepository) FindByPatient(db *gorm.DB, patientID uuid.UUID, filter *entity.AppointmentFilter) ([]entity.Appointment, error) {
	query := db.
		Preload("Doctor.User").Preload("Doctor.Specialty").
		Where("patient_id = ?", patientID)

	if filter != nil && filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}

	dir := "DESC"
	if filter != nil && filter.SortAscending {
		dir = "ASC"
	}

	var appointments []entity.Appointment
	err := query.
		Order("appointment_date " + dir).
		Order("start_time " + dir).
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) BookedStartTimes(db *gorm.DB, doctorID uuid.UUID, date time.Time) ([]string, error) {
	var starts []string
	err := db.
		Model(&entity.Appointment{}).
		Where("doctor_id = ? AND appointment_date = ? AND status != ?",
			doctorID, date.Format("2006-01-02"), entity.AppointmentStatusCancelled).
		Pluck("start_time", &starts).Error
	if err != nil {
		return nil, err
	}
	return starts, nil
}

func (r *appointmentRepository) Cancel(db *gorm.DB, id uuid.UUID) (int64, error) {
	result := db.
		Model(&entity.Appointment{}).
		Where("id = ? AND status != ?", id, entity.AppointmentStatusCancelled).
		Update("status", entity.AppointmentStatusCancelled)
	return result.RowsAffected, result.Error
}
