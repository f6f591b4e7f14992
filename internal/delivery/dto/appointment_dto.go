package dto

import (
	"time"

	"github.com/google/uuid"
)

type BookAppointmentRequest struct {
	DoctorID        uuid.UUID `json:"doctor_id" validate:"required"`
	ScheduleID      int       `json:"schedule_id" validate:"required,gte=1"`
	AppointmentDate string    `json:"appointment_date" validate:"required,datetime=2006-01-02"`
	StartTime       string    `json:"start_time" validate:"required"`
	Symptom         string    `json:"symptom" validate:"omitempty,max=2000"`
	Note            string    `json:"note" validate:"omitempty,max=2000"`
}

type AppointmentDoctorInfo struct {
	FullName      string `json:"full_name"`
	SpecialtyID   int    `json:"specialty_id"`
	SpecialtyName string `json:"specialty_name"`
}

type AppointmentResponse struct {
	ID              uuid.UUID             `json:"id"`
	DoctorID        uuid.UUID             `json:"doctor_id"`
	ScheduleID      int                   `json:"schedule_id"`
	AppointmentDate string                `json:"appointment_date"`
	StartTime       string                `json:"start_time"`
	Status          string                `json:"status"`
	Symptom         string                `json:"symptom,omitempty"`
	Note            string                `json:"note,omitempty"`
	Doctor          AppointmentDoctorInfo `json:"doctor"`
	CreatedAt       time.Time             `json:"created_at"`
}

type SlotResponse struct {
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Booked    bool   `json:"booked"`
}

type SlotListResponse struct {
	DoctorID uuid.UUID      `json:"doctor_id"`
	Date     string         `json:"date"`
	Slots    []SlotResponse `json:"slots"`
}
