package dto

import (
	"github.com/google/uuid"
)

type CreateScheduleRequest struct {
	DoctorID    uuid.UUID `json:"doctor_id" validate:"required"`
	WorkDate    string    `json:"work_date" validate:"required,datetime=2006-01-02"`
	StartTime   string    `json:"start_time" validate:"required,datetime=15:04"`
	EndTime     string    `json:"end_time" validate:"required,datetime=15:04"`
	IsAvailable *bool     `json:"is_available" validate:"omitempty"`
}

type UpdateScheduleRequest struct {
	WorkDate    string `json:"work_date" validate:"omitempty,datetime=2006-01-02"`
	StartTime   string `json:"start_time" validate:"omitempty,datetime=15:04"`
	EndTime     string `json:"end_time" validate:"omitempty,datetime=15:04"`
	IsAvailable *bool  `json:"is_available" validate:"omitempty"`
}

type ScheduleResponse struct {
	ID          int       `json:"id"`
	DoctorID    uuid.UUID `json:"doctor_id"`
	WorkDate    string    `json:"work_date"`
	StartTime   string    `json:"start_time"`
	EndTime     string    `json:"end_time"`
	IsAvailable bool      `json:"is_available"`
}
