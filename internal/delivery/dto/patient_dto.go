package dto

import (
	"github.com/google/uuid"
)

type UpdatePatientProfileRequest struct {
	FullName    string `json:"full_name" validate:"omitempty,min=3,max=255"`
	PhoneNumber string `json:"phone_number" validate:"omitempty,min=8,max=20"`
	Address     string `json:"address" validate:"omitempty,max=500"`
	OldPassword string `json:"old_password" validate:"omitempty,min=8"`
	NewPassword string `json:"new_password" validate:"omitempty,min=8"`
}

type PatientProfileResponse struct {
	UserID      uuid.UUID `json:"user_id"`
	Email       string    `json:"email"`
	FullName    string    `json:"full_name"`
	CitizenID   string    `json:"citizen_id"`
	PhoneNumber string    `json:"phone_number,omitempty"`
	DateOfBirth string    `json:"date_of_birth"`
	Gender      string    `json:"gender"`
	Address     string    `json:"address,omitempty"`
}
