package dto

import (
	"github.com/google/uuid"
)

type CreateDoctorRequest struct {
	Email         string `json:"email" validate:"required,email"`
	Password      string `json:"password" validate:"required,min=8"`
	FullName      string `json:"full_name" validate:"required,min=3,max=255"`
	SpecialtyID   int    `json:"specialty_id" validate:"required,gte=1"`
	LicenseNumber string `json:"license_number" validate:"required,min=5,max=50"`
	Biography     string `json:"biography" validate:"omitempty,max=2000"`
}

type UpdateDoctorRequest struct {
	FullName    string `json:"full_name" validate:"omitempty,min=3,max=255"`
	SpecialtyID int    `json:"specialty_id" validate:"omitempty,gte=1"`
	Biography   string `json:"biography" validate:"omitempty,max=2000"`
	IsActive    *bool  `json:"is_active" validate:"omitempty"`
}

type DoctorResponse struct {
	UserID        uuid.UUID `json:"user_id"`
	FullName      string    `json:"full_name"`
	Email         string    `json:"email,omitempty"`
	SpecialtyID   int       `json:"specialty_id"`
	SpecialtyName string    `json:"specialty_name,omitempty"`
	LicenseNumber string    `json:"license_number,omitempty"`
	Biography     string    `json:"biography,omitempty"`
	IsActive      bool      `json:"is_active"`
}
