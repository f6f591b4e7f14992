package repository

import (
	"context"

	"github.com/thien1805/scrum-to-your-doctor/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DoctorProfileRepository interface {
	Create(ctx context.Context, db *gorm.DB, profile *entity.DoctorProfile) error
	FindByUserID(ctx context.Context, db *gorm.DB, userID uuid.UUID) (*entity.DoctorProfile, error)
	// FindAll returns active doctors, optionally restricted to one specialty.
	FindAll(ctx context.Context, db *gorm.DB, specialtyID *int) ([]entity.DoctorProfile, error)
	Update(ctx context.Context, db *gorm.DB, profile *entity.DoctorProfile) error
}
