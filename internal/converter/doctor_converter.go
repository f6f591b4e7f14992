package converter

import (
	"github.com/thien1805/scrum-to-your-doctor/internal/delivery/dto"
	"github.com/thien1805/scrum-to-your-doctor/internal/domain/entity"
)

func DoctorToResponse(profile *entity.DoctorProfile) *dto.DoctorResponse {
	return &dto.DoctorResponse{
		UserID:        profile.UserID,
		FullName:      profile.User.FullName,
		Email:         profile.User.Email,
		SpecialtyID:   profile.SpecialtyID,
		SpecialtyName: profile.Specialty.Name,
		LicenseNumber: profile.LicenseNumber,
		Biography:     profile.Biography,
		IsActive:      profile.User.IsActive,
	}
}

func DoctorsToResponses(profiles []entity.DoctorProfile) []dto.DoctorResponse {
	responses := make([]dto.DoctorResponse, 0, len(profiles))
	for i := range profiles {
		responses = append(responses, *DoctorToResponse(&profiles[i]))
	}
	return responses
}
