package converter

import (
	"github.com/thien1805/scrum-to-your-doctor/internal/delivery/dto"
	"github.com/thien1805/scrum-to-your-doctor/internal/domain/entity"
)

func PatientProfileToResponse(user *entity.User, profile *entity.PatientProfile) *dto.PatientProfileResponse {
	return &dto.PatientProfileResponse{
		UserID:      user.ID,
		Email:       user.Email,
		FullName:    user.FullName,
		CitizenID:   profile.CitizenID,
		PhoneNumber: profile.PhoneNumber,
		DateOfBirth: profile.DateOfBirth.Format("2006-01-02"),
		Gender:      profile.Gender,
		Address:     profile.Address,
	}
}
