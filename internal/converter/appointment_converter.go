package converter

import (
	"github.com/thien1805/scrum-to-your-doctor/internal/delivery/dto"
	"github.com/thien1805/scrum-to-your-doctor/internal/domain/entity"
)

// AppointmentToResponse enriches the row with the doctor's name and
// specialty when the associations were preloaded. Missing associations
// leave the nested fields zero-valued rather than failing the projection.
func AppointmentToResponse(a *entity.Appointment) *dto.AppointmentResponse {
	return &dto.AppointmentResponse{
		ID:              a.ID,
		DoctorID:        a.DoctorID,
		ScheduleID:      a.ScheduleID,
		AppointmentDate: a.AppointmentDate.Format("2006-01-02"),
		StartTime:       entity.NormalizeClock(a.StartTime),
		Status:          string(a.Status),
		Symptom:         a.Symptom,
		Note:            a.Note,
		Doctor: dto.AppointmentDoctorInfo{
			FullName:      a.Doctor.User.FullName,
			SpecialtyID:   a.Doctor.SpecialtyID,
			SpecialtyName: a.Doctor.Specialty.Name,
		},
		CreatedAt: a.CreatedAt,
	}
}

func AppointmentsToResponses(appointments []entity.Appointment) []dto.AppointmentResponse {
	responses := make([]dto.AppointmentResponse, 0, len(appointments))
	for i := range appointments {
		responses = append(responses, *AppointmentToResponse(&appointments[i]))
	}
	return responses
}
