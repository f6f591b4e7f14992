package converter

import (
	"github.com/thien1805/scrum-to-your-doctor/internal/delivery/dto"
	"github.com/thien1805/scrum-to-your-doctor/internal/domain/entity"
)

func ScheduleToResponse(schedule *entity.DoctorSchedule) *dto.ScheduleResponse {
	return &dto.ScheduleResponse{
		ID:          schedule.ID,
		DoctorID:    schedule.DoctorID,
		WorkDate:    schedule.WorkDate.Format("2006-01-02"),
		StartTime:   entity.NormalizeClock(schedule.StartTime),
		EndTime:     entity.NormalizeClock(schedule.EndTime),
		IsAvailable: schedule.IsAvailable,
	}
}

func SchedulesToResponses(schedules []entity.DoctorSchedule) []dto.ScheduleResponse {
	responses := make([]dto.ScheduleResponse, 0, len(schedules))
	for i := range schedules {
		responses = append(responses, *ScheduleToResponse(&schedules[i]))
	}
	return responses
}
