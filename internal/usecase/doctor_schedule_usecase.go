package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/thien1805/scrum-to-your-doctor/internal/converter"
	"github.com/thien1805/scrum-to-your-doctor/internal/delivery/dto"
	"github.com/thien1805/scrum-to-your-doctor/internal/domain/entity"
	"github.com/thien1805/scrum-to-your-doctor/internal/domain/repository"
	"github.com/thien1805/scrum-to-your-doctor/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrScheduleNotFound      = errors.New("schedule not found")
	ErrInvalidScheduleWindow = errors.New("schedule end time must be after start time")
	ErrScheduleDateTaken     = errors.New("doctor already has a schedule for this date")
)

type DoctorScheduleUsecase interface {
	CreateSchedule(ctx context.Context, actorID uuid.UUID, req *dto.CreateScheduleRequest) (*dto.ScheduleResponse, error)
	GetDoctorSchedules(ctx context.Context, doctorID uuid.UUID) ([]dto.ScheduleResponse, error)
	UpdateSchedule(ctx context.Context, actorID uuid.UUID, id int, req *dto.UpdateScheduleRequest) (*dto.ScheduleResponse, error)
	DeleteSchedule(ctx context.Context, actorID uuid.UUID, id int) error
}

type doctorScheduleUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	scheduleRepo repository.DoctorScheduleRepository
	doctorRepo   repository.DoctorProfileRepository
	auditService service.AuditService
}

func NewDoctorScheduleUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	scheduleRepo repository.DoctorScheduleRepository,
	doctorRepo repository.DoctorProfileRepository,
	auditService service.AuditService,
) DoctorScheduleUsecase {
	return &doctorScheduleUsecase{
		db:           db,
		log:          log,
		scheduleRepo: scheduleRepo,
		doctorRepo:   doctorRepo,
		auditService: auditService,
	}
}

func (u *doctorScheduleUsecase) CreateSchedule(ctx context.Context, actorID uuid.UUID, req *dto.CreateScheduleRequest) (*dto.ScheduleResponse, error) {
	workDate, err := time.Parse("2006-01-02", req.WorkDate)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}

	if err := validateWindow(req.StartTime, req.EndTime); err != nil {
		return nil, err
	}

	doctor, err := u.doctorRepo.FindByUserID(ctx, u.db, req.DoctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor: %+v", err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	isAvailable := true
	if req.IsAvailable != nil {
		isAvailable = *req.IsAvailable
	}

	schedule := &entity.DoctorSchedule{
		DoctorID:    req.DoctorID,
		WorkDate:    workDate,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		IsAvailable: isAvailable,
	}

	if err := u.scheduleRepo.Create(u.db.WithContext(ctx), schedule); err != nil {
		if isDuplicateKeyError(err, "uq_doctor_schedules_date") {
			return nil, ErrScheduleDateTaken
		}
		u.log.Warnf("Failed to create schedule: %+v", err)
		return nil, err
	}

	u.auditService.LogCreate(ctx, u.db.WithContext(ctx), &actorID, entity.AuditActionScheduleCreate, "doctor_schedule", req.WorkDate, map[string]interface{}{
		"schedule_id": schedule.ID,
		"doctor_id":   req.DoctorID.String(),
	})

	return converter.ScheduleToResponse(schedule), nil
}

func (u *doctorScheduleUsecase) GetDoctorSchedules(ctx context.Context, doctorID uuid.UUID) ([]dto.ScheduleResponse, error) {
	schedules, err := u.scheduleRepo.FindAvailableByDoctorID(u.db.WithContext(ctx), doctorID)
	if err != nil {
		u.log.Warnf("Failed to list schedules: %+v", err)
		return nil, err
	}
	return converter.SchedulesToResponses(schedules), nil
}

func (u *doctorScheduleUsecase) UpdateSchedule(ctx context.Context, actorID uuid.UUID, id int, req *dto.UpdateScheduleRequest) (*dto.ScheduleResponse, error) {
	schedule, err := u.scheduleRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find schedule: %+v", err)
		return nil, err
	}
	if schedule == nil {
		return nil, ErrScheduleNotFound
	}

	if req.WorkDate != "" {
		workDate, err := time.Parse("2006-01-02", req.WorkDate)
		if err != nil {
			return nil, ErrInvalidDateFormat
		}
		schedule.WorkDate = workDate
	}
	if req.StartTime != "" {
		schedule.StartTime = req.StartTime
	}
	if req.EndTime != "" {
		schedule.EndTime = req.EndTime
	}
	if err := validateWindow(schedule.StartTime, schedule.EndTime); err != nil {
		return nil, err
	}
	if req.IsAvailable != nil {
		schedule.IsAvailable = *req.IsAvailable
	}

	if err := u.scheduleRepo.Update(u.db.WithContext(ctx), schedule); err != nil {
		u.log.Warnf("Failed to update schedule: %+v", err)
		return nil, err
	}

	u.auditService.LogUpdate(ctx, u.db.WithContext(ctx), &actorID, entity.AuditActionScheduleUpdate, "doctor_schedule", schedule.WorkDate.Format("2006-01-02"), nil, map[string]interface{}{
		"schedule_id":  schedule.ID,
		"is_available": schedule.IsAvailable,
	})

	return converter.ScheduleToResponse(schedule), nil
}

func (u *doctorScheduleUsecase) DeleteSchedule(ctx context.Context, actorID uuid.UUID, id int) error {
	affected, err := u.scheduleRepo.Delete(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to delete schedule: %+v", err)
		return err
	}
	if affected == 0 {
		return ErrScheduleNotFound
	}

	u.auditService.LogDelete(ctx, u.db.WithContext(ctx), &actorID, entity.AuditActionScheduleDelete, "doctor_schedule", "", map[string]interface{}{
		"schedule_id": id,
	})

	return nil
}

// validateWindow rejects windows whose clocks do not parse or are inverted.
// A zero-length window is also rejected since it can never yield a slot.
func validateWindow(startTime, endTime string) error {
	start, err := entity.ParseClock(startTime)
	if err != nil {
		return ErrInvalidScheduleWindow
	}
	end, err := entity.ParseClock(endTime)
	if err != nil {
		return ErrInvalidScheduleWindow
	}
	if end <= start {
		return ErrInvalidScheduleWindow
	}
	return nil
}
