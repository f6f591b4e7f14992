package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/thien1805/scrum-to-your-doctor/config"
	"github.com/thien1805/scrum-to-your-doctor/internal/delivery/dto"
	"github.com/thien1805/scrum-to-your-doctor/internal/domain/entity"
	"github.com/thien1805/scrum-to-your-doctor/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrInvalidSlotDate = errors.New("invalid date, use YYYY-MM-DD")

type SlotUsecase interface {
	GetAvailableSlots(ctx context.Context, doctorID uuid.UUID, dateStr string) (*dto.SlotListResponse, error)
}

type slotUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	scheduleRepo    repository.DoctorScheduleRepository
	appointmentRepo repository.AppointmentRepository
	booking         config.BookingConfig
}

func NewSlotUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	scheduleRepo repository.DoctorScheduleRepository,
	appointmentRepo repository.AppointmentRepository,
	booking config.BookingConfig,
) SlotUsecase {
	return &slotUsecase{
		db:              db,
		log:             log,
		scheduleRepo:    scheduleRepo,
		appointmentRepo: appointmentRepo,
		booking:         booking,
	}
}

// GetAvailableSlots projects the doctor's slot grid for one date, marking
// every slot whose start time has a non-cancelled appointment as booked.
// A date with no published window, or an unavailable one, yields an empty
// grid rather than an error.
func (u *slotUsecase) GetAvailableSlots(ctx context.Context, doctorID uuid.UUID, dateStr string) (*dto.SlotListResponse, error) {
	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return nil, ErrInvalidSlotDate
	}

	resp := &dto.SlotListResponse{
		DoctorID: doctorID,
		Date:     dateStr,
		Slots:    []dto.SlotResponse{},
	}

	schedule, err := u.scheduleRepo.FindByDoctorAndDate(u.db.WithContext(ctx), doctorID, date)
	if err != nil {
		u.log.Warnf("Failed to find schedule: %+v", err)
		return nil, err
	}
	if schedule == nil || !schedule.IsAvailable {
		return resp, nil
	}

	blackout := &entity.Blackout{
		StartTime: u.booking.LunchBreakStart,
		EndTime:   u.booking.LunchBreakEnd,
	}
	slots := entity.GenerateSlots(
		entity.NormalizeClock(schedule.StartTime),
		entity.NormalizeClock(schedule.EndTime),
		u.booking.SlotDuration,
		blackout,
	)
	if len(slots) == 0 {
		return resp, nil
	}

	bookedStarts, err := u.appointmentRepo.BookedStartTimes(u.db.WithContext(ctx), doctorID, date)
	if err != nil {
		u.log.Warnf("Failed to load booked start times: %+v", err)
		return nil, err
	}

	// Time columns may come back with seconds attached.
	booked := make(map[string]struct{}, len(bookedStarts))
	for _, s := range bookedStarts {
		if normalized := entity.NormalizeClock(s); normalized != "" {
			booked[normalized] = struct{}{}
		}
	}

	for _, slot := range slots {
		_, taken := booked[slot.StartTime]
		resp.Slots = append(resp.Slots, dto.SlotResponse{
			StartTime: slot.StartTime,
			EndTime:   slot.EndTime,
			Booked:    taken,
		})
	}

	return resp, nil
}
