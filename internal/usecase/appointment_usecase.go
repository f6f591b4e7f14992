package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/thien1805/scrum-to-your-doctor/config"
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
	ErrAppointmentNotFound         = errors.New("appointment not found")
	ErrAppointmentNotOwned         = errors.New("appointment belongs to another patient")
	ErrAppointmentAlreadyCancelled = errors.New("appointment is already cancelled")
	ErrSlotTaken                   = errors.New("slot is already booked")
	ErrSlotOutsideWindow           = errors.New("start time is not a bookable slot for this date")
	ErrScheduleMismatch            = errors.New("schedule does not match the doctor and date")
	ErrInvalidStatusFilter         = errors.New("invalid status filter")
)

type AppointmentUsecase interface {
	BookAppointment(ctx context.Context, patientID uuid.UUID, req *dto.BookAppointmentRequest) (*dto.AppointmentResponse, error)
	ListMyAppointments(ctx context.Context, patientID uuid.UUID, status, sort string) ([]dto.AppointmentResponse, error)
	CancelAppointment(ctx context.Context, patientID uuid.UUID, appointmentID uuid.UUID) error
}

type appointmentUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	appointmentRepo repository.AppointmentRepository
	scheduleRepo    repository.DoctorScheduleRepository
	auditService    service.AuditService
	booking         config.BookingConfig
}

func NewAppointmentUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	scheduleRepo repository.DoctorScheduleRepository,
	auditService service.AuditService,
	booking config.BookingConfig,
) AppointmentUsecase {
	return &appointmentUsecase{
		db:              db,
		log:             log,
		appointmentRepo: appointmentRepo,
		scheduleRepo:    scheduleRepo,
		auditService:    auditService,
		booking:         booking,
	}
}

// BookAppointment books one slot for the authenticated patient.
//
// The requested start time must be a member of the slot grid derived from
// the doctor's window for that date. The insert relies on the partial
// unique index uq_appointments_slot for conflict detection, so two
// concurrent requests for the same slot resolve to exactly one winner
// without any explicit locking.
func (u *appointmentUsecase) BookAppointment(ctx context.Context, patientID uuid.UUID, req *dto.BookAppointmentRequest) (*dto.AppointmentResponse, error) {
	date, err := time.Parse("2006-01-02", req.AppointmentDate)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}

	schedule, err := u.scheduleRepo.FindByID(u.db.WithContext(ctx), req.ScheduleID)
	if err != nil {
		u.log.Warnf("Failed to find schedule: %+v", err)
		return nil, err
	}
	if schedule == nil {
		return nil, ErrScheduleNotFound
	}
	if schedule.DoctorID != req.DoctorID || !schedule.WorkDate.Equal(date) {
		return nil, ErrScheduleMismatch
	}
	if !schedule.IsAvailable {
		return nil, ErrSlotOutsideWindow
	}

	startTime := entity.NormalizeClock(req.StartTime)
	if startTime == "" {
		return nil, ErrSlotOutsideWindow
	}

	blackout := &entity.Blackout{
		StartTime: u.booking.LunchBreakStart,
		EndTime:   u.booking.LunchBreakEnd,
	}
	grid := entity.GenerateSlots(
		entity.NormalizeClock(schedule.StartTime),
		entity.NormalizeClock(schedule.EndTime),
		u.booking.SlotDuration,
		blackout,
	)

	member := false
	for _, slot := range grid {
		if slot.StartTime == startTime {
			member = true
			break
		}
	}
	if !member {
		return nil, ErrSlotOutsideWindow
	}

	appointment := &entity.Appointment{
		ID:              uuid.New(),
		DoctorID:        req.DoctorID,
		PatientID:       patientID,
		ScheduleID:      req.ScheduleID,
		AppointmentDate: date,
		StartTime:       startTime,
		Status:          entity.AppointmentStatusUpcoming,
		Symptom:         strings.TrimSpace(req.Symptom),
		Note:            entity.ComposeNote(req.Symptom, req.Note),
	}

	if err := u.appointmentRepo.Create(u.db.WithContext(ctx), appointment); err != nil {
		if isDuplicateKeyError(err, "uq_appointments_slot") {
			return nil, ErrSlotTaken
		}
		if isForeignKeyError(err, "doctor") {
			return nil, ErrDoctorNotFound
		}
		u.log.Warnf("Failed to create appointment: %+v", err)
		return nil, err
	}

	// Audit failure must not roll back a confirmed booking.
	u.auditService.LogCreate(ctx, u.db.WithContext(ctx), &patientID, entity.AuditActionAppointmentCreate, "appointment", appointment.ID.String(), map[string]interface{}{
		"doctor_id":        req.DoctorID.String(),
		"appointment_date": req.AppointmentDate,
		"start_time":       startTime,
	})

	created, err := u.appointmentRepo.FindByID(u.db.WithContext(ctx), appointment.ID)
	if err != nil || created == nil {
		// The booking itself succeeded; fall back to the unenriched row.
		return converter.AppointmentToResponse(appointment), nil
	}
	return converter.AppointmentToResponse(created), nil
}

// ListMyAppointments returns the patient's own appointments. Default order
// is newest first; sort="asc" flips it. The secondary start_time key keeps
// same-day appointments in clock order under either direction.
func (u *appointmentUsecase) ListMyAppointments(ctx context.Context, patientID uuid.UUID, status, sort string) ([]dto.AppointmentResponse, error) {
	if status != "" && !entity.ValidAppointmentStatus(status) {
		return nil, ErrInvalidStatusFilter
	}

	filter := &entity.AppointmentFilter{
		Status:        status,
		SortAscending: strings.EqualFold(sort, "asc"),
	}

	appointments, err := u.appointmentRepo.FindByPatient(u.db.WithContext(ctx), patientID, filter)
	if err != nil {
		u.log.Warnf("Failed to list appointments: %+v", err)
		return nil, err
	}

	return converter.AppointmentsToResponses(appointments), nil
}

func (u *appointmentUsecase) CancelAppointment(ctx context.Context, patientID uuid.UUID, appointmentID uuid.UUID) error {
	appointment, err := u.appointmentRepo.FindByID(u.db.WithContext(ctx), appointmentID)
	if err != nil {
		u.log.Warnf("Failed to find appointment: %+v", err)
		return err
	}
	if appointment == nil {
		return ErrAppointmentNotFound
	}
	if appointment.PatientID != patientID {
		return ErrAppointmentNotOwned
	}
	if appointment.IsCancelled() {
		return ErrAppointmentAlreadyCancelled
	}

	affected, err := u.appointmentRepo.Cancel(u.db.WithContext(ctx), appointmentID)
	if err != nil {
		u.log.Warnf("Failed to cancel appointment: %+v", err)
		return err
	}
	if affected == 0 {
		// Lost the race against a concurrent cancel.
		return ErrAppointmentAlreadyCancelled
	}

	u.auditService.LogUpdate(ctx, u.db.WithContext(ctx), &patientID, entity.AuditActionAppointmentCancel, "appointment", appointmentID.String(), map[string]interface{}{
		"status": string(appointment.Status),
	}, map[string]interface{}{
		"status": string(entity.AppointmentStatusCancelled),
	})

	return nil
}
