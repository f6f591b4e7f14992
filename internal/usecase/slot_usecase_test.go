package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/thien1805/scrum-to-your-doctor/internal/domain/entity"

	"github.com/google/uuid"
)

func TestGetAvailableSlots(t *testing.T) {
	doctorID := uuid.New()
	schedule := &entity.DoctorSchedule{
		ID:          1,
		DoctorID:    doctorID,
		WorkDate:    mustDate(t, "2026-09-14"),
		StartTime:   "08:00",
		EndTime:     "17:00",
		IsAvailable: true,
	}

	appointmentRepo := newFakeAppointmentRepo()
	uc := NewSlotUsecase(testDB(t), testLogger(), newFakeScheduleRepo(schedule), appointmentRepo, testBookingConfig())

	resp, err := uc.GetAvailableSlots(context.Background(), doctorID, "2026-09-14")
	if err != nil {
		t.Fatalf("GetAvailableSlots() error = %v", err)
	}

	// 18 half-hour increments in 08:00-17:00 minus 4 lunch slots.
	if len(resp.Slots) != 14 {
		t.Fatalf("len(slots) = %d, want 14", len(resp.Slots))
	}

	starts := make(map[string]bool, len(resp.Slots))
	for _, slot := range resp.Slots {
		starts[slot.StartTime] = true
		if slot.Booked {
			t.Errorf("slot %s marked booked on empty calendar", slot.StartTime)
		}
	}
	for _, lunch := range []string{"11:00", "11:30", "12:00", "12:30"} {
		if starts[lunch] {
			t.Errorf("lunch slot %s should not be offered", lunch)
		}
	}
	if !starts["10:30"] || !starts["13:00"] {
		t.Error("boundary slots 10:30 and 13:00 should be offered")
	}
}

func TestGetAvailableSlotsMarksBooked(t *testing.T) {
	doctorID := uuid.New()
	schedule := &entity.DoctorSchedule{
		ID:          1,
		DoctorID:    doctorID,
		WorkDate:    mustDate(t, "2026-09-14"),
		StartTime:   "08:00",
		EndTime:     "10:00",
		IsAvailable: true,
	}

	appointmentRepo := newFakeAppointmentRepo()
	// The time column hands back seconds; occupancy must still line up.
	appointmentRepo.Create(nil, &entity.Appointment{
		ID:              uuid.New(),
		DoctorID:        doctorID,
		PatientID:       uuid.New(),
		ScheduleID:      1,
		AppointmentDate: mustDate(t, "2026-09-14"),
		StartTime:       "08:30:00",
		Status:          entity.AppointmentStatusUpcoming,
	})
	cancelled := &entity.Appointment{
		ID:              uuid.New(),
		DoctorID:        doctorID,
		PatientID:       uuid.New(),
		ScheduleID:      1,
		AppointmentDate: mustDate(t, "2026-09-14"),
		StartTime:       "09:00:00",
		Status:          entity.AppointmentStatusCancelled,
	}
	appointmentRepo.byID[cancelled.ID] = cancelled

	uc := NewSlotUsecase(testDB(t), testLogger(), newFakeScheduleRepo(schedule), appointmentRepo, testBookingConfig())

	resp, err := uc.GetAvailableSlots(context.Background(), doctorID, "2026-09-14")
	if err != nil {
		t.Fatalf("GetAvailableSlots() error = %v", err)
	}

	booked := make(map[string]bool, len(resp.Slots))
	for _, slot := range resp.Slots {
		booked[slot.StartTime] = slot.Booked
	}
	if !booked["08:30"] {
		t.Error("08:30 should be marked booked")
	}
	if booked["08:00"] || booked["09:30"] {
		t.Error("free slots marked as booked")
	}
	if booked["09:00"] {
		t.Error("cancelled appointment should not occupy 09:00")
	}
}

func TestGetAvailableSlotsNoWindow(t *testing.T) {
	doctorID := uuid.New()
	uc := NewSlotUsecase(testDB(t), testLogger(), newFakeScheduleRepo(), newFakeAppointmentRepo(), testBookingConfig())

	resp, err := uc.GetAvailableSlots(context.Background(), doctorID, "2026-09-14")
	if err != nil {
		t.Fatalf("GetAvailableSlots() error = %v", err)
	}
	if len(resp.Slots) != 0 {
		t.Errorf("len(slots) = %d, want 0", len(resp.Slots))
	}
	if resp.Slots == nil {
		t.Error("slots should be an empty list, not nil")
	}
}

func TestGetAvailableSlotsUnavailableWindow(t *testing.T) {
	doctorID := uuid.New()
	schedule := &entity.DoctorSchedule{
		ID:          1,
		DoctorID:    doctorID,
		WorkDate:    mustDate(t, "2026-09-14"),
		StartTime:   "08:00",
		EndTime:     "17:00",
		IsAvailable: false,
	}

	uc := NewSlotUsecase(testDB(t), testLogger(), newFakeScheduleRepo(schedule), newFakeAppointmentRepo(), testBookingConfig())

	resp, err := uc.GetAvailableSlots(context.Background(), doctorID, "2026-09-14")
	if err != nil {
		t.Fatalf("GetAvailableSlots() error = %v", err)
	}
	if len(resp.Slots) != 0 {
		t.Errorf("len(slots) = %d, want 0 for unavailable window", len(resp.Slots))
	}
}

func TestGetAvailableSlotsBadDate(t *testing.T) {
	uc := NewSlotUsecase(testDB(t), testLogger(), newFakeScheduleRepo(), newFakeAppointmentRepo(), testBookingConfig())

	if _, err := uc.GetAvailableSlots(context.Background(), uuid.New(), "14-09-2026"); !errors.Is(err, ErrInvalidSlotDate) {
		t.Errorf("GetAvailableSlots() error = %v, want ErrInvalidSlotDate", err)
	}
}
