package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/thien1805/scrum-to-your-doctor/internal/delivery/dto"
	"github.com/thien1805/scrum-to-your-doctor/internal/domain/entity"

	"github.com/google/uuid"
)

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		t.Fatalf("bad test date %q: %v", s, err)
	}
	return d
}

type appointmentFixture struct {
	usecase         AppointmentUsecase
	appointmentRepo *fakeAppointmentRepo
	doctorID        uuid.UUID
	patientID       uuid.UUID
	schedule        *entity.DoctorSchedule
}

func newAppointmentFixture(t *testing.T) *appointmentFixture {
	t.Helper()

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
	uc := NewAppointmentUsecase(
		testDB(t),
		testLogger(),
		appointmentRepo,
		newFakeScheduleRepo(schedule),
		noopAuditService{},
		testBookingConfig(),
	)

	return &appointmentFixture{
		usecase:         uc,
		appointmentRepo: appointmentRepo,
		doctorID:        doctorID,
		patientID:       uuid.New(),
		schedule:        schedule,
	}
}

func (f *appointmentFixture) bookRequest(startTime string) *dto.BookAppointmentRequest {
	return &dto.BookAppointmentRequest{
		DoctorID:        f.doctorID,
		ScheduleID:      f.schedule.ID,
		AppointmentDate: "2026-09-14",
		StartTime:       startTime,
	}
}

func TestBookAppointment(t *testing.T) {
	f := newAppointmentFixture(t)

	req := f.bookRequest("09:30")
	req.Symptom = "  persistent cough  "
	req.Note = "prefers morning visits"

	resp, err := f.usecase.BookAppointment(context.Background(), f.patientID, req)
	if err != nil {
		t.Fatalf("BookAppointment() error = %v", err)
	}

	if resp.Status != string(entity.AppointmentStatusUpcoming) {
		t.Errorf("status = %q, want upcoming", resp.Status)
	}
	if resp.StartTime != "09:30" {
		t.Errorf("start time = %q, want 09:30", resp.StartTime)
	}
	wantNote := "Symptoms: persistent cough\nprefers morning visits"
	if resp.Note != wantNote {
		t.Errorf("note = %q, want %q", resp.Note, wantNote)
	}
}

func TestBookAppointmentNormalizesStartTime(t *testing.T) {
	f := newAppointmentFixture(t)

	resp, err := f.usecase.BookAppointment(context.Background(), f.patientID, f.bookRequest("08:30:00"))
	if err != nil {
		t.Fatalf("BookAppointment() error = %v", err)
	}
	if resp.StartTime != "08:30" {
		t.Errorf("start time = %q, want 08:30", resp.StartTime)
	}
}

func TestBookAppointmentRejectsOffGridStart(t *testing.T) {
	f := newAppointmentFixture(t)

	for _, start := range []string{"09:15", "07:30", "17:00", "16:45", "junk"} {
		if _, err := f.usecase.BookAppointment(context.Background(), f.patientID, f.bookRequest(start)); !errors.Is(err, ErrSlotOutsideWindow) {
			t.Errorf("BookAppointment(%q) error = %v, want ErrSlotOutsideWindow", start, err)
		}
	}
}

func TestBookAppointmentRejectsLunchSlots(t *testing.T) {
	f := newAppointmentFixture(t)

	for _, start := range []string{"11:00", "11:30", "12:00", "12:30"} {
		if _, err := f.usecase.BookAppointment(context.Background(), f.patientID, f.bookRequest(start)); !errors.Is(err, ErrSlotOutsideWindow) {
			t.Errorf("BookAppointment(%q) error = %v, want ErrSlotOutsideWindow", start, err)
		}
	}

	// Boundary slots on both sides of the break stay bookable.
	if _, err := f.usecase.BookAppointment(context.Background(), f.patientID, f.bookRequest("10:30")); err != nil {
		t.Errorf("BookAppointment(10:30) error = %v", err)
	}
	if _, err := f.usecase.BookAppointment(context.Background(), f.patientID, f.bookRequest("13:00")); err != nil {
		t.Errorf("BookAppointment(13:00) error = %v", err)
	}
}

func TestBookAppointmentScheduleMismatch(t *testing.T) {
	f := newAppointmentFixture(t)

	req := f.bookRequest("09:00")
	req.DoctorID = uuid.New()
	if _, err := f.usecase.BookAppointment(context.Background(), f.patientID, req); !errors.Is(err, ErrScheduleMismatch) {
		t.Errorf("wrong doctor error = %v, want ErrScheduleMismatch", err)
	}

	req = f.bookRequest("09:00")
	req.AppointmentDate = "2026-09-15"
	if _, err := f.usecase.BookAppointment(context.Background(), f.patientID, req); !errors.Is(err, ErrScheduleMismatch) {
		t.Errorf("wrong date error = %v, want ErrScheduleMismatch", err)
	}

	req = f.bookRequest("09:00")
	req.ScheduleID = 99
	if _, err := f.usecase.BookAppointment(context.Background(), f.patientID, req); !errors.Is(err, ErrScheduleNotFound) {
		t.Errorf("unknown schedule error = %v, want ErrScheduleNotFound", err)
	}
}

func TestBookAppointmentUnavailableWindow(t *testing.T) {
	f := newAppointmentFixture(t)
	f.schedule.IsAvailable = false

	if _, err := f.usecase.BookAppointment(context.Background(), f.patientID, f.bookRequest("09:00")); !errors.Is(err, ErrSlotOutsideWindow) {
		t.Errorf("BookAppointment() error = %v, want ErrSlotOutsideWindow", err)
	}
}

func TestBookAppointmentSlotConflict(t *testing.T) {
	f := newAppointmentFixture(t)

	if _, err := f.usecase.BookAppointment(context.Background(), f.patientID, f.bookRequest("10:00")); err != nil {
		t.Fatalf("first booking error = %v", err)
	}

	if _, err := f.usecase.BookAppointment(context.Background(), uuid.New(), f.bookRequest("10:00")); !errors.Is(err, ErrSlotTaken) {
		t.Errorf("second booking error = %v, want ErrSlotTaken", err)
	}
}

func TestBookAppointmentConcurrentSingleWinner(t *testing.T) {
	f := newAppointmentFixture(t)

	const racers = 16
	var wg sync.WaitGroup
	errs := make([]error, racers)

	for i := 0; i < racers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = f.usecase.BookAppointment(context.Background(), uuid.New(), f.bookRequest("14:00"))
		}(i)
	}
	wg.Wait()

	won := 0
	for i, err := range errs {
		switch {
		case err == nil:
			won++
		case errors.Is(err, ErrSlotTaken):
		default:
			t.Errorf("racer %d: unexpected error %v", i, err)
		}
	}
	if won != 1 {
		t.Errorf("winners = %d, want exactly 1", won)
	}
}

func TestBookAppointmentAfterCancel(t *testing.T) {
	f := newAppointmentFixture(t)

	first, err := f.usecase.BookAppointment(context.Background(), f.patientID, f.bookRequest("15:00"))
	if err != nil {
		t.Fatalf("first booking error = %v", err)
	}

	if err := f.usecase.CancelAppointment(context.Background(), f.patientID, first.ID); err != nil {
		t.Fatalf("CancelAppointment() error = %v", err)
	}

	// Cancelled rows release the slot for any patient.
	if _, err := f.usecase.BookAppointment(context.Background(), uuid.New(), f.bookRequest("15:00")); err != nil {
		t.Errorf("rebooking error = %v, want nil", err)
	}
}

func TestCancelAppointment(t *testing.T) {
	f := newAppointmentFixture(t)

	booked, err := f.usecase.BookAppointment(context.Background(), f.patientID, f.bookRequest("09:00"))
	if err != nil {
		t.Fatalf("BookAppointment() error = %v", err)
	}

	if err := f.usecase.CancelAppointment(context.Background(), uuid.New(), booked.ID); !errors.Is(err, ErrAppointmentNotOwned) {
		t.Errorf("foreign cancel error = %v, want ErrAppointmentNotOwned", err)
	}

	if err := f.usecase.CancelAppointment(context.Background(), f.patientID, booked.ID); err != nil {
		t.Fatalf("CancelAppointment() error = %v", err)
	}

	if err := f.usecase.CancelAppointment(context.Background(), f.patientID, booked.ID); !errors.Is(err, ErrAppointmentAlreadyCancelled) {
		t.Errorf("repeat cancel error = %v, want ErrAppointmentAlreadyCancelled", err)
	}

	if err := f.usecase.CancelAppointment(context.Background(), f.patientID, uuid.New()); !errors.Is(err, ErrAppointmentNotFound) {
		t.Errorf("unknown id error = %v, want ErrAppointmentNotFound", err)
	}
}

func TestListMyAppointments(t *testing.T) {
	f := newAppointmentFixture(t)

	if _, err := f.usecase.BookAppointment(context.Background(), f.patientID, f.bookRequest("09:00")); err != nil {
		t.Fatalf("BookAppointment() error = %v", err)
	}
	if _, err := f.usecase.BookAppointment(context.Background(), f.patientID, f.bookRequest("09:30")); err != nil {
		t.Fatalf("BookAppointment() error = %v", err)
	}

	appointments, err := f.usecase.ListMyAppointments(context.Background(), f.patientID, "", "")
	if err != nil {
		t.Fatalf("ListMyAppointments() error = %v", err)
	}
	if len(appointments) != 2 {
		t.Errorf("len = %d, want 2", len(appointments))
	}
	if f.appointmentRepo.lastSort == nil || f.appointmentRepo.lastSort.SortAscending {
		t.Errorf("default sort should be descending, got %+v", f.appointmentRepo.lastSort)
	}

	if _, err := f.usecase.ListMyAppointments(context.Background(), f.patientID, "upcoming", "asc"); err != nil {
		t.Fatalf("ListMyAppointments() error = %v", err)
	}
	if f.appointmentRepo.lastSort == nil || !f.appointmentRepo.lastSort.SortAscending {
		t.Errorf("sort=asc should flip direction, got %+v", f.appointmentRepo.lastSort)
	}
	if f.appointmentRepo.lastSort.Status != "upcoming" {
		t.Errorf("status filter = %q, want upcoming", f.appointmentRepo.lastSort.Status)
	}

	// Any other sort value keeps the default direction.
	if _, err := f.usecase.ListMyAppointments(context.Background(), f.patientID, "", "newest"); err != nil {
		t.Fatalf("ListMyAppointments() error = %v", err)
	}
	if f.appointmentRepo.lastSort.SortAscending {
		t.Error("unknown sort value should keep descending order")
	}

	if _, err := f.usecase.ListMyAppointments(context.Background(), f.patientID, "pending", ""); !errors.Is(err, ErrInvalidStatusFilter) {
		t.Errorf("bad status error = %v, want ErrInvalidStatusFilter", err)
	}

	other, err := f.usecase.ListMyAppointments(context.Background(), uuid.New(), "", "")
	if err != nil {
		t.Fatalf("ListMyAppointments() error = %v", err)
	}
	if len(other) != 0 {
		t.Errorf("another patient sees %d appointments, want 0", len(other))
	}
}
