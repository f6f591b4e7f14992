package usecase

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/thien1805/scrum-to-your-doctor/config"
	"github.com/thien1805/scrum-to-your-doctor/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/utils/tests"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(tests.DummyDialector{}, &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open dummy db: %v", err)
	}
	return db
}

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return log
}

func testBookingConfig() config.BookingConfig {
	return config.BookingConfig{
		SlotDuration:    30 * time.Minute,
		LunchBreakStart: "11:00",
		LunchBreakEnd:   "13:00",
	}
}

// slotKey identifies one bookable slot the way uq_appointments_slot does.
func slotKey(doctorID uuid.UUID, date time.Time, start string) string {
	return fmt.Sprintf("%s|%s|%s", doctorID, date.Format("2006-01-02"), start)
}

// fakeAppointmentRepo mimics the appointments table including the partial
// unique index: inserting a second non-cancelled row for an occupied slot
// fails with the same pgconn error PostgreSQL would raise.
type fakeAppointmentRepo struct {
	mu       sync.Mutex
	byID     map[uuid.UUID]*entity.Appointment
	bySlot   map[string]uuid.UUID
	lastSort *entity.AppointmentFilter
}

func newFakeAppointmentRepo() *fakeAppointmentRepo {
	return &fakeAppointmentRepo{
		byID:   make(map[uuid.UUID]*entity.Appointment),
		bySlot: make(map[string]uuid.UUID),
	}
}

func (f *fakeAppointmentRepo) Create(db *gorm.DB, appointment *entity.Appointment) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	key := slotKey(appointment.DoctorID, appointment.AppointmentDate, appointment.StartTime)
	if existingID, ok := f.bySlot[key]; ok {
		if existing := f.byID[existingID]; existing != nil && !existing.IsCancelled() {
			return &pgconn.PgError{Code: "23505", ConstraintName: "uq_appointments_slot"}
		}
	}

	stored := *appointment
	f.byID[stored.ID] = &stored
	f.bySlot[key] = stored.ID
	return nil
}

func (f *fakeAppointmentRepo) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	appointment, ok := f.byID[id]
	if !ok {
		return nil, nil
	}
	copied := *appointment
	return &copied, nil
}

func (f *fakeAppointmentRepo) FindByPatient(db *gorm.DB, patientID uuid.UUID, filter *entity.AppointmentFilter) ([]entity.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.lastSort = filter

	var result []entity.Appointment
	for _, a := range f.byID {
		if a.PatientID != patientID {
			continue
		}
		if filter != nil && filter.Status != "" && string(a.Status) != filter.Status {
			continue
		}
		result = append(result, *a)
	}
	return result, nil
}

func (f *fakeAppointmentRepo) BookedStartTimes(db *gorm.DB, doctorID uuid.UUID, date time.Time) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var starts []string
	for _, a := range f.byID {
		if a.DoctorID == doctorID && a.AppointmentDate.Equal(date) && !a.IsCancelled() {
			starts = append(starts, a.StartTime)
		}
	}
	return starts, nil
}

func (f *fakeAppointmentRepo) Cancel(db *gorm.DB, id uuid.UUID) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	appointment, ok := f.byID[id]
	if !ok || appointment.IsCancelled() {
		return 0, nil
	}
	appointment.Status = entity.AppointmentStatusCancelled
	return 1, nil
}

type fakeScheduleRepo struct {
	schedules map[int]*entity.DoctorSchedule
}

func newFakeScheduleRepo(schedules ...*entity.DoctorSchedule) *fakeScheduleRepo {
	repo := &fakeScheduleRepo{schedules: make(map[int]*entity.DoctorSchedule)}
	for _, s := range schedules {
		repo.schedules[s.ID] = s
	}
	return repo
}

func (f *fakeScheduleRepo) Create(db *gorm.DB, schedule *entity.DoctorSchedule) error {
	f.schedules[schedule.ID] = schedule
	return nil
}

func (f *fakeScheduleRepo) FindByID(db *gorm.DB, id int) (*entity.DoctorSchedule, error) {
	schedule, ok := f.schedules[id]
	if !ok {
		return nil, nil
	}
	copied := *schedule
	return &copied, nil
}

func (f *fakeScheduleRepo) FindAvailableByDoctorID(db *gorm.DB, doctorID uuid.UUID) ([]entity.DoctorSchedule, error) {
	var result []entity.DoctorSchedule
	for _, s := range f.schedules {
		if s.DoctorID == doctorID && s.IsAvailable {
			result = append(result, *s)
		}
	}
	return result, nil
}

func (f *fakeScheduleRepo) FindByDoctorAndDate(db *gorm.DB, doctorID uuid.UUID, date time.Time) (*entity.DoctorSchedule, error) {
	for _, s := range f.schedules {
		if s.DoctorID == doctorID && s.WorkDate.Equal(date) {
			copied := *s
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeScheduleRepo) Update(db *gorm.DB, schedule *entity.DoctorSchedule) error {
	f.schedules[schedule.ID] = schedule
	return nil
}

func (f *fakeScheduleRepo) Delete(db *gorm.DB, id int) (int64, error) {
	if _, ok := f.schedules[id]; !ok {
		return 0, nil
	}
	delete(f.schedules, id)
	return 1, nil
}

type fakeDoctorProfileRepo struct {
	profiles map[uuid.UUID]*entity.DoctorProfile
}

func newFakeDoctorProfileRepo(profiles ...*entity.DoctorProfile) *fakeDoctorProfileRepo {
	repo := &fakeDoctorProfileRepo{profiles: make(map[uuid.UUID]*entity.DoctorProfile)}
	for _, p := range profiles {
		repo.profiles[p.UserID] = p
	}
	return repo
}

func (f *fakeDoctorProfileRepo) Create(ctx context.Context, db *gorm.DB, profile *entity.DoctorProfile) error {
	f.profiles[profile.UserID] = profile
	return nil
}

func (f *fakeDoctorProfileRepo) FindByUserID(ctx context.Context, db *gorm.DB, userID uuid.UUID) (*entity.DoctorProfile, error) {
	profile, ok := f.profiles[userID]
	if !ok {
		return nil, nil
	}
	return profile, nil
}

func (f *fakeDoctorProfileRepo) FindAll(ctx context.Context, db *gorm.DB, specialtyID *int) ([]entity.DoctorProfile, error) {
	var result []entity.DoctorProfile
	for _, p := range f.profiles {
		if specialtyID != nil && p.SpecialtyID != *specialtyID {
			continue
		}
		result = append(result, *p)
	}
	return result, nil
}

func (f *fakeDoctorProfileRepo) Update(ctx context.Context, db *gorm.DB, profile *entity.DoctorProfile) error {
	f.profiles[profile.UserID] = profile
	return nil
}

type fakeSpecialtyRepo struct {
	specialties []entity.Specialty
	err         error
}

func (f *fakeSpecialtyRepo) Create(db *gorm.DB, specialty *entity.Specialty) error { return nil }

func (f *fakeSpecialtyRepo) FindAll(db *gorm.DB) ([]entity.Specialty, error) {
	return f.specialties, f.err
}

func (f *fakeSpecialtyRepo) FindByID(db *gorm.DB, id int) (*entity.Specialty, error) {
	for i := range f.specialties {
		if f.specialties[i].ID == id {
			return &f.specialties[i], nil
		}
	}
	return nil, nil
}

func (f *fakeSpecialtyRepo) Update(db *gorm.DB, specialty *entity.Specialty) error { return nil }

func (f *fakeSpecialtyRepo) Delete(db *gorm.DB, id int) (int64, error) { return 1, nil }

// noopAuditService satisfies service.AuditService without touching storage.
type noopAuditService struct{}

func (noopAuditService) LogCreate(ctx context.Context, tx *gorm.DB, userID *uuid.UUID, action string, entityName string, entityID string, newValue interface{}) error {
	return nil
}

func (noopAuditService) LogUpdate(ctx context.Context, tx *gorm.DB, userID *uuid.UUID, action string, entityName string, entityID string, oldValue, newValue interface{}) error {
	return nil
}

func (noopAuditService) LogDelete(ctx context.Context, tx *gorm.DB, userID *uuid.UUID, action string, entityName string, entityID string, oldValue interface{}) error {
	return nil
}
