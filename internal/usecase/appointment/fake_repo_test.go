package appointment

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

var errNotFound = errors.New("not found")

// fakeRepo implementa domain.Repository com campos de função:
// cada teste sobrescreve só o que usa.
type fakeRepo struct {
	getBarbershopByID   func(ctx context.Context, id uint) (*models.Barbershop, error)
	getBarbershopBySlug func(ctx context.Context, slug string) (*models.Barbershop, error)
	getService          func(ctx context.Context, barbershopID, serviceID uint) (*models.Service, error)
	getBarber           func(ctx context.Context, barbershopID, barberID uint) (*models.User, error)
	getUser             func(ctx context.Context, userID uint) (*models.User, error)
	getWeekSchedule     func(ctx context.Context, barberID uint) (domain.WeekSchedule, bool, error)
	listBusyRanges      func(ctx context.Context, barberID uint, dayStart, dayEnd time.Time) ([]domain.TimeRange, error)

	createWithMirrors func(ctx context.Context, ap *models.Appointment) error
	saveStatus        func(ctx context.Context, ap *models.Appointment) error
	saveTimes         func(ctx context.Context, ap *models.Appointment) error
	rebuildMirrors    func(ctx context.Context, publicID uuid.UUID) error

	getByPublicID       func(ctx context.Context, publicID uuid.UUID) (*models.Appointment, error)
	listUpcomingForUser func(ctx context.Context, userID uint, now time.Time) (*models.UserAppointment, error)
	listPastForUser     func(ctx context.Context, userID uint, before time.Time, limit int) ([]models.UserAppointment, error)
	listBarberPeriod    func(ctx context.Context, barberID uint, start, end time.Time) ([]models.BarberAppointment, error)
}

var _ domain.Repository = (*fakeRepo)(nil)

func (f *fakeRepo) GetBarbershopByID(ctx context.Context, id uint) (*models.Barbershop, error) {
	if f.getBarbershopByID == nil {
		return nil, errNotFound
	}
	return f.getBarbershopByID(ctx, id)
}

func (f *fakeRepo) GetBarbershopBySlug(ctx context.Context, slug string) (*models.Barbershop, error) {
	if f.getBarbershopBySlug == nil {
		return nil, errNotFound
	}
	return f.getBarbershopBySlug(ctx, slug)
}

func (f *fakeRepo) GetService(ctx context.Context, barbershopID, serviceID uint) (*models.Service, error) {
	if f.getService == nil {
		return nil, errNotFound
	}
	return f.getService(ctx, barbershopID, serviceID)
}

func (f *fakeRepo) GetBarber(ctx context.Context, barbershopID, barberID uint) (*models.User, error) {
	if f.getBarber == nil {
		return nil, errNotFound
	}
	return f.getBarber(ctx, barbershopID, barberID)
}

func (f *fakeRepo) GetUser(ctx context.Context, userID uint) (*models.User, error) {
	if f.getUser == nil {
		return nil, errNotFound
	}
	return f.getUser(ctx, userID)
}

func (f *fakeRepo) GetWeekSchedule(ctx context.Context, barberID uint) (domain.WeekSchedule, bool, error) {
	if f.getWeekSchedule == nil {
		return domain.WeekSchedule{}, false, nil
	}
	return f.getWeekSchedule(ctx, barberID)
}

func (f *fakeRepo) ListBusyRanges(ctx context.Context, barberID uint, dayStart, dayEnd time.Time) ([]domain.TimeRange, error) {
	if f.listBusyRanges == nil {
		return nil, nil
	}
	return f.listBusyRanges(ctx, barberID, dayStart, dayEnd)
}

func (f *fakeRepo) CreateAppointmentWithMirrors(ctx context.Context, ap *models.Appointment) error {
	if f.createWithMirrors == nil {
		return nil
	}
	return f.createWithMirrors(ctx, ap)
}

func (f *fakeRepo) SaveStatusWithMirrors(ctx context.Context, ap *models.Appointment) error {
	if f.saveStatus == nil {
		return nil
	}
	return f.saveStatus(ctx, ap)
}

func (f *fakeRepo) SaveTimesWithMirrors(ctx context.Context, ap *models.Appointment) error {
	if f.saveTimes == nil {
		return nil
	}
	return f.saveTimes(ctx, ap)
}

func (f *fakeRepo) RebuildMirrors(ctx context.Context, publicID uuid.UUID) error {
	if f.rebuildMirrors == nil {
		return nil
	}
	return f.rebuildMirrors(ctx, publicID)
}

func (f *fakeRepo) GetAppointmentByPublicID(ctx context.Context, publicID uuid.UUID) (*models.Appointment, error) {
	if f.getByPublicID == nil {
		return nil, errNotFound
	}
	return f.getByPublicID(ctx, publicID)
}

func (f *fakeRepo) ListUpcomingForUser(ctx context.Context, userID uint, now time.Time) (*models.UserAppointment, error) {
	if f.listUpcomingForUser == nil {
		return nil, nil
	}
	return f.listUpcomingForUser(ctx, userID, now)
}

func (f *fakeRepo) ListPastForUser(ctx context.Context, userID uint, before time.Time, limit int) ([]models.UserAppointment, error) {
	if f.listPastForUser == nil {
		return nil, nil
	}
	return f.listPastForUser(ctx, userID, before, limit)
}

func (f *fakeRepo) ListBarberPeriod(ctx context.Context, barberID uint, start, end time.Time) ([]models.BarberAppointment, error) {
	if f.listBarberPeriod == nil {
		return nil, nil
	}
	return f.listBarberPeriod(ctx, barberID, start, end)
}
