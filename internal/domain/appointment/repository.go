package appointment

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/barber-booking/internal/models"
)

type Repository interface {
	// -------- Barbershop --------
	GetBarbershopByID(
		ctx context.Context,
		id uint,
	) (*models.Barbershop, error)

	GetBarbershopBySlug(
		ctx context.Context,
		slug string,
	) (*models.Barbershop, error)

	// -------- Service / people --------
	GetService(
		ctx context.Context,
		barbershopID uint,
		serviceID uint,
	) (*models.Service, error)

	GetBarber(
		ctx context.Context,
		barbershopID uint,
		barberID uint,
	) (*models.User, error)

	GetUser(
		ctx context.Context,
		userID uint,
	) (*models.User, error)

	// -------- Working hours --------
	GetWeekSchedule(
		ctx context.Context,
		barberID uint,
	) (WeekSchedule, bool, error)

	// -------- Busy ranges (PENDING/CONFIRMED apenas) --------
	ListBusyRanges(
		ctx context.Context,
		barberID uint,
		dayStart time.Time,
		dayEnd time.Time,
	) ([]TimeRange, error)

	// -------- Appointment (guarded writes) --------
	CreateAppointmentWithMirrors(
		ctx context.Context,
		ap *models.Appointment,
	) error

	SaveStatusWithMirrors(
		ctx context.Context,
		ap *models.Appointment,
	) error

	SaveTimesWithMirrors(
		ctx context.Context,
		ap *models.Appointment,
	) error

	RebuildMirrors(
		ctx context.Context,
		publicID uuid.UUID,
	) error

	// -------- Appointment (reads) --------
	GetAppointmentByPublicID(
		ctx context.Context,
		publicID uuid.UUID,
	) (*models.Appointment, error)

	ListUpcomingForUser(
		ctx context.Context,
		userID uint,
		now time.Time,
	) (*models.UserAppointment, error)

	ListPastForUser(
		ctx context.Context,
		userID uint,
		before time.Time,
		limit int,
	) ([]models.UserAppointment, error)

	ListBarberPeriod(
		ctx context.Context,
		barberID uint,
		start time.Time,
		end time.Time,
	) ([]models.BarberAppointment, error)
}
