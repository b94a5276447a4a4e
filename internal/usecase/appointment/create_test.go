package appointment

import (
	"context"
	"testing"
	"time"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	domain "github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

func testDispatcher() *audit.Dispatcher {
	return audit.NewDispatcher(audit.New(nil))
}

func openWeek() domain.WeekSchedule {
	days := map[int]domain.DayHours{}
	for wd := 0; wd < 7; wd++ {
		days[wd] = domain.DayHours{Start: "09:00", End: "18:00"}
	}
	return domain.WeekSchedule{Timezone: "UTC", SlotStepMin: 30, Days: days}
}

// futureSlot devolve um início de atendimento dentro do expediente,
// dois dias à frente do relógio real.
func futureSlot() time.Time {
	d := time.Now().UTC().AddDate(0, 0, 2)
	return time.Date(d.Year(), d.Month(), d.Day(), 10, 0, 0, 0, time.UTC)
}

func bookingRepo() *fakeRepo {
	return &fakeRepo{
		getBarbershopByID: func(ctx context.Context, id uint) (*models.Barbershop, error) {
			return &models.Barbershop{
				Name:              "Barbearia Teste",
				Timezone:          "UTC",
				MinAdvanceMinutes: 30,
			}, nil
		},
		getService: func(ctx context.Context, barbershopID, serviceID uint) (*models.Service, error) {
			return &models.Service{
				Name:        "Corte Masculino",
				DurationMin: 60,
				Price:       50,
				Active:      true,
			}, nil
		},
		getBarber: func(ctx context.Context, barbershopID, barberID uint) (*models.User, error) {
			return &models.User{Name: "Carlos"}, nil
		},
		getUser: func(ctx context.Context, userID uint) (*models.User, error) {
			return &models.User{Name: "João", Surname: "Silva", Phone: "11999990000"}, nil
		},
		getWeekSchedule: func(ctx context.Context, barberID uint) (domain.WeekSchedule, bool, error) {
			return openWeek(), true, nil
		},
	}
}

func wantBusinessCode(t *testing.T, err error, want string) {
	t.Helper()
	code, ok := httperr.BusinessCode(err)
	if !ok {
		t.Fatalf("error = %v, want business error %q", err, want)
	}
	if code != want {
		t.Fatalf("business code = %q, want %q", code, want)
	}
}

func TestCreateAppointmentHappyPath(t *testing.T) {
	repo := bookingRepo()

	var saved *models.Appointment
	repo.createWithMirrors = func(ctx context.Context, ap *models.Appointment) error {
		saved = ap
		return nil
	}

	uc := NewCreateAppointment(repo, testDispatcher())

	start := futureSlot()
	ap, err := uc.Execute(context.Background(), CreateAppointmentInput{
		BarbershopID: 1,
		UserID:       7,
		BarberID:     3,
		ServiceID:    5,
		StartAt:      start,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if saved == nil {
		t.Fatal("appointment was not persisted")
	}
	if ap.Status != string(domain.StatusPending) {
		t.Errorf("status = %q, want PENDING", ap.Status)
	}
	if ap.PublicID.String() == "00000000-0000-0000-0000-000000000000" {
		t.Error("public id was not generated")
	}
	if !ap.StartAt.Equal(start) {
		t.Errorf("start = %v, want %v", ap.StartAt, start)
	}
	if got := ap.EndAt.Sub(ap.StartAt); got != time.Hour {
		t.Errorf("duration = %v, want 1h", got)
	}

	// snapshot: preço/nome do momento da reserva
	if ap.ServiceName != "Corte Masculino" || ap.ServicePrice != 50 {
		t.Errorf("service snapshot = %q/%v", ap.ServiceName, ap.ServicePrice)
	}
	if ap.BarberName != "Carlos" || ap.UserName != "João" {
		t.Errorf("people snapshot = %q/%q", ap.BarberName, ap.UserName)
	}
}

func TestCreateAppointmentSlotTaken(t *testing.T) {
	repo := bookingRepo()

	start := futureSlot()
	repo.listBusyRanges = func(ctx context.Context, barberID uint, dayStart, dayEnd time.Time) ([]domain.TimeRange, error) {
		return []domain.TimeRange{
			{Start: start.Add(30 * time.Minute), End: start.Add(90 * time.Minute)},
		}, nil
	}

	uc := NewCreateAppointment(repo, testDispatcher())

	_, err := uc.Execute(context.Background(), CreateAppointmentInput{
		BarbershopID: 1, UserID: 7, BarberID: 3, ServiceID: 5,
		StartAt: start,
	})
	wantBusinessCode(t, err, "slot_no_longer_available")
}

func TestCreateAppointmentAbuttingBusyIsFree(t *testing.T) {
	repo := bookingRepo()

	start := futureSlot()
	repo.listBusyRanges = func(ctx context.Context, barberID uint, dayStart, dayEnd time.Time) ([]domain.TimeRange, error) {
		// ocupado termina exatamente quando o novo começa
		return []domain.TimeRange{
			{Start: start.Add(-time.Hour), End: start},
		}, nil
	}

	uc := NewCreateAppointment(repo, testDispatcher())

	if _, err := uc.Execute(context.Background(), CreateAppointmentInput{
		BarbershopID: 1, UserID: 7, BarberID: 3, ServiceID: 5,
		StartAt: start,
	}); err != nil {
		t.Fatalf("abutting range must not conflict: %v", err)
	}
}

func TestCreateAppointmentInThePast(t *testing.T) {
	uc := NewCreateAppointment(bookingRepo(), testDispatcher())

	_, err := uc.Execute(context.Background(), CreateAppointmentInput{
		BarbershopID: 1, UserID: 7, BarberID: 3, ServiceID: 5,
		StartAt: time.Now().UTC().Add(-time.Hour),
	})
	wantBusinessCode(t, err, "slot_in_the_past")
}

func TestCreateAppointmentMinAdvance(t *testing.T) {
	// 30min de antecedência mínima: daqui a 10min ainda é "passado"
	uc := NewCreateAppointment(bookingRepo(), testDispatcher())

	_, err := uc.Execute(context.Background(), CreateAppointmentInput{
		BarbershopID: 1, UserID: 7, BarberID: 3, ServiceID: 5,
		StartAt: time.Now().UTC().Add(10 * time.Minute),
	})
	wantBusinessCode(t, err, "slot_in_the_past")
}

func TestCreateAppointmentOutsideWorkingHours(t *testing.T) {
	uc := NewCreateAppointment(bookingRepo(), testDispatcher())

	d := time.Now().UTC().AddDate(0, 0, 2)
	lateNight := time.Date(d.Year(), d.Month(), d.Day(), 22, 0, 0, 0, time.UTC)

	_, err := uc.Execute(context.Background(), CreateAppointmentInput{
		BarbershopID: 1, UserID: 7, BarberID: 3, ServiceID: 5,
		StartAt: lateNight,
	})
	wantBusinessCode(t, err, "outside_working_hours")
}

func TestCreateAppointmentUnconfiguredBarber(t *testing.T) {
	repo := bookingRepo()
	repo.getWeekSchedule = func(ctx context.Context, barberID uint) (domain.WeekSchedule, bool, error) {
		return domain.WeekSchedule{}, false, nil
	}

	uc := NewCreateAppointment(repo, testDispatcher())

	_, err := uc.Execute(context.Background(), CreateAppointmentInput{
		BarbershopID: 1, UserID: 7, BarberID: 3, ServiceID: 5,
		StartAt: futureSlot(),
	})
	wantBusinessCode(t, err, "working_hours_not_configured")
}

func TestCreateAppointmentInactiveService(t *testing.T) {
	repo := bookingRepo()
	repo.getService = func(ctx context.Context, barbershopID, serviceID uint) (*models.Service, error) {
		return &models.Service{Name: "Desativado", DurationMin: 60, Active: false}, nil
	}

	uc := NewCreateAppointment(repo, testDispatcher())

	_, err := uc.Execute(context.Background(), CreateAppointmentInput{
		BarbershopID: 1, UserID: 7, BarberID: 3, ServiceID: 5,
		StartAt: futureSlot(),
	})
	wantBusinessCode(t, err, "service_not_found")
}
