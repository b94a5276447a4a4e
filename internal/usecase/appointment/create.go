package appointment

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	domain "github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/models"
	"github.com/BruksfildServices01/barber-booking/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	BarbershopID uint
	UserID       uint
	BarberID     uint
	ServiceID    uint

	StartAt time.Time
}

// ======================================================
// USE CASE (guard de transação da reserva)
// ======================================================

type CreateAppointment struct {
	repo  domain.Repository
	check *CheckAvailability
	audit *audit.Dispatcher
}

func NewCreateAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateAppointment {
	return &CreateAppointment{
		repo:  repo,
		check: NewCheckAvailability(repo),
		audit: audit,
	}
}

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	// --------------------------------------------------
	// 1. Barbearia / serviço / barbeiro / cliente
	// --------------------------------------------------
	shop, err := uc.repo.GetBarbershopByID(ctx, in.BarbershopID)
	if err != nil {
		return nil, httperr.ErrBusiness("barbershop_not_found")
	}

	service, err := uc.repo.GetService(ctx, in.BarbershopID, in.ServiceID)
	if err != nil || !service.Active {
		return nil, httperr.ErrBusiness("service_not_found")
	}

	barber, err := uc.repo.GetBarber(ctx, in.BarbershopID, in.BarberID)
	if err != nil {
		return nil, httperr.ErrBusiness("barber_not_found")
	}

	user, err := uc.repo.GetUser(ctx, in.UserID)
	if err != nil {
		return nil, httperr.ErrBusiness("user_not_found")
	}

	start := in.StartAt
	end := start.Add(time.Duration(service.DurationMin) * time.Minute)

	// --------------------------------------------------
	// 2. Passado / antecedência mínima
	// --------------------------------------------------
	now := timezone.NowIn(shop.Timezone)
	minAllowed := now.Add(time.Duration(shop.MinAdvanceMinutes) * time.Minute)
	if !start.After(minAllowed) {
		return nil, httperr.ErrBusiness("slot_in_the_past")
	}

	// --------------------------------------------------
	// 3. Expediente + pausas
	// --------------------------------------------------
	week, configured, err := uc.repo.GetWeekSchedule(ctx, in.BarberID)
	if err != nil {
		return nil, err
	}
	if !configured {
		return nil, httperr.ErrBusiness("working_hours_not_configured")
	}
	if !domain.WithinWorkingHours(week, start, end) {
		return nil, httperr.ErrBusiness("outside_working_hours")
	}

	// --------------------------------------------------
	// 4. Checagem consultiva (a grade pode estar velha)
	// --------------------------------------------------
	available, err := uc.check.Execute(ctx, in.BarberID, start, end)
	if err != nil {
		return nil, err
	}
	if !available {
		return nil, httperr.ErrBusiness("slot_no_longer_available")
	}

	// --------------------------------------------------
	// 5. Snapshot no momento da reserva: edições futuras
	//    de serviço/perfil não reescrevem o histórico
	// --------------------------------------------------
	ap := &models.Appointment{
		PublicID: uuid.New(),

		BarbershopID: in.BarbershopID,
		BarberID:     in.BarberID,
		UserID:       in.UserID,
		ServiceID:    in.ServiceID,

		ServiceName:        service.Name,
		ServiceDescription: service.Description,
		ServiceDurationMin: service.DurationMin,
		ServicePrice:       service.Price,
		ServiceImageURL:    service.ImageURL,

		BarberName:     barber.Name,
		BarberImageURL: barber.ImageURL,

		UserName:    user.Name,
		UserSurname: user.Surname,
		UserPhone:   user.Phone,

		StartAt: start,
		EndAt:   end,
		Status:  string(domain.InitialStatus()),
	}

	// --------------------------------------------------
	// 6. Commit atômico: re-checagem com lock + canônico
	//    + dois espelhos na mesma transação
	// --------------------------------------------------
	if err := uc.repo.CreateAppointmentWithMirrors(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		BarbershopID: in.BarbershopID,
		UserID:       &in.UserID,
		Action:       "appointment_created",
		Entity:       "appointment",
		EntityID:     &ap.ID,
	})

	return ap, nil
}
