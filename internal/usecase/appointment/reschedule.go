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

type RescheduleAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewRescheduleAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *RescheduleAppointment {
	return &RescheduleAppointment{
		repo:  repo,
		audit: audit,
	}
}

// Execute move o agendamento do cliente para um novo horário.
// A duração vem do snapshot do serviço, não do serviço atual.
// A checagem de conflito roda com lock dentro da transação de escrita,
// excluindo o próprio agendamento.
func (uc *RescheduleAppointment) Execute(
	ctx context.Context,
	userID uint,
	publicID uuid.UUID,
	newStart time.Time,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointmentByPublicID(ctx, publicID)
	if err != nil || ap.UserID != userID {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	shop, err := uc.repo.GetBarbershopByID(ctx, ap.BarbershopID)
	if err != nil {
		return nil, err
	}

	now := timezone.NowIn(shop.Timezone)
	minAllowed := now.Add(time.Duration(shop.MinAdvanceMinutes) * time.Minute)
	if !newStart.After(minAllowed) {
		return nil, httperr.ErrBusiness("slot_in_the_past")
	}

	newEnd := newStart.Add(time.Duration(ap.ServiceDurationMin) * time.Minute)

	week, configured, err := uc.repo.GetWeekSchedule(ctx, ap.BarberID)
	if err != nil {
		return nil, err
	}
	if !configured {
		return nil, httperr.ErrBusiness("working_hours_not_configured")
	}
	if !domain.WithinWorkingHours(week, newStart, newEnd) {
		return nil, httperr.ErrBusiness("outside_working_hours")
	}

	if err := domain.Reschedule(ap, newStart, now); err != nil {
		return nil, err
	}

	if err := uc.repo.SaveTimesWithMirrors(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		BarbershopID: ap.BarbershopID,
		UserID:       &userID,
		Action:       "appointment_rescheduled",
		Entity:       "appointment",
		EntityID:     &ap.ID,
	})

	return ap, nil
}
