package appointment

import (
	"context"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	domain "github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/models"
	"github.com/BruksfildServices01/barber-booking/internal/timezone"
)

type CancelAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCancelAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CancelAppointment {
	return &CancelAppointment{
		repo:  repo,
		audit: audit,
	}
}

// Execute cancela pelo cliente dono OU pelo barbeiro do agendamento.
// Cancelamento nunca apaga o registro: transição de status apenas, e o
// horário volta a ficar livre porque CANCELED sai das faixas ocupadas.
func (uc *CancelAppointment) Execute(
	ctx context.Context,
	actorID uint,
	actorRole string,
	publicID uuid.UUID,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointmentByPublicID(ctx, publicID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	isOwnerUser := actorRole == models.RoleClient && ap.UserID == actorID
	isOwnerBarber := actorRole != models.RoleClient && ap.BarberID == actorID
	if !isOwnerUser && !isOwnerBarber {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	shop, err := uc.repo.GetBarbershopByID(ctx, ap.BarbershopID)
	if err != nil {
		return nil, err
	}

	now := timezone.NowIn(shop.Timezone)
	if err := domain.Cancel(ap, now); err != nil {
		return nil, err
	}

	if err := uc.repo.SaveStatusWithMirrors(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		BarbershopID: ap.BarbershopID,
		UserID:       &actorID,
		Action:       "appointment_canceled",
		Entity:       "appointment",
		EntityID:     &ap.ID,
	})

	return ap, nil
}
