package appointment

import (
	"context"

	"github.com/google/uuid"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
)

type RebuildMirrors struct {
	repo domain.Repository
}

func NewRebuildMirrors(repo domain.Repository) *RebuildMirrors {
	return &RebuildMirrors{repo: repo}
}

// Execute reconcilia os espelhos de leitura a partir do canônico.
// Só o barbeiro do agendamento pode disparar; útil quando uma
// migração ou escrita manual deixou as projeções divergentes.
func (uc *RebuildMirrors) Execute(
	ctx context.Context,
	barberID uint,
	publicID uuid.UUID,
) error {

	ap, err := uc.repo.GetAppointmentByPublicID(ctx, publicID)
	if err != nil || ap.BarberID != barberID {
		return httperr.ErrBusiness("appointment_not_found")
	}

	return uc.repo.RebuildMirrors(ctx, publicID)
}
