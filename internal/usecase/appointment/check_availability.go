package appointment

import (
	"context"
	"time"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
)

type CheckAvailability struct {
	repo domain.Repository
}

func NewCheckAvailability(repo domain.Repository) *CheckAvailability {
	return &CheckAvailability{repo: repo}
}

// Execute busca os agendamentos PENDING/CONFIRMED do barbeiro no dia
// de startAt e aplica o teste de sobreposição meio-aberta em memória.
//
// Fora de transação esta resposta é consultiva: outro cliente pode
// reservar entre a leitura e o commit. A palavra final é da re-checagem
// com lock dentro de CreateAppointmentWithMirrors e da constraint de
// exclusão do banco.
func (uc *CheckAvailability) Execute(
	ctx context.Context,
	barberID uint,
	startAt time.Time,
	endAt time.Time,
) (bool, error) {

	dayStart := time.Date(
		startAt.Year(), startAt.Month(), startAt.Day(),
		0, 0, 0, 0,
		startAt.Location(),
	)
	dayEnd := dayStart.Add(24 * time.Hour)

	busy, err := uc.repo.ListBusyRanges(ctx, barberID, dayStart, dayEnd)
	if err != nil {
		return false, err
	}

	for _, b := range busy {
		if domain.Overlaps(startAt, endAt, b.Start, b.End) {
			return false, nil
		}
	}

	return true, nil
}
