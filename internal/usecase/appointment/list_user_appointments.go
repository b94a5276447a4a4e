package appointment

import (
	"context"
	"time"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking/internal/models"
	"github.com/BruksfildServices01/barber-booking/internal/timezone"
)

// Leituras do cliente saem do espelho users/appointments,
// nunca da tabela canônica (projeção de leitura).

type UserAppointmentView struct {
	models.UserAppointment
	DisplayStatus string `json:"display_status"`
}

type ListUserAppointments struct {
	repo domain.Repository
}

func NewListUserAppointments(repo domain.Repository) *ListUserAppointments {
	return &ListUserAppointments{repo: repo}
}

func (uc *ListUserAppointments) Upcoming(
	ctx context.Context,
	userID uint,
) (*UserAppointmentView, error) {

	now := timezone.Now()

	mirror, err := uc.repo.ListUpcomingForUser(ctx, userID, now)
	if err != nil {
		return nil, err
	}
	if mirror == nil {
		return nil, nil
	}

	view := userView(*mirror, now)
	return &view, nil
}

func (uc *ListUserAppointments) Past(
	ctx context.Context,
	userID uint,
	limit int,
) ([]UserAppointmentView, error) {

	now := timezone.Now()

	mirrors, err := uc.repo.ListPastForUser(ctx, userID, now, limit)
	if err != nil {
		return nil, err
	}

	views := make([]UserAppointmentView, 0, len(mirrors))
	for _, m := range mirrors {
		views = append(views, userView(m, now))
	}
	return views, nil
}

func userView(m models.UserAppointment, now time.Time) UserAppointmentView {
	return UserAppointmentView{
		UserAppointment: m,
		DisplayStatus: string(domain.DeriveDisplay(
			domain.Status(m.Status), m.EndAt, now,
		)),
	}
}
