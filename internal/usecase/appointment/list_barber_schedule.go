package appointment

import (
	"context"
	"time"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking/internal/models"
	"github.com/BruksfildServices01/barber-booking/internal/timezone"
)

type BarberAppointmentView struct {
	models.BarberAppointment
	DisplayStatus string `json:"display_status"`
}

type ListBarberSchedule struct {
	repo domain.Repository
}

func NewListBarberSchedule(repo domain.Repository) *ListBarberSchedule {
	return &ListBarberSchedule{repo: repo}
}

func (uc *ListBarberSchedule) ByDate(
	ctx context.Context,
	barberID uint,
	date time.Time,
) ([]BarberAppointmentView, error) {

	start := time.Date(
		date.Year(), date.Month(), date.Day(),
		0, 0, 0, 0,
		date.Location(),
	)
	end := start.Add(24 * time.Hour)

	return uc.list(ctx, barberID, start, end)
}

func (uc *ListBarberSchedule) ByMonth(
	ctx context.Context,
	barberID uint,
	year int,
	month int,
	loc *time.Location,
) ([]BarberAppointmentView, error) {

	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, loc)
	end := start.AddDate(0, 1, 0)

	return uc.list(ctx, barberID, start, end)
}

func (uc *ListBarberSchedule) list(
	ctx context.Context,
	barberID uint,
	start time.Time,
	end time.Time,
) ([]BarberAppointmentView, error) {

	mirrors, err := uc.repo.ListBarberPeriod(ctx, barberID, start, end)
	if err != nil {
		return nil, err
	}

	now := timezone.Now()

	views := make([]BarberAppointmentView, 0, len(mirrors))
	for _, m := range mirrors {
		views = append(views, BarberAppointmentView{
			BarberAppointment: m,
			DisplayStatus: string(domain.DeriveDisplay(
				domain.Status(m.Status), m.EndAt, now,
			)),
		})
	}
	return views, nil
}
