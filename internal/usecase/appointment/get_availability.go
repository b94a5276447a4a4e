package appointment

import (
	"context"
	"time"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/timezone"
)

// ======================================================
// INPUT / OUTPUT
// ======================================================

type AvailabilityInput struct {
	BarbershopID uint
	BarberID     uint
	ServiceID    uint
	Date         time.Time
}

// DayState chega até a UI: "nunca configurado" e "fechado hoje"
// mostram mensagens diferentes, ambos sem slots.
type AvailabilityResult struct {
	Slots    []domain.Slot
	DayState domain.DayState
}

// ======================================================
// USE CASE
// ======================================================

type GetAvailability struct {
	repo domain.Repository
}

func NewGetAvailability(repo domain.Repository) *GetAvailability {
	return &GetAvailability{repo: repo}
}

func (uc *GetAvailability) Execute(
	ctx context.Context,
	in AvailabilityInput,
) (*AvailabilityResult, error) {

	shop, err := uc.repo.GetBarbershopByID(ctx, in.BarbershopID)
	if err != nil {
		return nil, httperr.ErrBusiness("barbershop_not_found")
	}

	service, err := uc.repo.GetService(ctx, in.BarbershopID, in.ServiceID)
	if err != nil || !service.Active {
		return nil, httperr.ErrBusiness("service_not_found")
	}

	if _, err := uc.repo.GetBarber(ctx, in.BarbershopID, in.BarberID); err != nil {
		return nil, httperr.ErrBusiness("barber_not_found")
	}

	week, configured, err := uc.repo.GetWeekSchedule(ctx, in.BarberID)
	if err != nil {
		return nil, err
	}
	if !configured {
		return &AvailabilityResult{
			Slots:    []domain.Slot{},
			DayState: domain.DayNotConfigured,
		}, nil
	}

	dayStart := time.Date(
		in.Date.Year(), in.Date.Month(), in.Date.Day(),
		0, 0, 0, 0,
		in.Date.Location(),
	)
	dayEnd := dayStart.Add(24 * time.Hour)

	busy, err := uc.repo.ListBusyRanges(ctx, in.BarberID, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}

	now := timezone.NowIn(shop.Timezone)

	slots, err := domain.GenerateSlots(week, in.Date, service.DurationMin, busy, now)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_working_hours")
	}

	_, state := week.Day(int(in.Date.Weekday()))

	return &AvailabilityResult{
		Slots:    slots,
		DayState: state,
	}, nil
}
