package appointment

import (
	"context"
	"testing"
	"time"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

func TestGetAvailabilityGrid(t *testing.T) {
	repo := bookingRepo()

	date := futureSlot().Truncate(24 * time.Hour)
	booked := futureSlot() // 10:00

	repo.listBusyRanges = func(ctx context.Context, barberID uint, dayStart, dayEnd time.Time) ([]domain.TimeRange, error) {
		return []domain.TimeRange{{Start: booked, End: booked.Add(time.Hour)}}, nil
	}

	uc := NewGetAvailability(repo)

	result, err := uc.Execute(context.Background(), AvailabilityInput{
		BarbershopID: 1,
		BarberID:     3,
		ServiceID:    5,
		Date:         date,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.DayState != domain.DayOpen {
		t.Fatalf("day state = %v, want DayOpen", result.DayState)
	}
	if len(result.Slots) == 0 {
		t.Fatal("expected a populated grid")
	}

	// 09:00–18:00, passo 30, duração 60 → 09:00..17:00 = 17 slots
	if len(result.Slots) != 17 {
		t.Errorf("grid size = %d, want 17", len(result.Slots))
	}

	var busyCount int
	for _, s := range result.Slots {
		if s.Blocked == domain.BlockBusy {
			busyCount++
		}
	}
	// a reserva das 10:00–11:00 bloqueia 09:30, 10:00 e 10:30
	if busyCount != 3 {
		t.Errorf("busy slots = %d, want 3", busyCount)
	}
}

func TestGetAvailabilityUnconfigured(t *testing.T) {
	repo := bookingRepo()
	repo.getWeekSchedule = func(ctx context.Context, barberID uint) (domain.WeekSchedule, bool, error) {
		return domain.WeekSchedule{}, false, nil
	}

	uc := NewGetAvailability(repo)

	result, err := uc.Execute(context.Background(), AvailabilityInput{
		BarbershopID: 1, BarberID: 3, ServiceID: 5,
		Date: futureSlot(),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.DayState != domain.DayNotConfigured {
		t.Errorf("day state = %v, want DayNotConfigured", result.DayState)
	}
	if len(result.Slots) != 0 {
		t.Errorf("expected empty grid, got %d slots", len(result.Slots))
	}
}

func TestGetAvailabilityClosedDay(t *testing.T) {
	repo := bookingRepo()

	date := futureSlot()
	closedWeekday := int(date.Weekday())

	repo.getWeekSchedule = func(ctx context.Context, barberID uint) (domain.WeekSchedule, bool, error) {
		week := openWeek()
		week.Days[closedWeekday] = domain.DayHours{Closed: true}
		return week, true, nil
	}

	uc := NewGetAvailability(repo)

	result, err := uc.Execute(context.Background(), AvailabilityInput{
		BarbershopID: 1, BarberID: 3, ServiceID: 5,
		Date: date,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.DayState != domain.DayClosed {
		t.Errorf("day state = %v, want DayClosed", result.DayState)
	}
	if len(result.Slots) != 0 {
		t.Errorf("closed day: expected empty grid, got %d slots", len(result.Slots))
	}
}

func TestGetAvailabilityInactiveService(t *testing.T) {
	repo := bookingRepo()
	repo.getService = func(ctx context.Context, barbershopID, serviceID uint) (*models.Service, error) {
		return &models.Service{Name: "Desativado", DurationMin: 60, Active: false}, nil
	}

	uc := NewGetAvailability(repo)

	_, err := uc.Execute(context.Background(), AvailabilityInput{
		BarbershopID: 1, BarberID: 3, ServiceID: 5,
		Date: futureSlot(),
	})
	wantBusinessCode(t, err, "service_not_found")
}
