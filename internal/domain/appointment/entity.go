package appointment

import (
	"time"

	"github.com/BruksfildServices01/barber-booking/internal/models"
)

// ===============================
// Domain Actions
// ===============================

func Confirm(ap *models.Appointment, now time.Time) error {
	if err := CanConfirm(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusConfirmed)
	ap.UpdatedAt = now
	return nil
}

func Cancel(ap *models.Appointment, now time.Time) error {
	if err := CanCancel(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusCanceled)
	ap.CanceledAt = &now
	ap.UpdatedAt = now
	return nil
}

func Reschedule(ap *models.Appointment, newStart time.Time, now time.Time) error {
	if err := CanReschedule(Status(ap.Status)); err != nil {
		return err
	}

	duration := time.Duration(ap.ServiceDurationMin) * time.Minute
	ap.StartAt = newStart
	ap.EndAt = newStart.Add(duration)
	ap.UpdatedAt = now
	return nil
}
