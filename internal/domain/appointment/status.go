package appointment

import (
	"time"

	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusPending   Status = "PENDING"
	StatusConfirmed Status = "CONFIRMED"
	StatusCanceled  Status = "CANCELED"

	// COMPLETED é derivado para exibição, nunca persistido.
	StatusCompleted Status = "COMPLETED"
)

// BusyStatuses são os únicos status que bloqueiam horário:
// agendamento cancelado libera o slot imediatamente.
var BusyStatuses = []string{string(StatusPending), string(StatusConfirmed)}

// ===============================
// Máquina de estados
// ===============================
//
// PENDING --confirm--> CONFIRMED
// PENDING --cancel---> CANCELED
// CONFIRMED --cancel-> CANCELED
// CANCELED é terminal.

func CanConfirm(current Status) error {
	if current != StatusPending {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

func CanCancel(current Status) error {
	if current != StatusPending && current != StatusConfirmed {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

func CanReschedule(current Status) error {
	if current != StatusPending && current != StatusConfirmed {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

func InitialStatus() Status {
	return StatusPending
}

// DeriveDisplay centraliza a regra de "concluído": CONFIRMED com
// horário já encerrado aparece como COMPLETED nas listagens.
// Regra única para todas as telas; nada é gravado no banco.
func DeriveDisplay(status Status, endAt time.Time, now time.Time) Status {
	if status == StatusConfirmed && !endAt.After(now) {
		return StatusCompleted
	}
	return status
}

func DeriveDisplayStatus(ap *models.Appointment, now time.Time) Status {
	return DeriveDisplay(Status(ap.Status), ap.EndAt, now)
}
