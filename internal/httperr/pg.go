package httperr

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// Códigos do Postgres que interessam ao guard de agendamento:
// 23P01 = exclusion_violation (constraint de sobreposição barbeiro+horário)
// 23505 = unique_violation
const (
	pgExclusionViolation = "23P01"
	pgUniqueViolation    = "23505"
)

// IsExclusionConflict detecta quando a constraint de exclusão do banco
// barrou um agendamento sobreposto que escapou da checagem em aplicação.
// É a mesma condição de negócio de time_conflict, só que vinda do Postgres.
func IsExclusionConflict(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	return pgErr.Code == pgExclusionViolation || pgErr.Code == pgUniqueViolation
}
