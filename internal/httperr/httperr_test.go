package httperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
)

func TestBusinessError(t *testing.T) {
	err := ErrBusiness("slot_no_longer_available")

	if !IsBusiness(err, "slot_no_longer_available") {
		t.Error("IsBusiness failed on matching code")
	}
	if IsBusiness(err, "other_code") {
		t.Error("IsBusiness matched the wrong code")
	}

	code, ok := BusinessCode(err)
	if !ok || code != "slot_no_longer_available" {
		t.Errorf("BusinessCode = %q, %v", code, ok)
	}

	// erro envelopado continua identificável
	wrapped := fmt.Errorf("creating appointment: %w", err)
	if !IsBusiness(wrapped, "slot_no_longer_available") {
		t.Error("wrapped business error lost its code")
	}

	if _, ok := BusinessCode(errors.New("plain")); ok {
		t.Error("plain error reported a business code")
	}
}

func TestIsExclusionConflict(t *testing.T) {
	exclusion := &pgconn.PgError{Code: "23P01"}
	unique := &pgconn.PgError{Code: "23505"}
	other := &pgconn.PgError{Code: "42P01"}

	if !IsExclusionConflict(exclusion) {
		t.Error("23P01 not detected")
	}
	if !IsExclusionConflict(unique) {
		t.Error("23505 not detected")
	}
	if IsExclusionConflict(other) {
		t.Error("unrelated pg error detected as conflict")
	}
	if IsExclusionConflict(errors.New("not a pg error")) {
		t.Error("plain error detected as conflict")
	}

	wrapped := fmt.Errorf("tx: %w", exclusion)
	if !IsExclusionConflict(wrapped) {
		t.Error("wrapped pg error not detected")
	}
}
