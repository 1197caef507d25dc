package dberrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
)

func wrapped(code, constraint string) error {
	return fmt.Errorf("exec failed: %w", &pgconn.PgError{Code: code, ConstraintName: constraint})
}

func TestPredicatesMatchWrappedPgErrors(t *testing.T) {
	fkErr := wrapped("23503", "month_heroes_user_id_fkey")

	if !IsForeignKeyViolation(fkErr) {
		t.Error("IsForeignKeyViolation should match a 23503 error")
	}
	if !IsForeignKeyConstraintError(fkErr, "month_heroes_user_id_fkey") {
		t.Error("IsForeignKeyConstraintError should match on the named constraint")
	}
	if IsForeignKeyConstraintError(fkErr, "month_heroes_month_id_fkey") {
		t.Error("IsForeignKeyConstraintError must not match a different constraint")
	}

	if !IsStringTruncation(wrapped("22001", "")) {
		t.Error("IsStringTruncation should match a 22001 error")
	}
	if IsStringTruncation(fkErr) {
		t.Error("IsStringTruncation must not match a foreign key violation")
	}

	if !IsDuplicateConstraintError(wrapped("23505", "months_name_key"), "months_name_key") {
		t.Error("IsDuplicateConstraintError should match on the named constraint")
	}
	if !IsCheckViolation(wrapped("23514", "month_heroes_type_check")) {
		t.Error("IsCheckViolation should match a 23514 error")
	}
}

func TestPredicatesIgnoreNonPgErrors(t *testing.T) {
	err := errors.New("connection reset")
	if IsUniqueViolation(err) || IsForeignKeyViolation(err) || IsCheckViolation(err) || IsStringTruncation(err) {
		t.Error("plain errors must not match any predicate")
	}
}
