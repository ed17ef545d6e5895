package repository

import (
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/GoSim-25-26J-441/registry-backend/internal/registry/domain"
)

// PostgreSQL SQLSTATE codes the gateway translates.
const (
	pgForeignKeyViolation = "23503"
	pgUniqueViolation     = "23505"
	pgNotNullViolation    = "23502"
	pgCheckViolation      = "23514"
	pgStringTooLong       = "22001"
)

// Constraint names created by the schema migrations.
const (
	ConstraintUsersRUT           = "users_rut_key"
	ConstraintProjectInstitution = "projects_institution_id_fkey"
	ConstraintProjectUser        = "projects_user_id_fkey"
)

func pqError(err error) (*pq.Error, bool) {
	var pgErr *pq.Error
	if errors.As(err, &pgErr) {
		return pgErr, true
	}
	return nil, false
}

func isCode(err error, code string) (*pq.Error, bool) {
	pgErr, ok := pqError(err)
	if !ok || string(pgErr.Code) != code {
		return nil, false
	}
	return pgErr, true
}

// translateWriteError maps constraint violations raised by INSERT/UPDATE to
// domain errors; anything else is wrapped with op.
func translateWriteError(entity, op string, err error) error {
	pgErr, ok := pqError(err)
	if !ok {
		return fmt.Errorf("%s: %w", op, err)
	}

	switch string(pgErr.Code) {
	case pgForeignKeyViolation:
		switch pgErr.Constraint {
		case ConstraintProjectInstitution:
			return domain.NewUnknownReference("institution_id", err)
		case ConstraintProjectUser:
			return domain.NewUnknownReference("user_id", err)
		}
		return domain.NewUnknownReference("reference", err)
	case pgUniqueViolation:
		if pgErr.Constraint == ConstraintUsersRUT {
			return domain.NewConflict(entity, "rut already registered", err)
		}
		return domain.NewConflict(entity, "duplicate value", err)
	case pgNotNullViolation:
		return domain.NewRequired(pgErr.Column)
	case pgStringTooLong:
		return domain.NewInvalidFormat(fieldOrPayload(pgErr.Column), "value too long", err)
	case pgCheckViolation:
		return domain.NewInvalidFormat(fieldOrPayload(pgErr.Column), "value rejected by "+pgErr.Constraint, err)
	}
	return fmt.Errorf("%s: %w", op, err)
}

// translateDeleteError maps a restrict violation to a conflict.
func translateDeleteError(entity, op string, err error) error {
	if _, ok := isCode(err, pgForeignKeyViolation); ok {
		return domain.NewConflict(entity, "projects still reference it", err)
	}
	return fmt.Errorf("%s: %w", op, err)
}

func fieldOrPayload(column string) string {
	if column == "" {
		return "payload"
	}
	return column
}
