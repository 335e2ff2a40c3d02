package pgsql

import (
	"errors"
	"fmt"

	"github.com/SscSPs/contabil_ledger/internal/apperrors"
	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// uniqueMessages maps unique constraint names to the message returned to callers.
var uniqueMessages = map[string]string{
	"titles_code_key":    "title code already exists",
	"accounts_code_key":  "account code already exists",
	"users_username_key": "username already exists",
}

// isMalformedID reports whether Postgres rejected a value that cannot be cast to the
// column type, which for our UUID keys means an id that cannot exist.
func isMalformedID(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.InvalidTextRepresentation
}

// wellFormedIDs drops ids that are not UUIDs so batch lookups treat them as missing
// rows instead of failing the whole query.
func wellFormedIDs(ids []string) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, err := uuid.Parse(id); err == nil {
			out = append(out, id)
		}
	}
	return out
}

// mapWriteError translates constraint violations raised by inserts and updates.
func mapWriteError(err error, entity string) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return fmt.Errorf("failed to write %s: %w", entity, err)
	}
	switch pgErr.Code {
	case pgerrcode.UniqueViolation:
		if msg, ok := uniqueMessages[pgErr.ConstraintName]; ok {
			return fmt.Errorf("%w: %s", apperrors.ErrDuplicate, msg)
		}
		return fmt.Errorf("%w: %s already exists", apperrors.ErrDuplicate, entity)
	case pgerrcode.ForeignKeyViolation:
		return fmt.Errorf("%w: %s references a missing record (%s)", apperrors.ErrNotFound, entity, pgErr.ConstraintName)
	case pgerrcode.InvalidTextRepresentation:
		return fmt.Errorf("%w: %s references a malformed id", apperrors.ErrNotFound, entity)
	case pgerrcode.CheckViolation, pgerrcode.NotNullViolation:
		return fmt.Errorf("%w: %s violates %s", apperrors.ErrValidation, entity, pgErr.ConstraintName)
	}
	return fmt.Errorf("failed to write %s: %w", entity, err)
}

// mapDeleteError turns a foreign key violation on delete into a conflict.
func mapDeleteError(err error, entity, id string) error {
	if err == nil {
		return nil
	}
	if isMalformedID(err) {
		return apperrors.NewNotFoundError(entity, id)
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation {
		return fmt.Errorf("%w: %s is still referenced (%s)", apperrors.ErrConflict, entity, pgErr.ConstraintName)
	}
	return fmt.Errorf("failed to delete %s: %w", entity, err)
}

// mapReadError converts pgx.ErrNoRows, and ids Postgres cannot parse, into a not found error.
func mapReadError(err error, entity, id string) error {
	if errors.Is(err, pgx.ErrNoRows) || isMalformedID(err) {
		return apperrors.NewNotFoundError(entity, id)
	}
	return fmt.Errorf("failed to load %s %s: %w", entity, id, err)
}
