package pgsql

import (
	"errors"
	"fmt"
	"testing"

	"github.com/SscSPs/contabil_ledger/internal/apperrors"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestMapReadError(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantIs  error
		wantMsg string
	}{
		{name: "no rows", err: pgx.ErrNoRows, wantIs: apperrors.ErrNotFound, wantMsg: "title abc"},
		{name: "malformed uuid", err: &pgconn.PgError{Code: pgerrcode.InvalidTextRepresentation}, wantIs: apperrors.ErrNotFound, wantMsg: "title abc"},
		{name: "wrapped malformed uuid", err: fmt.Errorf("scan: %w", &pgconn.PgError{Code: pgerrcode.InvalidTextRepresentation}), wantIs: apperrors.ErrNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := mapReadError(tt.err, "title", "abc")
			assert.ErrorIs(t, err, tt.wantIs)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}

	err := mapReadError(errors.New("connection reset"), "title", "abc")
	assert.False(t, apperrors.IsExpected(err))
}

func TestMapWriteError(t *testing.T) {
	tests := []struct {
		name   string
		err    *pgconn.PgError
		wantIs error
	}{
		{name: "unique", err: &pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: "titles_code_key"}, wantIs: apperrors.ErrDuplicate},
		{name: "foreign key", err: &pgconn.PgError{Code: pgerrcode.ForeignKeyViolation}, wantIs: apperrors.ErrNotFound},
		{name: "malformed uuid", err: &pgconn.PgError{Code: pgerrcode.InvalidTextRepresentation}, wantIs: apperrors.ErrNotFound},
		{name: "check", err: &pgconn.PgError{Code: pgerrcode.CheckViolation, ConstraintName: "titles_value_check"}, wantIs: apperrors.ErrValidation},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, mapWriteError(tt.err, "title"), tt.wantIs)
		})
	}

	assert.NoError(t, mapWriteError(nil, "title"))
	assert.Contains(t, mapWriteError(&pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: "titles_code_key"}, "title").Error(),
		"title code already exists")
	assert.False(t, apperrors.IsExpected(mapWriteError(&pgconn.PgError{Code: pgerrcode.DeadlockDetected}, "title")))
}

func TestMapDeleteError(t *testing.T) {
	assert.ErrorIs(t, mapDeleteError(&pgconn.PgError{Code: pgerrcode.ForeignKeyViolation}, "account", "a"), apperrors.ErrConflict)
	assert.ErrorIs(t, mapDeleteError(&pgconn.PgError{Code: pgerrcode.InvalidTextRepresentation}, "account", "x"), apperrors.ErrNotFound)
	assert.NoError(t, mapDeleteError(nil, "account", "a"))
}

func TestWellFormedIDs(t *testing.T) {
	ids := wellFormedIDs([]string{"3f2504e0-4f89-11d3-9a0c-0305e82c3301", "abc", "", "6ba7b810-9dad-11d1-80b4-00c04fd430c8"})
	assert.Equal(t, []string{"3f2504e0-4f89-11d3-9a0c-0305e82c3301", "6ba7b810-9dad-11d1-80b4-00c04fd430c8"}, ids)
}
