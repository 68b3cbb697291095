package util

import (
	"errors"
	"net/http"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

func TestToDomainErrorPassthrough(t *testing.T) {
	original := NewValidationError("bad input", map[string]any{"field": "email"})
	mapped := ToDomainError(original)
	if mapped.Code != "VALIDATION_FAILED" || mapped.HTTPStatus != http.StatusBadRequest {
		t.Errorf("unexpected mapping: %+v", mapped)
	}
}

func TestToDomainErrorUniqueViolation(t *testing.T) {
	pgErr := &pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: "users_email_key"}
	mapped := ToDomainError(pgErr)
	if mapped.Code != "CONFLICT" {
		t.Errorf("expected CONFLICT, got %q", mapped.Code)
	}
	if mapped.HTTPStatus != http.StatusConflict {
		t.Errorf("expected 409, got %d", mapped.HTTPStatus)
	}
	if mapped.Details["constraint"] != "users_email_key" {
		t.Errorf("expected constraint detail, got %v", mapped.Details)
	}
}

func TestToDomainErrorNoRows(t *testing.T) {
	mapped := ToDomainError(pgx.ErrNoRows)
	if mapped.Code != "NOT_FOUND" || mapped.HTTPStatus != http.StatusNotFound {
		t.Errorf("unexpected mapping: %+v", mapped)
	}
}

func TestToDomainErrorUnknown(t *testing.T) {
	mapped := ToDomainError(errors.New("boom"))
	if mapped.Code != "INTERNAL_ERROR" || mapped.HTTPStatus != http.StatusInternalServerError {
		t.Errorf("unexpected mapping: %+v", mapped)
	}
}

func TestDomainErrorUnwrap(t *testing.T) {
	inner := errors.New("inner")
	wrapped := NewInternalError(inner)
	if !errors.Is(wrapped, inner) {
		t.Error("expected wrapped error to match inner")
	}
}

func TestToDomainErrorNil(t *testing.T) {
	if ToDomainError(nil) != nil {
		t.Error("nil error should map to nil")
	}
}
