package postgres

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/ftfltech/careers-api/internal/store"
	"github.com/jackc/pgx/v5/pgconn"
)

// PostgreSQL error codes
const (
	uniqueViolationCode           = "23505"
	checkViolationCode            = "23514"
	notNullViolationCode          = "23502"
	invalidTextRepresentationCode = "22P02"
)

// MapError maps a database error onto the store sentinels, wrapping the
// original so it stays available for logging.
func MapError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: %v", store.ErrNotFound, err)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case uniqueViolationCode:
			return fmt.Errorf("%w: %v", store.ErrDuplicate, err)
		case checkViolationCode:
			return fmt.Errorf(
				"%w: check constraint violation (%s): %v",
				store.ErrInvalidEntity,
				pgErr.ConstraintName,
				err,
			)
		case notNullViolationCode:
			return fmt.Errorf(
				"%w: not null violation (%s): %v",
				store.ErrInvalidEntity,
				pgErr.ColumnName,
				err,
			)
		case invalidTextRepresentationCode:
			return fmt.Errorf("%w: malformed value: %v", store.ErrInvalidEntity, err)
		}
	}

	return err
}

// wrapError maps err with MapError. Not-found and duplicate results are
// returned as they are; anything else becomes a *store.StoreError naming the
// entity and operation, with update and delete failures also matching
// store.ErrUpdateFailed and store.ErrDeleteFailed.
func wrapError(entity, operation string, err error) error {
	mapped := MapError(err)
	if mapped == nil || store.IsNotFoundError(mapped) || store.IsDuplicateError(mapped) {
		return mapped
	}

	switch operation {
	case "update":
		mapped = fmt.Errorf("%w: %w", store.ErrUpdateFailed, mapped)
	case "delete":
		mapped = fmt.Errorf("%w: %w", store.ErrDeleteFailed, mapped)
	}
	return store.NewStoreError(entity, operation, "database error", mapped)
}

// IsUniqueViolation checks if the given error is a PostgreSQL unique constraint violation.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}

// CheckRowsAffected returns notFound when an UPDATE or DELETE touched no rows.
// A nil notFound falls back to store.ErrNotFound.
func CheckRowsAffected(result sql.Result, notFound error) error {
	if result == nil {
		return fmt.Errorf("nil result provided to CheckRowsAffected")
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		if notFound == nil {
			return store.ErrNotFound
		}
		return notFound
	}
	return nil
}
