// Package pgerr classifies PostgreSQL driver errors. Failures that a retry may cure
// become errs.TransientError. A unique violation is transient only on an index the
// caller names as a race guard; on any other index it is an integrity violation.
// Everything else passes through wrapped with the operation name.
package pgerr

import (
	"context"
	"database/sql/driver"
	"errors"
	"fmt"
	"slices"
	"strings"

	"dispatch/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
)

// SQLSTATE codes inspected by Translate.
const (
	SerializationFailure = "40001"
	DeadlockDetected     = "40P01"
	LockNotAvailable     = "55P03"
	QueryCanceled        = "57014"
	AdminShutdown        = "57P01"
	TooManyConnections   = "53300"
	UniqueViolation      = "23505"

	connectionExceptionClass = "08"
)

// Translate classifies err; nil stays nil. raceGuards names the unique indexes
// that concurrent writers of this statement can collide on: losing such a race is
// retryable, the winner is visible on the next attempt.
func Translate(operation string, err error, raceGuards ...string) error {
	if err == nil || errors.Is(err, errs.ErrTransient) {
		return err
	}

	if IsTransient(err, raceGuards...) {
		return errs.NewTransientError(operation, err)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == UniqueViolation {
		return errs.NewIntegrityViolationErrorWithCause(operation, err)
	}

	return fmt.Errorf("%s: %w", operation, err)
}

// IsTransient reports whether err is worth retrying. A unique violation counts
// only when it hit one of raceGuards.
func IsTransient(err error, raceGuards ...string) bool {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, driver.ErrBadConn) || pgconn.Timeout(err) {
		return true
	}

	var connectErr *pgconn.ConnectError
	if errors.As(err, &connectErr) {
		return true
	}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}

	switch pgErr.Code {
	case SerializationFailure, DeadlockDetected, LockNotAvailable, QueryCanceled,
		AdminShutdown, TooManyConnections:
		return true
	case UniqueViolation:
		return slices.Contains(raceGuards, pgErr.ConstraintName)
	}
	return strings.HasPrefix(pgErr.Code, connectionExceptionClass)
}
