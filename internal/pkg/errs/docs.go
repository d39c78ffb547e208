// Package errs provides standardized error types for the dispatch engine.
//
// Every error type wraps a sentinel so callers can classify failures with errors.Is:
//   - ErrValueIsRequired, ErrValueIsInvalid, ErrValueIsOutOfRange: validation errors,
//     rejected before any side effect
//   - ErrObjectNotFound: a referenced object does not exist
//   - ErrTransient: the data store timed out or was unavailable; the caller may retry
//   - ErrIntegrityViolation: persisted data contradicts an invariant (for example a partner
//     without a wallet); it is logged and never retried
//
// Each error type follows the same shape: a struct with the offending parameter and an
// optional Cause, constructors with and without a cause, Error() for formatting and
// Unwrap() returning the sentinel.
package errs
