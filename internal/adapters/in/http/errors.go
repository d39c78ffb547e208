package http

import (
	"errors"
	"net/http"

	"dispatch/internal/generated/servers"
	"dispatch/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// statusOf maps domain and infrastructure errors to HTTP status codes.
func statusOf(err error) int {
	switch {
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrTransient):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// fail writes err as servers.Error. Server-side failures are logged; their
// details stay out of the response.
func (s *Server) fail(c echo.Context, op string, err error) error {
	code := statusOf(err)
	msg := err.Error()

	switch code {
	case http.StatusServiceUnavailable:
		s.logger.WarnContext(c.Request().Context(), op+" failed, retry possible", "error", err)
		msg = "temporarily unavailable, retry later"
	case http.StatusInternalServerError:
		s.logger.ErrorContext(c.Request().Context(), op+" failed",
			"error", err,
			"integrity_violation", errors.Is(err, errs.ErrIntegrityViolation),
		)
		msg = "internal error"
	}

	return c.JSON(code, servers.Error{Code: code, Message: msg})
}

func badRequest(c echo.Context, msg string) error {
	return c.JSON(http.StatusBadRequest, servers.Error{Code: http.StatusBadRequest, Message: msg})
}
