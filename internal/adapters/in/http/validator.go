package http

import (
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers/gorillamux"
	"github.com/labstack/echo/v4"
)

// requestValidator rejects requests that do not match doc with 400 before they
// reach a handler. Paths outside doc pass through untouched.
func requestValidator(doc *openapi3.T) (echo.MiddlewareFunc, error) {
	router, err := gorillamux.NewRouter(doc)
	if err != nil {
		return nil, fmt.Errorf("build openapi router: %w", err)
	}

	options := &openapi3filter.Options{
		MultiError: false,
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()

			route, pathParams, findErr := router.FindRoute(req)
			if findErr != nil {
				return next(c)
			}

			input := &openapi3filter.RequestValidationInput{
				Request:    req,
				PathParams: pathParams,
				Route:      route,
				Options:    options,
			}
			if err := openapi3filter.ValidateRequest(req.Context(), input); err != nil {
				return badRequest(c, validationMessage(err))
			}

			return next(c)
		}
	}, nil
}

func validationMessage(err error) string {
	switch e := err.(type) { //nolint:errorlint // openapi3filter returns these unwrapped
	case *openapi3filter.RequestError:
		if e.Parameter != nil {
			return fmt.Sprintf("invalid parameter %s: %s", e.Parameter.Name, e.Reason)
		}
		if e.RequestBody != nil {
			return "invalid request body: " + reasonOf(e)
		}
		return e.Error()
	default:
		return err.Error()
	}
}

func reasonOf(e *openapi3filter.RequestError) string {
	if se, ok := e.Err.(*openapi3.SchemaError); ok { //nolint:errorlint // see validationMessage
		if field := se.JSONPointer(); len(field) > 0 {
			return fmt.Sprintf("%v: %s", field, se.Reason)
		}
		return se.Reason
	}
	if e.Reason != "" {
		return e.Reason
	}
	return e.Error()
}
