package http

import (
	"errors"
	"net/http"

	"fulfillment/internal/generated/servers"
	"fulfillment/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// statusFor maps the error taxonomy onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrBadInput),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, errs.ErrValueIsRequired):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// fail writes the error response. Client errors carry the error text;
// provider failures are logged and answered with the generic message only.
func (s *Server) fail(ctx echo.Context, err error, message string) error {
	code := statusFor(err)
	reqCtx := ctx.Request().Context()

	if code == http.StatusInternalServerError {
		s.logger.ErrorContext(reqCtx, message, "error", err, "path", ctx.Path())
		return ctx.JSON(code, servers.Error{Code: code, Message: message})
	}

	s.logger.WarnContext(reqCtx, message, "error", err, "path", ctx.Path())
	return ctx.JSON(code, servers.Error{Code: code, Message: message + ": " + err.Error()})
}

func (s *Server) invalidBody(ctx echo.Context) error {
	return ctx.JSON(http.StatusBadRequest, servers.Error{
		Code:    http.StatusBadRequest,
		Message: "Invalid request body",
	})
}

// HTTPErrorHandler renders errors that escape the handlers, such as routing
// failures and path parameter binding errors, in the same JSON shape.
func HTTPErrorHandler(err error, ctx echo.Context) {
	if ctx.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	message := http.StatusText(code)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
		if m, ok := he.Message.(string); ok {
			message = m
		} else {
			message = http.StatusText(code)
		}
	}

	if ctx.Request().Method == http.MethodHead {
		_ = ctx.NoContent(code)
		return
	}
	_ = ctx.JSON(code, servers.Error{Code: code, Message: message})
}
