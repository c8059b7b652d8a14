package middleware

import (
	"fmt"
	"log/slog"
	"net/http"

	"mirage/config"
	deliverycontext "mirage/internal/delivery/context"
	"mirage/internal/delivery/http/response"
	"mirage/internal/delivery/http/validator"
	domainerrors "mirage/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ErrorMiddleware error handling middleware
type ErrorMiddleware struct {
	logger *slog.Logger
	debug  bool
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger, cfg *config.Config) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
		debug:  cfg.Env.Debug,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler.
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	// Field-level validation failures list every message.
	var reqErr *validator.RequestError
	if errors.As(err, &reqErr) {
		_ = response.ValidationFailed(c, reqErr.Messages)

		return
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		body := response.MessageResponse{Message: appErr.Message()}
		// Internal detail stays server-side unless debugging.
		if m.debug {
			body.Detail = appErr.Details()
		}
		if appErr.HTTPCode() >= http.StatusInternalServerError {
			m.logger.Error("Request failed",
				slog.String("request_id", deliverycontext.RequestIDFromContext(c.Request().Context())),
				slog.String("path", c.Request().URL.Path),
				slog.String("method", c.Request().Method),
				slog.String("code", appErr.ErrorCode()),
				slog.Any("error", err),
			)
		}
		_ = c.JSON(appErr.HTTPCode(), body)

		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		_ = response.Message(c, httpErr.Code, fmt.Sprintf("%v", httpErr.Message))

		return
	}

	// Anything unclassified is logged and flattened to a generic 500.
	m.logger.Error("Unhandled error",
		slog.String("request_id", deliverycontext.RequestIDFromContext(c.Request().Context())),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
		slog.Any("error", err),
	)

	_ = response.Message(c, http.StatusInternalServerError, "Internal server error")
}
