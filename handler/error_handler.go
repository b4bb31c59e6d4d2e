package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/trekcheck/trekcheck/pkg/logger"
	"github.com/trekcheck/trekcheck/pkg/requestid"
	"github.com/trekcheck/trekcheck/pkg/validator"
)

// statusOf maps an error to the status code JSONError would use.
func statusOf(err error) int {
	if validator.IsValidationError(err) {
		return http.StatusUnprocessableEntity
	}
	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Code
	}
	return http.StatusInternalServerError
}

func logLevelOf(status int) slog.Level {
	if status >= http.StatusBadRequest && status < http.StatusInternalServerError {
		return slog.LevelWarn
	}
	return slog.LevelError
}

// NewErrorHandler returns an error handler that logs the failure and renders
// it with JSONError. A nil logger falls back to slog.Default.
func NewErrorHandler(log *slog.Logger) ErrorHandler[Context] {
	if log == nil {
		log = slog.Default()
	}

	return func(ctx Context, err error) {
		r := ctx.Request()
		status := statusOf(err)

		log.LogAttrs(r.Context(), logLevelOf(status), "request error",
			logger.RequestID(requestid.FromContext(r.Context())),
			logger.Error(err),
			slog.Int("status_code", status),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			logger.Component("error_handler"),
		)

		if renderErr := JSONError(err).Render(ctx.ResponseWriter(), r); renderErr != nil {
			log.LogAttrs(r.Context(), slog.LevelError, "failed to render error response",
				logger.Error(renderErr),
				logger.Component("error_handler"),
			)
		}
	}
}
